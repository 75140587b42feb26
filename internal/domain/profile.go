package domain

import (
	"time"
)

// Profile is the application-level user record, linked one-to-one with an
// authenticated identity. Its ID equals the auth provider's user id.
// TenantID is nullable: a profile created before tenant provisioning
// finishes gets it backfilled on the next bootstrap.
type Profile struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text" json:"email"`
	TenantID  *string   `gorm:"type:uuid" json:"tenant_id"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}
