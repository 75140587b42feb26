package domain

import (
	"time"
)

// Tenant is an isolated customer organization. All business rows are scoped
// to exactly one tenant, and the user that created the tenant is its owner.
type Tenant struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Slug      string    `gorm:"type:text;not null;unique" json:"slug"`
	OwnerID   string    `gorm:"type:uuid;not null" json:"owner_id"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
