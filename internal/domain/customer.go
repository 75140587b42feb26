package domain

import (
	"time"
)

// Customer as registered by the store. Name and phone are the only
// mandatory fields; Doc holds a CPF or CNPJ.
type Customer struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null" json:"tenant_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Phone     string    `gorm:"type:text;not null" json:"phone"`
	Doc       string    `gorm:"type:text" json:"doc,omitempty"`
	Email     string    `gorm:"type:text" json:"email,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
