package domain

import (
	"time"
)

// ProductType distinguishes stocked products from services.
type ProductType string

const (
	ProductTypeProduct ProductType = "produto"
	ProductTypeService ProductType = "servico"
)

// PricingMode says how a line total is computed at the point of sale:
// per unit quantity or per measured area/length.
type PricingMode string

const (
	PricingModeQuantity PricingMode = "quantidade"
	PricingModeMeter    PricingMode = "medidor"
)

type Product struct {
	ID          string      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string      `gorm:"type:uuid;not null" json:"tenant_id"`
	Name        string      `gorm:"type:text;not null" json:"name"`
	Category    string      `gorm:"type:text;not null" json:"category"`
	Subcategory string      `gorm:"type:text" json:"subcategory,omitempty"`
	Price       float64     `gorm:"not null" json:"price"`
	Stock       int         `gorm:"not null;default:0" json:"stock"`
	Type        ProductType `gorm:"type:text;not null;default:'produto'" json:"type"`
	PricingMode PricingMode `gorm:"type:text;not null;default:'quantidade'" json:"pricing_mode"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant      *Tenant     `gorm:"foreignKey:TenantID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
