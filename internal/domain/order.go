package domain

import (
	"time"
)

// Order is a sale registered by the order-entry flows. This API never
// mutates orders; it only reads them for listings and commission math.
type Order struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID     string    `gorm:"type:uuid;not null" json:"tenant_id"`
	SellerID     string    `gorm:"type:uuid;not null" json:"seller_id"`
	SellerName   string    `gorm:"type:text" json:"seller_name"`
	CustomerName string    `gorm:"type:text" json:"customer_name"`
	AmountPaid   float64   `gorm:"not null;default:0" json:"amount_paid"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant       *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderFilter struct {
	TenantID  string    `json:"tenant_id"`
	SellerID  string    `json:"seller_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
