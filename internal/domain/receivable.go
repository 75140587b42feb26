package domain

import (
	"time"
)

// Receivable is a scheduled payment obligation tied to an order, usually
// one of several installments. It is mutated when paid and removed only by
// explicit user action or archival.
type Receivable struct {
	ID                string     `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID          string     `gorm:"type:uuid;not null" json:"tenant_id"`
	OrderID           string     `gorm:"type:uuid;not null" json:"order_id"`
	CustomerID        *string    `gorm:"type:uuid" json:"customer_id,omitempty"`
	CustomerName      string     `gorm:"type:text;not null" json:"customer_name"`
	Description       string     `gorm:"type:text" json:"description"`
	TotalAmount       float64    `gorm:"not null" json:"total_amount"`
	InstallmentNumber int        `gorm:"not null;default:1" json:"installment_number"`
	TotalInstallments int        `gorm:"not null;default:1" json:"total_installments"`
	Amount            float64    `gorm:"not null" json:"amount"`
	DueDate           time.Time  `gorm:"type:date;not null" json:"due_date"`
	Paid              bool       `gorm:"not null;default:false" json:"paid"`
	PaidAt            *time.Time `gorm:"type:timestamp with time zone" json:"paid_at,omitempty"`
	PaymentMethod     *string    `gorm:"type:text" json:"payment_method,omitempty"`
	Notes             *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant            *Tenant    `gorm:"foreignKey:TenantID" json:"-"`
}

func (Receivable) TableName() string {
	return "receivables"
}

// ReceivableFilter drives the search path. CustomerName and Description are
// full-text criteria; the rest are exact or range filters.
type ReceivableFilter struct {
	TenantID     string    `json:"tenant_id"`
	CustomerName string    `json:"customer_name"`
	Description  string    `json:"description"`
	Paid         *bool     `json:"paid"`
	DueStart     time.Time `json:"due_start"`
	DueEnd       time.Time `json:"due_end"`
	Page         int       `json:"page"`
	PageSize     int       `json:"page_size"`
}
