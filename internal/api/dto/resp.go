package dto

import (
	"time"
)

// EnsureUserResponse confirms that the caller's profile, tenant and role
// rows exist, returning the tenant the user belongs to.
type EnsureUserResponse struct {
	OK       bool   `json:"ok" example:"true"`
	TenantID string `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// PasswordResetResponse is the bare generic message when the name matched
// nothing, so the endpoint cannot be used to enumerate users. On a real
// match it carries where the notification went and the link itself.
type PasswordResetResponse struct {
	Message       string `json:"message" example:"Link de recuperação será enviado para o email do administrador."`
	AdminNotified bool   `json:"admin_notified,omitempty" example:"true"`
	AdminEmail    string `json:"admin_email,omitempty" example:"dona@cristal.com.br"`
	UserName      string `json:"user_name,omitempty" example:"Maria Silva"`
	ActionLink    string `json:"action_link,omitempty"`
}

type ReceivableResponse struct {
	ID                string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID          string     `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	OrderID           string     `json:"order_id" example:"550e8400-e29b-41d4-a716-446655440002"`
	CustomerID        *string    `json:"customer_id,omitempty"`
	CustomerName      string     `json:"customer_name" example:"João Pereira"`
	Description       string     `json:"description" example:"Pedido #1042"`
	TotalAmount       float64    `json:"total_amount" example:"300"`
	InstallmentNumber int        `json:"installment_number" example:"1"`
	TotalInstallments int        `json:"total_installments" example:"3"`
	Amount            float64    `json:"amount" example:"100"`
	DueDate           time.Time  `json:"due_date" example:"2025-08-10T00:00:00Z"`
	Paid              bool       `json:"paid" example:"false"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	PaymentMethod     *string    `json:"payment_method,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type OrderResponse struct {
	ID           string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	SellerID     string    `json:"seller_id" example:"auth0|abc123"`
	SellerName   string    `json:"seller_name" example:"Maria Silva"`
	CustomerName string    `json:"customer_name" example:"João Pereira"`
	AmountPaid   float64   `json:"amount_paid" example:"150"`
	CreatedAt    time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type CommissionLineResponse struct {
	OrderID      string    `json:"order_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CreatedAt    time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	CustomerName string    `json:"customer_name" example:"João Pereira"`
	SellerID     string    `json:"seller_id" example:"auth0|abc123"`
	SellerName   string    `json:"seller_name" example:"Maria Silva"`
	AmountPaid   float64   `json:"amount_paid" example:"150"`
	Commission   float64   `json:"commission" example:"15"`
}

type CommissionStatsResponse struct {
	TotalSales      float64 `json:"total_sales" example:"1500"`
	TotalCommission float64 `json:"total_commission" example:"150"`
	OrderCount      int     `json:"order_count" example:"10"`
	CommissionRate  float64 `json:"commission_rate" example:"10"`
}

type SellerCommissionResponse struct {
	SellerID        string  `json:"seller_id" example:"auth0|abc123"`
	SellerName      string  `json:"seller_name" example:"Maria Silva"`
	TotalSales      float64 `json:"total_sales" example:"800"`
	TotalCommission float64 `json:"total_commission" example:"80"`
	OrderCount      int     `json:"order_count" example:"5"`
}

// CommissionReportResponse is the full commission view for one month.
// Sellers is only present for admin/manager callers; sellers see their
// own lines and stats without the per-seller breakdown.
type CommissionReportResponse struct {
	Enabled bool                       `json:"enabled" example:"true"`
	Month   string                     `json:"month" example:"2025-07"`
	Stats   CommissionStatsResponse    `json:"stats"`
	Lines   []CommissionLineResponse   `json:"lines"`
	Sellers []SellerCommissionResponse `json:"sellers,omitempty"`
}

type SettingsResponse struct {
	Settings SettingsPayload `json:"settings"`
}

type CustomerResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"João Pereira"`
	Phone     string    `json:"phone" example:"(11) 98765-4321"`
	Doc       string    `json:"doc,omitempty" example:"123.456.789-00"`
	Email     string    `json:"email,omitempty" example:"joao@example.com"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type ProductResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name" example:"Vidro temperado 8mm"`
	Category    string    `json:"category" example:"Vidros"`
	Subcategory string    `json:"subcategory,omitempty" example:"Temperado"`
	Price       float64   `json:"price" example:"250"`
	Stock       int       `json:"stock" example:"12"`
	Type        string    `json:"type" example:"produto"`
	PricingMode string    `json:"pricing_mode" example:"medidor"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// ImportResultResponse reports how many rows a spreadsheet import stored.
// An invalid row fails the whole request instead, with a "Linha N" message.
type ImportResultResponse struct {
	Imported int `json:"imported" example:"42"`
}

// ArchiveScheduledResponse acknowledges that archival was queued.
type ArchiveScheduledResponse struct {
	Message string `json:"message" example:"Archive scheduled"`
}
