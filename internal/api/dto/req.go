package dto

import (
	"time"
)

// PasswordResetRequest starts a recovery flow by display name, not email,
// matching the login screen which asks for the name the user signed up with.
type PasswordResetRequest struct {
	Name        string `json:"name" binding:"required" example:"Maria Silva"`
	RedirectURL string `json:"redirect_url" example:"https://app.vendaflow.com.br/reset"`
}

type CreateReceivableRequest struct {
	OrderID           string     `json:"order_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	CustomerID        *string    `json:"customer_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	CustomerName      string     `json:"customer_name" binding:"required" example:"João Pereira"`
	Description       string     `json:"description" example:"Pedido #1042"`
	TotalAmount       float64    `json:"total_amount" binding:"required" example:"300"`
	InstallmentNumber int        `json:"installment_number" example:"1"`
	TotalInstallments int        `json:"total_installments" example:"3"`
	Amount            float64    `json:"amount" binding:"required" example:"100"`
	DueDate           time.Time  `json:"due_date" binding:"required" example:"2025-08-10T00:00:00Z"`
	Notes             *string    `json:"notes" example:"Primeira parcela"`
}

type BulkCreateReceivablesRequest struct {
	Receivables []CreateReceivableRequest `json:"receivables" binding:"required,min=1,dive"`
}

type MarkReceivablePaidRequest struct {
	PaymentMethod *string `json:"payment_method" example:"pix"`
}

type ArchiveReceivablesRequest struct {
	BeforeDate time.Time `json:"before_date" binding:"required" example:"2025-01-01T00:00:00Z"`
}

// UpdateSettingsRequest carries the cloud copy of company settings.
// Pointer fields distinguish "not sent" from explicit false/zero.
type UpdateSettingsRequest struct {
	Name                  string   `json:"name" example:"Vidraçaria Cristal"`
	CNPJ                  string   `json:"cnpj" example:"12.345.678/0001-90"`
	Address               string   `json:"address" example:"Rua das Flores, 123"`
	Phone                 string   `json:"phone" example:"(11) 91234-5678"`
	Phone2                string   `json:"phone2"`
	Email                 string   `json:"email" example:"contato@cristal.com.br"`
	LogoURL               string   `json:"logo_url"`
	UsesStock             *bool    `json:"uses_stock"`
	LowStockThreshold     *int     `json:"low_stock_threshold"`
	PrintLogoOnReceipts   *bool    `json:"print_logo_on_receipts"`
	AutoPrintOnSale       *bool    `json:"auto_print_on_sale"`
	NotifyLowStock        *bool    `json:"notify_low_stock"`
	NotifyNewSales        *bool    `json:"notify_new_sales"`
	NotifyPendingPayments *bool    `json:"notify_pending_payments"`
	NotifyOrderStatus     *bool    `json:"notify_order_status"`
	UsesCommission        *bool    `json:"uses_commission"`
	CommissionPercentage  *float64 `json:"commission_percentage"`
	LoginHeaderColor      string   `json:"login_header_color" example:"#1e40af"`
}

// ResolveSettingsRequest carries the client's local settings so the server
// can merge them with the cloud copy into one effective view.
type ResolveSettingsRequest struct {
	Local SettingsPayload `json:"local"`
}

// SettingsPayload mirrors the resolved settings shape used by clients.
type SettingsPayload struct {
	Name                  string  `json:"name"`
	CNPJ                  string  `json:"cnpj"`
	Address               string  `json:"address"`
	Phone                 string  `json:"phone"`
	Phone2                string  `json:"phone2"`
	Email                 string  `json:"email"`
	LogoURL               string  `json:"logo_url"`
	UsesStock             bool    `json:"uses_stock"`
	LowStockThreshold     int     `json:"low_stock_threshold"`
	PrintLogoOnReceipts   bool    `json:"print_logo_on_receipts"`
	AutoPrintOnSale       bool    `json:"auto_print_on_sale"`
	NotifyLowStock        bool    `json:"notify_low_stock"`
	NotifyNewSales        bool    `json:"notify_new_sales"`
	NotifyPendingPayments bool    `json:"notify_pending_payments"`
	NotifyOrderStatus     bool    `json:"notify_order_status"`
	UsesCommission        bool    `json:"uses_commission"`
	CommissionPercentage  float64 `json:"commission_percentage"`
	LoginHeaderColor      string  `json:"login_header_color"`
	Theme                 string  `json:"theme"`
}

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required" example:"João Pereira"`
	Phone string `json:"phone" binding:"required" example:"(11) 98765-4321"`
	Doc   string `json:"doc" example:"123.456.789-00"`
	Email string `json:"email" example:"joao@example.com"`
	Notes string `json:"notes"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required" example:"Vidro temperado 8mm"`
	Category    string  `json:"category" binding:"required" example:"Vidros"`
	Subcategory string  `json:"subcategory" example:"Temperado"`
	Price       float64 `json:"price" binding:"required" example:"250"`
	Stock       int     `json:"stock" example:"12"`
	Type        string  `json:"type" example:"produto"`
	PricingMode string  `json:"pricing_mode" example:"medidor"`
	Description string  `json:"description"`
}
