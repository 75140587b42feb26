package domain

import (
	"time"
)

// CompanySettings is the effective per-tenant configuration after merging
// the cloud copy with a local fallback. All fields are resolved.
type CompanySettings struct {
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

// CompanySettingsRecord is the stored cloud copy. Pointer fields are
// nullable columns: nil means the tenant never set the field, which is
// different from an explicit false or zero.
type CompanySettingsRecord struct {
	ID                    string   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID              string   `gorm:"type:uuid;not null;unique" json:"tenant_id"`
	Name                  string   `gorm:"type:text" json:"name"`
	CNPJ                  string   `gorm:"column:cnpj;type:text" json:"cnpj"`
	Address               string   `gorm:"type:text" json:"address"`
	Phone                 string   `gorm:"type:text" json:"phone"`
	Phone2                string   `gorm:"type:text" json:"phone2"`
	Email                 string   `gorm:"type:text" json:"email"`
	LogoURL               string   `gorm:"type:text" json:"logo_url"`
	UsesStock             *bool    `json:"uses_stock,omitempty"`
	LowStockThreshold     *int     `json:"low_stock_threshold,omitempty"`
	PrintLogoOnReceipts   *bool    `json:"print_logo_on_receipts,omitempty"`
	AutoPrintOnSale       *bool    `json:"auto_print_on_sale,omitempty"`
	NotifyLowStock        *bool    `json:"notify_low_stock,omitempty"`
	NotifyNewSales        *bool    `json:"notify_new_sales,omitempty"`
	NotifyPendingPayments *bool    `json:"notify_pending_payments,omitempty"`
	NotifyOrderStatus     *bool    `json:"notify_order_status,omitempty"`
	UsesCommission        *bool    `json:"uses_commission,omitempty"`
	CommissionPercentage  *float64 `json:"commission_percentage,omitempty"`
	LoginHeaderColor      string   `gorm:"type:text" json:"login_header_color"`
	CreatedAt             time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt             time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant                *Tenant  `gorm:"foreignKey:TenantID" json:"-"`
}

func (CompanySettingsRecord) TableName() string {
	return "company_settings"
}

// DefaultCompanySettings returns the hard-coded fallbacks used when neither
// the cloud copy nor the local copy sets a field.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		Name:                  "Minha Empresa",
		UsesStock:             true,
		LowStockThreshold:     10,
		PrintLogoOnReceipts:   true,
		AutoPrintOnSale:       false,
		NotifyLowStock:        true,
		NotifyNewSales:        true,
		NotifyPendingPayments: true,
		NotifyOrderStatus:     true,
		UsesCommission:        false,
		CommissionPercentage:  0,
		LoginHeaderColor:      "#ffffff",
	}
}

// MergeCompanySettings resolves the effective settings field by field: the
// cloud value wins when set (non-empty string, non-nil pointer), then the
// local value, then the hard-coded default. Explicit cloud false/zero is
// preserved. Theme is local-only and never read from the cloud copy.
func MergeCompanySettings(cloud *CompanySettingsRecord, local CompanySettings) CompanySettings {
	def := DefaultCompanySettings()
	out := local

	var cloudName, cloudColor string
	if cloud != nil {
		cloudName = cloud.Name
		cloudColor = cloud.LoginHeaderColor
		out.CNPJ = pickString(cloud.CNPJ, local.CNPJ)
		out.Address = pickString(cloud.Address, local.Address)
		out.Phone = pickString(cloud.Phone, local.Phone)
		out.Phone2 = pickString(cloud.Phone2, local.Phone2)
		out.Email = pickString(cloud.Email, local.Email)
		out.LogoURL = pickString(cloud.LogoURL, local.LogoURL)
		out.UsesStock = pickBool(cloud.UsesStock, local.UsesStock)
		out.LowStockThreshold = pickInt(cloud.LowStockThreshold, local.LowStockThreshold)
		out.PrintLogoOnReceipts = pickBool(cloud.PrintLogoOnReceipts, local.PrintLogoOnReceipts)
		out.AutoPrintOnSale = pickBool(cloud.AutoPrintOnSale, local.AutoPrintOnSale)
		out.NotifyLowStock = pickBool(cloud.NotifyLowStock, local.NotifyLowStock)
		out.NotifyNewSales = pickBool(cloud.NotifyNewSales, local.NotifyNewSales)
		out.NotifyPendingPayments = pickBool(cloud.NotifyPendingPayments, local.NotifyPendingPayments)
		out.NotifyOrderStatus = pickBool(cloud.NotifyOrderStatus, local.NotifyOrderStatus)
		out.UsesCommission = pickBool(cloud.UsesCommission, local.UsesCommission)
		out.CommissionPercentage = pickFloat(cloud.CommissionPercentage, local.CommissionPercentage)
	}

	out.Name = pickString(cloudName, pickString(local.Name, def.Name))
	out.LoginHeaderColor = pickString(cloudColor, pickString(local.LoginHeaderColor, def.LoginHeaderColor))
	out.Theme = local.Theme

	return out
}

func pickString(first, second string) string {
	if first != "" {
		return first
	}
	return second
}

func pickBool(cloud *bool, local bool) bool {
	if cloud != nil {
		return *cloud
	}
	return local
}

func pickInt(cloud *int, local int) int {
	if cloud != nil {
		return *cloud
	}
	return local
}

func pickFloat(cloud *float64, local float64) float64 {
	if cloud != nil {
		return *cloud
	}
	return local
}
