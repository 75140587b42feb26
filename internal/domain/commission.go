package domain

import (
	"time"
)

// CommissionLine is one qualifying order together with the commission its
// seller earns on it.
type CommissionLine struct {
	OrderID      string    `json:"order_id"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName string    `json:"customer_name"`
	SellerID     string    `json:"seller_id"`
	SellerName   string    `json:"seller_name"`
	AmountPaid   float64   `json:"amount_paid"`
	Commission   float64   `json:"commission"`
}

// CommissionStats aggregates all qualifying orders in the report window.
type CommissionStats struct {
	TotalSales      float64 `json:"total_sales"`
	TotalCommission float64 `json:"total_commission"`
	OrderCount      int     `json:"order_count"`
	CommissionRate  float64 `json:"commission_rate"`
}

// SellerCommissionSummary is the per-seller rollup shown to privileged
// callers, sorted descending by commission.
type SellerCommissionSummary struct {
	SellerID        string  `json:"seller_id"`
	SellerName      string  `json:"seller_name"`
	OrderCount      int     `json:"order_count"`
	TotalSales      float64 `json:"total_sales"`
	TotalCommission float64 `json:"total_commission"`
}

// CommissionReport is the full commission view for one calendar month.
// Enabled=false means the tenant has commissions switched off and no
// aggregation was performed. Sellers is nil for ScopeOwn callers.
type CommissionReport struct {
	Enabled bool                      `json:"enabled"`
	Month   string                    `json:"month"`
	Stats   CommissionStats           `json:"stats"`
	Lines   []CommissionLine          `json:"lines"`
	Sellers []SellerCommissionSummary `json:"sellers,omitempty"`
}
