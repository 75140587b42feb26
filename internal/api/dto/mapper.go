package dto

import (
	"github.com/vendaflow/pos-api/internal/domain"
)

// ToReceivable converts a CreateReceivableRequest DTO to a Receivable domain model
func (r *CreateReceivableRequest) ToReceivable() *domain.Receivable {
	installmentNumber := r.InstallmentNumber
	if installmentNumber == 0 {
		installmentNumber = 1
	}
	totalInstallments := r.TotalInstallments
	if totalInstallments == 0 {
		totalInstallments = 1
	}

	return &domain.Receivable{
		OrderID:           r.OrderID,
		CustomerID:        r.CustomerID,
		CustomerName:      r.CustomerName,
		Description:       r.Description,
		TotalAmount:       r.TotalAmount,
		InstallmentNumber: installmentNumber,
		TotalInstallments: totalInstallments,
		Amount:            r.Amount,
		DueDate:           r.DueDate,
		Notes:             r.Notes,
	}
}

// FromReceivable converts a Receivable domain model to a ReceivableResponse DTO
func FromReceivable(receivable *domain.Receivable) *ReceivableResponse {
	return &ReceivableResponse{
		ID:                receivable.ID,
		TenantID:          receivable.TenantID,
		OrderID:           receivable.OrderID,
		CustomerID:        receivable.CustomerID,
		CustomerName:      receivable.CustomerName,
		Description:       receivable.Description,
		TotalAmount:       receivable.TotalAmount,
		InstallmentNumber: receivable.InstallmentNumber,
		TotalInstallments: receivable.TotalInstallments,
		Amount:            receivable.Amount,
		DueDate:           receivable.DueDate,
		Paid:              receivable.Paid,
		PaidAt:            receivable.PaidAt,
		PaymentMethod:     receivable.PaymentMethod,
		Notes:             receivable.Notes,
		CreatedAt:         receivable.CreatedAt,
	}
}

func FromReceivables(receivables []domain.Receivable) []ReceivableResponse {
	responses := make([]ReceivableResponse, len(receivables))
	for i, receivable := range receivables {
		responses[i] = *FromReceivable(&receivable)
	}
	return responses
}

func FromOrder(order *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:           order.ID,
		SellerID:     order.SellerID,
		SellerName:   order.SellerName,
		CustomerName: order.CustomerName,
		AmountPaid:   order.AmountPaid,
		CreatedAt:    order.CreatedAt,
	}
}

func FromOrders(orders []domain.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = *FromOrder(&order)
	}
	return responses
}

// FromCommissionReport converts the domain report into its response shape.
func FromCommissionReport(report *domain.CommissionReport) *CommissionReportResponse {
	resp := &CommissionReportResponse{
		Enabled: report.Enabled,
		Month:   report.Month,
		Stats: CommissionStatsResponse{
			TotalSales:      report.Stats.TotalSales,
			TotalCommission: report.Stats.TotalCommission,
			OrderCount:      report.Stats.OrderCount,
			CommissionRate:  report.Stats.CommissionRate,
		},
	}

	resp.Lines = make([]CommissionLineResponse, len(report.Lines))
	for i, line := range report.Lines {
		resp.Lines[i] = CommissionLineResponse{
			OrderID:      line.OrderID,
			CreatedAt:    line.CreatedAt,
			CustomerName: line.CustomerName,
			SellerID:     line.SellerID,
			SellerName:   line.SellerName,
			AmountPaid:   line.AmountPaid,
			Commission:   line.Commission,
		}
	}

	if report.Sellers != nil {
		resp.Sellers = make([]SellerCommissionResponse, len(report.Sellers))
		for i, seller := range report.Sellers {
			resp.Sellers[i] = SellerCommissionResponse{
				SellerID:        seller.SellerID,
				SellerName:      seller.SellerName,
				TotalSales:      seller.TotalSales,
				TotalCommission: seller.TotalCommission,
				OrderCount:      seller.OrderCount,
			}
		}
	}

	return resp
}

// ToCompanySettings converts a client settings payload to the domain type.
func (p *SettingsPayload) ToCompanySettings() domain.CompanySettings {
	return domain.CompanySettings{
		Name:                  p.Name,
		CNPJ:                  p.CNPJ,
		Address:               p.Address,
		Phone:                 p.Phone,
		Phone2:                p.Phone2,
		Email:                 p.Email,
		LogoURL:               p.LogoURL,
		UsesStock:             p.UsesStock,
		LowStockThreshold:     p.LowStockThreshold,
		PrintLogoOnReceipts:   p.PrintLogoOnReceipts,
		AutoPrintOnSale:       p.AutoPrintOnSale,
		NotifyLowStock:        p.NotifyLowStock,
		NotifyNewSales:        p.NotifyNewSales,
		NotifyPendingPayments: p.NotifyPendingPayments,
		NotifyOrderStatus:     p.NotifyOrderStatus,
		UsesCommission:        p.UsesCommission,
		CommissionPercentage:  p.CommissionPercentage,
		LoginHeaderColor:      p.LoginHeaderColor,
		Theme:                 p.Theme,
	}
}

// FromCompanySettings converts resolved settings back to the payload shape.
func FromCompanySettings(settings domain.CompanySettings) SettingsPayload {
	return SettingsPayload{
		Name:                  settings.Name,
		CNPJ:                  settings.CNPJ,
		Address:               settings.Address,
		Phone:                 settings.Phone,
		Phone2:                settings.Phone2,
		Email:                 settings.Email,
		LogoURL:               settings.LogoURL,
		UsesStock:             settings.UsesStock,
		LowStockThreshold:     settings.LowStockThreshold,
		PrintLogoOnReceipts:   settings.PrintLogoOnReceipts,
		AutoPrintOnSale:       settings.AutoPrintOnSale,
		NotifyLowStock:        settings.NotifyLowStock,
		NotifyNewSales:        settings.NotifyNewSales,
		NotifyPendingPayments: settings.NotifyPendingPayments,
		NotifyOrderStatus:     settings.NotifyOrderStatus,
		UsesCommission:        settings.UsesCommission,
		CommissionPercentage:  settings.CommissionPercentage,
		LoginHeaderColor:      settings.LoginHeaderColor,
		Theme:                 settings.Theme,
	}
}

// ToSettingsRecord converts an update request to the stored cloud copy.
func (r *UpdateSettingsRequest) ToSettingsRecord(tenantID string) *domain.CompanySettingsRecord {
	return &domain.CompanySettingsRecord{
		TenantID:              tenantID,
		Name:                  r.Name,
		CNPJ:                  r.CNPJ,
		Address:               r.Address,
		Phone:                 r.Phone,
		Phone2:                r.Phone2,
		Email:                 r.Email,
		LogoURL:               r.LogoURL,
		UsesStock:             r.UsesStock,
		LowStockThreshold:     r.LowStockThreshold,
		PrintLogoOnReceipts:   r.PrintLogoOnReceipts,
		AutoPrintOnSale:       r.AutoPrintOnSale,
		NotifyLowStock:        r.NotifyLowStock,
		NotifyNewSales:        r.NotifyNewSales,
		NotifyPendingPayments: r.NotifyPendingPayments,
		NotifyOrderStatus:     r.NotifyOrderStatus,
		UsesCommission:        r.UsesCommission,
		CommissionPercentage:  r.CommissionPercentage,
		LoginHeaderColor:      r.LoginHeaderColor,
	}
}

func (r *CreateCustomerRequest) ToCustomer() *domain.Customer {
	return &domain.Customer{
		Name:  r.Name,
		Phone: r.Phone,
		Doc:   r.Doc,
		Email: r.Email,
		Notes: r.Notes,
	}
}

func FromCustomer(customer *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Doc:       customer.Doc,
		Email:     customer.Email,
		Notes:     customer.Notes,
		CreatedAt: customer.CreatedAt,
	}
}

func FromCustomers(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = *FromCustomer(&customer)
	}
	return responses
}

func (r *CreateProductRequest) ToProduct() *domain.Product {
	productType := domain.ProductType(r.Type)
	if productType == "" {
		productType = domain.ProductTypeProduct
	}
	pricingMode := domain.PricingMode(r.PricingMode)
	if pricingMode == "" {
		pricingMode = domain.PricingModeQuantity
	}

	return &domain.Product{
		Name:        r.Name,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Price:       r.Price,
		Stock:       r.Stock,
		Type:        productType,
		PricingMode: pricingMode,
		Description: r.Description,
	}
}

func FromProduct(product *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		Price:       product.Price,
		Stock:       product.Stock,
		Type:        string(product.Type),
		PricingMode: string(product.PricingMode),
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
	}
}

func FromProducts(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *FromProduct(&product)
	}
	return responses
}
