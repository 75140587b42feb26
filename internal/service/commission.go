package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/internal/utils"
	pkgutils "github.com/vendaflow/pos-api/pkg/utils"
)

// CommissionService computes monthly commission reports from paid orders.
// The rate is a single tenant-wide percentage from company settings.
type CommissionService struct {
	repo repository.Repository
}

func NewCommissionService(repo repository.Repository) *CommissionService {
	return &CommissionService{repo: repo}
}

// Report builds the commission report for one calendar month. Sellers only
// ever see their own orders; admins and managers see the whole tenant and
// may narrow it to one seller with sellerFilter.
func (s *CommissionService) Report(ctx context.Context, month, sellerFilter string) (*domain.CommissionReport, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.Settings().GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	enabled := record != nil && record.UsesCommission != nil && *record.UsesCommission
	if !enabled {
		return &domain.CommissionReport{
			Enabled: false,
			Month:   month,
			Lines:   []domain.CommissionLine{},
		}, nil
	}

	var pct float64
	if record.CommissionPercentage != nil {
		pct = *record.CommissionPercentage
	}

	start, end, err := pkgutils.MonthWindow(month)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	scope := domain.ScopeForRoles(utils.GetRolesFromContext(ctx))

	filter := domain.OrderFilter{
		TenantID:  tenantID,
		StartTime: start,
		EndTime:   end,
	}
	switch scope {
	case domain.ScopeOwn:
		filter.SellerID = userID
	case domain.ScopeAll:
		filter.SellerID = sellerFilter
	}

	orders, err := s.repo.Order().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	report := aggregateCommissions(orders, pct, scope == domain.ScopeAll)
	report.Enabled = true
	report.Month = month
	return report, nil
}

// aggregateCommissions turns orders into lines, totals and, when the caller
// can see the whole tenant, a per-seller breakdown. Orders without payment
// earn nothing and are skipped entirely.
func aggregateCommissions(orders []domain.Order, pct float64, withSellers bool) *domain.CommissionReport {
	report := &domain.CommissionReport{
		Lines: []domain.CommissionLine{},
		Stats: domain.CommissionStats{CommissionRate: pct},
	}

	sellerTotals := make(map[string]*domain.SellerCommissionSummary)

	for _, order := range orders {
		if order.AmountPaid <= 0 {
			continue
		}

		commission := order.AmountPaid * pct / 100

		report.Lines = append(report.Lines, domain.CommissionLine{
			OrderID:      order.ID,
			CreatedAt:    order.CreatedAt,
			CustomerName: order.CustomerName,
			SellerID:     order.SellerID,
			SellerName:   order.SellerName,
			AmountPaid:   order.AmountPaid,
			Commission:   commission,
		})

		report.Stats.TotalSales += order.AmountPaid
		report.Stats.TotalCommission += commission
		report.Stats.OrderCount++

		if withSellers {
			summary, ok := sellerTotals[order.SellerID]
			if !ok {
				summary = &domain.SellerCommissionSummary{
					SellerID:   order.SellerID,
					SellerName: order.SellerName,
				}
				sellerTotals[order.SellerID] = summary
			}
			summary.TotalSales += order.AmountPaid
			summary.TotalCommission += commission
			summary.OrderCount++
		}
	}

	if withSellers {
		sellers := make([]domain.SellerCommissionSummary, 0, len(sellerTotals))
		for _, summary := range sellerTotals {
			sellers = append(sellers, *summary)
		}
		sort.Slice(sellers, func(i, j int) bool {
			return sellers[i].TotalCommission > sellers[j].TotalCommission
		})
		report.Sellers = sellers
	}

	return report
}
