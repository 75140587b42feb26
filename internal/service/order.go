package service

import (
	"context"
	"fmt"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/internal/utils"
	pkgutils "github.com/vendaflow/pos-api/pkg/utils"
)

// OrderService exposes the read side of orders. Orders are written by the
// point-of-sale flow; this API only reports on them.
type OrderService struct {
	repo repository.Repository
}

func NewOrderService(repo repository.Repository) *OrderService {
	return &OrderService{repo: repo}
}

// List returns the tenant's orders, optionally narrowed to one calendar
// month and one seller. Sellers are always narrowed to themselves.
func (s *OrderService) List(ctx context.Context, month, sellerFilter string) ([]dto.OrderResponse, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.OrderFilter{TenantID: tenantID}

	if month != "" {
		start, end, err := pkgutils.MonthWindow(month)
		if err != nil {
			return nil, ErrInvalidMonth
		}
		filter.StartTime = start
		filter.EndTime = end
	}

	switch domain.ScopeForRoles(utils.GetRolesFromContext(ctx)) {
	case domain.ScopeOwn:
		userID, err := utils.GetUserIDFromContext(ctx)
		if err != nil {
			return nil, err
		}
		filter.SellerID = userID
	case domain.ScopeAll:
		filter.SellerID = sellerFilter
	}

	orders, err := s.repo.Order().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return dto.FromOrders(orders), nil
}
