package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/domain"
)

// OrderRepository is read-only. Orders are written by the sales flow that
// lives outside this API, so only the reader connection is needed.
type OrderRepository struct {
	readerDB *gorm.DB
}

func NewOrderRepository(readerDB *gorm.DB) *OrderRepository {
	return &OrderRepository{readerDB: readerDB}
}

func (r *OrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := r.readerDB.WithContext(ctx).Where("tenant_id = ?", filter.TenantID)

	if !filter.StartTime.IsZero() {
		query = query.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		query = query.Where("created_at < ?", filter.EndTime)
	}
	if filter.SellerID != "" {
		query = query.Where("seller_id = ?", filter.SellerID)
	}

	var orders []domain.Order
	if err := query.Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
