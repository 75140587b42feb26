package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/utils"
)

type ProductRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewProductRepository(writerDB, readerDB *gorm.DB) *ProductRepository {
	return &ProductRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return err
	}
	product.TenantID = tenantID
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) BulkCreate(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		products[i].TenantID = tenantID
		if products[i].ID == "" {
			products[i].ID = uuid.New().String()
		}
	}
	return r.writerDB.WithContext(ctx).CreateInBatches(products, 100).Error
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	scope, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := scope.Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
