package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/utils"
)

type CustomerRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCustomerRepository(writerDB, readerDB *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return err
	}
	customer.TenantID = tenantID
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(customer).Error
}

func (r *CustomerRepository) BulkCreate(ctx context.Context, customers []domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return err
	}
	for i := range customers {
		customers[i].TenantID = tenantID
		if customers[i].ID == "" {
			customers[i].ID = uuid.New().String()
		}
	}
	return r.writerDB.WithContext(ctx).CreateInBatches(customers, 100).Error
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	scope, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}
	var customers []domain.Customer
	if err := scope.Order("name ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
