package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if err := r.writerDB.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	found, err := maybeNotFound(r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error)
	if err != nil || !found {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) GetByOwnerID(ctx context.Context, ownerID string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	found, err := maybeNotFound(r.readerDB.WithContext(ctx).First(&tenant, "owner_id = ?", ownerID).Error)
	if err != nil || !found {
		return nil, err
	}
	return &tenant, nil
}
