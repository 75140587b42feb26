package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/domain"
)

type RoleRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRoleRepository(writerDB, readerDB *gorm.DB) *RoleRepository {
	return &RoleRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.UserRole) error {
	return r.writerDB.WithContext(ctx).Create(role).Error
}

func (r *RoleRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserRole, error) {
	var role domain.UserRole
	found, err := maybeNotFound(r.readerDB.WithContext(ctx).First(&role, "user_id = ?", userID).Error)
	if err != nil || !found {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) UpdateTenantID(ctx context.Context, userID, tenantID string) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.UserRole{}).
		Where("user_id = ?", userID).
		Update("tenant_id", tenantID).Error
}
