package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vendaflow/pos-api/internal/domain"
)

type SettingsRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSettingsRepository(writerDB, readerDB *gorm.DB) *SettingsRepository {
	return &SettingsRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SettingsRepository) GetByTenantID(ctx context.Context, tenantID string) (*domain.CompanySettingsRecord, error) {
	var record domain.CompanySettingsRecord
	found, err := maybeNotFound(r.readerDB.WithContext(ctx).First(&record, "tenant_id = ?", tenantID).Error)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, record *domain.CompanySettingsRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}},
			UpdateAll: true,
		}).
		Create(record).Error
}
