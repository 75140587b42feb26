package service

import (
	"context"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/internal/utils"
)

// SettingsService manages the cloud copy of company settings and resolves
// it against the client's local copy. The theme never round-trips through
// the server; it stays on the device that chose it.
type SettingsService struct {
	repo repository.Repository
}

func NewSettingsService(repo repository.Repository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the stored cloud copy, nil when the tenant never saved one.
func (s *SettingsService) Get(ctx context.Context) (*domain.CompanySettingsRecord, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Settings().GetByTenantID(ctx, tenantID)
}

func (s *SettingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.CompanySettingsRecord, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record := req.ToSettingsRecord(tenantID)

	// Carry over the row ID so the upsert updates in place.
	existing, err := s.repo.Settings().GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		record.ID = existing.ID
	}

	if err := s.repo.Settings().Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Effective merges the cloud copy with the caller's local settings into
// the resolved view the client should use.
func (s *SettingsService) Effective(ctx context.Context, local domain.CompanySettings) (domain.CompanySettings, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return domain.CompanySettings{}, err
	}

	record, err := s.repo.Settings().GetByTenantID(ctx, tenantID)
	if err != nil {
		return domain.CompanySettings{}, err
	}

	return domain.MergeCompanySettings(record, local), nil
}
