package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/domain"
)

type ProfileRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewProfileRepository(writerDB, readerDB *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	return r.writerDB.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var profile domain.Profile
	found, err := maybeNotFound(r.readerDB.WithContext(ctx).First(&profile, "id = ?", id).Error)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

// GetByName does a case-insensitive exact match and returns the first hit,
// mirroring the password-reset lookup.
func (r *ProfileRepository) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.readerDB.WithContext(ctx).
		Where("name ILIKE ?", name).
		Order("created_at ASC").
		First(&profile).Error
	found, err := maybeNotFound(err)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) UpdateTenantID(ctx context.Context, id, tenantID string) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("id = ?", id).
		Update("tenant_id", tenantID).Error
}

// UpdateIdentity resyncs email and name from the auth identity. Empty
// values are skipped so a sparse identity never blanks stored data.
func (r *ProfileRepository) UpdateIdentity(ctx context.Context, id, email, name string) error {
	updates := map[string]any{}
	if email != "" {
		updates["email"] = email
	}
	if name != "" {
		updates["name"] = name
	}
	if len(updates) == 0 {
		return nil
	}
	return r.writerDB.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("id = ?", id).
		Updates(updates).Error
}
