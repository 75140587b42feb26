package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/utils"
)

// getTenantScope returns a scoped database instance with tenant isolation
func getTenantScope(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where("tenant_id = ?", tenantID), nil
}

// maybeNotFound maps gorm's not-found error to (found=false, nil) so that
// "maybe single" lookups can return a nil row instead of an error.
func maybeNotFound(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
