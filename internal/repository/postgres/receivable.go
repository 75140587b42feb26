package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/utils"
)

type ReceivableRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewReceivableRepository(writerDB, readerDB *gorm.DB) *ReceivableRepository {
	return &ReceivableRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ReceivableRepository) Create(ctx context.Context, receivable *domain.Receivable) error {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return err
	}
	receivable.TenantID = tenantID
	if receivable.ID == "" {
		receivable.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(receivable).Error
}

func (r *ReceivableRepository) BulkCreate(ctx context.Context, receivables []domain.Receivable) error {
	if len(receivables) == 0 {
		return nil
	}
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return err
	}
	for i := range receivables {
		receivables[i].TenantID = tenantID
		if receivables[i].ID == "" {
			receivables[i].ID = uuid.New().String()
		}
	}
	return r.writerDB.WithContext(ctx).CreateInBatches(receivables, 100).Error
}

func (r *ReceivableRepository) List(ctx context.Context) ([]domain.Receivable, error) {
	scope, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}
	var receivables []domain.Receivable
	if err := scope.Order("due_date ASC").Find(&receivables).Error; err != nil {
		return nil, err
	}
	return receivables, nil
}

func (r *ReceivableRepository) MarkPaid(ctx context.Context, id string, paymentMethod *string, paidAt time.Time) (*domain.Receivable, error) {
	scope, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return nil, err
	}

	result := scope.Model(&domain.Receivable{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"paid":           true,
			"paid_at":        paidAt,
			"payment_method": paymentMethod,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var receivable domain.Receivable
	readScope, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}
	if err := readScope.First(&receivable, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &receivable, nil
}

func (r *ReceivableRepository) Delete(ctx context.Context, id string) error {
	scope, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return err
	}
	result := scope.Where("id = ?", id).Delete(&domain.Receivable{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPaidBefore is used by the archive worker, which authenticates per
// queue message rather than per request, so the tenant comes as an argument.
func (r *ReceivableRepository) ListPaidBefore(ctx context.Context, tenantID string, before time.Time) ([]domain.Receivable, error) {
	var receivables []domain.Receivable
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND paid = ? AND paid_at < ?", tenantID, true, before).
		Order("paid_at ASC").
		Find(&receivables).Error
	if err != nil {
		return nil, err
	}
	return receivables, nil
}

func (r *ReceivableRepository) DeletePaidBefore(ctx context.Context, tenantID string, before time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("tenant_id = ? AND paid = ? AND paid_at < ?", tenantID, true, before).
		Delete(&domain.Receivable{})
	return result.RowsAffected, result.Error
}
