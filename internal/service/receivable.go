package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/internal/service/queue"
	"github.com/vendaflow/pos-api/internal/utils"
	"github.com/vendaflow/pos-api/pkg/logger"
)

//go:generate mockery --name WebSocketBroadcaster --output ../mocks
type WebSocketBroadcaster interface {
	BroadcastReceivable(receivable *dto.ReceivableResponse)
}

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendIndexMessage(ctx context.Context, receivable *domain.Receivable) error
	SendBulkIndexMessage(ctx context.Context, receivables []domain.Receivable) error
	SendArchiveMessage(ctx context.Context, tenantID string, beforeDate time.Time) error
	SendResetNotification(ctx context.Context, notification *queue.ResetNotification) error
}

type ReceivableService struct {
	repo        repository.Repository
	sqsSvc      SQSService
	broadcaster WebSocketBroadcaster
	logger      *logger.Logger
}

func NewReceivableService(repo repository.Repository, sqsSvc SQSService, logger *logger.Logger) *ReceivableService {
	return &ReceivableService{
		repo:   repo,
		sqsSvc: sqsSvc,
		logger: logger,
	}
}

// SetWebSocketBroadcaster sets the WebSocket broadcaster
func (s *ReceivableService) SetWebSocketBroadcaster(broadcaster WebSocketBroadcaster) {
	s.broadcaster = broadcaster
}

func (s *ReceivableService) Create(ctx context.Context, req dto.CreateReceivableRequest) (*dto.ReceivableResponse, error) {
	receivable := req.ToReceivable()

	if err := s.repo.Receivable().Create(ctx, receivable); err != nil {
		return nil, fmt.Errorf("failed to store receivable: %w", err)
	}

	// Indexing is asynchronous and best effort; the row of record is in
	// PostgreSQL either way.
	if err := s.sqsSvc.SendIndexMessage(ctx, receivable); err != nil {
		s.logger.Warnf("failed to send index message to SQS: %v", err)
	}

	resp := dto.FromReceivable(receivable)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastReceivable(resp)
	}

	return resp, nil
}

func (s *ReceivableService) BulkCreate(ctx context.Context, req dto.BulkCreateReceivablesRequest) ([]dto.ReceivableResponse, error) {
	receivables := make([]domain.Receivable, len(req.Receivables))
	for i := range req.Receivables {
		receivables[i] = *req.Receivables[i].ToReceivable()
	}

	if err := s.repo.Receivable().BulkCreate(ctx, receivables); err != nil {
		return nil, fmt.Errorf("failed to bulk store receivables: %w", err)
	}

	if err := s.sqsSvc.SendBulkIndexMessage(ctx, receivables); err != nil {
		s.logger.Warnf("failed to send bulk index message to SQS: %v", err)
	}

	responses := dto.FromReceivables(receivables)
	if s.broadcaster != nil {
		for i := range responses {
			s.broadcaster.BroadcastReceivable(&responses[i])
		}
	}

	return responses, nil
}

func (s *ReceivableService) List(ctx context.Context) ([]dto.ReceivableResponse, error) {
	receivables, err := s.repo.Receivable().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromReceivables(receivables), nil
}

func (s *ReceivableService) MarkPaid(ctx context.Context, id string, paymentMethod *string) (*dto.ReceivableResponse, error) {
	receivable, err := s.repo.Receivable().MarkPaid(ctx, id, paymentMethod, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.sqsSvc.SendIndexMessage(ctx, receivable); err != nil {
		s.logger.Warnf("failed to send index message to SQS: %v", err)
	}

	resp := dto.FromReceivable(receivable)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastReceivable(resp)
	}

	return resp, nil
}

func (s *ReceivableService) Delete(ctx context.Context, id string) error {
	return s.repo.Receivable().Delete(ctx, id)
}

func (s *ReceivableService) Search(ctx context.Context, filter *domain.ReceivableFilter) ([]dto.ReceivableResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	receivables, err := s.repo.Search().Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromReceivables(receivables), nil
}

// ScheduleArchive queues archival of paid receivables older than the given
// date. The archive worker snapshots them to S3 before purging.
func (s *ReceivableService) ScheduleArchive(ctx context.Context, beforeDate time.Time) error {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.sqsSvc.SendArchiveMessage(ctx, tenantID, beforeDate)
}
