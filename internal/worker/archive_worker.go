package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/internal/service/queue"
	"github.com/vendaflow/pos-api/pkg/logger"
)

// ArchiveWorker snapshots paid receivables older than a cutoff to S3 and
// then purges them from PostgreSQL. The snapshot always lands before the
// delete; a crash in between leaves extra rows, never lost ones.
type ArchiveWorker struct {
	sqsService   *queue.SQSService
	repository   repository.PostgresRepository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
	s3Client     *s3.Client
	s3Config     *config.S3Config
}

func NewArchiveWorker(
	sqsService *queue.SQSService,
	repository repository.PostgresRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
	s3Client *s3.Client,
	s3Config *config.S3Config,
) *ArchiveWorker {
	return &ArchiveWorker{
		sqsService:   sqsService,
		repository:   repository,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
		s3Client:     s3Client,
		s3Config:     s3Config,
	}
}

func (w *ArchiveWorker) Start() {
	w.logger.Info("Starting archive workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *ArchiveWorker) Stop() {
	w.logger.Info("Stopping archive workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All archive workers stopped")
}

func (w *ArchiveWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Archive worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Archive worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Archive worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *ArchiveWorker) processMessages(ctx context.Context) error {
	archiveQueueURL := config.DefaultSQSConfig().ArchiveQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, archiveQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type != queue.MessageTypeArchive {
			continue
		}

		if err := w.processArchiveMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process archive message: %v", err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.sqsService.DeleteMessage(ctx, archiveQueueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *ArchiveWorker) processArchiveMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing archive message for tenant %s (before: %s)",
		msg.TenantID, msg.BeforeDate.Format(time.RFC3339))

	receivables, err := w.repository.Receivable().ListPaidBefore(ctx, msg.TenantID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to fetch receivables for archival for tenant %s: %w", msg.TenantID, err)
	}

	if len(receivables) == 0 {
		w.logger.Infof("No paid receivables found for tenant %s before %s", msg.TenantID, msg.BeforeDate.Format(time.RFC3339))
		return nil
	}

	if err := w.archiveToS3(ctx, msg.TenantID, receivables, msg.BeforeDate); err != nil {
		return fmt.Errorf("failed to archive receivables for tenant %s: %w", msg.TenantID, err)
	}

	deleted, err := w.repository.Receivable().DeletePaidBefore(ctx, msg.TenantID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to purge receivables for tenant %s: %w", msg.TenantID, err)
	}

	w.logger.Infof("Archived %d and purged %d paid receivables for tenant %s",
		len(receivables), deleted, msg.TenantID)
	return nil
}

func (w *ArchiveWorker) archiveToS3(ctx context.Context, tenantID string, receivables []domain.Receivable, beforeDate time.Time) error {
	s3Key := fmt.Sprintf("receivables/%s/receivables_%s_before_%s.json",
		tenantID,
		tenantID,
		beforeDate.Format("2006-01-02_15-04-05"))

	archiveData := map[string]interface{}{
		"tenant_id":        tenantID,
		"before_date":      beforeDate,
		"archived_at":      time.Now(),
		"receivable_count": len(receivables),
		"receivables":      receivables,
	}

	jsonData, err := json.MarshalIndent(archiveData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal receivables to JSON: %w", err)
	}

	contentType := "application/json"
	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.BucketName,
		Key:         &s3Key,
		Body:        bytes.NewReader(jsonData),
		ContentType: &contentType,
		Metadata: map[string]string{
			"tenant-id":        tenantID,
			"archived-at":      time.Now().Format(time.RFC3339),
			"receivable-count": fmt.Sprintf("%d", len(receivables)),
			"before-date":      beforeDate.Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload archive to S3: %w", err)
	}

	w.logger.Infof("Uploaded archive to S3: s3://%s/%s", w.s3Config.BucketName, s3Key)
	return nil
}
