package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/internal/service/queue"
	"github.com/vendaflow/pos-api/pkg/logger"
)

// IndexWorker drains the index queue and writes receivables into
// OpenSearch. Indexing lag only delays search results; PostgreSQL stays
// the source of truth.
type IndexWorker struct {
	sqsService   *queue.SQSService
	searchRepo   repository.SearchRepository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewIndexWorker(
	sqsService *queue.SQSService,
	searchRepo repository.SearchRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *IndexWorker {
	return &IndexWorker{
		sqsService:   sqsService,
		searchRepo:   searchRepo,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (w *IndexWorker) Start() {
	w.logger.Info("Starting index workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *IndexWorker) Stop() {
	w.logger.Info("Stopping index workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All index workers stopped")
}

func (w *IndexWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Index worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Index worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Index worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *IndexWorker) processMessages(ctx context.Context) error {
	indexQueueURL := config.DefaultSQSConfig().IndexQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, indexQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process message: %v", err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.sqsService.DeleteMessage(ctx, indexQueueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing message of type %s for tenant %s", msg.Type, msg.TenantID)

	switch msg.Type {
	case queue.MessageTypeIndex:
		if len(msg.Receivables) != 1 {
			return fmt.Errorf("invalid number of receivables for INDEX message: %d", len(msg.Receivables))
		}
		return w.searchRepo.Index(ctx, &msg.Receivables[0])

	case queue.MessageTypeBulkIndex:
		if len(msg.Receivables) == 0 {
			return fmt.Errorf("empty receivables array for BULK_INDEX message")
		}
		return w.searchRepo.BulkIndex(ctx, msg.Receivables)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
