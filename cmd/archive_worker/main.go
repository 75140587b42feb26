package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/repository/postgres"
	"github.com/vendaflow/pos-api/internal/service/queue"
	"github.com/vendaflow/pos-api/internal/worker"
	"github.com/vendaflow/pos-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	// Initialize PostgreSQL with database connections
	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	pgRepo := postgres.NewPostgresRepository(dbConnections)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Initialize S3 for archive snapshots
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}

	archiveWorker := worker.NewArchiveWorker(
		sqsService,
		pgRepo,
		appLogger,
		1,             // worker count
		5*time.Second, // poll interval
		s3Client,
		s3Config,
	)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start worker
	go func() {
		appLogger.Info("Starting archive worker...")
		archiveWorker.Start()
	}()

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down archive worker...")

	// Stop worker
	archiveWorker.Stop()
	appLogger.Info("Archive worker stopped")
	appLogger.Sync()
}
