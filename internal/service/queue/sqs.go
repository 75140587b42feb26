package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/domain"
)

type MessageType string

const (
	MessageTypeIndex       MessageType = "INDEX"
	MessageTypeBulkIndex   MessageType = "BULK_INDEX"
	MessageTypeArchive     MessageType = "ARCHIVE"
	MessageTypeNotifyReset MessageType = "NOTIFY_RESET"
)

// ResetNotification tells the mailer worker to deliver a recovery email.
// The recovery link is minted for the user's email, but the message goes
// to the tenant owner's inbox.
type ResetNotification struct {
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email,omitempty"`
	AdminEmail string `json:"admin_email,omitempty"`
	ActionLink string `json:"action_link"`
}

type Message struct {
	Type      MessageType `json:"type"`
	TenantID  string      `json:"tenant_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`

	Receivables []domain.Receivable `json:"receivables,omitempty"`

	// Fields for archive operations
	BeforeDate time.Time `json:"before_date,omitempty"`

	// Fields for reset notifications
	Notification *ResetNotification `json:"notification,omitempty"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client          *sqs.Client
	indexQueueURL   string
	archiveQueueURL string
	notifyQueueURL  string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:          client,
		indexQueueURL:   config.IndexQueueURL,
		archiveQueueURL: config.ArchiveQueueURL,
		notifyQueueURL:  config.NotifyQueueURL,
	}
}

func (s *SQSService) SendIndexMessage(ctx context.Context, receivable *domain.Receivable) error {
	msg := Message{
		Type:        MessageTypeIndex,
		TenantID:    receivable.TenantID,
		Receivables: []domain.Receivable{*receivable},
		Timestamp:   time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendBulkIndexMessage(ctx context.Context, receivables []domain.Receivable) error {
	if len(receivables) == 0 {
		return nil
	}

	msg := Message{
		Type:        MessageTypeBulkIndex,
		TenantID:    receivables[0].TenantID,
		Receivables: receivables,
		Timestamp:   time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendArchiveMessage(ctx context.Context, tenantID string, beforeDate time.Time) error {
	msg := Message{
		Type:       MessageTypeArchive,
		TenantID:   tenantID,
		BeforeDate: beforeDate,
		Timestamp:  time.Now(),
	}

	return s.sendMessage(ctx, msg, s.archiveQueueURL)
}

func (s *SQSService) SendResetNotification(ctx context.Context, notification *ResetNotification) error {
	msg := Message{
		Type:         MessageTypeNotifyReset,
		Notification: notification,
		Timestamp:    time.Now(),
	}

	return s.sendMessage(ctx, msg, s.notifyQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
