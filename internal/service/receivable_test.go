package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/mocks"
	"github.com/vendaflow/pos-api/internal/utils"
	"github.com/vendaflow/pos-api/pkg/logger"
)

type ReceivableServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockReceivable  *mocks.ReceivableRepository
	mockSearch      *mocks.SearchRepository
	mockSQS         *mocks.SQSService
	mockBroadcaster *mocks.WebSocketBroadcaster
	service         *ReceivableService
}

func (s *ReceivableServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockReceivable = new(mocks.ReceivableRepository)
	s.mockSearch = new(mocks.SearchRepository)
	s.mockSQS = new(mocks.SQSService)
	s.mockBroadcaster = new(mocks.WebSocketBroadcaster)

	s.mockRepo.On("Receivable").Return(s.mockReceivable)
	s.mockRepo.On("Search").Return(s.mockSearch)

	s.service = NewReceivableService(s.mockRepo, s.mockSQS, logger.NewLogger("test"))
	s.service.SetWebSocketBroadcaster(s.mockBroadcaster)
}

func TestReceivableService(t *testing.T) {
	suite.Run(t, new(ReceivableServiceTestSuite))
}

func (s *ReceivableServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateReceivableRequest{
		OrderID:      "order1",
		CustomerName: "João Pereira",
		TotalAmount:  300,
		Amount:       100,
		DueDate:      time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
	}

	s.mockReceivable.On("Create", ctx, mock.AnythingOfType("*domain.Receivable")).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.Receivable")).Return(nil)
	s.mockBroadcaster.On("BroadcastReceivable", mock.AnythingOfType("*dto.ReceivableResponse")).Return()

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("João Pereira", resp.CustomerName)
	s.Equal(1, resp.InstallmentNumber) // defaults when omitted
	s.Equal(1, resp.TotalInstallments)
	s.mockReceivable.AssertExpectations(s.T())
	s.mockSQS.AssertExpectations(s.T())
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *ReceivableServiceTestSuite) TestCreate_IndexFailureDoesNotFail() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateReceivableRequest{
		OrderID:      "order1",
		CustomerName: "João Pereira",
		TotalAmount:  100,
		Amount:       100,
		DueDate:      time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
	}

	s.mockReceivable.On("Create", ctx, mock.AnythingOfType("*domain.Receivable")).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.Receivable")).Return(context.DeadlineExceeded)
	s.mockBroadcaster.On("BroadcastReceivable", mock.AnythingOfType("*dto.ReceivableResponse")).Return()

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.NotNil(resp)
}

func (s *ReceivableServiceTestSuite) TestBulkCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.BulkCreateReceivablesRequest{
		Receivables: []dto.CreateReceivableRequest{
			{OrderID: "order1", CustomerName: "João", TotalAmount: 200, Amount: 100, InstallmentNumber: 1, TotalInstallments: 2, DueDate: time.Now()},
			{OrderID: "order1", CustomerName: "João", TotalAmount: 200, Amount: 100, InstallmentNumber: 2, TotalInstallments: 2, DueDate: time.Now().AddDate(0, 1, 0)},
		},
	}

	s.mockReceivable.On("BulkCreate", ctx, mock.AnythingOfType("[]domain.Receivable")).Return(nil)
	s.mockSQS.On("SendBulkIndexMessage", ctx, mock.AnythingOfType("[]domain.Receivable")).Return(nil)
	s.mockBroadcaster.On("BroadcastReceivable", mock.AnythingOfType("*dto.ReceivableResponse")).Return().Times(2)

	// Act
	resps, err := s.service.BulkCreate(ctx, req)

	// Assert
	s.NoError(err)
	s.Len(resps, 2)
	s.mockReceivable.AssertExpectations(s.T())
	s.mockSQS.AssertExpectations(s.T())
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *ReceivableServiceTestSuite) TestMarkPaid_Success() {
	// Arrange
	ctx := context.Background()
	method := "pix"
	now := time.Now()
	paid := &domain.Receivable{
		ID:            "r1",
		TenantID:      "tenant1",
		CustomerName:  "João",
		Amount:        100,
		Paid:          true,
		PaidAt:        &now,
		PaymentMethod: &method,
	}

	s.mockReceivable.On("MarkPaid", ctx, "r1", &method, mock.AnythingOfType("time.Time")).Return(paid, nil)
	s.mockSQS.On("SendIndexMessage", ctx, paid).Return(nil)
	s.mockBroadcaster.On("BroadcastReceivable", mock.AnythingOfType("*dto.ReceivableResponse")).Return()

	// Act
	resp, err := s.service.MarkPaid(ctx, "r1", &method)

	// Assert
	s.NoError(err)
	s.True(resp.Paid)
	s.Equal("pix", *resp.PaymentMethod)
	s.mockReceivable.AssertExpectations(s.T())
}

func (s *ReceivableServiceTestSuite) TestSearch_DefaultsPagination() {
	// Arrange
	ctx := context.Background()
	filter := &domain.ReceivableFilter{CustomerName: "João"}

	s.mockSearch.On("Search", ctx, mock.MatchedBy(func(f *domain.ReceivableFilter) bool {
		return f.Page == 1 && f.PageSize == 10
	})).Return([]domain.Receivable{}, nil)

	// Act
	_, err := s.service.Search(ctx, filter)

	// Assert
	s.NoError(err)
	s.mockSearch.AssertExpectations(s.T())
}

func (s *ReceivableServiceTestSuite) TestScheduleArchive_Success() {
	// Arrange
	claims := jwt.MapClaims{"sub": "user1", "tenant_id": "tenant1"}
	ctx := context.WithValue(context.Background(), utils.ClaimsKey, claims)
	before := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.mockSQS.On("SendArchiveMessage", ctx, "tenant1", before).Return(nil)

	// Act
	err := s.service.ScheduleArchive(ctx, before)

	// Assert
	s.NoError(err)
	s.mockSQS.AssertExpectations(s.T())
}

func (s *ReceivableServiceTestSuite) TestScheduleArchive_NoTenant() {
	// Act
	err := s.service.ScheduleArchive(context.Background(), time.Now())

	// Assert
	s.Error(err)
	s.mockSQS.AssertNotCalled(s.T(), "SendArchiveMessage", mock.Anything, mock.Anything, mock.Anything)
}
