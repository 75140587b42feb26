package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/domain"
)

type ReceivableHandlerTestSuite struct {
	suite.Suite
	mockService *MockReceivableService
	handler     *ReceivableHandler
}

type MockReceivableService struct {
	mock.Mock
}

func (m *MockReceivableService) Create(ctx context.Context, req dto.CreateReceivableRequest) (*dto.ReceivableResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReceivableResponse), args.Error(1)
}

func (m *MockReceivableService) BulkCreate(ctx context.Context, req dto.BulkCreateReceivablesRequest) ([]dto.ReceivableResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReceivableResponse), args.Error(1)
}

func (m *MockReceivableService) List(ctx context.Context) ([]dto.ReceivableResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReceivableResponse), args.Error(1)
}

func (m *MockReceivableService) MarkPaid(ctx context.Context, id string, paymentMethod *string) (*dto.ReceivableResponse, error) {
	args := m.Called(ctx, id, paymentMethod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReceivableResponse), args.Error(1)
}

func (m *MockReceivableService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReceivableService) Search(ctx context.Context, filter *domain.ReceivableFilter) ([]dto.ReceivableResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReceivableResponse), args.Error(1)
}

func (m *MockReceivableService) ScheduleArchive(ctx context.Context, beforeDate time.Time) error {
	args := m.Called(ctx, beforeDate)
	return args.Error(0)
}

func (s *ReceivableHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockReceivableService)
	s.handler = NewReceivableHandler(s.mockService)
}

func TestReceivableHandler(t *testing.T) {
	suite.Run(t, new(ReceivableHandlerTestSuite))
}

func (s *ReceivableHandlerTestSuite) TestMarkPaid_WithPaymentMethod() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(`{"payment_method":"pix"}`)
	c.Request, _ = http.NewRequest(http.MethodPut, "/receivables/r1/pay", body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	method := "pix"
	resp := &dto.ReceivableResponse{ID: "r1", Paid: true, PaymentMethod: &method}
	s.mockService.On("MarkPaid", mock.Anything, "r1", mock.MatchedBy(func(pm *string) bool {
		return pm != nil && *pm == "pix"
	})).Return(resp, nil)

	// Act
	s.handler.MarkPaid(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.ReceivableResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.Paid)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReceivableHandlerTestSuite) TestMarkPaid_BodyIsOptional() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/receivables/r1/pay", nil)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	resp := &dto.ReceivableResponse{ID: "r1", Paid: true}
	s.mockService.On("MarkPaid", mock.Anything, "r1", (*string)(nil)).Return(resp, nil)

	// Act
	s.handler.MarkPaid(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReceivableHandlerTestSuite) TestMarkPaid_NotFound() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/receivables/missing/pay", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	s.mockService.On("MarkPaid", mock.Anything, "missing", (*string)(nil)).
		Return(nil, gorm.ErrRecordNotFound)

	// Act
	s.handler.MarkPaid(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReceivableHandlerTestSuite) TestDeleteReceivable_NotFound() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/receivables/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	s.mockService.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	// Act
	s.handler.DeleteReceivable(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReceivableHandlerTestSuite) TestScheduleArchive_Accepted() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(`{"before_date":"2025-01-01T00:00:00Z"}`)
	c.Request, _ = http.NewRequest(http.MethodPost, "/receivables/archive", body)
	c.Request.Header.Set("Content-Type", "application/json")

	expected := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mockService.On("ScheduleArchive", mock.Anything, expected).Return(nil)

	// Act
	s.handler.ScheduleArchive(c)

	// Assert
	s.Equal(http.StatusAccepted, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReceivableHandlerTestSuite) TestSearchReceivables_ParsesFilter() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/receivables/search?customer_name=Jo%C3%A3o&paid=false&page=2&page_size=5", nil)

	s.mockService.On("Search", mock.Anything, mock.MatchedBy(func(f *domain.ReceivableFilter) bool {
		return f.CustomerName == "João" && f.Paid != nil && !*f.Paid && f.Page == 2 && f.PageSize == 5
	})).Return([]dto.ReceivableResponse{}, nil)

	// Act
	s.handler.SearchReceivables(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}
