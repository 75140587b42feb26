package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/service"
)

type CommissionHandlerTestSuite struct {
	suite.Suite
	mockService *MockCommissionService
	handler     *CommissionHandler
}

type MockCommissionService struct {
	mock.Mock
}

func (m *MockCommissionService) Report(ctx context.Context, month, sellerFilter string) (*domain.CommissionReport, error) {
	args := m.Called(ctx, month, sellerFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

func (s *CommissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockCommissionService)
	s.handler = NewCommissionHandler(s.mockService)
}

func TestCommissionHandler(t *testing.T) {
	suite.Run(t, new(CommissionHandlerTestSuite))
}

func commissionRequest(w *httptest.ResponseRecorder, query string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/commissions"+query, nil)
	return c
}

func (s *CommissionHandlerTestSuite) TestGetReport_Success() {
	// Arrange
	w := httptest.NewRecorder()
	c := commissionRequest(w, "?month=2025-07")

	report := &domain.CommissionReport{
		Enabled: true,
		Month:   "2025-07",
		Stats: domain.CommissionStats{
			TotalSales:      400,
			TotalCommission: 40,
			OrderCount:      2,
			CommissionRate:  10,
		},
		Lines: []domain.CommissionLine{
			{OrderID: "o1", SellerID: "seller1", AmountPaid: 100, Commission: 10, CreatedAt: time.Now()},
			{OrderID: "o2", SellerID: "seller2", AmountPaid: 300, Commission: 30, CreatedAt: time.Now()},
		},
	}
	s.mockService.On("Report", mock.Anything, "2025-07", "").Return(report, nil)

	// Act
	s.handler.GetReport(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.CommissionReportResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.Enabled)
	s.Equal("2025-07", response.Month)
	s.Len(response.Lines, 2)
	s.Equal(40.0, response.Stats.TotalCommission)
	s.mockService.AssertExpectations(s.T())
}

func (s *CommissionHandlerTestSuite) TestGetReport_MonthRequired() {
	// Arrange
	w := httptest.NewRecorder()
	c := commissionRequest(w, "")

	// Act
	s.handler.GetReport(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Report", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CommissionHandlerTestSuite) TestGetReport_InvalidMonth() {
	// Arrange
	w := httptest.NewRecorder()
	c := commissionRequest(w, "?month=julho")

	s.mockService.On("Report", mock.Anything, "julho", "").Return(nil, service.ErrInvalidMonth)

	// Act
	s.handler.GetReport(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CommissionHandlerTestSuite) TestGetReport_PassesSellerFilter() {
	// Arrange
	w := httptest.NewRecorder()
	c := commissionRequest(w, "?month=2025-07&seller_id=seller2")

	report := &domain.CommissionReport{Enabled: true, Month: "2025-07", Lines: []domain.CommissionLine{}}
	s.mockService.On("Report", mock.Anything, "2025-07", "seller2").Return(report, nil)

	// Act
	s.handler.GetReport(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}
