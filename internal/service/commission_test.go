package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/mocks"
	"github.com/vendaflow/pos-api/internal/utils"
)

type CommissionServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockSettings *mocks.SettingsRepository
	mockOrder    *mocks.OrderRepository
	service      *CommissionService
}

func (s *CommissionServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockSettings = new(mocks.SettingsRepository)
	s.mockOrder = new(mocks.OrderRepository)

	s.mockRepo.On("Settings").Return(s.mockSettings)
	s.mockRepo.On("Order").Return(s.mockOrder)

	s.service = NewCommissionService(s.mockRepo)
}

func TestCommissionService(t *testing.T) {
	suite.Run(t, new(CommissionServiceTestSuite))
}

func ctxWithClaims(userID, tenantID string, roles []string) context.Context {
	claims := jwt.MapClaims{
		"sub":       userID,
		"tenant_id": tenantID,
	}
	if roles != nil {
		claims["roles"] = roles
	}
	return context.WithValue(context.Background(), utils.ClaimsKey, claims)
}

func commissionSettings(enabled bool, pct float64) *domain.CompanySettingsRecord {
	return &domain.CompanySettingsRecord{
		TenantID:             "tenant1",
		UsesCommission:       &enabled,
		CommissionPercentage: &pct,
	}
}

func (s *CommissionServiceTestSuite) TestReport_Disabled() {
	// Arrange
	ctx := ctxWithClaims("user1", "tenant1", []string{"admin"})
	disabled := false
	s.mockSettings.On("GetByTenantID", ctx, "tenant1").Return(&domain.CompanySettingsRecord{
		TenantID:       "tenant1",
		UsesCommission: &disabled,
	}, nil)

	// Act
	report, err := s.service.Report(ctx, "2025-07", "")

	// Assert
	s.NoError(err)
	s.False(report.Enabled)
	s.Equal("2025-07", report.Month)
	s.Empty(report.Lines)
	s.mockOrder.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *CommissionServiceTestSuite) TestReport_NoSettingsRecord_Disabled() {
	// Arrange
	ctx := ctxWithClaims("user1", "tenant1", []string{"admin"})
	s.mockSettings.On("GetByTenantID", ctx, "tenant1").Return(nil, nil)

	// Act
	report, err := s.service.Report(ctx, "2025-07", "")

	// Assert
	s.NoError(err)
	s.False(report.Enabled)
}

func (s *CommissionServiceTestSuite) TestReport_AdminSeesWholeTenant() {
	// Arrange
	ctx := ctxWithClaims("user1", "tenant1", []string{"admin"})
	s.mockSettings.On("GetByTenantID", ctx, "tenant1").Return(commissionSettings(true, 10), nil)

	orders := []domain.Order{
		{ID: "o1", SellerID: "seller1", SellerName: "Maria", CustomerName: "João", AmountPaid: 100, CreatedAt: time.Now()},
		{ID: "o2", SellerID: "seller2", SellerName: "Carlos", CustomerName: "Ana", AmountPaid: 300, CreatedAt: time.Now()},
		{ID: "o3", SellerID: "seller1", SellerName: "Maria", CustomerName: "Rui", AmountPaid: 0, CreatedAt: time.Now()},
	}
	s.mockOrder.On("List", ctx, mock.MatchedBy(func(f domain.OrderFilter) bool {
		return f.TenantID == "tenant1" && f.SellerID == "" &&
			f.StartTime.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) &&
			f.EndTime.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	})).Return(orders, nil)

	// Act
	report, err := s.service.Report(ctx, "2025-07", "")

	// Assert
	s.NoError(err)
	s.True(report.Enabled)
	s.Len(report.Lines, 2) // unpaid order earns nothing and is skipped
	s.Equal(400.0, report.Stats.TotalSales)
	s.Equal(40.0, report.Stats.TotalCommission)
	s.Equal(2, report.Stats.OrderCount)
	s.Equal(10.0, report.Stats.CommissionRate)

	s.Require().Len(report.Sellers, 2)
	s.Equal("seller2", report.Sellers[0].SellerID) // sorted by commission, descending
	s.Equal(30.0, report.Sellers[0].TotalCommission)
	s.Equal("seller1", report.Sellers[1].SellerID)
	s.Equal(10.0, report.Sellers[1].TotalCommission)
}

func (s *CommissionServiceTestSuite) TestReport_SellerOnlySeesOwnOrders() {
	// Arrange
	ctx := ctxWithClaims("seller1", "tenant1", []string{"seller"})
	s.mockSettings.On("GetByTenantID", ctx, "tenant1").Return(commissionSettings(true, 5), nil)

	orders := []domain.Order{
		{ID: "o1", SellerID: "seller1", SellerName: "Maria", AmountPaid: 200, CreatedAt: time.Now()},
	}
	s.mockOrder.On("List", ctx, mock.MatchedBy(func(f domain.OrderFilter) bool {
		return f.SellerID == "seller1"
	})).Return(orders, nil)

	// Act
	report, err := s.service.Report(ctx, "2025-07", "seller2")

	// Assert
	s.NoError(err)
	s.Len(report.Lines, 1)
	s.Equal(10.0, report.Stats.TotalCommission)
	s.Nil(report.Sellers) // no per-seller breakdown for restricted callers
}

func (s *CommissionServiceTestSuite) TestReport_AdminCanFilterBySeller() {
	// Arrange
	ctx := ctxWithClaims("user1", "tenant1", []string{"manager"})
	s.mockSettings.On("GetByTenantID", ctx, "tenant1").Return(commissionSettings(true, 10), nil)
	s.mockOrder.On("List", ctx, mock.MatchedBy(func(f domain.OrderFilter) bool {
		return f.SellerID == "seller2"
	})).Return([]domain.Order{}, nil)

	// Act
	report, err := s.service.Report(ctx, "2025-07", "seller2")

	// Assert
	s.NoError(err)
	s.Empty(report.Lines)
	s.mockOrder.AssertExpectations(s.T())
}

func (s *CommissionServiceTestSuite) TestReport_InvalidMonth() {
	// Arrange
	ctx := ctxWithClaims("user1", "tenant1", []string{"admin"})
	s.mockSettings.On("GetByTenantID", ctx, "tenant1").Return(commissionSettings(true, 10), nil)

	// Act
	_, err := s.service.Report(ctx, "julho-2025", "")

	// Assert
	s.ErrorIs(err, ErrInvalidMonth)
}

func (s *CommissionServiceTestSuite) TestReport_NoClaims() {
	// Act
	_, err := s.service.Report(context.Background(), "2025-07", "")

	// Assert
	s.Error(err)
}
