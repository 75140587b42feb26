package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/mocks"
	"github.com/vendaflow/pos-api/internal/service/queue"
	"github.com/vendaflow/pos-api/pkg/logger"
)

type PasswordResetServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockProfile  *mocks.ProfileRepository
	mockTenant   *mocks.TenantRepository
	mockNotifier *mocks.ResetNotifier
	service      *PasswordResetService
}

func (s *PasswordResetServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockProfile = new(mocks.ProfileRepository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockNotifier = new(mocks.ResetNotifier)

	s.mockRepo.On("Profile").Return(s.mockProfile)
	s.mockRepo.On("Tenant").Return(s.mockTenant)

	cfg := &config.Config{
		JWTSecretKey: "test-secret",
		AppBaseURL:   "http://localhost:8080",
	}
	s.service = NewPasswordResetService(s.mockRepo, s.mockNotifier, cfg, logger.NewLogger("test"))
}

func TestPasswordResetService(t *testing.T) {
	suite.Run(t, new(PasswordResetServiceTestSuite))
}

// stubMatch wires the happy-path profile → tenant → owner chain.
func (s *PasswordResetServiceTestSuite) stubMatch(userEmail string) {
	ctx := context.Background()
	tenantID := "tenant1"
	s.mockProfile.On("GetByName", ctx, "Maria Silva").Return(&domain.Profile{
		ID:       "user1",
		Name:     "Maria Silva",
		Email:    userEmail,
		TenantID: &tenantID,
	}, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{
		ID:      "tenant1",
		OwnerID: "owner1",
	}, nil)
	s.mockProfile.On("GetByID", ctx, "owner1").Return(&domain.Profile{
		ID:    "owner1",
		Name:  "Dona Cristal",
		Email: "dona@cristal.com.br",
	}, nil)
}

func (s *PasswordResetServiceTestSuite) TestRequest_NameTooShort() {
	// Act
	_, err := s.service.Request(context.Background(), " a ", "")

	// Assert
	s.ErrorIs(err, ErrInvalidName)
	s.mockProfile.AssertNotCalled(s.T(), "GetByName", mock.Anything, mock.Anything)
}

func (s *PasswordResetServiceTestSuite) TestRequest_UnknownUser_GenericResponse() {
	// Arrange
	ctx := context.Background()
	s.mockProfile.On("GetByName", ctx, "Maria Silva").Return(nil, nil)

	// Act
	resp, err := s.service.Request(ctx, "Maria Silva", "")

	// Assert
	s.NoError(err)
	s.Equal(genericResetMessage, resp.Message)
	s.False(resp.AdminNotified)
	s.mockTenant.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
	s.mockNotifier.AssertNotCalled(s.T(), "SendResetNotification", mock.Anything, mock.Anything)
}

func (s *PasswordResetServiceTestSuite) TestRequest_LookupFailure_ReturnsError() {
	// Arrange
	ctx := context.Background()
	s.mockProfile.On("GetByName", ctx, "Maria Silva").Return(nil, context.DeadlineExceeded)

	// Act
	_, err := s.service.Request(ctx, "Maria Silva", "")

	// Assert
	s.ErrorIs(err, ErrUserLookup)
	s.mockNotifier.AssertNotCalled(s.T(), "SendResetNotification", mock.Anything, mock.Anything)
}

func (s *PasswordResetServiceTestSuite) TestRequest_ProfileWithoutTenant_Errors() {
	// Arrange
	ctx := context.Background()
	s.mockProfile.On("GetByName", ctx, "Maria Silva").Return(&domain.Profile{
		ID:    "user1",
		Name:  "Maria Silva",
		Email: "maria@example.com",
	}, nil)

	// Act
	_, err := s.service.Request(ctx, "Maria Silva", "")

	// Assert
	s.ErrorIs(err, ErrTenantLookup)
	s.mockNotifier.AssertNotCalled(s.T(), "SendResetNotification", mock.Anything, mock.Anything)
}

func (s *PasswordResetServiceTestSuite) TestRequest_TenantLookupFailure_Errors() {
	// Arrange
	ctx := context.Background()
	tenantID := "tenant1"
	s.mockProfile.On("GetByName", ctx, "Maria Silva").Return(&domain.Profile{
		ID:       "user1",
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		TenantID: &tenantID,
	}, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(nil, context.DeadlineExceeded)

	// Act
	_, err := s.service.Request(ctx, "Maria Silva", "")

	// Assert
	s.ErrorIs(err, ErrTenantLookup)
	s.mockNotifier.AssertNotCalled(s.T(), "SendResetNotification", mock.Anything, mock.Anything)
}

func (s *PasswordResetServiceTestSuite) TestRequest_OwnerWithoutEmail_Errors() {
	// Arrange
	ctx := context.Background()
	tenantID := "tenant1"
	s.mockProfile.On("GetByName", ctx, "Maria Silva").Return(&domain.Profile{
		ID:       "user1",
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		TenantID: &tenantID,
	}, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{
		ID:      "tenant1",
		OwnerID: "owner1",
	}, nil)
	s.mockProfile.On("GetByID", ctx, "owner1").Return(&domain.Profile{ID: "owner1"}, nil)

	// Act
	_, err := s.service.Request(ctx, "Maria Silva", "")

	// Assert
	s.ErrorIs(err, ErrAdminLookup)
	s.mockNotifier.AssertNotCalled(s.T(), "SendResetNotification", mock.Anything, mock.Anything)
}

func (s *PasswordResetServiceTestSuite) TestRequest_UserWithoutEmail_GenericResponse() {
	// Arrange
	s.stubMatch("")

	// Act
	resp, err := s.service.Request(context.Background(), "Maria Silva", "")

	// Assert
	s.NoError(err)
	s.Equal(genericResetMessage, resp.Message)
	s.False(resp.AdminNotified)
	s.mockNotifier.AssertNotCalled(s.T(), "SendResetNotification", mock.Anything, mock.Anything)
}

func (s *PasswordResetServiceTestSuite) TestRequest_Success_NotifiesAdmin() {
	// Arrange
	ctx := context.Background()
	s.stubMatch("maria@example.com")
	s.mockNotifier.On("SendResetNotification", ctx, mock.MatchedBy(func(n *queue.ResetNotification) bool {
		return n.UserEmail == "maria@example.com" &&
			n.UserName == "Maria Silva" &&
			n.AdminEmail == "dona@cristal.com.br" &&
			strings.HasPrefix(n.ActionLink, "http://localhost:8080/auth/recovery?token=")
	})).Return(nil)

	// Act
	resp, err := s.service.Request(ctx, "  Maria Silva  ", "")

	// Assert
	s.NoError(err)
	s.Equal(adminResetMessage, resp.Message)
	s.True(resp.AdminNotified)
	s.Equal("dona@cristal.com.br", resp.AdminEmail)
	s.Equal("Maria Silva", resp.UserName)
	s.True(strings.HasPrefix(resp.ActionLink, "http://localhost:8080/auth/recovery?token="))
	s.mockNotifier.AssertExpectations(s.T())
}

func (s *PasswordResetServiceTestSuite) TestRequest_RedirectURLIsEscapedIntoLink() {
	// Arrange
	ctx := context.Background()
	s.stubMatch("maria@example.com")
	s.mockNotifier.On("SendResetNotification", ctx, mock.MatchedBy(func(n *queue.ResetNotification) bool {
		return strings.Contains(n.ActionLink, "&redirect_to=https%3A%2F%2Fapp.example.com%2Freset")
	})).Return(nil)

	// Act
	resp, err := s.service.Request(ctx, "Maria Silva", "https://app.example.com/reset")

	// Assert
	s.NoError(err)
	s.Contains(resp.ActionLink, "&redirect_to=https%3A%2F%2Fapp.example.com%2Freset")
	s.mockNotifier.AssertExpectations(s.T())
}
