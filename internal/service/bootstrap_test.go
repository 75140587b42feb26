package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/mocks"
	"github.com/vendaflow/pos-api/pkg/logger"
)

type BootstrapServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockProfile *mocks.ProfileRepository
	mockTenant  *mocks.TenantRepository
	mockRole    *mocks.RoleRepository
	service     *BootstrapService
}

func (s *BootstrapServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockProfile = new(mocks.ProfileRepository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockRole = new(mocks.RoleRepository)

	s.mockRepo.On("Profile").Return(s.mockProfile)
	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Role").Return(s.mockRole)

	s.service = NewBootstrapService(s.mockRepo, logger.NewLogger("test"))
}

func TestBootstrapService(t *testing.T) {
	suite.Run(t, new(BootstrapServiceTestSuite))
}

func (s *BootstrapServiceTestSuite) TestEnsureUser_NewUser_CreatesEverything() {
	// Arrange
	ctx := context.Background()
	identity := Identity{
		ID:          "user1",
		Email:       "maria@example.com",
		Name:        "Maria Silva",
		CompanyName: "Vidraçaria Cristal",
	}

	createdTenant := &domain.Tenant{
		ID:      "tenant1",
		Name:    "Vidraçaria Cristal",
		OwnerID: "user1",
	}

	s.mockProfile.On("GetByID", ctx, "user1").Return(nil, nil)
	s.mockProfile.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)
	s.mockTenant.On("GetByOwnerID", ctx, "user1").Return(nil, nil)
	s.mockTenant.On("Create", ctx, mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.Name == "Vidraçaria Cristal" && t.OwnerID == "user1"
	})).Return(createdTenant, nil)
	s.mockProfile.On("UpdateTenantID", ctx, "user1", "tenant1").Return(nil)
	s.mockRole.On("GetByUserID", ctx, "user1").Return(nil, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(createdTenant, nil)
	s.mockRole.On("Create", ctx, mock.MatchedBy(func(r *domain.UserRole) bool {
		return r.UserID == "user1" && r.Role == domain.RoleAdmin && r.TenantID != nil && *r.TenantID == "tenant1"
	})).Return(nil)
	s.mockProfile.On("UpdateIdentity", ctx, "user1", "maria@example.com", "Maria Silva").Return(nil)

	// Act
	tenantID, err := s.service.EnsureUser(ctx, identity)

	// Assert
	s.NoError(err)
	s.Equal("tenant1", tenantID)
	s.mockProfile.AssertExpectations(s.T())
	s.mockTenant.AssertExpectations(s.T())
	s.mockRole.AssertExpectations(s.T())
}

func (s *BootstrapServiceTestSuite) TestEnsureUser_NoCompanyName_DefaultsTenantName() {
	// Arrange
	ctx := context.Background()
	identity := Identity{
		ID:    "12345678abcd",
		Email: "maria@example.com",
		Name:  "Maria Silva",
	}

	createdTenant := &domain.Tenant{
		ID:      "tenant1",
		Name:    "Minha Empresa",
		OwnerID: "12345678abcd",
	}

	s.mockProfile.On("GetByID", ctx, "12345678abcd").Return(nil, nil)
	s.mockProfile.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)
	s.mockTenant.On("GetByOwnerID", ctx, "12345678abcd").Return(nil, nil)
	s.mockTenant.On("Create", ctx, mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.Name == "Minha Empresa" && t.Slug == "minha-empresa-12345678"
	})).Return(createdTenant, nil)
	s.mockProfile.On("UpdateTenantID", ctx, "12345678abcd", "tenant1").Return(nil)
	s.mockRole.On("GetByUserID", ctx, "12345678abcd").Return(nil, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(createdTenant, nil)
	s.mockRole.On("Create", ctx, mock.AnythingOfType("*domain.UserRole")).Return(nil)
	s.mockProfile.On("UpdateIdentity", ctx, "12345678abcd", "maria@example.com", "Maria Silva").Return(nil)

	// Act
	tenantID, err := s.service.EnsureUser(ctx, identity)

	// Assert
	s.NoError(err)
	s.Equal("tenant1", tenantID)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *BootstrapServiceTestSuite) TestEnsureUser_ExistingUser_IsIdempotent() {
	// Arrange
	ctx := context.Background()
	tenantID := "tenant1"
	profile := &domain.Profile{
		ID:       "user1",
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		TenantID: &tenantID,
	}
	role := &domain.UserRole{
		UserID:   "user1",
		Role:     domain.RoleAdmin,
		TenantID: &tenantID,
	}

	s.mockProfile.On("GetByID", ctx, "user1").Return(profile, nil)
	s.mockRole.On("GetByUserID", ctx, "user1").Return(role, nil)
	s.mockProfile.On("UpdateIdentity", ctx, "user1", "maria@example.com", "Maria Silva").Return(nil)

	// Act
	result, err := s.service.EnsureUser(ctx, Identity{
		ID:    "user1",
		Email: "maria@example.com",
		Name:  "Maria Silva",
	})

	// Assert
	s.NoError(err)
	s.Equal("tenant1", result)
	s.mockProfile.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.mockTenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.mockRole.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *BootstrapServiceTestSuite) TestEnsureUser_AdoptsOwnedTenant() {
	// Arrange
	ctx := context.Background()
	profile := &domain.Profile{ID: "user1", Name: "Maria Silva"}
	owned := &domain.Tenant{ID: "tenant-old", Name: "Old Shop", OwnerID: "user1"}
	tenantID := "tenant-old"
	role := &domain.UserRole{UserID: "user1", Role: domain.RoleAdmin, TenantID: &tenantID}

	s.mockProfile.On("GetByID", ctx, "user1").Return(profile, nil)
	s.mockTenant.On("GetByOwnerID", ctx, "user1").Return(owned, nil)
	s.mockProfile.On("UpdateTenantID", ctx, "user1", "tenant-old").Return(nil)
	s.mockRole.On("GetByUserID", ctx, "user1").Return(role, nil)
	s.mockProfile.On("UpdateIdentity", ctx, "user1", "", "Maria Silva").Return(nil)

	// Act
	result, err := s.service.EnsureUser(ctx, Identity{ID: "user1", Name: "Maria Silva"})

	// Assert
	s.NoError(err)
	s.Equal("tenant-old", result)
	s.mockTenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *BootstrapServiceTestSuite) TestEnsureUser_InvitedUser_GetsSellerRole() {
	// Arrange
	ctx := context.Background()
	tenantID := "tenant1"
	profile := &domain.Profile{ID: "user2", Name: "João", TenantID: &tenantID}
	tenant := &domain.Tenant{ID: "tenant1", Name: "Cristal", OwnerID: "user1"}

	s.mockProfile.On("GetByID", ctx, "user2").Return(profile, nil)
	s.mockRole.On("GetByUserID", ctx, "user2").Return(nil, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(tenant, nil)
	s.mockRole.On("Create", ctx, mock.MatchedBy(func(r *domain.UserRole) bool {
		return r.UserID == "user2" && r.Role == domain.RoleSeller
	})).Return(nil)
	s.mockProfile.On("UpdateIdentity", ctx, "user2", "", "João").Return(nil)

	// Act
	result, err := s.service.EnsureUser(ctx, Identity{ID: "user2", Name: "João"})

	// Assert
	s.NoError(err)
	s.Equal("tenant1", result)
	s.mockRole.AssertExpectations(s.T())
}

func (s *BootstrapServiceTestSuite) TestEnsureUser_Unauthenticated() {
	// Act
	_, err := s.service.EnsureUser(context.Background(), Identity{})

	// Assert
	s.ErrorIs(err, ErrUnauthenticated)
}

func (s *BootstrapServiceTestSuite) TestEnsureUser_IdentityResyncFailure_DoesNotBlock() {
	// Arrange
	ctx := context.Background()
	tenantID := "tenant1"
	profile := &domain.Profile{ID: "user1", Name: "Maria", TenantID: &tenantID}
	role := &domain.UserRole{UserID: "user1", Role: domain.RoleAdmin, TenantID: &tenantID}

	s.mockProfile.On("GetByID", ctx, "user1").Return(profile, nil)
	s.mockRole.On("GetByUserID", ctx, "user1").Return(role, nil)
	s.mockProfile.On("UpdateIdentity", ctx, "user1", "", "Maria").Return(context.DeadlineExceeded)

	// Act
	result, err := s.service.EnsureUser(ctx, Identity{ID: "user1", Name: "Maria"})

	// Assert
	s.NoError(err)
	s.Equal("tenant1", result)
}

func TestTenantSlug(t *testing.T) {
	tests := []struct {
		name        string
		companyName string
		userID      string
		expected    string
	}{
		{"simple", "Cristal", "12345678abcd", "cristal-12345678"},
		{"spaces become hyphens", "Vidraçaria Cristal", "12345678abcd", "vidraaria-cristal-12345678"},
		{"short user id kept whole", "Shop", "abc", "shop-abc"},
		{"symbols stripped", "Água & Luz!", "12345678abcd", "gua--luz-12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tenantSlug(tt.companyName, tt.userID); got != tt.expected {
				t.Errorf("tenantSlug(%q, %q) = %q, want %q", tt.companyName, tt.userID, got, tt.expected)
			}
		})
	}
}
