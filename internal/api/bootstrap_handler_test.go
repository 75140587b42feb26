package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/service"
	"github.com/vendaflow/pos-api/internal/utils"
)

type BootstrapHandlerTestSuite struct {
	suite.Suite
	mockService *MockBootstrapService
	handler     *BootstrapHandler
}

type MockBootstrapService struct {
	mock.Mock
}

func (m *MockBootstrapService) EnsureUser(ctx context.Context, identity service.Identity) (string, error) {
	args := m.Called(ctx, identity)
	return args.String(0), args.Error(1)
}

func (s *BootstrapHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockBootstrapService)
	s.handler = NewBootstrapHandler(s.mockService)
}

func TestBootstrapHandler(t *testing.T) {
	suite.Run(t, new(BootstrapHandlerTestSuite))
}

// authedContext builds a gin context whose request carries JWT claims the
// same way the auth middleware stores them.
func authedContext(w *httptest.ResponseRecorder, claims jwt.MapClaims) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/ensure", nil)
	if claims != nil {
		ctx := context.WithValue(req.Context(), utils.ClaimsKey, claims)
		req = req.WithContext(ctx)
	}
	c.Request = req
	return c
}

func (s *BootstrapHandlerTestSuite) TestEnsureUser_Success() {
	// Arrange
	w := httptest.NewRecorder()
	c := authedContext(w, jwt.MapClaims{
		"sub":          "user1",
		"email":        "maria@example.com",
		"name":         "Maria Silva",
		"company_name": "Vidraçaria Cristal",
	})

	s.mockService.On("EnsureUser", mock.Anything, service.Identity{
		ID:          "user1",
		Email:       "maria@example.com",
		Name:        "Maria Silva",
		CompanyName: "Vidraçaria Cristal",
	}).Return("tenant1", nil)

	// Act
	s.handler.EnsureUser(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.EnsureUserResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.OK)
	s.Equal("tenant1", response.TenantID)
	s.mockService.AssertExpectations(s.T())
}

func (s *BootstrapHandlerTestSuite) TestEnsureUser_NoClaims() {
	// Arrange
	w := httptest.NewRecorder()
	c := authedContext(w, nil)

	// Act
	s.handler.EnsureUser(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNotCalled(s.T(), "EnsureUser", mock.Anything, mock.Anything)
}

func (s *BootstrapHandlerTestSuite) TestEnsureUser_ServiceFailure() {
	// Arrange
	w := httptest.NewRecorder()
	c := authedContext(w, jwt.MapClaims{"sub": "user1"})

	s.mockService.On("EnsureUser", mock.Anything, mock.AnythingOfType("service.Identity")).
		Return("", context.DeadlineExceeded)

	// Act
	s.handler.EnsureUser(c)

	// Assert
	s.Equal(http.StatusInternalServerError, w.Code)
}
