package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/service"
	"github.com/vendaflow/pos-api/internal/utils"
)

//go:generate mockery --name BootstrapService --output ../mocks
type BootstrapService interface {
	EnsureUser(ctx context.Context, identity service.Identity) (string, error)
}

type BootstrapHandler struct {
	*BaseHandler
	service BootstrapService
}

func NewBootstrapHandler(service BootstrapService) *BootstrapHandler {
	return &BootstrapHandler{service: service}
}

// EnsureUser Provision the caller's account
// @Summary Ensure user is provisioned
// @Description Idempotently creates the caller's profile, tenant and role from the auth token
// @Tags    auth
// @Produce json
// @Success 200 {object} dto.EnsureUserResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /auth/ensure [post]
func (h *BootstrapHandler) EnsureUser(c *gin.Context) {
	ctx := h.RequestCtx(c)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Invalid authentication"})
		return
	}

	identity := service.Identity{
		ID:          userID,
		Email:       utils.GetClaimString(ctx, "email"),
		Name:        utils.GetClaimString(ctx, "name"),
		CompanyName: utils.GetClaimString(ctx, "company_name"),
	}

	tenantID, err := h.service.EnsureUser(ctx, identity)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, dto.Error{Error: "Invalid authentication"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.EnsureUserResponse{OK: true, TenantID: tenantID})
}
