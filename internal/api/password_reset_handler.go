package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/service"
)

//go:generate mockery --name PasswordResetService --output ../mocks
type PasswordResetService interface {
	Request(ctx context.Context, name, redirectURL string) (dto.PasswordResetResponse, error)
}

type PasswordResetHandler struct {
	*BaseHandler
	service PasswordResetService
}

func NewPasswordResetHandler(service PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{service: service}
}

// RequestReset Start a password recovery flow
// @Summary Request password reset
// @Description Looks the account up by display name and queues a recovery email. The response never reveals whether the account exists.
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   body body dto.PasswordResetRequest true "Reset request"
// @Success 200 {object} dto.PasswordResetResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /auth/password-reset [post]
func (h *PasswordResetHandler) RequestReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: service.ErrInvalidName.Error()})
		return
	}

	resp, err := h.service.Request(h.RequestCtx(c), req.Name, req.RedirectURL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidName) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
