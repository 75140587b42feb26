package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/domain"
)

//go:generate mockery --name SettingsService --output ../mocks
type SettingsService interface {
	Get(ctx context.Context) (*domain.CompanySettingsRecord, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.CompanySettingsRecord, error)
	Effective(ctx context.Context, local domain.CompanySettings) (domain.CompanySettings, error)
}

type SettingsHandler struct {
	*BaseHandler
	service SettingsService
}

func NewSettingsHandler(service SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetSettings Get the cloud copy of company settings
// @Summary Get settings
// @Description The stored cloud copy; 404 when the tenant never saved one
// @Tags    settings
// @Produce json
// @Success 200 {object} domain.CompanySettingsRecord
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	record, err := h.service.Get(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Settings not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateSettings Save the cloud copy of company settings
// @Summary Update settings
// @Description Upserts the tenant's company settings
// @Tags    settings
// @Accept  json
// @Produce json
// @Param   body body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} domain.CompanySettingsRecord
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	record, err := h.service.Update(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ResolveSettings Merge cloud settings with a local copy
// @Summary Resolve effective settings
// @Description Merges the cloud copy with the client's local settings. The theme is taken from the local copy only.
// @Tags    settings
// @Accept  json
// @Produce json
// @Param   body body dto.ResolveSettingsRequest true "Local settings"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /settings/resolve [post]
func (h *SettingsHandler) ResolveSettings(c *gin.Context) {
	var req dto.ResolveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	effective, err := h.service.Effective(h.RequestCtx(c), req.Local.ToCompanySettings())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: dto.FromCompanySettings(effective)})
}
