package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/service"
)

//go:generate mockery --name CommissionService --output ../mocks
type CommissionService interface {
	Report(ctx context.Context, month, sellerFilter string) (*domain.CommissionReport, error)
}

type CommissionHandler struct {
	*BaseHandler
	service CommissionService
}

func NewCommissionHandler(service CommissionService) *CommissionHandler {
	return &CommissionHandler{service: service}
}

// GetReport Monthly commission report
// @Summary Get commission report
// @Description Commission lines and totals for one calendar month. Sellers see only their own orders; admins and managers see the whole tenant.
// @Tags    commissions
// @Produce json
// @Param   month query string true "Month in YYYY-MM format"
// @Param   seller_id query string false "Narrow to one seller (admin/manager only)"
// @Success 200 {object} dto.CommissionReportResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /commissions [get]
func (h *CommissionHandler) GetReport(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "month is required"})
		return
	}

	report, err := h.service.Report(h.RequestCtx(c), month, c.Query("seller_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromCommissionReport(report))
}
