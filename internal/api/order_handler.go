package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/service"
)

//go:generate mockery --name OrderService --output ../mocks
type OrderService interface {
	List(ctx context.Context, month, sellerFilter string) ([]dto.OrderResponse, error)
}

type OrderHandler struct {
	*BaseHandler
	service OrderService
}

func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// ListOrders List orders
// @Summary List orders
// @Description Orders for the caller's tenant, optionally narrowed to one month and one seller. Sellers always see only their own orders.
// @Tags    orders
// @Produce json
// @Param   month query string false "Month in YYYY-MM format"
// @Param   seller_id query string false "Narrow to one seller (admin/manager only)"
// @Success 200 {array} dto.OrderResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.List(h.RequestCtx(c), c.Query("month"), c.Query("seller_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}
