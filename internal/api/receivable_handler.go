package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/pkg/utils"
)

//go:generate mockery --name ReceivableService --output ../mocks
type ReceivableService interface {
	Create(ctx context.Context, req dto.CreateReceivableRequest) (*dto.ReceivableResponse, error)
	BulkCreate(ctx context.Context, req dto.BulkCreateReceivablesRequest) ([]dto.ReceivableResponse, error)
	List(ctx context.Context) ([]dto.ReceivableResponse, error)
	MarkPaid(ctx context.Context, id string, paymentMethod *string) (*dto.ReceivableResponse, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter *domain.ReceivableFilter) ([]dto.ReceivableResponse, error)
	ScheduleArchive(ctx context.Context, beforeDate time.Time) error
}

type ReceivableHandler struct {
	*BaseHandler
	service ReceivableService
}

func NewReceivableHandler(service ReceivableService) *ReceivableHandler {
	return &ReceivableHandler{service: service}
}

// CreateReceivable Create a receivable
// @Summary Create receivable
// @Description Create a single receivable installment
// @Tags    receivables
// @Accept  json
// @Produce json
// @Param   body body dto.CreateReceivableRequest true "Receivable object"
// @Success 201 {object} dto.ReceivableResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /receivables [post]
func (h *ReceivableHandler) CreateReceivable(c *gin.Context) {
	var req dto.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// BulkCreateReceivables Create multiple receivables
// @Summary Bulk create receivables
// @Description Create the full installment plan of an order in one request
// @Tags    receivables
// @Accept  json
// @Produce json
// @Param   body body dto.BulkCreateReceivablesRequest true "Receivables"
// @Success 201 {array} dto.ReceivableResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /receivables/bulk [post]
func (h *ReceivableHandler) BulkCreateReceivables(c *gin.Context) {
	var req dto.BulkCreateReceivablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.BulkCreate(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListReceivables List receivables
// @Summary List receivables
// @Description All receivables of the caller's tenant, ordered by due date
// @Tags    receivables
// @Produce json
// @Success 200 {array} dto.ReceivableResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /receivables [get]
func (h *ReceivableHandler) ListReceivables(c *gin.Context) {
	receivables, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, receivables)
}

// MarkPaid Mark a receivable paid
// @Summary Mark receivable paid
// @Description Records a payment against one installment
// @Tags    receivables
// @Accept  json
// @Produce json
// @Param   id path string true "Receivable ID"
// @Param   body body dto.MarkReceivablePaidRequest false "Payment details"
// @Success 200 {object} dto.ReceivableResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /receivables/{id}/pay [put]
func (h *ReceivableHandler) MarkPaid(c *gin.Context) {
	// The body is optional; an empty one means payment method unknown.
	var req dto.MarkReceivablePaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = dto.MarkReceivablePaidRequest{}
	}

	resp, err := h.service.MarkPaid(h.RequestCtx(c), c.Param("id"), req.PaymentMethod)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Receivable not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteReceivable Delete a receivable
// @Summary Delete receivable
// @Description Remove one installment
// @Tags    receivables
// @Produce json
// @Param   id path string true "Receivable ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /receivables/{id} [delete]
func (h *ReceivableHandler) DeleteReceivable(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Receivable not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchReceivables Search receivables
// @Summary Search receivables
// @Description Full-text and filtered search over the tenant's receivables
// @Tags    receivables
// @Produce json
// @Param   customer_name query string false "Customer name (full text)"
// @Param   description query string false "Description (full text)"
// @Param   paid query bool false "Only paid or only open installments"
// @Param   due_start query string false "Due date from (RFC3339 or YYYY-MM-DD)"
// @Param   due_end query string false "Due date until (RFC3339 or YYYY-MM-DD)"
// @Param   page query int false "Page (default 1)"
// @Param   page_size query int false "Page size (default 10)"
// @Success 200 {array} dto.ReceivableResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /receivables/search [get]
func (h *ReceivableHandler) SearchReceivables(c *gin.Context) {
	filter, err := h.parseSearchFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	receivables, err := h.service.Search(h.RequestCtx(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, receivables)
}

func (h *ReceivableHandler) parseSearchFilter(c *gin.Context) (*domain.ReceivableFilter, error) {
	filter := &domain.ReceivableFilter{
		CustomerName: c.Query("customer_name"),
		Description:  c.Query("description"),
	}

	if raw := c.Query("paid"); raw != "" {
		paid, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		filter.Paid = &paid
	}

	if raw := c.Query("due_start"); raw != "" {
		t, err := utils.ParseUserTime(raw, false)
		if err != nil {
			return nil, err
		}
		filter.DueStart = t
	}
	if raw := c.Query("due_end"); raw != "" {
		t, err := utils.ParseUserTime(raw, true)
		if err != nil {
			return nil, err
		}
		filter.DueEnd = t
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		filter.Page = page
	}
	if raw := c.Query("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		filter.PageSize = pageSize
	}

	return filter, nil
}

// ScheduleArchive Queue archival of paid receivables
// @Summary Archive paid receivables
// @Description Queues a job that snapshots paid receivables older than the given date to S3 and purges them
// @Tags    receivables
// @Accept  json
// @Produce json
// @Param   body body dto.ArchiveReceivablesRequest true "Archive cutoff"
// @Success 202 {object} dto.ArchiveScheduledResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /receivables/archive [post]
func (h *ReceivableHandler) ScheduleArchive(c *gin.Context) {
	var req dto.ArchiveReceivablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	if err := h.service.ScheduleArchive(h.RequestCtx(c), req.BeforeDate); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, dto.ArchiveScheduledResponse{Message: "Archive scheduled"})
}
