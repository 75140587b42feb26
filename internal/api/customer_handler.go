package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/service"
)

//go:generate mockery --name CustomerService --output ../mocks
type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	ImportWorkbook(ctx context.Context, r io.Reader) (*dto.ImportResultResponse, error)
	ExportWorkbook(ctx context.Context) (*excelize.File, error)
	TemplateWorkbook() (*excelize.File, error)
}

type CustomerHandler struct {
	*BaseHandler
	service CustomerService
}

func NewCustomerHandler(service CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// CreateCustomer Create a customer
// @Summary Create customer
// @Tags    customers
// @Accept  json
// @Produce json
// @Param   body body dto.CreateCustomerRequest true "Customer object"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
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

// ListCustomers List customers
// @Summary List customers
// @Tags    customers
// @Produce json
// @Success 200 {array} dto.CustomerResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// ImportCustomers Import customers from a spreadsheet
// @Summary Import customers
// @Description Uploads an xlsx file; one invalid row aborts the import with its line-numbered message
// @Tags    customers
// @Accept  mpfd
// @Produce json
// @Param   file formData file true "xlsx file"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /customers/import [post]
func (h *CustomerHandler) ImportCustomers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	defer file.Close()

	result, err := h.service.ImportWorkbook(h.RequestCtx(c), file)
	if err != nil {
		var rowErr *service.WorkbookRowError
		if errors.As(err, &rowErr) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: rowErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportCustomers Export customers to a spreadsheet
// @Summary Export customers
// @Tags    customers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /customers/export [get]
func (h *CustomerHandler) ExportCustomers(c *gin.Context) {
	workbook, err := h.service.ExportWorkbook(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	filename := fmt.Sprintf("clientes_%s.xlsx", time.Now().Format("2006-01-02"))
	writeWorkbook(c, workbook, filename)
}

// CustomerTemplate Download the import template
// @Summary Customer import template
// @Tags    customers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /customers/template [get]
func (h *CustomerHandler) CustomerTemplate(c *gin.Context) {
	workbook, err := h.service.TemplateWorkbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	writeWorkbook(c, workbook, "modelo_clientes.xlsx")
}

// writeWorkbook streams an xlsx file as an attachment.
func writeWorkbook(c *gin.Context, workbook *excelize.File, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := workbook.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
