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

//go:generate mockery --name ProductService --output ../mocks
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	ImportWorkbook(ctx context.Context, r io.Reader) (*dto.ImportResultResponse, error)
	ExportWorkbook(ctx context.Context) (*excelize.File, error)
	TemplateWorkbook() (*excelize.File, error)
}

type ProductHandler struct {
	*BaseHandler
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// CreateProduct Create a product
// @Summary Create product
// @Tags    products
// @Accept  json
// @Produce json
// @Param   body body dto.CreateProductRequest true "Product object"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
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

// ListProducts List products
// @Summary List products
// @Tags    products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// ImportProducts Import products from a spreadsheet
// @Summary Import products
// @Description Uploads an xlsx file; one invalid row aborts the import with its line-numbered message
// @Tags    products
// @Accept  mpfd
// @Produce json
// @Param   file formData file true "xlsx file"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /products/import [post]
func (h *ProductHandler) ImportProducts(c *gin.Context) {
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

// ExportProducts Export products to a spreadsheet
// @Summary Export products
// @Tags    products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /products/export [get]
func (h *ProductHandler) ExportProducts(c *gin.Context) {
	workbook, err := h.service.ExportWorkbook(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	filename := fmt.Sprintf("produtos_%s.xlsx", time.Now().Format("2006-01-02"))
	writeWorkbook(c, workbook, filename)
}

// ProductTemplate Download the import template
// @Summary Product import template
// @Tags    products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /products/template [get]
func (h *ProductHandler) ProductTemplate(c *gin.Context) {
	workbook, err := h.service.TemplateWorkbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	writeWorkbook(c, workbook, "modelo_produtos.xlsx")
}
