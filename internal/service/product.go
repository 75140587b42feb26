package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/excel"
	"github.com/vendaflow/pos-api/internal/repository"
)

type ProductService struct {
	repo repository.Repository
}

func NewProductService(repo repository.Repository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := req.ToProduct()
	if err := s.repo.Product().Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

func (s *ProductService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.Product().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(products), nil
}

// ImportWorkbook parses an uploaded spreadsheet and inserts its rows. One
// invalid row aborts the whole import; nothing is stored.
func (s *ProductService) ImportWorkbook(ctx context.Context, r io.Reader) (*dto.ImportResultResponse, error) {
	products, rowErrors, err := excel.ParseProducts(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	if len(rowErrors) > 0 {
		return nil, &WorkbookRowError{Message: rowErrors[0]}
	}

	if len(products) > 0 {
		if err := s.repo.Product().BulkCreate(ctx, products); err != nil {
			return nil, fmt.Errorf("failed to store products: %w", err)
		}
	}

	return &dto.ImportResultResponse{Imported: len(products)}, nil
}

// ExportWorkbook builds a spreadsheet of all the tenant's products.
func (s *ProductService) ExportWorkbook(ctx context.Context) (*excelize.File, error) {
	products, err := s.repo.Product().List(ctx)
	if err != nil {
		return nil, err
	}
	return excel.ExportProducts(products)
}

func (s *ProductService) TemplateWorkbook() (*excelize.File, error) {
	return excel.ProductTemplate()
}
