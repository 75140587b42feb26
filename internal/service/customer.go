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

type CustomerService struct {
	repo repository.Repository
}

func NewCustomerService(repo repository.Repository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := req.ToCustomer()
	if err := s.repo.Customer().Create(ctx, customer); err != nil {
		return nil, err
	}
	return dto.FromCustomer(customer), nil
}

func (s *CustomerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.Customer().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomers(customers), nil
}

// ImportWorkbook parses an uploaded spreadsheet and inserts its rows. One
// invalid row aborts the whole import; nothing is stored and the row's
// message comes back as the error.
func (s *CustomerService) ImportWorkbook(ctx context.Context, r io.Reader) (*dto.ImportResultResponse, error) {
	customers, rowErrors, err := excel.ParseCustomers(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	if len(rowErrors) > 0 {
		return nil, &WorkbookRowError{Message: rowErrors[0]}
	}

	if len(customers) > 0 {
		if err := s.repo.Customer().BulkCreate(ctx, customers); err != nil {
			return nil, fmt.Errorf("failed to store customers: %w", err)
		}
	}

	return &dto.ImportResultResponse{Imported: len(customers)}, nil
}

// ExportWorkbook builds a spreadsheet of all the tenant's customers.
func (s *CustomerService) ExportWorkbook(ctx context.Context) (*excelize.File, error) {
	customers, err := s.repo.Customer().List(ctx)
	if err != nil {
		return nil, err
	}
	return excel.ExportCustomers(customers)
}

func (s *CustomerService) TemplateWorkbook() (*excelize.File, error) {
	return excel.CustomerTemplate()
}
