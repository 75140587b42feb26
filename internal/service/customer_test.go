package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/mocks"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockCustomer *mocks.CustomerRepository
	service      *CustomerService
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockCustomer = new(mocks.CustomerRepository)
	s.mockRepo.On("Customer").Return(s.mockCustomer)
	s.service = NewCustomerService(s.mockRepo)
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

// sheetReader builds an in-memory workbook from rows, the way an upload
// arrives at the import endpoint.
func sheetReader(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cellName, value); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func (s *CustomerServiceTestSuite) TestImportWorkbook_Success() {
	// Arrange
	ctx := context.Background()
	r := sheetReader(s.T(), [][]any{
		{"nome", "telefone"},
		{"João Pereira", "(11) 98765-4321"},
		{"Maria Silva", "(11) 91234-5678"},
	})

	s.mockCustomer.On("BulkCreate", ctx, mock.MatchedBy(func(customers []domain.Customer) bool {
		return len(customers) == 2 && customers[0].Name == "João Pereira"
	})).Return(nil)

	// Act
	result, err := s.service.ImportWorkbook(ctx, r)

	// Assert
	s.NoError(err)
	s.Equal(2, result.Imported)
	s.mockCustomer.AssertExpectations(s.T())
}

func (s *CustomerServiceTestSuite) TestImportWorkbook_InvalidRowAbortsEverything() {
	// Arrange
	ctx := context.Background()
	r := sheetReader(s.T(), [][]any{
		{"nome", "telefone"},
		{"João Pereira", "(11) 98765-4321"},
		{"Maria Silva", ""},
	})

	// Act
	result, err := s.service.ImportWorkbook(ctx, r)

	// Assert
	var rowErr *WorkbookRowError
	s.ErrorAs(err, &rowErr)
	s.Equal("Linha 3: Telefone é obrigatório", rowErr.Message)
	s.Nil(result)
	s.mockCustomer.AssertNotCalled(s.T(), "BulkCreate", mock.Anything, mock.Anything)
}

func (s *CustomerServiceTestSuite) TestImportWorkbook_EmptySheet() {
	// Arrange
	ctx := context.Background()
	r := sheetReader(s.T(), [][]any{
		{"nome", "telefone"},
	})

	// Act
	result, err := s.service.ImportWorkbook(ctx, r)

	// Assert
	s.NoError(err)
	s.Equal(0, result.Imported)
	s.mockCustomer.AssertNotCalled(s.T(), "BulkCreate", mock.Anything, mock.Anything)
}
