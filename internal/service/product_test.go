package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/mocks"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockProduct *mocks.ProductRepository
	service     *ProductService
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockProduct = new(mocks.ProductRepository)
	s.mockRepo.On("Product").Return(s.mockProduct)
	s.service = NewProductService(s.mockRepo)
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func (s *ProductServiceTestSuite) TestImportWorkbook_MinimalHeadersSucceed() {
	// Arrange: only the required columns are present in the sheet.
	ctx := context.Background()
	r := sheetReader(s.T(), [][]any{
		{"nome", "categoria", "preco"},
		{"Vidro temperado 8mm", "Vidros", "100"},
	})

	s.mockProduct.On("BulkCreate", ctx, mock.MatchedBy(func(products []domain.Product) bool {
		return len(products) == 1 &&
			products[0].Name == "Vidro temperado 8mm" &&
			products[0].Price == 100 &&
			products[0].Stock == 0
	})).Return(nil)

	// Act
	result, err := s.service.ImportWorkbook(ctx, r)

	// Assert
	s.NoError(err)
	s.Equal(1, result.Imported)
	s.mockProduct.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestImportWorkbook_InvalidPriceAbortsEverything() {
	// Arrange
	ctx := context.Background()
	r := sheetReader(s.T(), [][]any{
		{"nome", "categoria", "preco"},
		{"Vidro temperado 8mm", "Vidros", "100"},
		{"Espelho", "Vidros", "-5"},
	})

	// Act
	result, err := s.service.ImportWorkbook(ctx, r)

	// Assert
	var rowErr *WorkbookRowError
	s.ErrorAs(err, &rowErr)
	s.Equal("Linha 3: Preço inválido", rowErr.Message)
	s.Nil(result)
	s.mockProduct.AssertNotCalled(s.T(), "BulkCreate", mock.Anything, mock.Anything)
}
