package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendaflow/pos-api/internal/domain"
)

func TestParseProducts_ValidRows(t *testing.T) {
	r := workbookFromRows(t, [][]any{
		{"nome", "categoria", "subcategoria", "preco", "estoque", "tipo", "modo_calculo", "descricao"},
		{"Vidro temperado 8mm", "Vidros", "Temperado", "250", "12", "produto", "medidor", "sob medida"},
		{"Instalação", "Serviços", "", "150", "", "serviço", "", ""},
	})

	products, rowErrors, err := ParseProducts(r)
	require.NoError(t, err)

	assert.Empty(t, rowErrors)
	require.Len(t, products, 2)

	assert.Equal(t, "Vidro temperado 8mm", products[0].Name)
	assert.Equal(t, 250.0, products[0].Price)
	assert.Equal(t, 12, products[0].Stock)
	assert.Equal(t, domain.PricingModeMeter, products[0].PricingMode)

	// "serviço" with accent normalizes, empty stock means zero
	assert.Equal(t, domain.ProductTypeService, products[1].Type)
	assert.Equal(t, 0, products[1].Stock)
	assert.Equal(t, domain.PricingModeQuantity, products[1].PricingMode)
}

func TestParseProducts_OmittedOptionalColumns(t *testing.T) {
	r := workbookFromRows(t, [][]any{
		{"nome", "categoria", "preco"},
		{"Vidro temperado 8mm", "Vidros", "100"},
	})

	products, rowErrors, err := ParseProducts(r)
	require.NoError(t, err)

	assert.Empty(t, rowErrors)
	require.Len(t, products, 1)
	assert.Equal(t, "Vidro temperado 8mm", products[0].Name)
	assert.Equal(t, 100.0, products[0].Price)
	assert.Equal(t, 0, products[0].Stock)
	assert.Equal(t, domain.ProductTypeProduct, products[0].Type)
	assert.Equal(t, domain.PricingModeQuantity, products[0].PricingMode)
	assert.Empty(t, products[0].Subcategory)
	assert.Empty(t, products[0].Description)
}

func TestParseProducts_BrazilianPriceFormat(t *testing.T) {
	r := workbookFromRows(t, [][]any{
		{"nome", "categoria", "preco"},
		{"Espelho", "Vidros", "1.234,56"},
		{"Box", "Vidros", "89,90"},
	})

	products, rowErrors, err := ParseProducts(r)
	require.NoError(t, err)

	assert.Empty(t, rowErrors)
	require.Len(t, products, 2)
	assert.Equal(t, 1234.56, products[0].Price)
	assert.Equal(t, 89.90, products[1].Price)
}

func TestParseProducts_RowErrors(t *testing.T) {
	r := workbookFromRows(t, [][]any{
		{"nome", "categoria", "preco", "estoque"},
		{"", "Vidros", "100", ""},
		{"Espelho", "", "100", ""},
		{"Box", "Vidros", "abc", ""},
		{"Porta", "Vidros", "-10", ""},
		{"Janela", "Vidros", "100", "-5"},
	})

	products, rowErrors, err := ParseProducts(r)
	require.NoError(t, err)

	assert.Empty(t, products)
	require.Len(t, rowErrors, 5)
	assert.Equal(t, "Linha 2: Nome é obrigatório", rowErrors[0])
	assert.Equal(t, "Linha 3: Categoria é obrigatória", rowErrors[1])
	assert.Equal(t, "Linha 4: Preço inválido", rowErrors[2])
	assert.Equal(t, "Linha 5: Preço inválido", rowErrors[3])
	assert.Equal(t, "Linha 6: Estoque inválido", rowErrors[4])
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		wantErr  bool
	}{
		{"250", 250, false},
		{"250.50", 250.50, false},
		{"1.234,56", 1234.56, false},
		{"89,90", 89.90, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-10", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			price, err := parsePrice(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, price)
		})
	}
}

func TestExportProducts_RoundTrip(t *testing.T) {
	f, err := ExportProducts([]domain.Product{
		{
			ID:          "p1",
			Name:        "Vidro temperado 8mm",
			Category:    "Vidros",
			Price:       250,
			Stock:       12,
			Type:        domain.ProductTypeProduct,
			PricingMode: domain.PricingModeMeter,
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	products, rowErrors, err := ParseProducts(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, rowErrors)
	require.Len(t, products, 1)
	assert.Equal(t, "Vidro temperado 8mm", products[0].Name)
	assert.Equal(t, 250.0, products[0].Price)
	assert.Equal(t, domain.PricingModeMeter, products[0].PricingMode)
}

func TestProductTemplate_HasInstructionsSheet(t *testing.T) {
	f, err := ProductTemplate()
	require.NoError(t, err)

	assert.Equal(t, "Produtos", f.GetSheetName(0))
	idx, err := f.GetSheetIndex("Instruções")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, idx, 0)
}
