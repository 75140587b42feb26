package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/pos-api/internal/domain"
)

var productHeaders = []string{"nome", "categoria", "subcategoria", "preco", "estoque", "tipo", "modo_calculo", "descricao"}

var productExportHeaders = []string{"id", "nome", "categoria", "subcategoria", "preco", "estoque", "tipo", "modo_calculo", "descricao"}

// ParseProducts reads the first sheet of a workbook and returns the valid
// products plus one message per rejected row.
func ParseProducts(r io.Reader) ([]domain.Product, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, nil
	}

	cols := headerIndex(rows[0])

	var products []domain.Product
	var rowErrors []string

	for i, row := range rows[1:] {
		line := i + 2

		name := strings.TrimSpace(cell(row, cols.of("nome")))
		category := strings.TrimSpace(cell(row, cols.of("categoria")))

		if name == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: Nome é obrigatório", line))
			continue
		}
		if category == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: Categoria é obrigatória", line))
			continue
		}

		price, err := parsePrice(cell(row, cols.of("preco")))
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: Preço inválido", line))
			continue
		}

		stock := 0
		if raw := strings.TrimSpace(cell(row, cols.of("estoque"))); raw != "" {
			stock, err = strconv.Atoi(raw)
			if err != nil || stock < 0 {
				rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: Estoque inválido", line))
				continue
			}
		}

		products = append(products, domain.Product{
			Name:        name,
			Category:    category,
			Subcategory: strings.TrimSpace(cell(row, cols.of("subcategoria"))),
			Price:       price,
			Stock:       stock,
			Type:        normalizeType(cell(row, cols.of("tipo"))),
			PricingMode: normalizePricingMode(cell(row, cols.of("modo_calculo"))),
			Description: strings.TrimSpace(cell(row, cols.of("descricao"))),
		})
	}

	return products, rowErrors, nil
}

// parsePrice accepts both "1234.56" and the Brazilian "1.234,56" format.
func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty price")
	}

	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	return price, nil
}

func normalizeType(raw string) domain.ProductType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "servico", "serviço":
		return domain.ProductTypeService
	default:
		return domain.ProductTypeProduct
	}
}

func normalizePricingMode(raw string) domain.PricingMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "medidor":
		return domain.PricingModeMeter
	default:
		return domain.PricingModeQuantity
	}
}

// ExportProducts builds a workbook with one row per product, IDs included
// so the sheet can serve as a backup.
func ExportProducts(products []domain.Product) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Produtos"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	if err := writeHeader(f, sheet, productExportHeaders); err != nil {
		return nil, err
	}

	for i, product := range products {
		row := i + 2
		values := []any{
			product.ID,
			product.Name,
			product.Category,
			product.Subcategory,
			product.Price,
			product.Stock,
			string(product.Type),
			string(product.PricingMode),
			product.Description,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "I", 22); err != nil {
		return nil, err
	}

	return f, nil
}

// ProductTemplate builds an empty import template with an instruction sheet.
func ProductTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Produtos"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	if err := writeHeader(f, sheet, productHeaders); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", "H", 22); err != nil {
		return nil, err
	}

	instructions := []string{
		"Preencha uma linha por produto na aba Produtos.",
		"nome, categoria e preco são obrigatórios.",
		"tipo aceita produto ou servico (padrão: produto).",
		"modo_calculo aceita quantidade ou medidor (padrão: quantidade).",
		"estoque vazio é tratado como 0.",
	}
	if err := writeInstructions(f, instructions); err != nil {
		return nil, err
	}

	return f, nil
}
