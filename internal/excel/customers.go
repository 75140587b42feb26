package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/pos-api/internal/domain"
)

// Spreadsheet headers are pt-BR because the sheets are filled in by the
// store staff, not by developers.

var customerHeaders = []string{"nome", "telefone", "cpf_cnpj", "email", "observacoes"}

// ParseCustomers reads the first sheet of a workbook and returns the valid
// customers plus one message per rejected row. Row numbers in messages are
// spreadsheet rows, header included.
func ParseCustomers(r io.Reader) ([]domain.Customer, []string, error) {
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

	var customers []domain.Customer
	var rowErrors []string

	for i, row := range rows[1:] {
		line := i + 2 // 1-based plus header row

		name := strings.TrimSpace(cell(row, cols.of("nome")))
		phone := strings.TrimSpace(cell(row, cols.of("telefone")))

		if name == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: Nome é obrigatório", line))
			continue
		}
		if phone == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: Telefone é obrigatório", line))
			continue
		}

		customers = append(customers, domain.Customer{
			Name:  name,
			Phone: phone,
			Doc:   strings.TrimSpace(cell(row, cols.of("cpf_cnpj"))),
			Email: strings.TrimSpace(cell(row, cols.of("email"))),
			Notes: strings.TrimSpace(cell(row, cols.of("observacoes"))),
		})
	}

	return customers, rowErrors, nil
}

// ExportCustomers builds a workbook with one row per customer.
func ExportCustomers(customers []domain.Customer) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Clientes"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	if err := writeHeader(f, sheet, customerHeaders); err != nil {
		return nil, err
	}

	for i, customer := range customers {
		row := i + 2
		values := []any{customer.Name, customer.Phone, customer.Doc, customer.Email, customer.Notes}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "E", 25); err != nil {
		return nil, err
	}

	return f, nil
}

// CustomerTemplate builds an empty import template with an instruction sheet.
func CustomerTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Clientes"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	if err := writeHeader(f, sheet, customerHeaders); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", "E", 25); err != nil {
		return nil, err
	}

	instructions := []string{
		"Preencha uma linha por cliente na aba Clientes.",
		"nome e telefone são obrigatórios.",
		"cpf_cnpj, email e observacoes são opcionais.",
	}
	if err := writeInstructions(f, instructions); err != nil {
		return nil, err
	}

	return f, nil
}
