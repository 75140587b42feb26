package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/pos-api/internal/domain"
)

// workbookFromRows builds an in-memory xlsx with the given rows on the
// first sheet and returns it as a reader, the way an upload arrives.
func workbookFromRows(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellName, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestParseCustomers_ValidRows(t *testing.T) {
	r := workbookFromRows(t, [][]any{
		{"nome", "telefone", "cpf_cnpj", "email", "observacoes"},
		{"João Pereira", "(11) 98765-4321", "123.456.789-00", "joao@example.com", "cliente antigo"},
		{"Maria Silva", "(11) 91234-5678", "", "", ""},
	})

	customers, rowErrors, err := ParseCustomers(r)
	require.NoError(t, err)

	assert.Empty(t, rowErrors)
	require.Len(t, customers, 2)
	assert.Equal(t, "João Pereira", customers[0].Name)
	assert.Equal(t, "(11) 98765-4321", customers[0].Phone)
	assert.Equal(t, "123.456.789-00", customers[0].Doc)
	assert.Equal(t, "Maria Silva", customers[1].Name)
}

func TestParseCustomers_RowErrorsUseSheetLineNumbers(t *testing.T) {
	r := workbookFromRows(t, [][]any{
		{"nome", "telefone"},
		{"", "(11) 98765-4321"},
		{"Maria Silva", ""},
		{"Carlos", "(11) 90000-0000"},
	})

	customers, rowErrors, err := ParseCustomers(r)
	require.NoError(t, err)

	require.Len(t, rowErrors, 2)
	assert.Equal(t, "Linha 2: Nome é obrigatório", rowErrors[0])
	assert.Equal(t, "Linha 3: Telefone é obrigatório", rowErrors[1])

	require.Len(t, customers, 1)
	assert.Equal(t, "Carlos", customers[0].Name)
}

func TestParseCustomers_OmittedOptionalColumns(t *testing.T) {
	r := workbookFromRows(t, [][]any{
		{"nome", "telefone"},
		{"João Pereira", "(11) 98765-4321"},
	})

	customers, rowErrors, err := ParseCustomers(r)
	require.NoError(t, err)

	assert.Empty(t, rowErrors)
	require.Len(t, customers, 1)
	assert.Empty(t, customers[0].Doc)
	assert.Empty(t, customers[0].Email)
	assert.Empty(t, customers[0].Notes)
}

func TestParseCustomers_HeaderOrderDoesNotMatter(t *testing.T) {
	r := workbookFromRows(t, [][]any{
		{"telefone", "nome"},
		{"(11) 98765-4321", "João"},
	})

	customers, rowErrors, err := ParseCustomers(r)
	require.NoError(t, err)

	assert.Empty(t, rowErrors)
	require.Len(t, customers, 1)
	assert.Equal(t, "João", customers[0].Name)
	assert.Equal(t, "(11) 98765-4321", customers[0].Phone)
}

func TestParseCustomers_EmptyWorkbook(t *testing.T) {
	r := workbookFromRows(t, [][]any{
		{"nome", "telefone"},
	})

	customers, rowErrors, err := ParseCustomers(r)
	require.NoError(t, err)
	assert.Empty(t, customers)
	assert.Empty(t, rowErrors)
}

func TestExportCustomers_RoundTrip(t *testing.T) {
	f, err := ExportCustomers([]domain.Customer{
		{Name: "João", Phone: "(11) 98765-4321", Doc: "123", Email: "joao@example.com", Notes: "vip"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	customers, rowErrors, err := ParseCustomers(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, rowErrors)
	require.Len(t, customers, 1)
	assert.Equal(t, "João", customers[0].Name)
	assert.Equal(t, "vip", customers[0].Notes)
}

func TestCustomerTemplate_HasInstructionsSheet(t *testing.T) {
	f, err := CustomerTemplate()
	require.NoError(t, err)

	assert.Equal(t, "Clientes", f.GetSheetName(0))
	idx, err := f.GetSheetIndex("Instruções")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, idx, 0)
}
