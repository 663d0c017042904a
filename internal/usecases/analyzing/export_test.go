package analyzing

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected ExportFormat
		wantErr  bool
	}{
		{name: "Vazio usa CSV", raw: "", expected: ExportCSV},
		{name: "CSV", raw: "csv", expected: ExportCSV},
		{name: "XLSX com maiúsculas", raw: "XLSX", expected: ExportXLSX},
		{name: "Formato desconhecido", raw: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseExportFormat(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidExport)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestExportFormat_FileName(t *testing.T) {
	now := time.Unix(1706745600, 0)

	assert.Equal(t, "clientes_sem_movimentacao_1706745600.csv", ExportCSV.FileName(now))
	assert.Equal(t, "clientes_sem_movimentacao_1706745600.xlsx", ExportXLSX.FileName(now))
}

func TestWriteCSV(t *testing.T) {
	table := scenarioTable()
	result := FormatResult(table.Customers[:2], "nunca compraram", testToday)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, ExportCSV, result))

	content := buf.Bytes()
	require.True(t, bytes.HasPrefix(content, utf8BOM), "CSV deve começar com BOM")

	expected := "Código,Nome Fantasia,Última Venda,Dias Inativo,Total\n" +
		"A,Ótica A,10/01/2024,22,\"R$ 100,00\"\n" +
		"B,Ótica B,Nunca comprou,-,\"R$ 0,00\"\n"
	assert.Equal(t, expected, string(content[len(utf8BOM):]))
}

func TestWriteXLSX(t *testing.T) {
	table := scenarioTable()
	result := FormatResult(table.Customers, "inativos há 20+ dias", testToday)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, ExportXLSX, result))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, []string{"A", "Ótica A", "10/01/2024", "22", "R$ 100,00"}, rows[1])
	assert.Equal(t, []string{"B", "Ótica B", "Nunca comprou", "-", "R$ 0,00"}, rows[2])
}
