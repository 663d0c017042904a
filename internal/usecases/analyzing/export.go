package analyzing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ExportFormat é o formato de arquivo da exportação do resultado
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"

	exportFilePrefix = "clientes_sem_movimentacao"
	exportSheetName  = "Clientes"
)

// utf8BOM faz o Excel abrir o CSV com acentuação correta
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeaders = []string{"Código", "Nome Fantasia", "Última Venda", "Dias Inativo", "Total"}

// ParseExportFormat valida o formato pedido; vazio equivale a CSV
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportXLSX:
		return ExportXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidExport, raw)
	}
}

// ContentType retorna o MIME type do arquivo exportado
func (f ExportFormat) ContentType() string {
	if f == ExportXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName monta o nome do arquivo de download
func (f ExportFormat) FileName(now time.Time) string {
	return fmt.Sprintf("%s_%d.%s", exportFilePrefix, now.Unix(), f)
}

// Export escreve o resultado no formato pedido
func Export(w io.Writer, format ExportFormat, result *domain.FilterResult) error {
	switch format {
	case ExportCSV:
		return WriteCSV(w, result)
	case ExportXLSX:
		return WriteXLSX(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExport, format)
	}
}

func exportRow(r domain.OutputRecord) []string {
	return []string{r.Code, r.Name, r.LastSale, r.DaysInactive.String(), r.Total}
}

// WriteCSV escreve o resultado em CSV com BOM UTF-8
func WriteCSV(w io.Writer, result *domain.FilterResult) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("erro ao escrever CSV: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("erro ao escrever CSV: %w", err)
	}

	for _, record := range result.Customers {
		if err := writer.Write(exportRow(record)); err != nil {
			return fmt.Errorf("erro ao escrever CSV: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX escreve o resultado em uma planilha com cabeçalho em negrito
func WriteXLSX(w io.Writer, result *domain.FilterResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("erro ao criar planilha: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo: %w", err)
	}

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}
	if err := f.SetCellStyle(exportSheetName, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("erro ao aplicar estilo: %w", err)
	}

	for i, record := range result.Customers {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []interface{}{record.Code, record.Name, record.LastSale, daysCellValue(record.DaysInactive), record.Total}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return fmt.Errorf("erro ao escrever linha %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(exportSheetName, "A", "A", 12)
	_ = f.SetColWidth(exportSheetName, "B", "B", 40)
	_ = f.SetColWidth(exportSheetName, "C", "E", 16)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}

	return nil
}

// dias inativos vão como número para permitir ordenação no Excel
func daysCellValue(d domain.DaysInactive) interface{} {
	if !d.Valid {
		return domain.NotApplicableLabel
	}
	return d.Days
}
