package ledger

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shakinm/xlsReader/xls"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
	ErrNoSheets          = errors.New("planilha sem abas")
)

// SheetReader lê a primeira aba de uma planilha como linhas de células classificadas
type SheetReader interface {
	ReadRows(path string) ([]domain.RawRow, error)
}

// FileReader lê arquivos .xlsx (excelize) e .xls (xlsReader)
type FileReader struct {
	loc *time.Location
}

func NewFileReader(loc *time.Location) *FileReader {
	if loc == nil {
		loc = time.UTC
	}
	return &FileReader{loc: loc}
}

// ReadRows escolhe o leitor pela extensão do arquivo
func (r *FileReader) ReadRows(path string) ([]domain.RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return r.readXLSX(path)
	case ".xls":
		return r.readXLS(path)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "extensão %q", filepath.Ext(path))
	}
}

func (r *FileReader) readXLSX(path string) ([]domain.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir arquivo .xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler linhas da aba %s", sheet)
	}

	c := &xlsxClassifier{file: f, sheet: sheet, loc: r.loc, dateStyles: make(map[int]bool)}

	result := make([]domain.RawRow, len(rows))
	for i, row := range rows {
		raw := make(domain.RawRow, len(row))
		for j, value := range row {
			raw[j] = c.classify(i, j, value)
		}
		result[i] = raw
	}

	return result, nil
}

func (r *FileReader) readXLS(path string) ([]domain.RawRow, error) {
	workbook, err := xls.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir arquivo .xls")
	}

	if workbook.GetNumberSheets() == 0 {
		return nil, ErrNoSheets
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil || sheet == nil {
		return nil, ErrNoSheets
	}

	result := make([]domain.RawRow, 0, int(sheet.GetNumberRows())+1)
	for i := 0; i <= int(sheet.GetNumberRows()); i++ {
		row, err := sheet.GetRow(i)
		if err != nil || row == nil {
			// Mantém a posição das linhas para a busca do cabeçalho
			result = append(result, domain.RawRow{})
			continue
		}

		cols := row.GetCols()
		raw := make(domain.RawRow, len(cols))
		for j, col := range cols {
			if col == nil {
				raw[j] = domain.AbsentCell()
				continue
			}
			raw[j] = classifyText(col.GetString())
		}
		result = append(result, raw)
	}

	return result, nil
}

// xlsxClassifier usa o tipo e o estilo da célula para separar texto, número e data
type xlsxClassifier struct {
	file       *excelize.File
	sheet      string
	loc        *time.Location
	dateStyles map[int]bool
}

func (c *xlsxClassifier) classify(row, col int, value string) domain.Cell {
	if strings.TrimSpace(value) == "" {
		return domain.AbsentCell()
	}

	cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return classifyText(value)
	}

	cellType, err := c.file.GetCellType(c.sheet, cellName)
	if err == nil && (cellType == excelize.CellTypeSharedString || cellType == excelize.CellTypeInlineString) {
		return domain.TextCell(value)
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return domain.TextCell(value)
	}

	if c.isDateCell(cellName) {
		if t, err := excelize.ExcelDateToTime(n, false); err == nil {
			return domain.TimestampCell(time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, c.loc))
		}
	}

	return domain.NumberCell(n)
}

func (c *xlsxClassifier) isDateCell(cellName string) bool {
	styleID, err := c.file.GetCellStyle(c.sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}

	if isDate, ok := c.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := c.file.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	c.dateStyles[styleID] = isDate

	return isDate
}

// isDateNumFmt reconhece os formatos de data embutidos do Excel e formatos customizados com dia ou ano
func isDateNumFmt(numFmt int, custom *string) bool {
	if (numFmt >= 14 && numFmt <= 22) || (numFmt >= 45 && numFmt <= 47) {
		return true
	}
	if custom == nil {
		return false
	}
	return hasDateToken(*custom)
}

// hasDateToken procura d ou y fora de literais: texto entre aspas, caractere escapado com \,
// seções entre colchetes ([Red], [$-416]) e o caractere que segue _ ou *.
func hasDateToken(format string) bool {
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '"':
			for i++; i < len(runes) && runes[i] != '"'; i++ {
			}
		case '[':
			for i++; i < len(runes) && runes[i] != ']'; i++ {
			}
		case '\\', '_', '*':
			i++
		case 'd', 'D', 'y', 'Y':
			return true
		}
	}
	return false
}

// classifyText classifica um valor lido apenas como texto.
// Números com zero à esquerda continuam texto para não perder códigos como "00123".
func classifyText(value string) domain.Cell {
	s := strings.TrimSpace(value)
	if s == "" {
		return domain.AbsentCell()
	}

	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		return domain.TextCell(value)
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return domain.NumberCell(n)
	}

	return domain.TextCell(value)
}
