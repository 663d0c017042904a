package ledger

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// maior número serial aceito pelo Excel (31/12/9999)
const maxExcelSerial = 2958465

// O ERP exporta datas no padrão brasileiro, então DD/MM/YYYY tem prioridade
var dayFirstLayouts = []string{
	"2/1/2006",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
}

// DateNormalizer converte o valor de uma célula em data.
// Datas inválidas viram "ausente" (nunca comprou) em vez de interromper a leitura.
type DateNormalizer struct {
	loc *time.Location
}

func NewDateNormalizer(loc *time.Location) DateNormalizer {
	if loc == nil {
		loc = time.UTC
	}
	return DateNormalizer{loc: loc}
}

// Normalize retorna a data da célula e false quando ela é ausente ou não interpretável
func (n DateNormalizer) Normalize(cell domain.Cell) (time.Time, bool) {
	switch cell.Kind {
	case domain.CellTimestamp:
		return cell.Time, true
	case domain.CellNumber:
		return n.fromSerial(cell.Number)
	case domain.CellText:
		return n.fromText(cell.Text)
	default:
		return time.Time{}, false
	}
}

func (n DateNormalizer) fromSerial(serial float64) (time.Time, bool) {
	if serial <= 0 || serial > maxExcelSerial {
		return time.Time{}, false
	}

	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}

	return n.inLocation(t), true
}

func (n DateNormalizer) fromText(raw string) (date time.Time, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.ParseInLocation(layout, s, n.loc); err == nil {
			return t, true
		}
	}

	// dateparse pode entrar em pânico com entradas muito malformadas
	defer func() {
		if r := recover(); r != nil {
			date, ok = time.Time{}, false
		}
	}()

	t, err := dateparse.ParseIn(s, n.loc)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func (n DateNormalizer) inLocation(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, n.loc)
}
