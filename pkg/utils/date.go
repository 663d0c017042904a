package utils

import "time"

const (
	// DisplayDateLayout é o formato de data exibido ao usuário (DD/MM/YYYY)
	DisplayDateLayout = "02/01/2006"
	// ISODateLayout é o formato de data aceito nos parâmetros de filtro
	ISODateLayout = time.DateOnly
)

// ParseDate interpreta uma data no formato YYYY-MM-DD no fuso informado
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(ISODateLayout, dateStr, loc)
}

// FormatDate formata a data no padrão brasileiro
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// DateOnly descarta o horário, mantendo o fuso da data
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween retorna a quantidade de dias de calendário entre from e to.
// Usa a data civil para não sofrer com horário de verão.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
