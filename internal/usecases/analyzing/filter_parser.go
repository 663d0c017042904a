package analyzing

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/pkg/utils"
)

const (
	fieldFilterType    = "filter_type"
	fieldFilterValue   = "filter_value"
	fieldIncludeNoDate = "include_no_date"

	neverValue     = "never"
	customRangeSep = "|"
)

// ParseFilter valida os parâmetros da requisição e monta o filtro tipado.
// Nenhuma planilha é lida antes dessa validação.
func ParseFilter(filterType, filterValue, includeNoDate string, loc *time.Location) (domain.FilterSpec, error) {
	include, err := parseIncludeNoDate(includeNoDate)
	if err != nil {
		return domain.FilterSpec{}, err
	}

	value := strings.TrimSpace(filterValue)

	var rule domain.FilterRule
	switch strings.ToLower(strings.TrimSpace(filterType)) {
	case domain.FilterTypeDays:
		rule, err = parseDaysRule(value)
	case domain.FilterTypeMonths:
		rule, err = parseMonthsRule(value)
	case domain.FilterTypeCustom:
		rule, err = parseCustomRule(value, loc)
	default:
		err = newValidationError(fieldFilterType, filterType, "tipo de filtro desconhecido")
	}
	if err != nil {
		return domain.FilterSpec{}, err
	}

	return domain.FilterSpec{Rule: rule, IncludeMissingDates: include}, nil
}

func parseIncludeNoDate(raw string) (bool, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false, nil
	}

	include, err := strconv.ParseBool(s)
	if err != nil {
		return false, newValidationError(fieldIncludeNoDate, raw, "esperado true ou false")
	}

	return include, nil
}

func parseDaysRule(value string) (domain.FilterRule, error) {
	switch {
	case value == neverValue:
		return domain.NeverPurchased{}, nil

	case strings.HasSuffix(value, "+"):
		minDays, err := parseDays(strings.TrimSuffix(value, "+"), value)
		if err != nil {
			return nil, err
		}
		return domain.DaysOpenRange{MinDays: minDays}, nil

	case strings.Contains(value, "-"):
		parts := strings.Split(value, "-")
		if len(parts) != 2 {
			return nil, newValidationError(fieldFilterValue, value, "faixa deve ter o formato MIN-MAX")
		}

		minDays, err := parseDays(parts[0], value)
		if err != nil {
			return nil, err
		}
		maxDays, err := parseDays(parts[1], value)
		if err != nil {
			return nil, err
		}
		if minDays > maxDays {
			return nil, newValidationError(fieldFilterValue, value, "mínimo maior que o máximo")
		}
		return domain.DaysClosedRange{MinDays: minDays, MaxDays: maxDays}, nil

	default:
		return nil, newValidationError(fieldFilterValue, value, "esperado never, N+ ou MIN-MAX")
	}
}

func parseDays(raw, value string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newValidationError(fieldFilterValue, value, "quantidade de dias não numérica")
	}
	if days < 0 {
		return 0, newValidationError(fieldFilterValue, value, "quantidade de dias negativa")
	}
	return days, nil
}

func parseMonthsRule(value string) (domain.FilterRule, error) {
	if value == "" {
		return nil, newValidationError(fieldFilterValue, value, "nenhum mês informado")
	}

	seen := make(map[time.Month]bool)
	months := make([]time.Month, 0, 12)
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, newValidationError(fieldFilterValue, value, "mês não numérico")
		}
		if n < 1 || n > 12 {
			return nil, newValidationError(fieldFilterValue, value, "mês fora do intervalo 1-12")
		}

		month := time.Month(n)
		if seen[month] {
			continue
		}
		seen[month] = true
		months = append(months, month)
	}

	return domain.MonthsRule{Months: months}, nil
}

func parseCustomRule(value string, loc *time.Location) (domain.FilterRule, error) {
	parts := strings.Split(value, customRangeSep)
	if len(parts) != 2 {
		return nil, newValidationError(fieldFilterValue, value, "esperado YYYY-MM-DD|YYYY-MM-DD")
	}

	start, err := utils.ParseDate(strings.TrimSpace(parts[0]), loc)
	if err != nil {
		return nil, newValidationError(fieldFilterValue, value, "data inicial inválida")
	}
	end, err := utils.ParseDate(strings.TrimSpace(parts[1]), loc)
	if err != nil {
		return nil, newValidationError(fieldFilterValue, value, "data final inválida")
	}
	if start.After(end) {
		return nil, newValidationError(fieldFilterValue, value, "data inicial depois da data final")
	}

	return domain.CustomDateRange{Start: start, End: end}, nil
}
