package analyzing

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/pkg/utils"
)

const includeMissingSuffix = " (incluindo sem data)"

var monthNames = map[time.Month]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// Apply devolve os clientes que satisfazem o filtro, na ordem da planilha.
// today define o fuso usado nas comparações de data de calendário.
func Apply(table *domain.CustomerTable, spec domain.FilterSpec, today time.Time) ([]domain.Customer, error) {
	if spec.Rule == nil {
		return nil, newValidationError(fieldFilterType, "", "filtro não informado")
	}

	match, err := matcher(spec, today)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Customer, 0)
	if table == nil {
		return matched, nil
	}

	for _, customer := range table.Customers {
		if match(customer) {
			matched = append(matched, customer)
		}
	}

	return matched, nil
}

func matcher(spec domain.FilterSpec, today time.Time) (func(domain.Customer) bool, error) {
	loc := today.Location()

	inactiveDays := func(c domain.Customer) int {
		return utils.DaysBetween(c.LastSale.In(loc), today)
	}

	switch rule := spec.Rule.(type) {
	case domain.NeverPurchased:
		return func(c domain.Customer) bool {
			return !c.HasLastSale()
		}, nil

	case domain.DaysOpenRange:
		return func(c domain.Customer) bool {
			if !c.HasLastSale() {
				return spec.IncludeMissingDates
			}
			return inactiveDays(c) >= rule.MinDays
		}, nil

	case domain.DaysClosedRange:
		return func(c domain.Customer) bool {
			if !c.HasLastSale() {
				return spec.IncludeMissingDates
			}
			days := inactiveDays(c)
			return days >= rule.MinDays && days <= rule.MaxDays
		}, nil

	case domain.MonthsRule:
		selected := make(map[time.Month]bool, len(rule.Months))
		for _, m := range rule.Months {
			selected[m] = true
		}
		// Sem data sempre entra, independente de IncludeMissingDates
		return func(c domain.Customer) bool {
			if !c.HasLastSale() {
				return true
			}
			return !selected[c.LastSale.In(loc).Month()]
		}, nil

	case domain.CustomDateRange:
		endExclusive := rule.End.AddDate(0, 0, 1)
		return func(c domain.Customer) bool {
			if !c.HasLastSale() {
				return false
			}
			return !c.LastSale.Before(rule.Start) && c.LastSale.Before(endExclusive)
		}, nil

	default:
		return nil, newValidationError(fieldFilterType, fmt.Sprintf("%T", spec.Rule), "filtro desconhecido")
	}
}

// Describe gera a descrição do filtro exibida junto ao resultado
func Describe(spec domain.FilterSpec) string {
	suffix := ""
	if spec.IncludeMissingDates {
		suffix = includeMissingSuffix
	}

	switch rule := spec.Rule.(type) {
	case domain.NeverPurchased:
		return "nunca compraram"
	case domain.DaysOpenRange:
		return fmt.Sprintf("inativos há %d+ dias%s", rule.MinDays, suffix)
	case domain.DaysClosedRange:
		return fmt.Sprintf("inativos há %d-%d dias%s", rule.MinDays, rule.MaxDays, suffix)
	case domain.MonthsRule:
		names := make([]string, 0, len(rule.Months))
		for _, m := range rule.Months {
			names = append(names, monthNames[m])
		}
		return "meses: " + strings.Join(names, ", ")
	case domain.CustomDateRange:
		return fmt.Sprintf("compraram entre %s e %s", utils.FormatDate(rule.Start), utils.FormatDate(rule.End))
	default:
		return ""
	}
}
