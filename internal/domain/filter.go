package domain

import "time"

// Tipos de filtro aceitos na requisição
const (
	FilterTypeDays   = "days"
	FilterTypeMonths = "months"
	FilterTypeCustom = "custom"
)

// FilterRule é a regra temporal aplicada sobre a data da última venda.
// As implementações são fechadas a este pacote.
type FilterRule interface {
	filterRule()
}

// NeverPurchased seleciona clientes sem data de última venda
type NeverPurchased struct{}

// DaysOpenRange seleciona clientes inativos há MinDays dias ou mais
type DaysOpenRange struct {
	MinDays int
}

// DaysClosedRange seleciona clientes inativos entre MinDays e MaxDays dias
type DaysClosedRange struct {
	MinDays int
	MaxDays int
}

// MonthsRule seleciona clientes cuja última venda não caiu em nenhum dos meses informados
type MonthsRule struct {
	Months []time.Month
}

// CustomDateRange seleciona clientes que compraram dentro do período (inclusive)
type CustomDateRange struct {
	Start time.Time
	End   time.Time
}

func (NeverPurchased) filterRule()  {}
func (DaysOpenRange) filterRule()   {}
func (DaysClosedRange) filterRule() {}
func (MonthsRule) filterRule()      {}
func (CustomDateRange) filterRule() {}

// FilterSpec descreve o filtro de uma análise.
// IncludeMissingDates só é considerado nos filtros por faixa de dias.
type FilterSpec struct {
	Rule                FilterRule
	IncludeMissingDates bool
}
