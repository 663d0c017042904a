package analyzing

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
)

func TestApply_Cenarios(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.FilterSpec
		expected []string
	}{
		{
			name:     "Nunca compraram",
			spec:     domain.FilterSpec{Rule: domain.NeverPurchased{}},
			expected: []string{"B"},
		},
		{
			name:     "Nunca compraram ignora o sem data",
			spec:     domain.FilterSpec{Rule: domain.NeverPurchased{}, IncludeMissingDates: true},
			expected: []string{"B"},
		},
		{
			name:     "Inativos há 20+ dias",
			spec:     domain.FilterSpec{Rule: domain.DaysOpenRange{MinDays: 20}},
			expected: []string{"A", "C"},
		},
		{
			name:     "Inativos há 22+ dias inclui o limite",
			spec:     domain.FilterSpec{Rule: domain.DaysOpenRange{MinDays: 22}},
			expected: []string{"A", "C"},
		},
		{
			name:     "Inativos há 23+ dias",
			spec:     domain.FilterSpec{Rule: domain.DaysOpenRange{MinDays: 23}},
			expected: []string{"C"},
		},
		{
			name:     "Inativos há 20+ dias incluindo sem data",
			spec:     domain.FilterSpec{Rule: domain.DaysOpenRange{MinDays: 20}, IncludeMissingDates: true},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "Inativos entre 0 e 30 dias",
			spec:     domain.FilterSpec{Rule: domain.DaysClosedRange{MinDays: 0, MaxDays: 30}},
			expected: []string{"A"},
		},
		{
			name:     "Inativos entre 0 e 30 dias incluindo sem data",
			spec:     domain.FilterSpec{Rule: domain.DaysClosedRange{MinDays: 0, MaxDays: 30}, IncludeMissingDates: true},
			expected: []string{"A", "B"},
		},
		{
			name:     "Inativos entre 31 e 60 dias",
			spec:     domain.FilterSpec{Rule: domain.DaysClosedRange{MinDays: 31, MaxDays: 60}},
			expected: []string{},
		},
		{
			name:     "Meses janeiro e junho",
			spec:     domain.FilterSpec{Rule: domain.MonthsRule{Months: []time.Month{time.January, time.June}}},
			expected: []string{"B"},
		},
		{
			name:     "Meses ignora a opção sem data",
			spec:     domain.FilterSpec{Rule: domain.MonthsRule{Months: []time.Month{time.January, time.June}}, IncludeMissingDates: true},
			expected: []string{"B"},
		},
		{
			name:     "Meses fevereiro",
			spec:     domain.FilterSpec{Rule: domain.MonthsRule{Months: []time.Month{time.February}}},
			expected: []string{"A", "B", "C"},
		},
		{
			name: "Período de 2020",
			spec: domain.FilterSpec{Rule: domain.CustomDateRange{
				Start: time.Date(2020, 1, 1, 0, 0, 0, 0, testLoc),
				End:   time.Date(2020, 12, 31, 0, 0, 0, 0, testLoc),
			}},
			expected: []string{"C"},
		},
		{
			name: "Período termina no dia da compra",
			spec: domain.FilterSpec{Rule: domain.CustomDateRange{
				Start: time.Date(2024, 1, 1, 0, 0, 0, 0, testLoc),
				End:   time.Date(2024, 1, 10, 0, 0, 0, 0, testLoc),
			}},
			expected: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, err := Apply(scenarioTable(), tt.spec, testToday)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, codes(matched))
		})
	}
}

func TestApply_HorarioDaUltimaVendaIgnorado(t *testing.T) {
	lastSale := time.Date(2024, 1, 10, 23, 59, 0, 0, testLoc)
	table := &domain.CustomerTable{Customers: []domain.Customer{{Code: "A", LastSale: &lastSale}}}

	matched, err := Apply(table, domain.FilterSpec{Rule: domain.DaysOpenRange{MinDays: 22}}, testToday)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, codes(matched))

	inRange, err := Apply(table, domain.FilterSpec{Rule: domain.CustomDateRange{
		Start: time.Date(2024, 1, 10, 0, 0, 0, 0, testLoc),
		End:   time.Date(2024, 1, 10, 0, 0, 0, 0, testLoc),
	}}, testToday)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, codes(inRange))
}

func TestApply_SemDataSoEntraQuandoPermitido(t *testing.T) {
	table := scenarioTable()
	withoutDate := map[string]bool{"B": true}

	specs := []domain.FilterSpec{
		{Rule: domain.DaysOpenRange{MinDays: 0}},
		{Rule: domain.DaysClosedRange{MinDays: 0, MaxDays: 10000}},
		{Rule: domain.CustomDateRange{
			Start: time.Date(1900, 1, 1, 0, 0, 0, 0, testLoc),
			End:   time.Date(2100, 1, 1, 0, 0, 0, 0, testLoc),
		}},
	}

	for _, spec := range specs {
		matched, err := Apply(table, spec, testToday)
		require.NoError(t, err)
		for _, c := range matched {
			assert.False(t, withoutDate[c.Code], "%T não deveria incluir clientes sem data", spec.Rule)
		}
	}
}

func TestApply_FaixasAbertaEFechadaParticionam(t *testing.T) {
	customers := make([]domain.Customer, 0, 120)
	for i := 0; i < 120; i++ {
		customers = append(customers, domain.Customer{
			Code:       fmt.Sprintf("C%03d", i),
			LastSale:   datePtr(2024, time.February, 1-i),
			TotalSpend: decimal.Zero,
		})
	}
	customers = append(customers, domain.Customer{Code: "sem-data"})
	table := &domain.CustomerTable{Customers: customers}

	for _, minDays := range []int{1, 7, 30, 90, 119} {
		open, err := Apply(table, domain.FilterSpec{Rule: domain.DaysOpenRange{MinDays: minDays}}, testToday)
		require.NoError(t, err)
		closed, err := Apply(table, domain.FilterSpec{Rule: domain.DaysClosedRange{MinDays: 0, MaxDays: minDays - 1}}, testToday)
		require.NoError(t, err)

		seen := make(map[string]int)
		for _, c := range open {
			seen[c.Code]++
		}
		for _, c := range closed {
			seen[c.Code]++
		}

		assert.Len(t, seen, 120, "min=%d: todos os clientes com data devem aparecer", minDays)
		for code, count := range seen {
			assert.Equal(t, 1, count, "min=%d: cliente %s apareceu %d vezes", minDays, code, count)
		}
	}
}

func TestApply_Idempotente(t *testing.T) {
	table := scenarioTable()
	spec := domain.FilterSpec{Rule: domain.DaysOpenRange{MinDays: 20}, IncludeMissingDates: true}

	first, err := Apply(table, spec, testToday)
	require.NoError(t, err)
	second, err := Apply(table, spec, testToday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t,
		FormatResult(first, Describe(spec), testToday),
		FormatResult(second, Describe(spec), testToday),
	)
}

func TestApply_FiltroAusente(t *testing.T) {
	_, err := Apply(scenarioTable(), domain.FilterSpec{}, testToday)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestApply_TabelaVazia(t *testing.T) {
	matched, err := Apply(nil, domain.FilterSpec{Rule: domain.NeverPurchased{}}, testToday)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.FilterSpec
		expected string
	}{
		{
			name:     "Nunca compraram",
			spec:     domain.FilterSpec{Rule: domain.NeverPurchased{}},
			expected: "nunca compraram",
		},
		{
			name:     "Faixa aberta",
			spec:     domain.FilterSpec{Rule: domain.DaysOpenRange{MinDays: 181}},
			expected: "inativos há 181+ dias",
		},
		{
			name:     "Faixa aberta incluindo sem data",
			spec:     domain.FilterSpec{Rule: domain.DaysOpenRange{MinDays: 181}, IncludeMissingDates: true},
			expected: "inativos há 181+ dias (incluindo sem data)",
		},
		{
			name:     "Faixa fechada incluindo sem data",
			spec:     domain.FilterSpec{Rule: domain.DaysClosedRange{MinDays: 31, MaxDays: 60}, IncludeMissingDates: true},
			expected: "inativos há 31-60 dias (incluindo sem data)",
		},
		{
			name:     "Meses",
			spec:     domain.FilterSpec{Rule: domain.MonthsRule{Months: []time.Month{time.January, time.March, time.December}}},
			expected: "meses: Janeiro, Março, Dezembro",
		},
		{
			name: "Período personalizado",
			spec: domain.FilterSpec{Rule: domain.CustomDateRange{
				Start: time.Date(2020, 1, 1, 0, 0, 0, 0, testLoc),
				End:   time.Date(2020, 12, 31, 0, 0, 0, 0, testLoc),
			}},
			expected: "compraram entre 01/01/2020 e 31/12/2020",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Describe(tt.spec))
		})
	}
}
