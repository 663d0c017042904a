package analyzing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
)

var (
	testLoc   = time.UTC
	testToday = time.Date(2024, 2, 1, 10, 30, 0, 0, testLoc)
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, testLoc)
	return &t
}

// scenarioTable é a tabela de referência: A comprou há 22 dias, B nunca comprou e C comprou em 2020
func scenarioTable() *domain.CustomerTable {
	return &domain.CustomerTable{
		Columns: map[domain.Column]bool{
			domain.ColumnCode:     true,
			domain.ColumnName:     true,
			domain.ColumnLastSale: true,
			domain.ColumnTotal:    true,
		},
		Customers: []domain.Customer{
			{Code: "A", Name: "Ótica A", LastSale: datePtr(2024, time.January, 10), TotalSpend: decimal.NewFromInt(100)},
			{Code: "B", Name: "Ótica B", TotalSpend: decimal.Zero},
			{Code: "C", Name: "Ótica C", LastSale: datePtr(2020, time.June, 1), TotalSpend: decimal.NewFromInt(50)},
		},
	}
}

func codes(customers []domain.Customer) []string {
	result := make([]string, 0, len(customers))
	for _, c := range customers {
		result = append(result, c.Code)
	}
	return result
}
