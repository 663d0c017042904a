package analyzing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/pkg/utils"
)

// BuildSummary calcula o resumo da planilha para a pré-visualização
func BuildSummary(table *domain.CustomerTable) domain.LedgerSummary {
	summary := domain.LedgerSummary{
		TotalSpend: utils.FormatCurrency(decimal.Zero),
		FirstSale:  domain.NotApplicableLabel,
		LastSale:   domain.NotApplicableLabel,
	}
	if table == nil {
		return summary
	}

	total := decimal.Zero
	var first, last *time.Time
	for _, c := range table.Customers {
		total = total.Add(c.TotalSpend)

		if !c.HasLastSale() {
			summary.NeverPurchased++
			continue
		}
		if first == nil || c.LastSale.Before(*first) {
			first = c.LastSale
		}
		if last == nil || c.LastSale.After(*last) {
			last = c.LastSale
		}
	}

	summary.TotalCustomers = table.Len()
	summary.TotalSpend = utils.FormatCurrency(total)
	if first != nil {
		summary.FirstSale = utils.FormatDate(*first)
	}
	if last != nil {
		summary.LastSale = utils.FormatDate(*last)
	}

	return summary
}
