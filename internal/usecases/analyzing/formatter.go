package analyzing

import (
	"time"

	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/pkg/utils"
)

// FormatResult converte os clientes filtrados para o formato de saída
func FormatResult(customers []domain.Customer, description string, today time.Time) *domain.FilterResult {
	records := make([]domain.OutputRecord, 0, len(customers))
	for _, c := range customers {
		records = append(records, formatCustomer(c, today))
	}

	return &domain.FilterResult{
		Total:             len(records),
		FilterDescription: description,
		Customers:         records,
	}
}

func formatCustomer(c domain.Customer, today time.Time) domain.OutputRecord {
	record := domain.OutputRecord{
		Code:     c.Code,
		Name:     c.Name,
		LastSale: domain.NeverPurchasedLabel,
		Total:    utils.FormatCurrency(c.TotalSpend),
	}

	if c.HasLastSale() {
		last := c.LastSale.In(today.Location())
		record.LastSale = utils.FormatDate(last)
		record.DaysInactive = domain.DaysInactive{
			Days:  utils.DaysBetween(last, today),
			Valid: true,
		}
	}

	return record
}
