package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/pkg/utils"
)

// Extractor monta a tabela de clientes a partir das linhas da planilha
type Extractor struct {
	schema Schema
	dates  DateNormalizer
}

func NewExtractor(schema Schema, dates DateNormalizer) *Extractor {
	return &Extractor{
		schema: schema,
		dates:  dates,
	}
}

// Extract usa a linha headerRow como cabeçalho e mantém apenas as colunas conhecidas que
// estiverem presentes. Colunas ausentes não geram erro: são omitidas da tabela.
func (e *Extractor) Extract(rows []domain.RawRow, headerRow int) *domain.CustomerTable {
	table := &domain.CustomerTable{
		Columns:   make(map[domain.Column]bool),
		Customers: make([]domain.Customer, 0),
		HeaderRow: headerRow,
	}

	if headerRow < 0 || headerRow >= len(rows) {
		return table
	}

	known := e.schema.columns()
	indexes := make(map[domain.Column]int)
	for idx, cell := range rows[headerRow] {
		column, ok := known[NormalizeHeader(cell.String())]
		if !ok {
			continue
		}
		// Em colunas repetidas vale a primeira ocorrência
		if _, exists := indexes[column]; !exists {
			indexes[column] = idx
			table.Columns[column] = true
		}
	}

	for _, row := range rows[headerRow+1:] {
		if isBlankRow(row, indexes) {
			continue
		}
		table.Customers = append(table.Customers, e.customerFromRow(row, indexes))
	}

	return table
}

func (e *Extractor) customerFromRow(row domain.RawRow, indexes map[domain.Column]int) domain.Customer {
	customer := domain.Customer{TotalSpend: decimal.Zero}

	if idx, ok := indexes[domain.ColumnCode]; ok {
		customer.Code = row.Cell(idx).String()
	}

	if idx, ok := indexes[domain.ColumnName]; ok {
		customer.Name = row.Cell(idx).String()
	}

	if idx, ok := indexes[domain.ColumnLastSale]; ok {
		if date, found := e.dates.Normalize(row.Cell(idx)); found {
			customer.LastSale = &date
		}
	}

	if idx, ok := indexes[domain.ColumnTotal]; ok {
		customer.TotalSpend = toAmount(row.Cell(idx))
	}

	return customer
}

// toAmount converte o total para número; valores ausentes ou inválidos viram zero
func toAmount(cell domain.Cell) decimal.Decimal {
	switch cell.Kind {
	case domain.CellNumber:
		return decimal.NewFromFloat(cell.Number)
	case domain.CellText:
		if value, ok := utils.ParseAmount(cell.Text); ok {
			return value
		}
	}
	return decimal.Zero
}

func isBlankRow(row domain.RawRow, indexes map[domain.Column]int) bool {
	if len(indexes) == 0 {
		return true
	}
	for _, idx := range indexes {
		if !row.Cell(idx).IsBlank() {
			return false
		}
	}
	return true
}
