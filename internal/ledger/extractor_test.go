package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor(DefaultSchema(), NewDateNormalizer(time.UTC))

	rows := []domain.RawRow{
		{domain.TextCell("Relatório gerado em 01/02/2024")},
		headerRow(),
		{domain.TextCell("A"), domain.TextCell("Ótica A"), domain.TextCell("10/01/2024"), domain.NumberCell(100)},
		{domain.AbsentCell(), domain.TextCell(""), domain.AbsentCell(), domain.AbsentCell()},
		{domain.TextCell("B"), domain.TextCell("Ótica B"), domain.AbsentCell(), domain.TextCell("R$ 1.234,56")},
		{domain.NumberCell(3), domain.TextCell("Ótica C"), domain.TextCell("abc"), domain.TextCell("xyz")},
	}

	table := extractor.Extract(rows, 1)

	require.Equal(t, 3, table.Len())
	assert.Equal(t, 1, table.HeaderRow)
	assert.True(t, table.HasColumn(domain.ColumnCode))
	assert.True(t, table.HasColumn(domain.ColumnName))
	assert.True(t, table.HasColumn(domain.ColumnLastSale))
	assert.True(t, table.HasColumn(domain.ColumnTotal))

	a := table.Customers[0]
	assert.Equal(t, "A", a.Code)
	assert.Equal(t, "Ótica A", a.Name)
	require.NotNil(t, a.LastSale)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *a.LastSale)
	assert.True(t, decimal.NewFromInt(100).Equal(a.TotalSpend))

	b := table.Customers[1]
	assert.Nil(t, b.LastSale)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(b.TotalSpend))

	c := table.Customers[2]
	assert.Equal(t, "3", c.Code)
	assert.Nil(t, c.LastSale, "data inválida deve virar ausente")
	assert.True(t, c.TotalSpend.IsZero(), "total inválido deve virar zero")
}

func TestExtractor_ColunasAusentes(t *testing.T) {
	extractor := NewExtractor(DefaultSchema(), NewDateNormalizer(time.UTC))

	rows := []domain.RawRow{
		{domain.TextCell("CÓDIGO"), domain.TextCell("NOME FANTASIA"), domain.TextCell("CIDADE")},
		{domain.TextCell("A"), domain.TextCell("Ótica A"), domain.TextCell("Recife")},
	}

	table := extractor.Extract(rows, 0)

	require.Equal(t, 1, table.Len())
	assert.False(t, table.HasColumn(domain.ColumnLastSale))
	assert.False(t, table.HasColumn(domain.ColumnTotal))
	assert.Nil(t, table.Customers[0].LastSale)
	assert.True(t, table.Customers[0].TotalSpend.IsZero())
}

func TestExtractor_CabecalhoForaDoIntervalo(t *testing.T) {
	extractor := NewExtractor(DefaultSchema(), NewDateNormalizer(time.UTC))

	table := extractor.Extract([]domain.RawRow{headerRow()}, 5)

	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Columns)
}
