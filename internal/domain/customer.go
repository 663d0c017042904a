package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column identifica uma das colunas semânticas do relatório de vendas
type Column string

const (
	ColumnCode     Column = "code"
	ColumnName     Column = "name"
	ColumnLastSale Column = "last_sale"
	ColumnTotal    Column = "total"
)

// Customer é um cliente normalizado a partir de uma linha da planilha
type Customer struct {
	Code       string
	Name       string
	LastSale   *time.Time // nil = nunca comprou
	TotalSpend decimal.Decimal
}

// HasLastSale indica se o cliente possui data de última venda
func (c Customer) HasLastSale() bool {
	return c.LastSale != nil
}

// CustomerTable é a tabela normalizada de clientes de um arquivo.
// Columns guarda apenas as colunas encontradas no cabeçalho.
type CustomerTable struct {
	Columns   map[Column]bool
	Customers []Customer
	HeaderRow int
}

// HasColumn indica se a coluna foi encontrada no cabeçalho da planilha
func (t *CustomerTable) HasColumn(column Column) bool {
	if t == nil || t.Columns == nil {
		return false
	}
	return t.Columns[column]
}

// Len retorna a quantidade de clientes da tabela
func (t *CustomerTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Customers)
}
