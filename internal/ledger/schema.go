// Package ledger lê o relatório de vendas exportado em planilha e o normaliza em uma
// tabela de clientes. A posição do cabeçalho não é fixa: ela é descoberta nas primeiras linhas.
package ledger

import (
	"strings"
	"unicode"

	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultHeaderSearchLimit é a quantidade de linhas varridas na busca do cabeçalho
const DefaultHeaderSearchLimit = 50

// Schema define os nomes das colunas do relatório de vendas
type Schema struct {
	Code     string
	Name     string
	LastSale string
	Total    string
}

// DefaultSchema retorna as colunas do relatório de clientes do ERP
func DefaultSchema() Schema {
	return Schema{
		Code:     "CÓDIGO",
		Name:     "NOME FANTASIA",
		LastSale: "ÚLTIMA VENDA",
		Total:    "TOTAL",
	}
}

// WithDefaults preenche as colunas em branco com os nomes do DefaultSchema
func (s Schema) WithDefaults() Schema {
	d := DefaultSchema()
	if strings.TrimSpace(s.Code) == "" {
		s.Code = d.Code
	}
	if strings.TrimSpace(s.Name) == "" {
		s.Name = d.Name
	}
	if strings.TrimSpace(s.LastSale) == "" {
		s.LastSale = d.LastSale
	}
	if strings.TrimSpace(s.Total) == "" {
		s.Total = d.Total
	}
	return s
}

func (s Schema) normalized() Schema {
	return Schema{
		Code:     NormalizeHeader(s.Code),
		Name:     NormalizeHeader(s.Name),
		LastSale: NormalizeHeader(s.LastSale),
		Total:    NormalizeHeader(s.Total),
	}
}

func (s Schema) columns() map[string]domain.Column {
	n := s.normalized()
	return map[string]domain.Column{
		n.Code:     domain.ColumnCode,
		n.Name:     domain.ColumnName,
		n.LastSale: domain.ColumnLastSale,
		n.Total:    domain.ColumnTotal,
	}
}

// NormalizeHeader normaliza o nome de uma coluna para comparação:
// sem acentos, em maiúsculas e com espaços internos colapsados.
func NormalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToUpper(stripped)), " ")
}
