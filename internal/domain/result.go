package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

const (
	// NeverPurchasedLabel é exibido no lugar da data para clientes sem compras
	NeverPurchasedLabel = "Nunca comprou"
	// NotApplicableLabel é exibido quando não há valor a mostrar
	NotApplicableLabel = "-"
)

// DaysInactive é a quantidade de dias sem compras; sem data é serializado como "-"
type DaysInactive struct {
	Days  int
	Valid bool
}

func (d DaysInactive) String() string {
	if !d.Valid {
		return NotApplicableLabel
	}
	return strconv.Itoa(d.Days)
}

func (d DaysInactive) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte(strconv.Quote(NotApplicableLabel)), nil
	}
	return []byte(strconv.Itoa(d.Days)), nil
}

// UnmarshalJSON aceita o número de dias, "-" ou null
func (d *DaysInactive) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*d = DaysInactive{}
		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		s, err := strconv.Unquote(string(raw))
		if err != nil {
			return fmt.Errorf("dias_inativo inválido: %s", raw)
		}
		if s == NotApplicableLabel || s == "" {
			*d = DaysInactive{}
			return nil
		}
		raw = []byte(s)
	}

	days, err := strconv.Atoi(string(raw))
	if err != nil {
		return fmt.Errorf("dias_inativo inválido: %s", data)
	}
	*d = DaysInactive{Days: days, Valid: true}
	return nil
}

// OutputRecord é o cliente no formato de saída da análise
type OutputRecord struct {
	Code         string       `json:"codigo"`
	Name         string       `json:"nome"`
	LastSale     string       `json:"ultima_venda"`
	DaysInactive DaysInactive `json:"dias_inativo"`
	Total        string       `json:"total"`
}

// FilterResult é o resultado de uma análise de clientes
type FilterResult struct {
	Total             int            `json:"total"`
	FilterDescription string         `json:"filter_description"`
	Customers         []OutputRecord `json:"clientes"`
}

// LedgerSummary é o resumo exibido na pré-visualização da planilha
type LedgerSummary struct {
	TotalCustomers int    `json:"total_clientes"`
	TotalSpend     string `json:"valor_total"`
	FirstSale      string `json:"primeira_venda"`
	LastSale       string `json:"ultima_venda"`
	NeverPurchased int    `json:"nunca_compraram"`
}
