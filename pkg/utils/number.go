package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	currencySymbol    = "R$"
	thousandSeparator = "."
	decimalSeparator  = ","
)

// FormatCurrency formata um valor em reais com separador de milhar e duas casas (ex: R$ 1.234,56).
// A formatação parte da representação decimal exata, sem passar por float64.
func FormatCurrency(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		fixed = fixed[1:]
		if strings.Trim(fixed, "0.") != "" {
			sign = "-"
		}
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return currencySymbol + " " + sign + groupThousands(intPart) + decimalSeparator + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseAmount interpreta valores monetários escritos em formato brasileiro ou internacional.
// Aceita "1234.56", "1.234,56", "1234,56" e "R$ 1.234,56".
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, currencySymbol)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if s == "" {
		return decimal.Zero, false
	}

	// Com vírgula, o formato é brasileiro: ponto é milhar e vírgula é decimal
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	return value, true
}
