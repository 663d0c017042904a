package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    decimal.Decimal
		expected string
	}{
		{"Zero", decimal.Zero, "R$ 0,00"},
		{"Valor simples", decimal.NewFromInt(100), "R$ 100,00"},
		{"Separador de milhar", decimal.RequireFromString("1234.56"), "R$ 1.234,56"},
		{"Milhões", decimal.RequireFromString("1234567.891"), "R$ 1.234.567,89"},
		{"Arredondamento da segunda casa", decimal.RequireFromString("0.005"), "R$ 0,01"},
		{"Exatamente três dígitos", decimal.NewFromInt(999), "R$ 999,00"},
		{"Negativo", decimal.RequireFromString("-1234.5"), "R$ -1.234,50"},
		{"Negativo que arredonda para zero", decimal.RequireFromString("-0.001"), "R$ 0,00"},
		{"Além da precisão de float64", decimal.RequireFromString("12345678901234567.89"), "R$ 12.345.678.901.234.567,89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"Formato internacional", "1234.56", "1234.56", true},
		{"Formato brasileiro", "1.234,56", "1234.56", true},
		{"Vírgula decimal", "50,5", "50.5", true},
		{"Com símbolo", "R$ 1.234,56", "1234.56", true},
		{"Vazio", "  ", "0", false},
		{"Texto", "abc", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	today := time.Date(2024, 2, 1, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, 22, DaysBetween(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), today))
	assert.Equal(t, 0, DaysBetween(time.Date(2024, 2, 1, 23, 59, 0, 0, time.UTC), today))
	assert.Equal(t, -1, DaysBetween(time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), today))
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2020-12-31", time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, "31/12/2020", FormatDate(d))

	_, err = ParseDate("31/12/2020", time.UTC)
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, idLength)
	for _, r := range id {
		assert.Contains(t, idAlphabet, string(r))
	}
}

func TestPrettyJSON(t *testing.T) {
	out, err := PrettyJSON(map[string]int{"total": 2})
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"total\": 2\n}", out)

	_, err = PrettyJSON(failingJSON{})
	assert.Error(t, err)
}

type failingJSON struct{}

func (failingJSON) MarshalJSON() ([]byte, error) {
	return nil, errors.New("falha ao serializar")
}
