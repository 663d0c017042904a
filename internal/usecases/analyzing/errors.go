package analyzing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/customer-inactivity-api/internal/ledger"
)

// Erros específicos para o contexto de análise
var (
	// Erros de validação
	ErrInvalidFilter     = errors.New("filtro inválido")
	ErrUnsupportedFormat = ledger.ErrUnsupportedFormat
	ErrInvalidExport     = errors.New("formato de exportação inválido")

	// Erros de leitura
	ErrReadLedger = errors.New("erro ao ler planilha")
)

// ValidationError descreve qual parâmetro do filtro é inválido
type ValidationError struct {
	Field  string // Parâmetro da requisição
	Value  string // Valor recebido
	Reason string // Motivo da rejeição
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%q: %s", ErrInvalidFilter.Error(), e.Field, e.Value, e.Reason)
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return ErrInvalidFilter
}

func newValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}
