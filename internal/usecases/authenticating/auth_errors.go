package authenticating

import (
	"errors"

	"github.com/vfg2006/customer-inactivity-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrAuthDisabled        = errors.New("autenticação desabilitada")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

// AuthError associa a causa de uma falha de login ao código da API e à mensagem exibida ao usuário.
// A causa nunca vai para a resposta HTTP.
type AuthError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError cria um erro de login com código da API
func NewAuthError(code, message string, cause error) *AuthError {
	return &AuthError{Code: code, Message: message, Cause: cause}
}

func disabledError() *AuthError {
	return NewAuthError(apiErrors.ErrAuthDisabled, "Autenticação não está habilitada", ErrAuthDisabled)
}

func credentialsError(message string, cause error) *AuthError {
	return NewAuthError(apiErrors.ErrInvalidCredentials, message, cause)
}

// IsCredentialsError indica falha por usuário ou senha, ausentes ou incorretos
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrMissingRequiredData)
}
