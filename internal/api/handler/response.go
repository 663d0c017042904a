package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-inactivity-api/pkg/apiErrors"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("response: erro ao enviar resposta")
	}
}

// writeInternalError registra a falha completa e devolve uma mensagem genérica.
// O texto do erro só vai para o cliente em desenvolvimento.
func writeInternalError(w http.ResponseWriter, r *http.Request, area string, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Errorf("%s: %s", area, message)

	var details any
	if log.IsDevelopment() {
		details = err.Error()
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, details)
}

// writeAnalysisError traduz os erros do serviço de análise para a resposta HTTP
func writeAnalysisError(w http.ResponseWriter, r *http.Request, area string, err error) {
	var validationErr *analyzing.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeFilterError(w, validationErr)
	case errors.Is(err, analyzing.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de arquivo não suportado. Use .xlsx ou .xls", nil)
	default:
		writeInternalError(w, r, area, err, "Erro ao processar arquivo")
	}
}

func writeFilterError(w http.ResponseWriter, err *analyzing.ValidationError) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Parâmetros de filtro inválidos", map[string]string{
		"field":  err.Field,
		"value":  err.Value,
		"reason": err.Reason,
	})
}

// NotFound responde caminhos sem rota no formato padrão de erro
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
}

// MethodNotAllowed responde métodos não suportados por uma rota existente
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]string{"method": r.Method})
	})
}
