package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer-inactivity-api/pkg/apiErrors"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
	"github.com/vfg2006/customer-inactivity-api/pkg/middleware"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Login(req.Username, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("user_name", req.Username).Warn("login: falha na autenticação")
			handleLoginError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

// GetMe retorna o operador autenticado
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"username":   claims.Username,
			"expires_at": claims.ExpiresAt,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Message, nil)
		return
	}

	switch {
	case authenticating.IsCredentialsError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrAuthDisabled):
		apiErrors.WriteError(w, apiErrors.ErrAuthDisabled, "Autenticação não está habilitada", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
