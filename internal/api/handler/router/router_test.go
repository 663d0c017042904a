package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tag(name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Chain", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	fallback := func(status int) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
	}

	r := New(
		WithRoutes(Route{Path: "/v1/analyze", Method: http.MethodPost, Handler: ok, Middlewares: []Middleware{tag("a"), tag("b")}}),
		WithNotFound(fallback(http.StatusTeapot)),
		WithMethodNotAllowed(fallback(http.StatusConflict)),
	)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedChain  string
	}{
		{name: "Rota com middlewares na ordem", method: http.MethodPost, path: "/v1/analyze", expectedStatus: http.StatusNoContent, expectedChain: "a,b"},
		{name: "Caminho inexistente", method: http.MethodGet, path: "/v1/nada", expectedStatus: http.StatusTeapot},
		{name: "Método não registrado", method: http.MethodGet, path: "/v1/analyze", expectedStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedChain, strings.Join(rec.Header().Values("X-Chain"), ","))
		})
	}
}
