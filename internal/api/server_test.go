package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-inactivity-api/infrastructure/storage"
	"github.com/vfg2006/customer-inactivity-api/internal/api/handler"
	"github.com/vfg2006/customer-inactivity-api/internal/config"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/internal/scheduler"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/authenticating"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestConfig(t *testing.T, authEnabled bool) *config.Config {
	t.Helper()

	hash, err := authenticating.HashPassword("segredo123")
	require.NoError(t, err)

	return &config.Config{
		Server:    config.Server{Host: "localhost", Port: "0"},
		Upload:    config.Upload{Dir: t.TempDir(), MaxSizeMB: 1, AllowedExtensions: []string{".xlsx", ".xls"}},
		Ledger:    config.Ledger{Timezone: "UTC", HeaderSearchLimit: 50},
		SecretKey: "chave-de-teste",
		Auth: config.Auth{
			Enabled:      authEnabled,
			Username:     "admin",
			PasswordHash: hash,
			TokenTTL:     time.Hour,
		},
		UploadCleanup: config.UploadCleanup{CronSchedule: "*/30 * * * *", MaxAge: time.Hour},
		Cors:          config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestHandler(t *testing.T, cfg *config.Config, analyzer *mocks.MockAnalyzer) http.Handler {
	t.Helper()

	store, err := storage.NewUploadStore(cfg.Upload.Dir, cfg.Upload.AllowedExtensions)
	require.NoError(t, err)

	cron := handler.CronJobServices{
		UploadCleanupService: scheduler.NewUploadCleanupService(store.Dir(), cfg),
	}

	return NewHandler(cfg, analyzer, store, authenticating.NewService(cfg), cron)
}

func TestNewHandler_Rotas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().History(gomock.Any(), 0).Return([]*domain.AnalysisRecord{}, nil)

	h := newTestHandler(t, newTestConfig(t, false), mockAnalyzer)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "Healthcheck", method: http.MethodGet, path: "/healthcheck", expectedStatus: http.StatusOK, expectedBody: `"status":"ok"`},
		{name: "Histórico", method: http.MethodGet, path: "/v1/analyses", expectedStatus: http.StatusOK, expectedBody: `"analises":[]`},
		{name: "Status das crons", method: http.MethodGet, path: "/v1/cron", expectedStatus: http.StatusOK, expectedBody: `"upload-cleanup"`},
		{name: "Limpeza manual", method: http.MethodPost, path: "/v1/cron/upload-cleanup/run", expectedStatus: http.StatusAccepted},
		{name: "Cron desconhecida", method: http.MethodPost, path: "/v1/cron/meta/run", expectedStatus: http.StatusBadRequest},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v1/nada", expectedStatus: http.StatusNotFound, expectedBody: `"code":"RES_001"`},
		{name: "Método não permitido", method: http.MethodGet, path: "/v1/analyze", expectedStatus: http.StatusMethodNotAllowed, expectedBody: `"code":"RES_002"`},
		{name: "Login com autenticação desabilitada", method: http.MethodPost, path: "/v1/login", expectedStatus: http.StatusNotFound, expectedBody: `"code":"AUTH_002"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.method == http.MethodPost {
				body = strings.NewReader(`{"username":"admin","password":"segredo123"}`)
			} else {
				body = strings.NewReader("")
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestNewHandler_Autenticacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().History(gomock.Any(), 5).Return([]*domain.AnalysisRecord{}, nil)

	h := newTestHandler(t, newTestConfig(t, true), mockAnalyzer)

	// Sem token
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analyses?limit=5", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"AUTH_003"`)

	// Healthcheck continua público
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// Login
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login",
		strings.NewReader(`{"username":"ADMIN","password":"segredo123"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var login domain.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, int64(3600), login.ExpiresIn)

	// Com token
	req := httptest.NewRequest(http.MethodGet, "/v1/analyses?limit=5", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)

	// Senha errada
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login",
		strings.NewReader(`{"username":"admin","password":"errada"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"AUTH_001"`)
}

func TestNewHandler_CorsPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newTestHandler(t, newTestConfig(t, true), mocks.NewMockAnalyzer(ctrl))

	req := httptest.NewRequest(http.MethodOptions, "/v1/analyze", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Disposition", rec.Header().Get("Access-Control-Expose-Headers"))
}

func TestNew_SemUploadStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig(t, false)
	_, err := New(cfg, mocks.NewMockAnalyzer(ctrl), nil, authenticating.NewService(cfg), nil)
	assert.Error(t, err)
}

func TestServer_RunEncerraComContextoCancelado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig(t, false)
	store, err := storage.NewUploadStore(cfg.Upload.Dir, cfg.Upload.AllowedExtensions)
	require.NoError(t, err)

	srv, err := New(cfg, mocks.NewMockAnalyzer(ctrl), store, authenticating.NewService(cfg), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não encerrou após o cancelamento do contexto")
	}
}
