package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-inactivity-api/infrastructure/storage"
	"github.com/vfg2006/customer-inactivity-api/internal/api/handler"
	"github.com/vfg2006/customer-inactivity-api/internal/api/handler/router"
	"github.com/vfg2006/customer-inactivity-api/internal/config"
	"github.com/vfg2006/customer-inactivity-api/internal/scheduler"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer-inactivity-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	analyzer analyzing.Analyzer,
	uploads *storage.UploadStore,
	authenticator authenticating.Authenticator,
	uploadCleanupService *scheduler.UploadCleanupService,
) (*Server, error) {
	if uploads == nil {
		return nil, fmt.Errorf("diretório de upload não configurado")
	}

	cronServices := handler.CronJobServices{
		UploadCleanupService: uploadCleanupService,
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, analyzer, uploads, authenticator, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(
	config *config.Config,
	analyzer analyzing.Analyzer,
	uploads *storage.UploadStore,
	authenticator authenticating.Authenticator,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(time.Now())...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Ledger(analyzer, handler.LedgerOptions{
			Store:    uploads,
			Location: config.Ledger.Location(),
			MaxBytes: config.Upload.MaxBytes(),
		})...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(handler.NotFound()),
		router.WithMethodNotAllowed(handler.MethodNotAllowed()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// tempo máximo para requisições em andamento terminarem no desligamento
const shutdownTimeout = 15 * time.Second

// Run atende requisições até receber SIGINT/SIGTERM ou ctx ser cancelado.
// Uma falha ao abrir a porta é devolvida imediatamente.
func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err := <-serveErr:
		return fmt.Errorf("erro durante a execução do servidor: %w", err)
	case sig := <-signals:
		logrus.WithField("signal", sig.String()).Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")
	return s.Shutdown(shutdownCtx)
}

// Shutdown espera as requisições em andamento, que liberam seus uploads antes de responder
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
