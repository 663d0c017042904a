package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/customer-inactivity-api/infrastructure/storage"
	"github.com/vfg2006/customer-inactivity-api/internal/api/handler/router"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer-inactivity-api/pkg/middleware"
)

// LedgerOptions agrupa as dependências das rotas que recebem planilhas
type LedgerOptions struct {
	Store    *storage.UploadStore
	Location *time.Location
	MaxBytes int64
}

func Healthcheck(startedAt time.Time) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(startedAt),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func Ledger(service analyzing.Analyzer, opts LedgerOptions) []router.Route {
	limitBody := []router.Middleware{middleware.LimitBody(opts.MaxBytes)}

	return []router.Route{
		{
			Path:        "/v1/preview",
			Method:      http.MethodPost,
			Handler:     Preview(service, opts.Store, opts.MaxBytes),
			Middlewares: limitBody,
		},
		{
			Path:        "/v1/analyze",
			Method:      http.MethodPost,
			Handler:     Analyze(service, opts.Store, opts.Location, opts.MaxBytes),
			Middlewares: limitBody,
		},
		{
			Path:        "/v1/export",
			Method:      http.MethodPost,
			Handler:     Export(service, opts.Store, opts.Location, opts.MaxBytes),
			Middlewares: limitBody,
		},
		{
			Path:    "/v1/analyses",
			Method:  http.MethodGet,
			Handler: ListAnalyses(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
