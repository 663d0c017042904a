package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/customer-inactivity-api/internal/scheduler"
	"github.com/vfg2006/customer-inactivity-api/pkg/apiErrors"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeUploadCleanup = "upload-cleanup"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	UploadCleanupService *scheduler.UploadCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeUploadCleanup, CronJobTypeAll:
			if services.UploadCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de uploads não disponível", nil)
				return
			}
			services.UploadCleanupService.TriggerManualCleanup()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: upload-cleanup, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.UploadCleanupService != nil {
			status[CronJobTypeUploadCleanup] = services.UploadCleanupService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
