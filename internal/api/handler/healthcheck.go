package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

type healthResponse struct {
	Status        string `json:"status"`
	Time          string `json:"time"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func HealthcheckHandler(startedAt time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		err := json.NewEncoder(w).Encode(healthResponse{
			Status:        "ok",
			Time:          now.Format(time.RFC3339),
			UptimeSeconds: int64(now.Sub(startedAt).Seconds()),
		})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: erro ao responder")
		}
	})
}
