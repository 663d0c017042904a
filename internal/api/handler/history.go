package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-inactivity-api/pkg/apiErrors"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

type HistoryResponse struct {
	Total    int                      `json:"total"`
	Analyses []*domain.AnalysisRecord `json:"analises"`
}

// ListAnalyses devolve os metadados das análises mais recentes
func ListAnalyses(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		records, err := service.History(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("history: erro ao listar análises")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar histórico de análises", nil)
			return
		}

		if records == nil {
			records = []*domain.AnalysisRecord{}
		}

		writeJSON(w, r, http.StatusOK, HistoryResponse{
			Total:    len(records),
			Analyses: records,
		})
	}
}
