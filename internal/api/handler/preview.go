package handler

import (
	"net/http"

	"github.com/vfg2006/customer-inactivity-api/infrastructure/storage"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

// Preview devolve o resumo da planilha enviada, sem aplicar filtros
func Preview(service analyzing.Analyzer, store *storage.UploadStore, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		upload, ok := receiveUpload(w, r, store, maxBytes)
		if !ok {
			return
		}

		stored, ok := persistUpload(w, r, store, upload)
		if !ok {
			return
		}
		defer store.Release(stored)

		summary, err := service.Preview(ctx, stored.Path)
		if err != nil {
			writeAnalysisError(w, r, "preview", err)
			return
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"file_name":       stored.OriginalName,
			"ledger_customers": summary.TotalCustomers,
		}).Info("preview: resumo gerado")

		writeJSON(w, r, http.StatusOK, summary)
	}
}
