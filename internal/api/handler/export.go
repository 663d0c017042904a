package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/customer-inactivity-api/infrastructure/storage"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-inactivity-api/pkg/apiErrors"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

// Export executa a mesma análise do Analyze e devolve o resultado como arquivo CSV ou XLSX
func Export(service analyzing.Analyzer, store *storage.UploadStore, loc *time.Location, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		upload, ok := receiveUpload(w, r, store, maxBytes)
		if !ok {
			return
		}

		format, err := analyzing.ParseExportFormat(r.FormValue("format"))
		if err != nil {
			upload.Close()
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de exportação inválido. Use csv ou xlsx", nil)
			return
		}

		req, err := parseAnalysisRequest(r, upload.Filename(), loc)
		if err != nil {
			upload.Close()
			writeParseError(w, r, "export", err)
			return
		}

		stored, ok := persistUpload(w, r, store, upload)
		if !ok {
			return
		}
		defer store.Release(stored)

		result, err := service.Analyze(ctx, stored.Path, req)
		if err != nil {
			writeAnalysisError(w, r, "export", err)
			return
		}

		// O arquivo é montado em memória para que falhas ainda possam virar JSON
		var buf bytes.Buffer
		if err := analyzing.Export(&buf, format, result); err != nil {
			writeInternalError(w, r, "export", err, "Erro ao gerar arquivo de exportação")
			return
		}

		fileName := format.FileName(time.Now())

		log.ForContext(ctx).WithFields(log.Fields{
			"file_name":        stored.OriginalName,
			"filter_type":      req.FilterType,
			"analysis_matched": result.Total,
			"analysis_format":  string(format),
		}).Info("export: arquivo gerado")

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(ctx).WithError(err).Warn("export: erro ao enviar arquivo")
		}
	}
}
