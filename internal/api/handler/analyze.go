package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/customer-inactivity-api/infrastructure/storage"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

// parseAnalysisRequest monta a requisição de análise a partir do formulário.
// Deve ser chamado antes de gravar o upload.
func parseAnalysisRequest(r *http.Request, fileName string, loc *time.Location) (domain.AnalysisRequest, error) {
	filterType := strings.TrimSpace(r.FormValue("filter_type"))
	filterValue := strings.TrimSpace(r.FormValue("filter_value"))

	spec, err := analyzing.ParseFilter(filterType, filterValue, r.FormValue("include_no_date"), loc)
	if err != nil {
		return domain.AnalysisRequest{}, err
	}

	return domain.AnalysisRequest{
		FileName:    fileName,
		FilterType:  strings.ToLower(filterType),
		FilterValue: filterValue,
		Spec:        spec,
	}, nil
}

// Analyze recebe a planilha e os parâmetros do filtro e devolve os clientes selecionados
func Analyze(service analyzing.Analyzer, store *storage.UploadStore, loc *time.Location, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		upload, ok := receiveUpload(w, r, store, maxBytes)
		if !ok {
			return
		}

		req, err := parseAnalysisRequest(r, upload.Filename(), loc)
		if err != nil {
			upload.Close()
			writeParseError(w, r, "analyze", err)
			return
		}

		stored, ok := persistUpload(w, r, store, upload)
		if !ok {
			return
		}
		defer store.Release(stored)

		result, err := service.Analyze(ctx, stored.Path, req)
		if err != nil {
			writeAnalysisError(w, r, "analyze", err)
			return
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"file_name":        stored.OriginalName,
			"filter_type":      req.FilterType,
			"filter_value":     req.FilterValue,
			"analysis_matched": result.Total,
		}).Info("analyze: análise concluída")

		writeJSON(w, r, http.StatusOK, result)
	}
}

// writeParseError responde erros de validação do formulário de análise
func writeParseError(w http.ResponseWriter, r *http.Request, area string, err error) {
	var validationErr *analyzing.ValidationError
	if errors.As(err, &validationErr) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"filter_field":  validationErr.Field,
			"filter_reason": validationErr.Reason,
		}).Warnf("%s: filtro rejeitado", area)
		writeFilterError(w, validationErr)
		return
	}
	writeAnalysisError(w, r, area, err)
}
