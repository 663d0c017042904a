package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

// CorrelationHeader carrega o ID de correlação entre cliente e API
const CorrelationHeader = "X-Correlation-ID"

// limite para registrar requisição lenta
const slowRequestThreshold = 2 * time.Second

// LoggingMiddleware propaga o ID de correlação e registra início e fim de cada requisição
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationHeader))
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationHeader, correlationID)

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			if !log.IsDevelopment() {
				logger = logger.WithFields(log.Fields{
					"remote_addr":    r.RemoteAddr,
					"user_agent":     r.UserAgent(),
					"content_length": r.ContentLength,
				})
			}
			logger.Info("→ Requisição iniciada")

			rec := newStatusRecorder(w)
			start := time.Now()
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start)

			done := logger.WithFields(log.Fields{
				"status_code":    rec.status,
				"duration_ms":    elapsed.Milliseconds(),
				"response_bytes": rec.written,
			})
			logAt(done, levelFor(rec.status), fmt.Sprintf("%s %d em %s", statusSymbol(rec.status), rec.status, formatDuration(elapsed)))

			if elapsed > slowRequestThreshold {
				done.Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

type level int

const (
	levelInfo level = iota
	levelWarn
	levelError
)

func levelFor(status int) level {
	switch {
	case status >= http.StatusInternalServerError:
		return levelError
	case status >= http.StatusBadRequest:
		return levelWarn
	default:
		return levelInfo
	}
}

func logAt(logger log.Logger, lvl level, msg string) {
	switch lvl {
	case levelError:
		logger.Error(msg)
	case levelWarn:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}
}

func statusSymbol(status int) string {
	if status >= http.StatusBadRequest {
		return "✗"
	}
	return "✓"
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status e o total de bytes escritos na resposta
type statusRecorder struct {
	http.ResponseWriter
	status      int
	written     int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}
