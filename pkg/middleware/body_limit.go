package middleware

import "net/http"

// LimitBody limita o tamanho do corpo da requisição.
// A leitura além do limite falha com *http.MaxBytesError, tratado pelo handler.
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
