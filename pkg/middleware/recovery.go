package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/momomonster549/ecom-macsorchids/pkg/httputil"
	"github.com/momomonster549/ecom-macsorchids/pkg/logger"
)

// Recovery converts handler panics into a 500 response in the storefront
// envelope instead of tearing down the connection.
func Recovery(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				l.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				httputil.WriteJSON(w, http.StatusInternalServerError, httputil.Response{
					Error: &httputil.ErrorResponse{
						Code:      "INTERNAL_ERROR",
						Message:   "an internal error occurred",
						RequestID: logger.CorrelationIDFromContext(r.Context()),
					},
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
