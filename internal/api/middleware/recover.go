package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taskforge/task-api/internal/api/shared"
	"github.com/taskforge/task-api/internal/platform/logger"
)

// Recoverer converts a handler panic into a generic JSON 500 response so no
// internal detail escapes, and logs the panic value for diagnosis.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					// ALLOW-PANIC: net/http uses this to abort the handler
					panic(p)
				}

				log := logger.FromContext(r.Context())
				log.Error("panic recovered in handler",
					slog.Any("panic", p),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))

				shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
