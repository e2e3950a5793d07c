package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/purrfect-pixels/internal/api/shared"
	"github.com/phrazzld/purrfect-pixels/internal/platform/logger"
)

// Trace returns middleware that adds a trace ID to the request context,
// together with a child of base tagged with that trace ID.
// It should be applied early in the chain so that later handlers can use
// logger.FromContext.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set("X-Trace-ID", traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
