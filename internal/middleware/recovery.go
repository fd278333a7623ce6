package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// panicBody matches the {"error": ...} shape of the API's error responses.
const panicBody = `{"error":"internal server error"}` + "\n"

// Recovery turns a panicking handler into a 500 response and one error
// log entry with the stack.
//
// The request id comes from the context when RequestID runs first, else
// from the response header RequestID has already set when Recovery is the
// outer middleware.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				id := RequestIDFromCtx(r.Context())
				if id == "" {
					id = w.Header().Get(RequestIDHeader)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("request_id", id),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(panicBody))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
