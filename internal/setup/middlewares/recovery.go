package middlewares

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic while serving request",
					"panic", err,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestIdFrom(r.Context()),
					"stack", string(debug.Stack()),
				)

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)

				json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"error":   "Server Error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
