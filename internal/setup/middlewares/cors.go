package middlewares

import (
	"net/http"
	"strings"
)

// CorsMiddleware allows the configured origins; "*" allows any origin.
func CorsMiddleware(next http.Handler, allowed []string) http.Handler {
	allowAny := false
	allowedOrigins := map[string]bool{}
	for _, origin := range allowed {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAny = true
		}
		allowedOrigins[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case allowAny:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case allowedOrigins[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, X-Request-Id, Accept")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
