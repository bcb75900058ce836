package routes

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const WelcomeMessage = "Welcome to Expense Tracker API"

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthRoutes(server *http.ServeMux, store Pinger, gatherer prometheus.Gatherer) {
	server.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	server.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("store unavailable"))
				return
			}
		}
		w.Write([]byte("ready"))
	})

	server.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// FallbackRoutes installs the catch-all: static assets with an index.html
// fallback when staticDir is set, a welcome message at "/" otherwise.
func FallbackRoutes(server *http.ServeMux, staticDir string) {
	if staticDir != "" {
		server.Handle("/", staticHandler(staticDir))
		return
	}

	server.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(WelcomeMessage))
	})
}

func staticHandler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}

		fileServer.ServeHTTP(w, r)
	})
}
