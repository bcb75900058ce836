package adapters

import (
	"io"
	"log/slog"
	"net/http"

	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

// MaxBodyBytes caps the request body a controller may read.
const MaxBodyBytes = 100 << 10

// AdaptRoute exposes a controller as an http.Handler.
func AdaptRoute(controller presentationProtocols.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      http.MaxBytesReader(w, r.Body, MaxBodyBytes),
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(response.StatusCode)

		if response.Body == nil {
			return
		}
		defer response.Body.Close()

		if _, err := io.Copy(w, response.Body); err != nil {
			slog.Warn("writing response body", "error", err, "path", r.URL.Path)
		}
	})
}
