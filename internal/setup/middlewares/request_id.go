package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

type requestIdKey struct{}

// RequestId propagates the caller's request id or mints a new one.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIdHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIdHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIdKey{}, id)))
	})
}

func RequestIdFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}
