package expense

import (
	"context"

	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

// storeContext keeps request values but detaches cancellation: once a store
// call starts it runs to completion or to the store timeout.
func storeContext(r presentationProtocols.HttpRequest) context.Context {
	if r.Req == nil {
		return context.Background()
	}
	return context.WithoutCancel(r.Req.Context())
}

func pathValue(r presentationProtocols.HttpRequest, name string) string {
	if r.Req == nil {
		return ""
	}
	return r.Req.PathValue(name)
}
