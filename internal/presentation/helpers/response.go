package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

const ServerErrorMessage = "Server Error"

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	raw, err := json.Marshal(body)
	if err != nil {
		slog.Error("encoding response body", "error", err)
		raw, _ = json.Marshal(&presentationProtocols.Envelope{Error: ServerErrorMessage})
		statusCode = http.StatusInternalServerError
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(raw)),
		StatusCode: statusCode,
	}
}

func SuccessResponse(data any, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.Envelope{
		Success: true,
		Data:    data,
	}, statusCode)
}

// ListResponse is a success envelope that also carries the item count.
func ListResponse[T any](items []T) *presentationProtocols.HttpResponse {
	if items == nil {
		items = []T{}
	}
	count := len(items)

	return CreateResponse(&presentationProtocols.Envelope{
		Success: true,
		Count:   &count,
		Data:    items,
	}, http.StatusOK)
}

// ErrorResponse builds a failure envelope; message is a string or a list of
// strings.
func ErrorResponse(message any, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.Envelope{
		Error: message,
	}, statusCode)
}
