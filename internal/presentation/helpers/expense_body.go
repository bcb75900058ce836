package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

const (
	InvalidBodyMessage     = "Invalid request body"
	BodyTooLargeMessage    = "Request body too large"
	MissingRequiredMessage = "Please provide title, amount and category"
)

// DecodeExpenseFields reads a single JSON object body. An empty body decodes
// to an empty payload.
func DecodeExpenseFields(body io.Reader) (usecase.ExpenseFields, *presentationProtocols.HttpResponse) {
	fields := usecase.ExpenseFields{}
	if body == nil {
		return fields, nil
	}

	dec := json.NewDecoder(body)
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return usecase.ExpenseFields{}, nil
		}
		return nil, bodyErrorResponse(err)
	}

	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, bodyErrorResponse(err)
	}

	if fields == nil {
		fields = usecase.ExpenseFields{}
	}

	return fields, nil
}

func bodyErrorResponse(err error) *presentationProtocols.HttpResponse {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return ErrorResponse(BodyTooLargeMessage, http.StatusRequestEntityTooLarge)
	}
	return ErrorResponse(InvalidBodyMessage, http.StatusBadRequest)
}

// HasRequiredExpenseFields is the shallow check run before a create reaches
// the store: title, amount and category must all be present and truthy.
func HasRequiredExpenseFields(fields usecase.ExpenseFields) bool {
	for _, key := range []string{"title", "amount", "category"} {
		if !truthy(fields[key]) {
			return false
		}
	}
	return true
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}
