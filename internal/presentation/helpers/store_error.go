package helpers

import (
	"log/slog"
	"net/http"

	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

const (
	ExpenseNotFoundMessage  = "Expense not found"
	InvalidExpenseIdMessage = "Invalid expense ID"
)

// StoreErrorResponse maps a repository failure onto the HTTP response the
// client sees. Failures that become a 500 are logged and never echoed back.
func StoreErrorResponse(r presentationProtocols.HttpRequest, err error) *presentationProtocols.HttpResponse {
	switch usecase.KindOf(err) {
	case usecase.ErrKindNotFound:
		return ErrorResponse(ExpenseNotFoundMessage, http.StatusNotFound)
	case usecase.ErrKindInvalidIdentifier:
		return ErrorResponse(InvalidExpenseIdMessage, http.StatusBadRequest)
	case usecase.ErrKindValidationFailed:
		return ErrorResponse(usecase.ValidationMessages(err), http.StatusBadRequest)
	case usecase.ErrKindUnavailable:
		logStoreFailure(r, "record store unavailable", err)
	default:
		logStoreFailure(r, "record store failure", err)
	}

	return ErrorResponse(ServerErrorMessage, http.StatusInternalServerError)
}

func logStoreFailure(r presentationProtocols.HttpRequest, msg string, err error) {
	attrs := []any{"error", err}
	if r.Req != nil {
		attrs = append(attrs, "method", r.Req.Method, "path", r.Req.URL.Path)
	}
	slog.Error(msg, attrs...)
}
