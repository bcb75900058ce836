package expense

import (
	"net/http"

	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

type CreateExpenseController struct {
	CreateExpenseRepository usecase.CreateExpenseRepository
}

func NewCreateExpenseController(createExpenseRepository usecase.CreateExpenseRepository) *CreateExpenseController {
	return &CreateExpenseController{
		CreateExpenseRepository: createExpenseRepository,
	}
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	fields, httpResponse := helpers.DecodeExpenseFields(r.Body)
	if httpResponse != nil {
		return httpResponse
	}

	// Fast presence check; the store still runs the full schema on write.
	if !helpers.HasRequiredExpenseFields(fields) {
		return helpers.ErrorResponse(helpers.MissingRequiredMessage, http.StatusBadRequest)
	}

	expense, err := c.CreateExpenseRepository.Create(storeContext(r), fields)
	if err != nil {
		return helpers.StoreErrorResponse(r, err)
	}

	return helpers.SuccessResponse(expense, http.StatusCreated)
}
