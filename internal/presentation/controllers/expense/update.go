package expense

import (
	"net/http"

	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

type UpdateExpenseController struct {
	UpdateExpenseRepository   usecase.UpdateExpenseRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewUpdateExpenseController(
	updateExpenseRepository usecase.UpdateExpenseRepository,
	findExpenseByIdRepository usecase.FindExpenseByIdRepository,
) *UpdateExpenseController {
	return &UpdateExpenseController{
		UpdateExpenseRepository:   updateExpenseRepository,
		FindExpenseByIdRepository: findExpenseByIdRepository,
	}
}

func (c *UpdateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	fields, httpResponse := helpers.DecodeExpenseFields(r.Body)
	if httpResponse != nil {
		return httpResponse
	}

	ctx := storeContext(r)

	// Check if expense exists
	existingExpense, err := c.FindExpenseByIdRepository.Find(ctx, pathValue(r, "id"))
	if err != nil {
		return helpers.StoreErrorResponse(r, err)
	}

	updatedExpense, err := c.UpdateExpenseRepository.Update(ctx, existingExpense, fields)
	if err != nil {
		return helpers.StoreErrorResponse(r, err)
	}

	return helpers.SuccessResponse(updatedExpense, http.StatusOK)
}
