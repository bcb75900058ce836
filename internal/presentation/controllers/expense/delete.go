package expense

import (
	"net/http"

	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

type DeleteExpenseController struct {
	DeleteExpenseRepository   usecase.DeleteExpenseRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewDeleteExpenseController(
	deleteExpenseRepository usecase.DeleteExpenseRepository,
	findExpenseByIdRepository usecase.FindExpenseByIdRepository,
) *DeleteExpenseController {
	return &DeleteExpenseController{
		DeleteExpenseRepository:   deleteExpenseRepository,
		FindExpenseByIdRepository: findExpenseByIdRepository,
	}
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := storeContext(r)

	existingExpense, err := c.FindExpenseByIdRepository.Find(ctx, pathValue(r, "id"))
	if err != nil {
		return helpers.StoreErrorResponse(r, err)
	}

	// A delete racing ours surfaces as not found from the repository.
	if err := c.DeleteExpenseRepository.Delete(ctx, existingExpense.Id.Hex()); err != nil {
		return helpers.StoreErrorResponse(r, err)
	}

	return helpers.SuccessResponse(struct{}{}, http.StatusOK)
}
