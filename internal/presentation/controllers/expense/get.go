package expense

import (
	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

type GetExpensesController struct {
	FindExpensesRepository usecase.FindExpensesRepository
}

func NewGetExpensesController(findExpensesRepository usecase.FindExpensesRepository) *GetExpensesController {
	return &GetExpensesController{
		FindExpensesRepository: findExpensesRepository,
	}
}

func (c *GetExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenses, err := c.FindExpensesRepository.Find(storeContext(r))
	if err != nil {
		return helpers.StoreErrorResponse(r, err)
	}

	return helpers.ListResponse(expenses)
}
