package expense

import (
	"net/http"

	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

type GetExpenseByIdController struct {
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewGetExpenseByIdController(findExpenseByIdRepository usecase.FindExpenseByIdRepository) *GetExpenseByIdController {
	return &GetExpenseByIdController{
		FindExpenseByIdRepository: findExpenseByIdRepository,
	}
}

func (c *GetExpenseByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expense, err := c.FindExpenseByIdRepository.Find(storeContext(r), pathValue(r, "id"))
	if err != nil {
		return helpers.StoreErrorResponse(r, err)
	}

	return helpers.SuccessResponse(expense, http.StatusOK)
}
