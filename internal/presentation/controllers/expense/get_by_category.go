package expense

import (
	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-tracker/internal/presentation/protocols"
)

type GetExpensesByCategoryController struct {
	FindExpensesByCategoryRepository usecase.FindExpensesByCategoryRepository
}

func NewGetExpensesByCategoryController(findExpensesByCategoryRepository usecase.FindExpensesByCategoryRepository) *GetExpensesByCategoryController {
	return &GetExpensesByCategoryController{
		FindExpensesByCategoryRepository: findExpensesByCategoryRepository,
	}
}

// Handle passes the category through untouched; an unknown one just matches
// nothing.
func (c *GetExpensesByCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenses, err := c.FindExpensesByCategoryRepository.FindByCategory(storeContext(r), pathValue(r, "categoryName"))
	if err != nil {
		return helpers.StoreErrorResponse(r, err)
	}

	return helpers.ListResponse(expenses)
}
