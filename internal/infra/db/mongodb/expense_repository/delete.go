package expense_repository

import (
	"context"

	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteExpenseRepository struct {
	Db *mongo.Database
}

func NewDeleteExpenseRepository(db *mongo.Database) *DeleteExpenseRepository {
	return &DeleteExpenseRepository{
		Db: db,
	}
}

func (r *DeleteExpenseRepository) Delete(ctx context.Context, expenseId string) error {
	collection := r.Db.Collection(helpers.ExpenseCollection)

	id, err := primitive.ObjectIDFromHex(expenseId)
	if err != nil {
		return usecase.NewInvalidIdentifierError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return helpers.ClassifyError(err)
	}

	if result.DeletedCount == 0 {
		return usecase.NewNotFoundError()
	}

	return nil
}
