package expense_repository

import (
	"context"

	"github.com/anuntech/expense-tracker/internal/domain/models"
	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindExpenseByIdRepository struct {
	Db *mongo.Database
}

func NewFindExpenseByIdRepository(db *mongo.Database) *FindExpenseByIdRepository {
	return &FindExpenseByIdRepository{
		Db: db,
	}
}

func (r *FindExpenseByIdRepository) Find(ctx context.Context, expenseId string) (*models.Expense, error) {
	collection := r.Db.Collection(helpers.ExpenseCollection)

	id, err := primitive.ObjectIDFromHex(expenseId)
	if err != nil {
		return nil, usecase.NewInvalidIdentifierError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var expense models.Expense
	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&expense); err != nil {
		return nil, helpers.ClassifyError(err)
	}

	return &expense, nil
}
