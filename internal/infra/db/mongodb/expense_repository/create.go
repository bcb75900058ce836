package expense_repository

import (
	"context"
	"time"

	"github.com/anuntech/expense-tracker/internal/domain/models"
	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/helpers"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/schema"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseRepository struct {
	Db     *mongo.Database
	Schema *schema.ExpenseSchema
	Now    func() time.Time
}

func NewCreateExpenseRepository(db *mongo.Database, expenseSchema *schema.ExpenseSchema) *CreateExpenseRepository {
	return &CreateExpenseRepository{
		Db:     db,
		Schema: expenseSchema,
		Now:    time.Now,
	}
}

func (r *CreateExpenseRepository) Create(ctx context.Context, fields usecase.ExpenseFields) (*models.Expense, error) {
	collection := r.Db.Collection(helpers.ExpenseCollection)

	expense, err := r.Schema.New(fields, r.Now())
	if err != nil {
		return nil, err
	}
	expense.Id = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, expense); err != nil {
		return nil, helpers.ClassifyError(err)
	}

	return expense, nil
}
