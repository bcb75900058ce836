package expense_repository

import (
	"context"
	"time"

	"github.com/anuntech/expense-tracker/internal/domain/models"
	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/helpers"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/schema"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateExpenseRepository struct {
	Db     *mongo.Database
	Schema *schema.ExpenseSchema
	Now    func() time.Time
}

func NewUpdateExpenseRepository(db *mongo.Database, expenseSchema *schema.ExpenseSchema) *UpdateExpenseRepository {
	return &UpdateExpenseRepository{
		Db:     db,
		Schema: expenseSchema,
		Now:    time.Now,
	}
}

// Update merges fields onto current, validates the result and writes it in a
// single find-and-modify. An expense removed since current was read yields
// a not found error.
func (r *UpdateExpenseRepository) Update(ctx context.Context, current *models.Expense, fields usecase.ExpenseFields) (*models.Expense, error) {
	collection := r.Db.Collection(helpers.ExpenseCollection)

	merged, err := r.Schema.Merge(current, fields, r.Now())
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"title":     merged.Title,
		"amount":    merged.Amount,
		"category":  merged.Category,
		"date":      merged.Date,
		"updatedAt": merged.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if merged.Description == "" {
		update["$unset"] = bson.M{"description": ""}
	} else {
		set["description"] = merged.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var updated models.Expense
	err = collection.FindOneAndUpdate(ctx, bson.M{"_id": current.Id}, update, opts).Decode(&updated)
	if err != nil {
		return nil, helpers.ClassifyError(err)
	}

	return &updated, nil
}
