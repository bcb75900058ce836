package expense_repository

import (
	"context"

	"github.com/anuntech/expense-tracker/internal/domain/models"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindExpensesRepository struct {
	Db *mongo.Database
}

func NewFindExpensesRepository(db *mongo.Database) *FindExpensesRepository {
	return &FindExpensesRepository{
		Db: db,
	}
}

func (r *FindExpensesRepository) Find(ctx context.Context) ([]models.Expense, error) {
	return findSortedByDate(ctx, r.Db, bson.M{})
}

type FindExpensesByCategoryRepository struct {
	Db *mongo.Database
}

func NewFindExpensesByCategoryRepository(db *mongo.Database) *FindExpensesByCategoryRepository {
	return &FindExpensesByCategoryRepository{
		Db: db,
	}
}

// FindByCategory matches the category exactly; unknown categories simply
// match nothing.
func (r *FindExpensesByCategoryRepository) FindByCategory(ctx context.Context, category string) ([]models.Expense, error) {
	return findSortedByDate(ctx, r.Db, bson.M{"category": category})
}

// findSortedByDate returns the matching expenses, most recent first.
func findSortedByDate(ctx context.Context, db *mongo.Database, filter bson.M) ([]models.Expense, error) {
	collection := db.Collection(helpers.ExpenseCollection)

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, helpers.ClassifyError(err)
	}
	defer cursor.Close(ctx)

	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, helpers.ClassifyError(err)
	}

	return expenses, nil
}
