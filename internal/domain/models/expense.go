package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryFood           = "Food"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryBills          = "Bills"
	CategoryOther          = "Other"
)

// ExpenseCategories lists every category an expense may be filed under.
var ExpenseCategories = []string{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryBills,
	CategoryOther,
}

type Expense struct {
	Id          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Amount      float64            `json:"amount" bson:"amount"`
	Category    string             `json:"category" bson:"category"`
	Date        time.Time          `json:"date" bson:"date"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
