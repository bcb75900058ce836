package schema

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/anuntech/expense-tracker/internal/domain/models"
	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Paths in the order violations are reported.
var expensePaths = []string{"title", "amount", "category", "date", "description"}

type expenseDocument struct {
	Title       string   `json:"title" validate:"required,utf16max=100"`
	Amount      *float64 `json:"amount" validate:"required"`
	Category    string   `json:"category" validate:"required,oneof=Food Transportation Entertainment Bills Other"`
	Description string   `json:"description" validate:"omitempty,utf16max=500"`
	Date        time.Time
}

// ExpenseSchema casts raw payloads onto expenses and enforces the stored
// document's constraints.
type ExpenseSchema struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewExpenseSchema() (*ExpenseSchema, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		return name
	})
	if err := validate.RegisterValidation("utf16max", utf16Max); err != nil {
		return nil, err
	}

	trans, err := newTranslator(validate)
	if err != nil {
		return nil, err
	}

	return &ExpenseSchema{
		Validate:   validate,
		Translator: trans,
	}, nil
}

// New builds a fresh expense from fields. The date defaults to now.
func (s *ExpenseSchema) New(fields usecase.ExpenseFields, now time.Time) (*models.Expense, error) {
	now = storedTime(now)
	doc := expenseDocument{Date: now}
	castErrs := s.apply(&doc, fields)

	if err := s.check(&doc, castErrs); err != nil {
		return nil, err
	}

	return &models.Expense{
		Title:       doc.Title,
		Amount:      *doc.Amount,
		Category:    doc.Category,
		Date:        doc.Date,
		Description: doc.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Merge applies fields on top of current and validates the merged result.
// current is left untouched.
func (s *ExpenseSchema) Merge(current *models.Expense, fields usecase.ExpenseFields, now time.Time) (*models.Expense, error) {
	amount := current.Amount
	doc := expenseDocument{
		Title:       current.Title,
		Amount:      &amount,
		Category:    current.Category,
		Description: current.Description,
		Date:        current.Date,
	}
	castErrs := s.apply(&doc, fields)

	if err := s.check(&doc, castErrs); err != nil {
		return nil, err
	}

	merged := *current
	merged.Title = doc.Title
	merged.Amount = *doc.Amount
	merged.Category = doc.Category
	merged.Description = doc.Description
	merged.Date = doc.Date
	merged.UpdatedAt = storedTime(now)

	return &merged, nil
}

// apply casts every known path present in fields onto doc. A null date keeps
// the current value; any other null clears the field.
func (s *ExpenseSchema) apply(doc *expenseDocument, fields usecase.ExpenseFields) map[string]error {
	castErrs := map[string]error{}

	for _, path := range expensePaths {
		value, present := fields[path]
		if !present {
			continue
		}

		if value == nil {
			switch path {
			case "title":
				doc.Title = ""
			case "amount":
				doc.Amount = nil
			case "category":
				doc.Category = ""
			case "description":
				doc.Description = ""
			}
			continue
		}

		var err error
		switch path {
		case "title":
			var title string
			if title, err = castString(path, value); err == nil {
				doc.Title = strings.TrimSpace(title)
			}
		case "amount":
			var amount float64
			if amount, err = castNumber(path, value); err == nil {
				doc.Amount = &amount
			}
		case "category":
			var category string
			if category, err = castString(path, value); err == nil {
				doc.Category = category
			}
		case "date":
			var date time.Time
			if date, err = castDate(path, value); err == nil {
				doc.Date = storedTime(date)
			}
		case "description":
			var description string
			if description, err = castString(path, value); err == nil {
				doc.Description = description
			}
		}

		if err != nil {
			castErrs[path] = err
		}
	}

	return castErrs
}

func (s *ExpenseSchema) check(doc *expenseDocument, castErrs map[string]error) error {
	violations := map[string]string{}
	for path, err := range castErrs {
		violations[path] = err.Error()
	}

	if err := s.Validate.Struct(doc); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		for _, fe := range validationErrs {
			if _, failedCast := violations[fe.Field()]; failedCast {
				continue
			}
			violations[fe.Field()] = fe.Translate(s.Translator)
		}
	}

	if len(violations) == 0 {
		return nil
	}

	messages := make([]string, 0, len(violations))
	for _, path := range expensePaths {
		if msg, ok := violations[path]; ok {
			messages = append(messages, msg)
		}
	}

	return usecase.NewValidationError(messages)
}

// utf16Max bounds a string's length in UTF-16 code units, the unit stored
// documents are measured in.
func utf16Max(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(utf16.Encode([]rune(fl.Field().String()))) <= limit
}

// storedTime drops precision the store cannot keep.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
