package helpers

import (
	"context"
	"errors"

	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// ClassifyError turns a driver error into the store error taxonomy.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var storeErr *usecase.StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return usecase.NewNotFoundError()
	}

	if isUnavailable(err) {
		return usecase.NewUnavailableError(err)
	}

	return &usecase.StoreError{Kind: usecase.ErrKindOther, Err: err}
}

func isUnavailable(err error) bool {
	if errors.Is(err, mongo.ErrClientDisconnected) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return true
	}

	var selectionErr topology.ServerSelectionError
	return errors.As(err, &selectionErr)
}
