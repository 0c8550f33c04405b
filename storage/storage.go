// Package storage defines the catalog storage contract and its sentinel errors.
package storage

import (
	"context"
	"errors"

	"github.com/and161185/catalog-loadtest/model"
)

// ErrItemNotFound is returned when the requested item id was never issued.
var ErrItemNotFound = errors.New("item not found")

// Storage is the contract the server requires from a catalog store.
type Storage interface {
	Create(ctx context.Context, name string, price float64, isOffer *bool) (int64, error)
	Get(ctx context.Context, id int64) (model.Item, error)
	List(ctx context.Context, pred func(model.Item) bool) ([]model.Item, error)
}
