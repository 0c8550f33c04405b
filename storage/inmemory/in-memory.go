// Package inmemory implements the catalog store as a synchronized in-memory map.
package inmemory

import (
	"context"
	"sync"

	"github.com/and161185/catalog-loadtest/model"
	"github.com/and161185/catalog-loadtest/storage"
)

// ItemStore holds the catalog in memory. Ids are allocated under the write
// lock together with the insertion, so concurrent creates can neither skip
// nor repeat an id. The order slice preserves insertion order for listing.
type ItemStore struct {
	items  map[int64]model.Item
	order  []int64
	nextID int64
	mu     sync.RWMutex
}

// NewItemStore creates a store pre-seeded with the three startup items
// (ids 1, 2 and 3).
func NewItemStore(ctx context.Context) *ItemStore {
	store := &ItemStore{
		items: make(map[int64]model.Item),
	}

	seed := []struct {
		name  string
		price float64
	}{
		{"laptop", 1200},
		{"mouse", 25},
		{"keyboard", 75},
	}
	for _, s := range seed {
		// Seeding happens before the store is shared, but Create keeps
		// the id invariant in one place.
		_, _ = store.Create(ctx, s.name, s.price, nil)
	}

	return store
}

// Create allocates the next id and inserts the item. It never fails on valid
// input; the error return exists to satisfy the storage contract.
func (store *ItemStore) Create(ctx context.Context, name string, price float64, isOffer *bool) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextID++
	id := store.nextID

	var offer *bool
	if isOffer != nil {
		v := *isOffer
		offer = &v
	}

	store.items[id] = model.Item{ID: id, Name: name, Price: price, IsOffer: offer}
	store.order = append(store.order, id)

	return id, nil
}

// Get returns a copy of the item or storage.ErrItemNotFound.
func (store *ItemStore) Get(ctx context.Context, id int64) (model.Item, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	item, ok := store.items[id]
	if !ok {
		return model.Item{}, storage.ErrItemNotFound
	}
	return copyItem(item), nil
}

// List returns copies of the items matching pred, in insertion order. The
// read lock is held for the whole scan, so the result is a consistent
// snapshot even with creates racing it.
func (store *ItemStore) List(ctx context.Context, pred func(model.Item) bool) ([]model.Item, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]model.Item, 0, len(store.order))
	for _, id := range store.order {
		item := store.items[id]
		if pred == nil || pred(item) {
			result = append(result, copyItem(item))
		}
	}
	return result, nil
}

func copyItem(item model.Item) model.Item {
	if item.IsOffer != nil {
		v := *item.IsOffer
		item.IsOffer = &v
	}
	return item
}
