package inmemory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/and161185/catalog-loadtest/model"
	"github.com/and161185/catalog-loadtest/storage"
	"github.com/stretchr/testify/require"
)

func TestNewItemStoreSeeds(t *testing.T) {
	ctx := context.Background()
	store := NewItemStore(ctx)

	all, err := store.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	require.Equal(t, int64(1), all[0].ID)
	require.Equal(t, "laptop", all[0].Name)
	require.Equal(t, float64(1200), all[0].Price)
	require.Equal(t, int64(2), all[1].ID)
	require.Equal(t, "mouse", all[1].Name)
	require.Equal(t, int64(3), all[2].ID)
	require.Equal(t, "keyboard", all[2].Name)
}

func TestCreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewItemStore(ctx)

	offer := true
	id, err := store.Create(ctx, "monitor", 300, &offer)
	require.NoError(t, err)
	require.Equal(t, int64(4), id)

	item, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "monitor", item.Name)
	require.Equal(t, float64(300), item.Price)
	require.NotNil(t, item.IsOffer)
	require.True(t, *item.IsOffer)
}

func TestGetNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewItemStore(ctx)

	_, err := store.Get(ctx, 9999)
	require.True(t, errors.Is(err, storage.ErrItemNotFound))
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewItemStore(ctx)

	offer := true
	id, err := store.Create(ctx, "webcam", 50, &offer)
	require.NoError(t, err)

	item, err := store.Get(ctx, id)
	require.NoError(t, err)
	*item.IsOffer = false

	again, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, *again.IsOffer, "mutating a returned item must not affect the store")
}

func TestConcurrentCreateIDs(t *testing.T) {
	ctx := context.Background()
	store := NewItemStore(ctx)

	const goroutines = 16
	const perGoroutine = 200

	var wg sync.WaitGroup
	ids := make(chan int64, goroutines*perGoroutine)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				id, err := store.Create(ctx, "bulk", 1, nil)
				if err != nil {
					t.Error(err)
					return
				}
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	got := make([]int64, 0, goroutines*perGoroutine)
	for id := range ids {
		got = append(got, id)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })

	require.Len(t, got, goroutines*perGoroutine)
	for i, id := range got {
		// Seeds occupy 1..3, so the first concurrent id is 4.
		require.Equal(t, int64(i+4), id, "ids must be dense and unique")
	}
}

func TestListInsertionOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	store := NewItemStore(ctx)

	_, err := store.Create(ctx, "monitor", 300, nil)
	require.NoError(t, err)

	all, err := store.List(ctx, nil)
	require.NoError(t, err)
	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].ID, all[i-1].ID)
	}

	cheap, err := store.List(ctx, func(it model.Item) bool { return it.Price < 100 })
	require.NoError(t, err)
	require.Len(t, cheap, 2)
	require.Equal(t, "mouse", cheap[0].Name)
	require.Equal(t, "keyboard", cheap[1].Name)
}
