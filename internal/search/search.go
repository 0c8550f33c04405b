// Package search builds item predicates from query constraints.
//
// Name matching is a case-insensitive substring test and the minimum-price
// bound is inclusive (price >= MinPrice). An empty filter matches every item.
package search

import (
	"strings"

	"github.com/and161185/catalog-loadtest/model"
)

// Filter describes the supported search constraints. Zero-value fields
// impose no constraint; set fields combine with logical AND.
type Filter struct {
	Name     string
	MinPrice *float64
}

// Predicate compiles the filter into a match function usable with
// storage.Storage.List.
func (f Filter) Predicate() func(model.Item) bool {
	name := strings.ToLower(f.Name)
	minPrice := f.MinPrice

	return func(item model.Item) bool {
		if name != "" && !strings.Contains(strings.ToLower(item.Name), name) {
			return false
		}
		if minPrice != nil && item.Price < *minPrice {
			return false
		}
		return true
	}
}
