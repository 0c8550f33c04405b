// Package model contains core data types for the project.
package model

// Item represents a single catalog entry.
//
// IDs are assigned by the store and are strictly increasing; callers never
// supply one. IsOffer is a pointer because the field is optional on the wire.
type Item struct {
	ID      int64   `json:"id"`                 // Store-assigned identifier.
	Name    string  `json:"name"`               // Display name, non-empty.
	Price   float64 `json:"price"`              // Price in whole currency units.
	IsOffer *bool   `json:"is_offer,omitempty"` // Whether the item is on offer.
}
