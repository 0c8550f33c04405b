package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/and161185/catalog-loadtest/internal/search"
	"github.com/and161185/catalog-loadtest/model"
	"github.com/and161185/catalog-loadtest/storage"
	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 5 * time.Second

// itemResponse is the wire shape of a single item lookup.
type itemResponse struct {
	ItemID  int64   `json:"item_id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	IsOffer *bool   `json:"is_offer,omitempty"`
}

// createItemRequest is the POST /items payload. Pointers distinguish absent
// fields from zero values during validation.
type createItemRequest struct {
	Name    *string  `json:"name"`
	Price   *float64 `json:"price"`
	IsOffer *bool    `json:"is_offer"`
}

func (srv *Server) RootHandler(w http.ResponseWriter, r *http.Request) {
	srv.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the item catalog service!",
	})
}

func (srv *Server) StatusHandler(w http.ResponseWriter, r *http.Request) {
	srv.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "1.0",
	})
}

func (srv *Server) GetItemHandler(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		srv.writeValidationError(w, &ValidationError{Field: "item_id", Reason: "must be an integer"})
		return
	}

	item, err := srv.storage.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			srv.writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Item not found"})
			return
		}
		srv.config.Logger.Errorf("failed to get item [id=%d]: %v", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	srv.writeJSON(w, http.StatusOK, itemResponse{
		ItemID:  item.ID,
		Name:    item.Name,
		Price:   item.Price,
		IsOffer: item.IsOffer,
	})
}

func (srv *Server) CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		srv.writeValidationError(w, &ValidationError{Field: "body", Reason: "must be valid JSON"})
		return
	}

	if verr := validateCreateItem(&req); verr != nil {
		srv.writeValidationError(w, verr)
		return
	}

	id, err := srv.storage.Create(r.Context(), *req.Name, *req.Price, req.IsOffer)
	if err != nil {
		srv.config.Logger.Errorf("failed to create item [name=%s]: %v", *req.Name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	srv.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Item created successfully",
		"item": model.Item{
			ID:      id,
			Name:    *req.Name,
			Price:   *req.Price,
			IsOffer: req.IsOffer,
		},
	})
}

func validateCreateItem(req *createItemRequest) *ValidationError {
	if req.Name == nil || *req.Name == "" {
		return &ValidationError{Field: "name", Reason: "must be a non-empty string"}
	}
	if req.Price == nil {
		return &ValidationError{Field: "price", Reason: "must be a number"}
	}
	return nil
}

func (srv *Server) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := search.Filter{Name: query.Get("name")}
	if raw := query.Get("min_price"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			srv.writeValidationError(w, &ValidationError{Field: "min_price", Reason: "must be a number"})
			return
		}
		filter.MinPrice = &minPrice
	}

	items, err := srv.storage.List(r.Context(), filter.Predicate())
	if err != nil {
		srv.config.Logger.Errorf("failed to list items: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	srv.writeJSON(w, http.StatusOK, map[string][]model.Item{
		"search_results": items,
	})
}

// Error500Handler is one of the deliberate-failure endpoints. It never
// touches the store and always answers the same way.
func (srv *Server) Error500Handler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// Error400Handler always answers 400 with a fixed body.
func (srv *Server) Error400Handler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Bad Request", http.StatusBadRequest)
}

func (srv *Server) writeValidationError(w http.ResponseWriter, verr *ValidationError) {
	srv.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": verr.Error()})
}

func (srv *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		srv.config.Logger.Errorf("failed to write response JSON: %v", err)
	}
}
