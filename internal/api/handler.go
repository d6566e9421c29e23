package api

import (
	"resource-inventory-backend/internal/store"
)

// Handler holds shared dependencies for the HTTP handlers.
type Handler struct {
	store       store.Store
	recentLimit int
}

// NewHandler creates a new handler set around the given store.
func NewHandler(s store.Store, recentLimit int) *Handler {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &Handler{
		store:       s,
		recentLimit: recentLimit,
	}
}
