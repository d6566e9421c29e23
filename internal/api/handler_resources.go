package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resource-inventory-backend/internal/model"
	"resource-inventory-backend/internal/store"
)

// listResponse carries the filtered records together with the filter
// state needed to re-render the search controls.
type listResponse struct {
	Resources      []model.Resource `json:"resources"`
	Search         string           `json:"search"`
	SelectedType   string           `json:"selected_type"`
	SelectedStatus string           `json:"selected_status"`
	Types          []string         `json:"types"`
	Statuses       []string         `json:"statuses"`
}

// List handles GET /resources with optional search, type and status
// query parameters. Never fails on empty results; a store fault yields
// an empty listing.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := store.Filter{
		Search: c.Query("search"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}

	resp := listResponse{
		Resources:      []model.Resource{},
		Search:         filter.Search,
		SelectedType:   filter.Type,
		SelectedStatus: filter.Status,
		Types:          []string{},
		Statuses:       []string{},
	}

	resources, err := h.store.List(ctx, filter)
	if err != nil {
		log.Printf("list: failed to fetch resources: %v", err)
		c.JSON(http.StatusOK, resp)
		return
	}
	if resources != nil {
		resp.Resources = resources
	}

	types, statuses, err := h.store.FilterOptions(ctx)
	if err != nil {
		log.Printf("list: failed to fetch filter options: %v", err)
	} else {
		if types != nil {
			resp.Types = types
		}
		if statuses != nil {
			resp.Statuses = statuses
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Detail handles GET /resources/{id}. A missing or erroring id
// navigates back to the listing instead of hard-failing.
func (h *Handler) Detail(c *gin.Context) {
	resource, ok := h.resourceFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"resource": resource})
}

// resourceFromPath loads the resource addressed by the :id path
// parameter. On a bad id, a missing record, or a store fault it
// redirects to the resource list and reports false.
func (h *Handler) resourceFromPath(c *gin.Context) (*model.Resource, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/resources")
		return nil, false
	}

	resource, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("failed to load resource %d: %v", id, err)
		}
		c.Redirect(http.StatusSeeOther, "/resources")
		return nil, false
	}
	return resource, true
}
