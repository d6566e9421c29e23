package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resource-inventory-backend/internal/model"
	"resource-inventory-backend/internal/store"
)

// dashboardResponse is the system overview: counts by status plus the
// most recently created resources.
type dashboardResponse struct {
	Stats  store.StatusCounts `json:"stats"`
	Recent []model.Resource   `json:"recent_resources"`
}

// Dashboard handles GET /. A store fault degrades to zero counts and an
// empty recent list rather than failing the page.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := h.store.CountByStatus(ctx)
	if err != nil {
		log.Printf("dashboard: failed to count resources: %v", err)
		c.JSON(http.StatusOK, dashboardResponse{Recent: []model.Resource{}})
		return
	}

	recent, err := h.store.Recent(ctx, h.recentLimit)
	if err != nil {
		log.Printf("dashboard: failed to fetch recent resources: %v", err)
		recent = nil
	}
	if recent == nil {
		recent = []model.Resource{}
	}

	c.JSON(http.StatusOK, dashboardResponse{Stats: counts, Recent: recent})
}
