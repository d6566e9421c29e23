package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"resource-inventory-backend/config"
	"resource-inventory-backend/internal/mw"
	"resource-inventory-backend/internal/store"
)

// NewRouter creates and configures a new Gin router for the inventory
// surface.
func NewRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, cfg.App.RecentLimit)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)
	invalidate := mw.Invalidate(cacheStore)

	r.Use(rateLimiter)

	// GET /
	r.GET("/", caching, handler.Dashboard)

	resources := r.Group("/resources")
	{
		// GET /resources?search=&type=&status=
		resources.GET("", caching, handler.List)

		// GET+POST /resources/create
		resources.GET("/create", handler.CreateForm)
		resources.POST("/create", invalidate, handler.Create)

		// GET /resources/{id}
		resources.GET("/:id", handler.Detail)

		// GET+POST /resources/{id}/edit
		resources.GET("/:id/edit", handler.EditForm)
		resources.POST("/:id/edit", invalidate, handler.Edit)

		// GET+POST /resources/{id}/delete
		resources.GET("/:id/delete", handler.DeleteConfirm)
		resources.POST("/:id/delete", invalidate, handler.Delete)
	}

	return r
}
