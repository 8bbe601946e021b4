package http

import (
	"github.com/gin-gonic/gin"

	"isbndb/internal/config"
	"isbndb/internal/drivers"
)

// RouterConfig carries the dependencies the router needs, keeping the
// controller wiring testable.
type RouterConfig struct {
	Driver  drivers.Driver
	API     config.API
	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.API, cfg.Version)
	router.GET("/health", health.Status)

	lookup := NewLookupController(cfg.Driver)
	api := router.Group("/api")
	api.GET("/lookup/:isbn", lookup.Lookup)

	return router
}
