package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"isbndb/internal/config"
	"isbndb/internal/drivers"
)

// lookupTimeout bounds the three upstream round-trips of a single lookup.
const lookupTimeout = 30 * time.Second

// LookupController serves ISBN lookups over the driver contract.
type LookupController struct {
	driver drivers.Driver
}

// NewLookupController creates a new LookupController.
func NewLookupController(driver drivers.Driver) *LookupController {
	return &LookupController{driver: driver}
}

// LookupResponse is the response for a lookup operation.
type LookupResponse struct {
	Success bool           `json:"success"`
	Source  string         `json:"source,omitempty"`
	Book    map[string]any `json:"book,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Lookup handles GET /api/lookup/:isbn.
// It returns the normalized record on success and an explicit 404 when the
// upstream has no book data for the ISBN.
func (lc *LookupController) Lookup(c *gin.Context) {
	isbn := strings.TrimSpace(c.Param("isbn"))
	if isbn == "" {
		respondBadRequest(c, "isbn is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
	defer cancel()

	result, err := lc.driver.Search(ctx, isbn)
	if err != nil {
		if errors.Is(err, config.ErrNoAccessKey) {
			respondInternalError(c, err, "access key is not configured")
			return
		}
		respondBadGateway(c, err, "upstream lookup failed")
		return
	}

	if !result.Found {
		respondNotFound(c, "book")
		return
	}

	c.JSON(http.StatusOK, LookupResponse{
		Success: true,
		Source:  lc.driver.Name(),
		Book:    result.Record.Fields(),
	})
}
