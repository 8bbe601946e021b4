package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"isbndb/internal/config"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	api     config.API
	version string
}

func NewHealthController(api config.API, version string) *HealthController {
	return &HealthController{
		api:     api,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// A missing access key means every lookup will fail before it starts.
	if _, err := config.ResolveAccessKey(h.api.AccessKey); err != nil {
		checks["access_key"] = "error: " + err.Error()
		status = "unhealthy"
	} else {
		checks["access_key"] = "ok"
	}

	if h.api.BaseURL != "" {
		checks["base_url"] = h.api.BaseURL
	} else {
		checks["base_url"] = config.DefaultBaseURL
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
