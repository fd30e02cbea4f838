// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness of the API and its database.
type HealthController struct {
	pingDB    func(ctx context.Context) error
	startedAt time.Time
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
	Time     string `json:"time"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(pingDB func(ctx context.Context) error) *HealthController {
	return &HealthController{
		pingDB:    pingDB,
		startedAt: time.Now().UTC(),
	}
}

// Check handles GET /health requests. The endpoint answers 503 when the
// database cannot be reached so load balancers can take the instance out
// of rotation.
func (h *HealthController) Check(c *gin.Context) {
	now := time.Now().UTC()
	response := HealthResponse{
		Status:   "ok",
		Database: "up",
		Uptime:   now.Sub(h.startedAt).Round(time.Second).String(),
		Time:     now.Format(time.RFC3339),
	}

	status := http.StatusOK
	if h.pingDB == nil || h.pingDB(c.Request.Context()) != nil {
		response.Status = "degraded"
		response.Database = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}
