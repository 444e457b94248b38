package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/api/types"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	controller device.Controller
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(controller device.Controller) *HealthHandler {
	return &HealthHandler{controller: controller}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Reports whether an Insteon hub or modem is configured and reachable
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "Service is degraded"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status, controllerStatus, httpStatus := "healthy", "connected", http.StatusOK
	if !h.controller.IsConnected() {
		status, controllerStatus, httpStatus = "degraded", "not_configured", http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{Status: status, Controller: controllerStatus, Timestamp: time.Now()})
}
