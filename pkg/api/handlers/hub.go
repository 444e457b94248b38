package handlers

import (
	"net/http"
	"time"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/api/types"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/gin-gonic/gin"
)

// HubHandler exposes the controller's receive buffer.
type HubHandler struct {
	controller device.Controller
}

// NewHubHandler creates a new hub handler
func NewHubHandler(controller device.Controller) *HubHandler {
	return &HubHandler{controller: controller}
}

// Status handles GET /hub/status
// @Summary      Hub buffer status
// @Description  Returns the last command seen by the hub and the reply that followed it
// @Tags         hub
// @Produce      json
// @Success      200  {object}  types.HubStatusResponse
// @Failure      404  {object}  types.ErrorResponse  "No command in buffer"
// @Failure      503  {object}  types.ErrorResponse  "No hub configured"
// @Failure      504  {object}  types.ErrorResponse  "Request timed out"
// @Router       /hub/status [get]
func (h *HubHandler) Status(c *gin.Context) {
	if !h.controller.IsConnected() {
		writeError(c, device.ErrNotConnected)
		return
	}

	status, err := h.controller.Status(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.HubStatusResponse{Status: status, Timestamp: time.Now()})
}
