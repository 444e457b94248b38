package handlers

import (
	"net/http"
	"time"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/api/types"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device/schema"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var sendRequestSchema = []byte(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"device": {"type": "string", "minLength": 1},
		"command": {"type": "string"},
		"cmd1": {"type": "string", "pattern": "^\\s*([0-9a-fA-F]{1,2})?\\s*$"},
		"cmd2": {"type": "string", "pattern": "^\\s*([0-9a-fA-F]{1,2})?\\s*$"},
		"extended_data": {"type": "string", "maxLength": 64}
	},
	"required": ["device"]
}`)

// CommandsHandler lists the command catalog and sends commands.
type CommandsHandler struct {
	controller device.Controller
	validator  *schema.Validator
	dispatch   dispatch.Options
}

// NewCommandsHandler creates a new commands handler
func NewCommandsHandler(controller device.Controller, validator *schema.Validator, opts dispatch.Options) *CommandsHandler {
	return &CommandsHandler{controller: controller, validator: validator, dispatch: opts}
}

// ListCommands handles GET /commands
// @Summary      List commands
// @Description  Returns the symbolic commands that can be sent by name
// @Tags         commands
// @Produce      json
// @Success      200  {object}  types.ListCommandsResponse
// @Router       /commands [get]
func (h *CommandsHandler) ListCommands(c *gin.Context) {
	catalog := insteon.Commands()
	out := make([]types.CommandInfo, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, types.NewCommandInfo(d))
	}
	c.JSON(http.StatusOK, types.ListCommandsResponse{Commands: out, Count: len(out)})
}

// SendCommand handles POST /commands/send
// @Summary      Send a command
// @Description  Sends a command to one or more devices (comma separated), repeating it as the command requires
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        request  body      types.SendCommandRequest  true  "Command to send"
// @Success      200      {object}  types.SendCommandResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      503      {object}  types.ErrorResponse  "No hub configured"
// @Router       /commands/send [post]
func (h *CommandsHandler) SendCommand(c *gin.Context) {
	var req types.SendCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	if err := h.validator.ValidateStrings(sendRequestSchema, map[string]string{
		"device":        req.Device,
		"command":       req.Command,
		"cmd1":          req.Cmd1,
		"cmd2":          req.Cmd2,
		"extended_data": req.ExtendedData,
	}); err != nil {
		writeError(c, err)
		return
	}

	devices, err := insteon.ParseAddresses(req.Device)
	if err != nil {
		writeError(c, err)
		return
	}

	cmd, err := command.ResolveCommand(req.Command, req.Cmd1, req.Cmd2, req.ExtendedData)
	if err != nil {
		writeError(c, err)
		return
	}

	if !h.controller.IsConnected() {
		writeError(c, device.ErrNotConnected)
		return
	}

	log.Info().
		Int("devices", len(devices)).
		Str("cmd1", cmd.Cmd1()).
		Str("cmd2", cmd.Cmd2()).
		Msg("Sending command via API")

	results := dispatch.New(h.controller, h.dispatch).Dispatch(c.Request.Context(), devices, cmd)

	resp := types.SendCommandResponse{Results: results, Timestamp: time.Now()}
	for _, r := range results {
		if r.Success {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	c.JSON(http.StatusOK, resp)
}
