package types

import (
	"time"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
)

// --- Request DTOs ---

// SendCommandRequest is the request body for POST /commands/send. Either
// Command or both Cmd1 and Cmd2 must be given; Cmd1/Cmd2 override the
// bytes of a named command.
type SendCommandRequest struct {
	Device       string `json:"device" binding:"required" example:"0A.34.67,1B.22.33"`
	Command      string `json:"command,omitempty" example:"on"`
	Cmd1         string `json:"cmd1,omitempty" example:"11"`
	Cmd2         string `json:"cmd2,omitempty" example:"FF"`
	ExtendedData string `json:"extended_data,omitempty"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status     string    `json:"status"`
	Controller string    `json:"controller"`
	Timestamp  time.Time `json:"timestamp"`
}

// CommandInfo describes one catalog entry.
type CommandInfo struct {
	Name            string `json:"name"`
	Cmd1            string `json:"cmd1"`
	Cmd2            string `json:"cmd2"`
	ExpectsResponse bool   `json:"expects_response"`
	Times           int    `json:"times"`
	Extended        bool   `json:"extended"`
}

// NewCommandInfo converts a catalog descriptor.
func NewCommandInfo(d insteon.Descriptor) CommandInfo {
	return CommandInfo{
		Name:            d.Name,
		Cmd1:            d.Cmd1(),
		Cmd2:            d.Cmd2(),
		ExpectsResponse: d.ExpectsResponse,
		Times:           d.Times,
		Extended:        d.Extended,
	}
}

// ListCommandsResponse is returned from GET /commands
type ListCommandsResponse struct {
	Commands []CommandInfo `json:"commands"`
	Count    int           `json:"count"`
}

// SendCommandResponse is returned from POST /commands/send
type SendCommandResponse struct {
	Results   []dispatch.CallResult `json:"results"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Timestamp time.Time             `json:"timestamp"`
}

// HubStatusResponse is returned from GET /hub/status
type HubStatusResponse struct {
	Status    *insteon.HubStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}
