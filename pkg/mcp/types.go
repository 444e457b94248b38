package mcp

import (
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
)

// --- Health Tool ---

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status     string `json:"status" jsonschema:"description=Overall health status (healthy or unhealthy)"`
	Controller string `json:"controller" jsonschema:"description=Hub or modem connection status"`
	Timestamp  string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// --- List Commands Tool ---

// CommandInfo describes one named command
type CommandInfo struct {
	Name            string `json:"name" jsonschema:"description=Symbolic command name"`
	Cmd1            string `json:"cmd1" jsonschema:"description=First command byte (hex)"`
	Cmd2            string `json:"cmd2" jsonschema:"description=Second command byte (hex)"`
	Times           int    `json:"times" jsonschema:"description=How many times the command is sent"`
	ExpectsResponse bool   `json:"expects_response" jsonschema:"description=Whether the device answers with data"`
	Extended        bool   `json:"extended" jsonschema:"description=Whether the command carries an extended payload"`
}

// DescriptorToInfo converts a catalog entry for tool output
func DescriptorToInfo(d insteon.Descriptor) CommandInfo {
	return CommandInfo{
		Name:            d.Name,
		Cmd1:            d.Cmd1(),
		Cmd2:            d.Cmd2(),
		Times:           d.Times,
		ExpectsResponse: d.ExpectsResponse,
		Extended:        d.Extended,
	}
}

// ListCommandsOutput is the output for the list_commands tool
type ListCommandsOutput struct {
	Commands []CommandInfo `json:"commands" jsonschema:"description=Available named commands"`
	Count    int           `json:"count" jsonschema:"description=Number of commands"`
}

// --- Send Command Tool ---

// SendCommandOutput is the output for send_command, turn_on and turn_off
type SendCommandOutput struct {
	Results   []dispatch.CallResult `json:"results" jsonschema:"description=One entry per call made to the hub"`
	Succeeded int                   `json:"succeeded" jsonschema:"description=Number of successful calls"`
	Failed    int                   `json:"failed" jsonschema:"description=Number of failed calls"`
}

// --- Hub Status Tool ---

// GetHubStatusOutput is the output for the get_hub_status tool
type GetHubStatusOutput struct {
	Status *insteon.HubStatus `json:"status" jsonschema:"description=Decoded hub buffer"`
}
