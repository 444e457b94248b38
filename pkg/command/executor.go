// Package command turns an alert action or search command configuration
// into paced Insteon calls.
package command

import (
	"context"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device/schema"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/rs/zerolog/log"
)

// ControllerFactory builds the controller used to reach a hub.
type ControllerFactory func(endpoint hub.Endpoint) device.Controller

// Executor runs one invocation end to end. It does no I/O on the host's
// input or output streams.
type Executor struct {
	Mode          Mode
	Validator     *schema.Validator
	NewController ControllerFactory
	Dispatch      dispatch.Options
}

// NewExecutor returns an Executor talking to hubs over HTTP.
func NewExecutor(mode Mode) *Executor {
	return &Executor{
		Mode:      mode,
		Validator: schema.NewValidator(),
		NewController: func(endpoint hub.Endpoint) device.Controller {
			return hub.NewClient(endpoint, nil)
		},
	}
}

// Execute validates cfg and dispatches the command. Configuration errors
// are returned before any call is made; call failures are reported in the
// results.
func (e *Executor) Execute(ctx context.Context, cfg map[string]string) ([]dispatch.CallResult, error) {
	inv, err := Parse(cfg, e.Mode, e.Validator)
	if err != nil {
		log.Error().Err(err).Str("mode", e.Mode.String()).Msg("Invalid configuration")
		return nil, err
	}

	log.Info().
		Str("mode", e.Mode.String()).
		Str("hub", inv.Endpoint.BaseURL()).
		Int("devices", len(inv.Devices)).
		Str("command", inv.Command.Name).
		Str("cmd1", inv.Command.Cmd1()).
		Str("cmd2", inv.Command.Cmd2()).
		Int("times", inv.Command.Times).
		Msg("Executing Insteon command")

	controller := e.NewController(inv.Endpoint)
	defer controller.Close()

	return dispatch.New(controller, e.Dispatch).Dispatch(ctx, inv.Devices, inv.Command), nil
}
