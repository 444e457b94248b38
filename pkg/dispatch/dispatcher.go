// Package dispatch sends a resolved Insteon command to a set of devices,
// pacing the calls so the hub's request queue is not overrun.
package dispatch

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultRepeatDelay separates repeated calls to the same device.
	DefaultRepeatDelay = 1 * time.Second

	// DefaultDeviceDelay separates the last call to one device from the
	// first call to the next.
	DefaultDeviceDelay = 2 * DefaultRepeatDelay

	// DefaultResponseDelay is how long the device is given to answer
	// before the controller status is read.
	DefaultResponseDelay = 1 * time.Second
)

// Messages recorded on a CallResult.
const (
	// MessageSuccess is the message of a call the controller accepted.
	MessageSuccess = "Successfully sent Insteon command to hub"
	// MessageFailure prefixes the message of a failed call, followed by the error.
	MessageFailure = "Failed to send Insteon command to hub"
)

// CallResult records the outcome of one call to the controller.
type CallResult struct {
	Device   string             `json:"device"`
	Cmd1     string             `json:"cmd1"`
	Cmd2     string             `json:"cmd2"`
	Success  bool               `json:"success"`
	Message  string             `json:"message"`
	Response string             `json:"response,omitempty"`
	Status   *insteon.HubStatus `json:"status,omitempty"`
}

// Options tunes the pacing of a Dispatcher. Zero values select the defaults.
type Options struct {
	RepeatDelay   time.Duration
	DeviceDelay   time.Duration
	ResponseDelay time.Duration

	// Sleep replaces the real-time wait, mainly for tests. It returns
	// false when the wait was interrupted.
	Sleep func(ctx context.Context, d time.Duration) bool
}

// Dispatcher issues commands through a controller, one call at a time.
type Dispatcher struct {
	controller device.Controller
	opts       Options
}

// New creates a Dispatcher for the given controller.
func New(controller device.Controller, opts Options) *Dispatcher {
	if opts.RepeatDelay == 0 {
		opts.RepeatDelay = DefaultRepeatDelay
	}
	if opts.DeviceDelay == 0 {
		opts.DeviceDelay = DefaultDeviceDelay
	}
	if opts.ResponseDelay == 0 {
		opts.ResponseDelay = DefaultResponseDelay
	}
	if opts.Sleep == nil {
		opts.Sleep = sleep
	}
	return &Dispatcher{controller: controller, opts: opts}
}

// Dispatch sends cmd to every device, cmd.Times times each, in the order
// given. It returns one CallResult per attempted call; failures are
// recorded rather than returned. A cancelled context stops the loop at the
// next pause and the results gathered so far are returned.
func (d *Dispatcher) Dispatch(ctx context.Context, devices []insteon.Address, cmd insteon.Descriptor) []CallResult {
	times := cmd.Times
	if times < 1 {
		times = 1
	}

	results := make([]CallResult, 0, len(devices)*times)

	for i, addr := range devices {
		if i > 0 && !d.opts.Sleep(ctx, d.opts.DeviceDelay) {
			log.Warn().Err(ctx.Err()).Int("completed", len(results)).Msg("Dispatch interrupted")
			return results
		}

		for n := 0; n < times; n++ {
			if n > 0 && !d.opts.Sleep(ctx, d.opts.RepeatDelay) {
				log.Warn().Err(ctx.Err()).Int("completed", len(results)).Msg("Dispatch interrupted")
				return results
			}
			results = append(results, d.call(ctx, addr, cmd))
		}
	}

	return results
}

func (d *Dispatcher) call(ctx context.Context, addr insteon.Address, cmd insteon.Descriptor) CallResult {
	result := CallResult{
		Device: addr.String(),
		Cmd1:   cmd.Cmd1(),
		Cmd2:   cmd.Cmd2(),
	}

	reply, err := d.controller.Send(ctx, addr, cmd.Command, cmd.ExtendedData)
	if len(reply) > 0 {
		result.Response = printable(reply)
	}
	if err != nil {
		log.Error().
			Err(err).
			Str("device", result.Device).
			Str("cmd1", result.Cmd1).
			Str("cmd2", result.Cmd2).
			Msg("Failed to send Insteon command")
		result.Message = fmt.Sprintf("%s: %s", MessageFailure, err)
		return result
	}

	log.Info().
		Str("device", result.Device).
		Str("cmd1", result.Cmd1).
		Str("cmd2", result.Cmd2).
		Msg("Insteon command sent")
	result.Success = true
	result.Message = MessageSuccess

	if cmd.ExpectsResponse && d.controller.IsConnected() && d.opts.Sleep(ctx, d.opts.ResponseDelay) {
		status, err := d.controller.Status(ctx)
		if err != nil {
			log.Warn().Err(err).Str("device", result.Device).Msg("No status available after command")
		} else {
			result.Status = status
		}
	}

	return result
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// printable returns text replies as-is and binary ones (modem echoes) as hex.
func printable(b []byte) string {
	if utf8.Valid(b) && strings.IndexFunc(string(b), func(r rune) bool {
		return !unicode.IsPrint(r) && !unicode.IsSpace(r)
	}) < 0 {
		return string(b)
	}
	return strings.ToUpper(hex.EncodeToString(b))
}
