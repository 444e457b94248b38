package device

import (
	"context"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
)

// Controller defines the interface for sending Insteon commands.
// This abstraction allows the dispatcher and the API to work with
// different transports (Insteon Hub over HTTP, PowerLinc Modem over serial)
// through a unified interface.
type Controller interface {
	// Send transmits one command to a device and returns the raw reply
	// from the transport (HTTP body or modem echo)
	Send(ctx context.Context, addr insteon.Address, cmd insteon.Command, extendedData string) ([]byte, error)

	// Status returns the most recent message exchange seen by the transport
	Status(ctx context.Context) (*insteon.HubStatus, error)

	// IsConnected returns true if the controller can reach a hub or modem
	IsConnected() bool

	// Close releases the transport
	Close()
}
