package device

import (
	"context"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
)

// NullController is a no-op controller used when no hub or modem is configured.
// It allows the API to run in limited mode and report why commands fail.
type NullController struct{}

// NewNullController creates a new NullController.
func NewNullController() *NullController {
	return &NullController{}
}

func (c *NullController) Send(ctx context.Context, addr insteon.Address, cmd insteon.Command, extendedData string) ([]byte, error) {
	return nil, ErrNotConnected
}

func (c *NullController) Status(ctx context.Context) (*insteon.HubStatus, error) {
	return nil, ErrNotConnected
}

func (c *NullController) IsConnected() bool {
	return false
}

func (c *NullController) Close() {}
