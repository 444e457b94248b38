package hub

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/rs/zerolog/log"
)

const (
	bufferStatusPath = "/buffstatus.xml"
	clearBufferPath  = "/1?XB=M=1"
)

// Client implements device.Controller for an Insteon Hub reached over HTTP.
type Client struct {
	endpoint  Endpoint
	transport Transport
}

// NewClient creates a hub client. A nil transport selects an HTTPTransport
// with DefaultTimeout.
func NewClient(endpoint Endpoint, transport Transport) *Client {
	if transport == nil {
		transport = NewHTTPTransport(DefaultTimeout)
	}
	return &Client{endpoint: endpoint, transport: transport}
}

// Endpoint returns the hub this client talks to.
func (c *Client) Endpoint() Endpoint {
	return c.endpoint
}

// Send issues one raw command request. Any status other than 200 is
// reported as device.ErrTransportFailure along with the body received.
func (c *Client) Send(ctx context.Context, addr insteon.Address, cmd insteon.Command, extendedData string) ([]byte, error) {
	url := insteon.BuildURL(c.endpoint.Address, c.endpoint.Port, addr, cmd, extendedData)

	log.Debug().
		Str("device", addr.String()).
		Str("cmd1", cmd.Cmd1Hex()).
		Str("cmd2", cmd.Cmd2Hex()).
		Str("url", url).
		Msg("Sending command to hub")

	status, body, err := c.transport.Get(ctx, url, c.endpoint.Username, c.endpoint.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrTransportFailure, err)
	}
	if status != http.StatusOK {
		return body, fmt.Errorf("%w: hub returned HTTP %d", device.ErrTransportFailure, status)
	}

	return body, nil
}

type bufferStatus struct {
	XMLName xml.Name `xml:"response"`
	Buffer  string   `xml:"BS"`
}

// Status reads and decodes the hub's receive buffer.
func (c *Client) Status(ctx context.Context) (*insteon.HubStatus, error) {
	status, body, err := c.transport.Get(ctx, c.endpoint.BaseURL()+bufferStatusPath, c.endpoint.Username, c.endpoint.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrTransportFailure, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: hub returned HTTP %d", device.ErrTransportFailure, status)
	}

	var bs bufferStatus
	if err := xml.Unmarshal(body, &bs); err != nil {
		return nil, fmt.Errorf("decode buffer status: %w", err)
	}

	return insteon.ParseBuffer(bs.Buffer)
}

// ClearBuffer empties the hub's receive buffer so the next Status only
// reflects messages that follow.
func (c *Client) ClearBuffer(ctx context.Context) error {
	status, _, err := c.transport.Get(ctx, c.endpoint.BaseURL()+clearBufferPath, c.endpoint.Username, c.endpoint.Password)
	if err != nil {
		return fmt.Errorf("%w: %w", device.ErrTransportFailure, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: hub returned HTTP %d", device.ErrTransportFailure, status)
	}
	return nil
}

// IsConnected reports whether the client has a hub to talk to. Reachability
// is only known once a request is made.
func (c *Client) IsConnected() bool {
	return c.endpoint.Address != ""
}

// Close is a no-op: every request uses its own connection.
func (c *Client) Close() {}
