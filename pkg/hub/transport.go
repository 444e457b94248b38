package hub

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
)

// DefaultTimeout bounds every request to the hub.
const DefaultTimeout = 5 * time.Second

// maxBodySize caps how much of a hub reply is kept.
const maxBodySize = 64 << 10

// Transport performs one authenticated GET and reports the status code and
// body. Non-2xx statuses are not errors at this level.
type Transport interface {
	Get(ctx context.Context, url, username, password string) (int, []byte, error)
}

// HTTPTransport is the Transport used against real hubs.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport returns a transport with the given timeout (DefaultTimeout
// when zero). The hub ships without a valid certificate, so certificate
// verification is disabled, and each call uses a fresh connection.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig:   &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
				DisableKeepAlives: true,
			},
		},
	}
}

func (t *HTTPTransport) Get(ctx context.Context, url, username, password string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	if username != "" || password != "" {
		req.SetBasicAuth(username, password)
	}

	res, err := t.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, nil, fmt.Errorf("%w: %v", device.ErrTimeout, err)
		}
		return 0, nil, err
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return res.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}

	return res.StatusCode, body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
