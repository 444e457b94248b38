package hub

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultPort is the Insteon Hub's web server port.
const DefaultPort = 25105

// ErrInvalidEndpoint indicates the hub address or port is malformed
var ErrInvalidEndpoint = errors.New("invalid hub endpoint")

var dottedQuad = regexp.MustCompile(`^[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}$`)

// Endpoint holds what is needed to reach one hub. It is built per
// invocation and never stored by this package.
type Endpoint struct {
	Address  string
	Port     int
	Username string
	Password string
}

// ParseEndpoint validates the textual hub settings. An empty port selects
// DefaultPort.
func ParseEndpoint(address, port, username, password string) (Endpoint, error) {
	address = strings.TrimSpace(address)
	if !dottedQuad.MatchString(address) {
		return Endpoint{}, fmt.Errorf("%w: address %q is not a dotted quad", ErrInvalidEndpoint, address)
	}

	p := DefaultPort
	if s := strings.TrimSpace(port); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 65535 {
			return Endpoint{}, fmt.Errorf("%w: port %q must be between 1 and 65535", ErrInvalidEndpoint, port)
		}
		p = n
	}

	return Endpoint{
		Address:  address,
		Port:     p,
		Username: username,
		Password: password,
	}, nil
}

// BaseURL returns the hub's web root, e.g. "http://10.0.0.4:25105".
func (e Endpoint) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", e.Address, e.Port)
}
