package hub

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint_Defaults(t *testing.T) {
	e, err := ParseEndpoint(" 192.168.1.20 ", "", "admin", "secret")
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.20", e.Address)
	assert.Equal(t, DefaultPort, e.Port)
	assert.Equal(t, "http://192.168.1.20:25105", e.BaseURL())
}

func TestParseEndpoint_Port(t *testing.T) {
	e, err := ParseEndpoint("10.0.0.1", "8080", "", "")
	require.NoError(t, err)
	assert.Equal(t, 8080, e.Port)

	for _, p := range []string{"0", "65536", "-1", "http", "25105a"} {
		_, err := ParseEndpoint("10.0.0.1", p, "", "")
		require.Error(t, err, p)
		assert.True(t, errors.Is(err, ErrInvalidEndpoint), p)
	}
}

func TestParseEndpoint_Address(t *testing.T) {
	for _, a := range []string{"", "hub.local", "10.0.0", "10.0.0.1.2", "1000.0.0.1"} {
		_, err := ParseEndpoint(a, "", "", "")
		require.Error(t, err, a)
		assert.True(t, errors.Is(err, ErrInvalidEndpoint), a)
	}
}
