package hub_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub/hubtest"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSend_Success(t *testing.T) {
	srv := hubtest.NewServer("admin", "secret")
	defer srv.Close()

	c := hub.NewClient(srv.Endpoint(), nil)
	_, err := c.Send(context.Background(), "1A2B3C", insteon.NewCommand(0x11, 0xFF), "")
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, insteon.Address("1A2B3C"), reqs[0].Device)
	assert.Equal(t, insteon.NewCommand(0x11, 0xFF), reqs[0].Command)
}

func TestClientSend_ExtendedData(t *testing.T) {
	srv := hubtest.NewServer("admin", "secret")
	defer srv.Close()

	d, err := insteon.Resolve("thermostat_info")
	require.NoError(t, err)

	c := hub.NewClient(srv.Endpoint(), nil)
	_, err = c.Send(context.Background(), "0A3467", d.Command, d.ExtendedData)
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, d.ExtendedData, reqs[0].ExtendedData)
}

func TestClientSend_BadCredentials(t *testing.T) {
	srv := hubtest.NewServer("admin", "secret")
	defer srv.Close()

	e := srv.Endpoint()
	e.Password = "wrong"

	_, err := hub.NewClient(e, nil).Send(context.Background(), "1A2B3C", insteon.NewCommand(0x11, 0xFF), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, device.ErrTransportFailure))
	assert.Contains(t, err.Error(), "401")
}

func TestClientSend_NonOKStatus(t *testing.T) {
	srv := hubtest.NewServer("admin", "secret")
	defer srv.Close()
	srv.FailDevice("1A2B3C", http.StatusInternalServerError)

	_, err := hub.NewClient(srv.Endpoint(), nil).Send(context.Background(), "1A2B3C", insteon.NewCommand(0x13, 0x00), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, device.ErrTransportFailure))
	assert.Contains(t, err.Error(), "500")
}

func TestClientSend_Unreachable(t *testing.T) {
	srv := hubtest.NewServer("admin", "secret")
	e := srv.Endpoint()
	srv.Close()

	c := hub.NewClient(e, hub.NewHTTPTransport(time.Second))
	_, err := c.Send(context.Background(), "1A2B3C", insteon.NewCommand(0x11, 0xFF), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, device.ErrTransportFailure))
}

func TestClientStatus(t *testing.T) {
	srv := hubtest.NewServer("admin", "secret")
	defer srv.Close()
	srv.SetBuffer("02621A2B3C0F190006" + "02501A2B3C4D5E6F2F00FF")

	c := hub.NewClient(srv.Endpoint(), nil)
	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "19", status.LastCommandCmd1)
	assert.Equal(t, "1A2B3C", status.SourceDevice)

	require.NoError(t, c.ClearBuffer(context.Background()))
	_, err = c.Status(context.Background())
	assert.True(t, errors.Is(err, insteon.ErrNoHubResponse))
}

func TestClient_IsConnected(t *testing.T) {
	assert.True(t, hub.NewClient(hub.Endpoint{Address: "10.0.0.1", Port: 25105}, nil).IsConnected())
	assert.False(t, hub.NewClient(hub.Endpoint{}, nil).IsConnected())
}
