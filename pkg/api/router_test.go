package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/api/types"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device/schema"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub/hubtest"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(ctx context.Context, d time.Duration) bool { return ctx.Err() == nil }

func newTestRouter(c device.Controller) http.Handler {
	return NewRouter(c, schema.NewValidator(), dispatch.Options{Sleep: noSleep}).Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(device.NewNullController()), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	srv := hubtest.NewServer("admin", "secret")
	defer srv.Close()

	rec = do(t, newTestRouter(hub.NewClient(srv.Endpoint(), nil)), http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp types.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestListCommands(t *testing.T) {
	rec := do(t, newTestRouter(device.NewNullController()), http.MethodGet, "/api/v1/commands", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ListCommandsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(insteon.Commands()), resp.Count)

	var found bool
	for _, c := range resp.Commands {
		if c.Name == "beep_three_times" {
			found = true
			assert.Equal(t, 3, c.Times)
		}
	}
	assert.True(t, found)
}

func TestSendCommand(t *testing.T) {
	srv := hubtest.NewServer("admin", "secret")
	defer srv.Close()
	srv.FailDevice("445566", http.StatusInternalServerError)

	h := newTestRouter(hub.NewClient(srv.Endpoint(), nil))

	rec := do(t, h, http.MethodPost, "/api/v1/commands/send", types.SendCommandRequest{
		Device:  "11.22.33, 44.55.66",
		Command: "on",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp types.SendCommandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)
	assert.Len(t, srv.Requests(), 2)
}

func TestSendCommand_Invalid(t *testing.T) {
	srv := hubtest.NewServer("admin", "secret")
	defer srv.Close()

	h := newTestRouter(hub.NewClient(srv.Endpoint(), nil))

	tests := []struct {
		name string
		req  types.SendCommandRequest
		code string
	}{
		{"bad device", types.SendCommandRequest{Device: "12345", Command: "on"}, "invalid_device"},
		{"unknown command", types.SendCommandRequest{Device: "112233", Command: "explode"}, "unknown_command"},
		{"missing cmd2", types.SendCommandRequest{Device: "112233", Cmd1: "11"}, "missing_field"},
		{"bad byte", types.SendCommandRequest{Device: "112233", Cmd1: "XYZ", Cmd2: "00"}, "validation_error"},
		{"bad extended", types.SendCommandRequest{Device: "112233", Command: "on", ExtendedData: "zz"}, "invalid_extended_data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/commands/send", tt.req)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error)
		})
	}

	assert.Empty(t, srv.Requests())
}

func TestSendCommand_NotConfigured(t *testing.T) {
	rec := do(t, newTestRouter(device.NewNullController()), http.MethodPost, "/api/v1/commands/send",
		types.SendCommandRequest{Device: "112233", Command: "on"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHubStatus(t *testing.T) {
	srv := hubtest.NewServer("admin", "secret")
	defer srv.Close()

	h := newTestRouter(hub.NewClient(srv.Endpoint(), nil))

	rec := do(t, h, http.MethodGet, "/api/v1/hub/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	srv.SetBuffer("02621A2B3C0F190006" + "02501A2B3C4D5E6F2F00FF")
	rec = do(t, h, http.MethodGet, "/api/v1/hub/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.HubStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Status)
	assert.Equal(t, "1A2B3C", resp.Status.SourceDevice)
	assert.Equal(t, "FF", resp.Status.Cmd2)
}
