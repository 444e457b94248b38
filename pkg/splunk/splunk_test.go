package splunk

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPayload(t *testing.T) {
	in := `{
		"session_key": "abc",
		"search_name": "Lights off",
		"configuration": {"address": "10.0.0.4", "port": 25105, "device": "11.22.33", "verbose": true, "cmd2": null},
		"result": {"host": "web01"}
	}`

	p, err := ReadPayload(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "abc", p.SessionKey)
	assert.Equal(t, "Lights off", p.SearchName)
	assert.Equal(t, "25105", p.Configuration["port"])
	assert.Equal(t, "true", p.Configuration["verbose"])
	assert.Equal(t, "11.22.33", p.Configuration["device"])
	assert.NotContains(t, p.Configuration, "cmd2")
	assert.Equal(t, "web01", p.Result["host"])
}

func TestReadPayload_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":         "nope",
		"no configuration": `{"result": {}}`,
		"nested value":     `{"configuration": {"device": {"a": 1}}}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadPayload(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestParseSearchArgs(t *testing.T) {
	args, err := ParseSearchArgs([]string{`device="11.22.33, 44.55.66"`, "Command=on", "cmd2='80'"})
	require.NoError(t, err)

	assert.Equal(t, "11.22.33, 44.55.66", args["device"])
	assert.Equal(t, "on", args["command"])
	assert.Equal(t, "80", args["cmd2"])

	_, err = ParseSearchArgs([]string{"device"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseSearchArgs([]string{"=on"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWriteAlertLines(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAlertLines(&buf, []dispatch.CallResult{
		{Device: "112233", Cmd1: "11", Cmd2: "FF", Success: true, Message: dispatch.MessageSuccess},
		{Device: "445566", Cmd1: "11", Cmd2: "FF", Message: dispatch.MessageFailure},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "INFO Operation performed successfully"))
	assert.Contains(t, lines[0], "device=112233")
	assert.True(t, strings.HasPrefix(lines[1], "ERROR Operation failed"))
	assert.Contains(t, lines[1], "device=445566")
}

func TestWriteSearchResults(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSearchResults(&buf, []dispatch.CallResult{
		{Device: "112233", Cmd1: "13", Cmd2: "00", Success: true, Message: dispatch.MessageSuccess},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, searchFields, rows[0])
	assert.Equal(t, []string{"112233", "13", "00", "true", dispatch.MessageSuccess, ""}, rows[1])
}

func TestWriteSearchError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSearchError(&buf, "Insufficient information provided: missing cmd1"))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"message"}, {"Insufficient information provided: missing cmd1"}}, rows)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Insufficient information to connect to Insteon hub: missing address",
		ErrorMessage(&command.MissingFieldError{Field: command.KeyAddress}))
	assert.Equal(t, "Insufficient information provided: missing cmd2",
		ErrorMessage(&command.MissingFieldError{Field: command.KeyCmd2}))

	err := fmt.Errorf("%w: %q", insteon.ErrUnknownCommand, "explode")
	assert.Equal(t, err.Error(), ErrorMessage(err))
}
