package splunk

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
)

// searchFields is the column order of search command output.
var searchFields = []string{"device", "cmd1", "cmd2", "success", "message", "response"}

// WriteAlertLines reports each call as a line the host's alert log parser
// understands: a severity followed by the message.
func WriteAlertLines(w io.Writer, results []dispatch.CallResult) error {
	for _, r := range results {
		var err error
		if r.Success {
			_, err = fmt.Fprintf(w, "INFO Operation performed successfully, device=%s cmd1=%s cmd2=%s\n", r.Device, r.Cmd1, r.Cmd2)
		} else {
			_, err = fmt.Fprintf(w, "ERROR Operation failed, device=%s cmd1=%s cmd2=%s message=%q\n", r.Device, r.Cmd1, r.Cmd2, r.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSearchResults writes one CSV row per call, preceded by a header.
func WriteSearchResults(w io.Writer, results []dispatch.CallResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(searchFields); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{r.Device, r.Cmd1, r.Cmd2, strconv.FormatBool(r.Success), r.Message, r.Response}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSearchError writes a single result row carrying msg.
func WriteSearchError(w io.Writer, msg string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"message"}); err != nil {
		return err
	}
	if err := cw.Write([]string{msg}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ErrorMessage renders err as the single message row of a failed search.
func ErrorMessage(err error) string {
	var missing *command.MissingFieldError
	if errors.As(err, &missing) {
		if command.IsHubField(missing.Field) {
			return "Insufficient information to connect to Insteon hub: missing " + missing.Field
		}
		return "Insufficient information provided: missing " + missing.Field
	}
	return err.Error()
}
