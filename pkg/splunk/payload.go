// Package splunk adapts the executor to the two ways the host runs it: as a
// modular alert action reading a JSON payload on stdin, and as a custom
// search command taking key=value arguments and emitting CSV.
package splunk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrInvalidPayload indicates the alert payload is not the expected JSON document
	ErrInvalidPayload = errors.New("invalid alert payload")

	// ErrInvalidArgument indicates a search command argument is not key=value
	ErrInvalidArgument = errors.New("invalid search argument")
)

// Payload is the document the host writes to an alert action's stdin.
type Payload struct {
	Configuration map[string]string `json:"configuration"`
	Result        map[string]any    `json:"result,omitempty"`
	SessionKey    string            `json:"session_key,omitempty"`
	SearchName    string            `json:"search_name,omitempty"`
	App           string            `json:"app,omitempty"`
	Owner         string            `json:"owner,omitempty"`
}

type rawPayload struct {
	Configuration map[string]any `json:"configuration"`
	Result        map[string]any `json:"result"`
	SessionKey    string         `json:"session_key"`
	SearchName    string         `json:"search_name"`
	App           string         `json:"app"`
	Owner         string         `json:"owner"`
}

// ReadPayload decodes an alert payload. Configuration values are always
// handed over as strings; numbers and booleans are converted and nulls
// dropped.
func ReadPayload(r io.Reader) (*Payload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw rawPayload
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if raw.Configuration == nil {
		return nil, fmt.Errorf("%w: configuration is missing", ErrInvalidPayload)
	}

	cfg := make(map[string]string, len(raw.Configuration))
	for k, v := range raw.Configuration {
		s, ok, err := stringify(v)
		if err != nil {
			return nil, fmt.Errorf("%w: configuration %q: %v", ErrInvalidPayload, k, err)
		}
		if ok {
			cfg[k] = s
		}
	}

	return &Payload{
		Configuration: cfg,
		Result:        raw.Result,
		SessionKey:    raw.SessionKey,
		SearchName:    raw.SearchName,
		App:           raw.App,
		Owner:         raw.Owner,
	}, nil
}

func stringify(v any) (string, bool, error) {
	switch t := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return t, true, nil
	case json.Number:
		return t.String(), true, nil
	case bool:
		return strconv.FormatBool(t), true, nil
	default:
		return "", false, fmt.Errorf("unsupported value of type %T", v)
	}
}
