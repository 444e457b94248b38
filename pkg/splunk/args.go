package splunk

import (
	"fmt"
	"strings"
)

// ParseSearchArgs parses search command arguments of the form key=value or
// key="quoted value". Keys are lowercased; a repeated key keeps its last
// value.
func ParseSearchArgs(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidArgument, arg)
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			value = value[1 : len(value)-1]
		}
		out[key] = value
	}
	return out, nil
}
