package insteon

import (
	"fmt"
	"strings"
)

const (
	// sendPrefix is the PLM "send Insteon message" opcode the hub forwards.
	sendPrefix = "0262"
	// standardFlags are the message flags embedded in every request.
	standardFlags = "0F"
	// requestSuffix terminates a raw command on the hub's /3 endpoint.
	requestSuffix = "=I=3"
)

// CommandPath returns the path and query the hub expects for a raw command,
// e.g. "/3?02621A2B3C0F11FF=I=3".
func CommandPath(device Address, cmd Command, extendedData string) string {
	return fmt.Sprintf("/3?%s%s%s%s%s%s%s",
		sendPrefix, device, standardFlags, cmd.Cmd1Hex(), cmd.Cmd2Hex(), extendedData, requestSuffix)
}

// BuildURL assembles the full hub request URL for a command.
func BuildURL(address string, port int, device Address, cmd Command, extendedData string) string {
	return fmt.Sprintf("http://%s:%d%s", address, port, CommandPath(device, cmd, extendedData))
}

// ParseCommandPath decodes the raw query of a hub command request
// ("02621A2B3C0F11FF=I=3") back into its device, command and extended data.
func ParseCommandPath(rawQuery string) (Address, Command, string, error) {
	q := strings.ToUpper(strings.TrimPrefix(rawQuery, "?"))

	if !strings.HasPrefix(q, sendPrefix) || !strings.HasSuffix(q, requestSuffix) {
		return "", 0, "", fmt.Errorf("%w: %q", ErrInvalidCommandPath, rawQuery)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(q, sendPrefix), requestSuffix)

	// device(6) flags(2) cmd1(2) cmd2(2) [extended(28)]
	if len(body) != 12 && len(body) != 12+ExtendedDataLength {
		return "", 0, "", fmt.Errorf("%w: unexpected length %d", ErrInvalidCommandPath, len(body))
	}

	device, err := ParseAddress(body[0:6])
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: %v", ErrInvalidCommandPath, err)
	}
	if body[6:8] != standardFlags {
		return "", 0, "", fmt.Errorf("%w: unexpected flags %s", ErrInvalidCommandPath, body[6:8])
	}
	cmd1, err := ParseCommandByte(body[8:10])
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: %v", ErrInvalidCommandPath, err)
	}
	cmd2, err := ParseCommandByte(body[10:12])
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: %v", ErrInvalidCommandPath, err)
	}

	ext := body[12:]
	if ext != "" {
		if _, err := NormalizeExtendedData(ext); err != nil {
			return "", 0, "", fmt.Errorf("%w: %v", ErrInvalidCommandPath, err)
		}
	}

	return device, NewCommand(cmd1, cmd2), ext, nil
}
