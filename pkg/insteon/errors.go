package insteon

import "errors"

var (
	// ErrInvalidDeviceFormat indicates a device address could not be parsed
	ErrInvalidDeviceFormat = errors.New("invalid device format")

	// ErrInvalidExtendedData indicates an extended data payload is not valid hex or is too long
	ErrInvalidExtendedData = errors.New("invalid extended data")

	// ErrUnknownCommand indicates a symbolic command name is not in the catalog
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidCommandByte indicates an explicit cmd1/cmd2 value is not a single hex byte
	ErrInvalidCommandByte = errors.New("invalid command byte")

	// ErrInvalidCommandPath indicates a hub request path could not be decoded
	ErrInvalidCommandPath = errors.New("invalid hub command path")

	// ErrNoHubResponse indicates the hub buffer holds no sent command
	ErrNoHubResponse = errors.New("no command found in hub buffer")
)
