package device

import "errors"

var (
	// ErrTransportFailure indicates a command could not be delivered to the hub
	ErrTransportFailure = errors.New("transport failure")

	// ErrTimeout indicates an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrNotConnected indicates the controller is not connected
	ErrNotConnected = errors.New("controller not connected")

	// ErrUnsupported indicates an operation is not supported by the transport
	ErrUnsupported = errors.New("operation not supported")

	// ErrNack indicates the modem refused a command
	ErrNack = errors.New("command not acknowledged")
)
