package command

import "errors"

var (
	// ErrMissingConfiguration indicates a required setting was not supplied
	ErrMissingConfiguration = errors.New("missing configuration")

	// ErrInvalidConfiguration indicates the settings do not satisfy the configuration schema
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// MissingFieldError names the setting that was not supplied. It matches
// ErrMissingConfiguration with errors.Is.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return ErrMissingConfiguration.Error() + ": " + e.Field
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingConfiguration
}

// IsHubField reports whether key is one of the hub connection settings.
func IsHubField(key string) bool {
	switch key {
	case KeyAddress, KeyPort, KeyUsername, KeyPassword:
		return true
	}
	return false
}
