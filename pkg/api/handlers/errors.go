package handlers

import (
	"errors"
	"net/http"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/api/types"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device/schema"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/gin-gonic/gin"
)

// errorStatus maps a domain error to an HTTP status and error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, insteon.ErrInvalidDeviceFormat):
		return http.StatusBadRequest, "invalid_device"
	case errors.Is(err, insteon.ErrUnknownCommand):
		return http.StatusBadRequest, "unknown_command"
	case errors.Is(err, insteon.ErrInvalidCommandByte):
		return http.StatusBadRequest, "invalid_command_byte"
	case errors.Is(err, insteon.ErrInvalidExtendedData):
		return http.StatusBadRequest, "invalid_extended_data"
	case errors.Is(err, command.ErrMissingConfiguration):
		return http.StatusBadRequest, "missing_field"
	case errors.Is(err, schema.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, device.ErrNotConnected):
		return http.StatusServiceUnavailable, "not_configured"
	case errors.Is(err, device.ErrUnsupported):
		return http.StatusNotImplemented, "unsupported"
	case errors.Is(err, insteon.ErrNoHubResponse):
		return http.StatusNotFound, "no_response"
	case errors.Is(err, device.ErrTimeout):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, device.ErrTransportFailure), errors.Is(err, device.ErrNack):
		return http.StatusBadGateway, "controller_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(c *gin.Context, err error) {
	status, code := errorStatus(err)
	c.JSON(status, types.ErrorResponse{Error: code, Message: err.Error()})
}
