package command

import (
	"fmt"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/db"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/plm"
	"github.com/rs/zerolog/log"
)

// OpenController builds the controller for stored hub settings: the modem
// when a serial port is set, otherwise the hub over HTTP. Without either a
// NullController is returned so callers can still start and report that
// nothing is configured.
func OpenController(h *db.Hub) (device.Controller, error) {
	if !h.Configured() {
		log.Warn().Msg("No Insteon hub or modem configured, using null controller")
		return device.NewNullController(), nil
	}

	if h.PLMPort != "" {
		m, err := plm.Open(h.PLMPort)
		if err != nil {
			return nil, fmt.Errorf("open modem on %s: %w", h.PLMPort, err)
		}
		log.Info().Str("port", h.PLMPort).Msg("Using PowerLinc modem")
		return m, nil
	}

	s := h.Settings()
	endpoint, err := hub.ParseEndpoint(s[KeyAddress], s[KeyPort], s[KeyUsername], s[KeyPassword])
	if err != nil {
		return nil, err
	}
	log.Info().Str("hub", endpoint.BaseURL()).Msg("Using Insteon hub")
	return hub.NewClient(endpoint, nil), nil
}
