package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device/schema"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
)

// Configuration keys understood by the alert action and search command.
const (
	KeyAddress      = "address"
	KeyPort         = "port"
	KeyUsername     = "username"
	KeyPassword     = "password"
	KeyDevice       = "device"
	KeyCommand      = "command"
	KeyCmd1         = "cmd1"
	KeyCmd2         = "cmd2"
	KeyExtendedData = "extended_data"
)

// requiredKeys are checked in order so the first missing one is reported.
var requiredKeys = []string{KeyAddress, KeyUsername, KeyPassword, KeyDevice}

// configSchema describes the string mapping handed over by the host.
// Unknown keys are tolerated since the host adds its own.
var configSchema = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"address": {"type": "string", "pattern": "^\\s*[0-9]{1,3}(\\.[0-9]{1,3}){3}\\s*$"},
		"port": {"type": "string", "pattern": "^\\s*([0-9]{1,5})?\\s*$"},
		"username": {"type": "string", "minLength": 1},
		"password": {"type": "string", "minLength": 1},
		"device": {"type": "string", "minLength": 1},
		"command": {"type": "string"},
		"cmd1": {"type": "string", "pattern": "^\\s*([0-9a-fA-F]{1,2})?\\s*$"},
		"cmd2": {"type": "string", "pattern": "^\\s*([0-9a-fA-F]{1,2})?\\s*$"},
		"extended_data": {"type": "string", "maxLength": 64}
	},
	"required": ["address", "username", "password", "device"],
	"additionalProperties": {"type": "string"}
}`)

// Mode selects how the device setting is read.
type Mode int

const (
	// ModeAlert accepts exactly one device.
	ModeAlert Mode = iota
	// ModeSearch accepts a comma-separated list of devices.
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "alert"
}

// Invocation is a validated configuration, ready to dispatch.
type Invocation struct {
	Endpoint hub.Endpoint
	Devices  []insteon.Address
	Command  insteon.Descriptor
}

// Parse validates cfg and resolves its device and command settings. No
// network access happens here.
func Parse(cfg map[string]string, mode Mode, validator *schema.Validator) (*Invocation, error) {
	for _, key := range requiredKeys {
		if strings.TrimSpace(cfg[key]) == "" {
			return nil, &MissingFieldError{Field: key}
		}
	}

	if validator != nil {
		if err := validator.ValidateStrings(configSchema, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
	}

	endpoint, err := hub.ParseEndpoint(cfg[KeyAddress], cfg[KeyPort], cfg[KeyUsername], cfg[KeyPassword])
	if err != nil {
		return nil, err
	}

	devices, err := parseDevices(cfg[KeyDevice], mode)
	if err != nil {
		return nil, err
	}

	cmd, err := ResolveCommand(cfg[KeyCommand], cfg[KeyCmd1], cfg[KeyCmd2], cfg[KeyExtendedData])
	if err != nil {
		return nil, err
	}

	return &Invocation{
		Endpoint: endpoint,
		Devices:  devices,
		Command:  cmd,
	}, nil
}

func parseDevices(text string, mode Mode) ([]insteon.Address, error) {
	if mode == ModeSearch {
		return insteon.ParseAddresses(text)
	}
	addr, err := insteon.ParseAddress(text)
	if err != nil {
		return nil, err
	}
	return []insteon.Address{addr}, nil
}

// ResolveCommand turns the command settings into a descriptor. A symbolic
// name is looked up first and explicit cmd1/cmd2 values override its bytes;
// without a name both bytes are required.
func ResolveCommand(name, cmd1, cmd2, extendedData string) (insteon.Descriptor, error) {
	name = strings.TrimSpace(name)
	cmd1 = strings.TrimSpace(cmd1)
	cmd2 = strings.TrimSpace(cmd2)

	var (
		d   insteon.Descriptor
		err error
	)

	switch {
	case name != "":
		d, err = insteon.Resolve(name)
		if err != nil {
			return insteon.Descriptor{}, err
		}
		d, err = d.WithOpcodes(cmd1, cmd2)
	case cmd1 == "":
		return insteon.Descriptor{}, &MissingFieldError{Field: KeyCmd1}
	case cmd2 == "":
		return insteon.Descriptor{}, &MissingFieldError{Field: KeyCmd2}
	default:
		d, err = insteon.Direct(cmd1, cmd2)
	}
	if err != nil {
		return insteon.Descriptor{}, err
	}

	if strings.TrimSpace(extendedData) != "" {
		return d.WithExtendedData(extendedData)
	}
	return d, nil
}
