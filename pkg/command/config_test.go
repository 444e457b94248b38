package command

import (
	"testing"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device/schema"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() map[string]string {
	return map[string]string{
		KeyAddress:  "10.0.0.4",
		KeyUsername: "admin",
		KeyPassword: "secret",
		KeyDevice:   "56:78:9A",
		KeyCommand:  "on",
	}
}

func TestParse_NamedCommand(t *testing.T) {
	inv, err := Parse(baseConfig(), ModeAlert, schema.NewValidator())
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.4", inv.Endpoint.Address)
	assert.Equal(t, hub.DefaultPort, inv.Endpoint.Port)
	assert.Equal(t, []insteon.Address{"56789A"}, inv.Devices)
	assert.Equal(t, "11", inv.Command.Cmd1())
	assert.Equal(t, "FF", inv.Command.Cmd2())
}

func TestParse_MissingRequired(t *testing.T) {
	for _, key := range []string{KeyAddress, KeyUsername, KeyPassword, KeyDevice} {
		t.Run(key, func(t *testing.T) {
			cfg := baseConfig()
			cfg[key] = "  "
			_, err := Parse(cfg, ModeAlert, schema.NewValidator())
			assert.ErrorIs(t, err, ErrMissingConfiguration)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestParse_SchemaRejectsBadPort(t *testing.T) {
	cfg := baseConfig()
	cfg[KeyPort] = "port"
	_, err := Parse(cfg, ModeAlert, schema.NewValidator())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestParse_PortOutOfRange(t *testing.T) {
	cfg := baseConfig()
	cfg[KeyPort] = "70000"
	_, err := Parse(cfg, ModeAlert, schema.NewValidator())
	assert.ErrorIs(t, err, hub.ErrInvalidEndpoint)
}

func TestParse_AlertRejectsDeviceList(t *testing.T) {
	cfg := baseConfig()
	cfg[KeyDevice] = "11.22.33,44.55.66"
	_, err := Parse(cfg, ModeAlert, schema.NewValidator())
	assert.ErrorIs(t, err, insteon.ErrInvalidDeviceFormat)
}

func TestParse_SearchAcceptsDeviceList(t *testing.T) {
	cfg := baseConfig()
	cfg[KeyDevice] = "44.55.66, 11.22.33,11:22:33"
	inv, err := Parse(cfg, ModeSearch, schema.NewValidator())
	require.NoError(t, err)
	assert.Equal(t, []insteon.Address{"112233", "445566"}, inv.Devices)
}

func TestParse_ExtraKeysAllowed(t *testing.T) {
	cfg := baseConfig()
	cfg["sid"] = "scheduler__admin"
	_, err := Parse(cfg, ModeAlert, schema.NewValidator())
	assert.NoError(t, err)
}

func TestParse_WithoutValidator(t *testing.T) {
	_, err := Parse(baseConfig(), ModeAlert, nil)
	assert.NoError(t, err)
}

func TestResolveCommand(t *testing.T) {
	t.Run("direct bytes", func(t *testing.T) {
		d, err := ResolveCommand("", "11", "80", "")
		require.NoError(t, err)
		assert.Equal(t, "11", d.Cmd1())
		assert.Equal(t, "80", d.Cmd2())
	})

	t.Run("name with override", func(t *testing.T) {
		d, err := ResolveCommand("on", "", "7F", "")
		require.NoError(t, err)
		assert.Equal(t, "11", d.Cmd1())
		assert.Equal(t, "7F", d.Cmd2())
	})

	t.Run("missing cmd1", func(t *testing.T) {
		_, err := ResolveCommand("", "", "FF", "")
		assert.ErrorIs(t, err, ErrMissingConfiguration)
		assert.Contains(t, err.Error(), KeyCmd1)
	})

	t.Run("missing cmd2", func(t *testing.T) {
		_, err := ResolveCommand("", "11", "", "")
		assert.ErrorIs(t, err, ErrMissingConfiguration)
		assert.Contains(t, err.Error(), KeyCmd2)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ResolveCommand("explode", "", "", "")
		assert.ErrorIs(t, err, insteon.ErrUnknownCommand)
	})

	t.Run("bad extended data", func(t *testing.T) {
		_, err := ResolveCommand("on", "", "", "zz")
		assert.ErrorIs(t, err, insteon.ErrInvalidExtendedData)
	})

	t.Run("extended data", func(t *testing.T) {
		d, err := ResolveCommand("", "2E", "00", "01")
		require.NoError(t, err)
		assert.Len(t, d.ExtendedData, insteon.ExtendedDataLength)
	})
}

func TestMissingFieldError(t *testing.T) {
	cfg := baseConfig()
	delete(cfg, KeyPassword)

	_, err := Parse(cfg, ModeAlert, nil)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, KeyPassword, missing.Field)
	assert.True(t, IsHubField(missing.Field))
	assert.False(t, IsHubField(KeyCmd1))
	assert.EqualError(t, err, "missing configuration: password")
}
