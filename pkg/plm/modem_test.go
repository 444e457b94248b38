package plm

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePort struct {
	in     *bytes.Buffer
	out    bytes.Buffer
	closed bool
}

func newFakePort(reply ...byte) *fakePort {
	return &fakePort{in: bytes.NewBuffer(reply)}
}

func (p *fakePort) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *fakePort) Write(b []byte) (int, error) { return p.out.Write(b) }
func (p *fakePort) Close() error                { p.closed = true; return nil }

func TestFrame_Standard(t *testing.T) {
	frame, err := Frame("1A2B3C", insteon.NewCommand(0x11, 0xFF), "")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x62, 0x1A, 0x2B, 0x3C, 0x0F, 0x11, 0xFF}, frame)
}

func TestFrame_Extended(t *testing.T) {
	d, err := insteon.Resolve("thermostat_info")
	require.NoError(t, err)

	frame, err := Frame("1A2B3C", d.Command, d.ExtendedData)
	require.NoError(t, err)
	require.Len(t, frame, 22)
	assert.Equal(t, byte(0x1F), frame[5])
	assert.Equal(t, byte(0xD0), frame[21])
}

func TestFrame_Invalid(t *testing.T) {
	_, err := Frame("nope", insteon.NewCommand(0x11, 0xFF), "")
	assert.True(t, errors.Is(err, insteon.ErrInvalidDeviceFormat))

	_, err = Frame("1A2B3C", insteon.NewCommand(0x11, 0xFF), "00")
	assert.True(t, errors.Is(err, insteon.ErrInvalidExtendedData))
}

func TestModemSend_Ack(t *testing.T) {
	// a stray byte before the echo must be skipped
	port := newFakePort(0x15, 0x02, 0x62, 0x1A, 0x2B, 0x3C, 0x0F, 0x11, 0xFF, 0x06)
	m := NewModem(port)

	reply, err := m.Send(context.Background(), "1A2B3C", insteon.NewCommand(0x11, 0xFF), "")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x62, 0x1A, 0x2B, 0x3C, 0x0F, 0x11, 0xFF, 0x06}, reply)
	assert.Equal(t, []byte{0x02, 0x62, 0x1A, 0x2B, 0x3C, 0x0F, 0x11, 0xFF}, port.out.Bytes())
}

func TestModemSend_Nak(t *testing.T) {
	port := newFakePort(0x02, 0x62, 0x1A, 0x2B, 0x3C, 0x0F, 0x11, 0xFF, 0x15)
	m := NewModem(port)

	_, err := m.Send(context.Background(), "1A2B3C", insteon.NewCommand(0x11, 0xFF), "")
	assert.True(t, errors.Is(err, device.ErrNack))
}

func TestModemSend_Timeout(t *testing.T) {
	m := NewModem(newFakePort())

	_, err := m.Send(context.Background(), "1A2B3C", insteon.NewCommand(0x11, 0xFF), "")
	assert.True(t, errors.Is(err, device.ErrTimeout))
}

func TestModemStatus(t *testing.T) {
	port := newFakePort(
		0x02, 0x62, 0x1A, 0x2B, 0x3C, 0x0F, 0x19, 0x00, 0x06,
		0x02, 0x50, 0x1A, 0x2B, 0x3C, 0x4D, 0x5E, 0x6F, 0x2F, 0x00, 0xFF,
	)
	m := NewModem(port)

	_, err := m.Send(context.Background(), "1A2B3C", insteon.NewCommand(0x19, 0x00), "")
	require.NoError(t, err)

	status, err := m.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "02621A2B3C0F1900", status.LastCommand)
	assert.Equal(t, "19", status.LastCommandCmd1)
	assert.Equal(t, "1A2B3C", status.SourceDevice)
	assert.Equal(t, "4D5E6F", status.TargetDevice)
	assert.Equal(t, "00", status.Cmd1)
	assert.Equal(t, "FF", status.Cmd2)
}

func TestModemClose(t *testing.T) {
	port := newFakePort()
	m := NewModem(port)
	require.True(t, m.IsConnected())

	m.Close()
	m.Close()

	assert.True(t, port.closed)
	assert.False(t, m.IsConnected())

	_, err := m.Send(context.Background(), "1A2B3C", insteon.NewCommand(0x11, 0xFF), "")
	assert.True(t, errors.Is(err, device.ErrNotConnected))
}
