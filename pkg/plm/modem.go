// Package plm drives an Insteon PowerLinc Modem attached over a serial
// port. The modem accepts the same 0262 "send message" frame the hub's
// HTTP interface wraps, as raw bytes.
package plm

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/rs/zerolog/log"
)

const (
	frameStart       = 0x02
	codeSendMessage  = 0x62
	codeStandardRecv = 0x50
	codeExtendedRecv = 0x51
	ack              = 0x06
	nak              = 0x15

	flagsStandard = 0x0F
	flagsExtended = 0x1F

	// DefaultReadTimeout is how long the modem is given to answer.
	DefaultReadTimeout = 2 * time.Second
)

// Port is the byte stream to the modem.
type Port interface {
	io.ReadWriter
	Close() error
}

// Modem implements device.Controller over a PLM.
type Modem struct {
	port Port

	mu       sync.Mutex
	lastSent []byte
	closed   bool
}

// Open opens the modem on the given serial device.
func Open(portPath string) (*Modem, error) {
	log.Info().Str("port", portPath).Msg("Initializing PowerLinc Modem")
	p, err := OpenSerial(portPath, DefaultReadTimeout)
	if err != nil {
		return nil, fmt.Errorf("open serial: %w", err)
	}
	return NewModem(p), nil
}

// NewModem wraps an already opened port.
func NewModem(port Port) *Modem {
	return &Modem{port: port}
}

// Frame encodes a send-message frame for the modem.
func Frame(addr insteon.Address, cmd insteon.Command, extendedData string) ([]byte, error) {
	a := addr.Bytes()
	if a == nil {
		return nil, fmt.Errorf("%w: %q", insteon.ErrInvalidDeviceFormat, addr)
	}

	frame := []byte{frameStart, codeSendMessage, a[0], a[1], a[2], flagsStandard, cmd.Cmd1(), cmd.Cmd2()}
	if extendedData == "" {
		return frame, nil
	}

	data, err := hex.DecodeString(extendedData)
	if err != nil || len(data) != insteon.ExtendedDataLength/2 {
		return nil, fmt.Errorf("%w: %q", insteon.ErrInvalidExtendedData, extendedData)
	}
	frame[5] = flagsExtended
	return append(frame, data...), nil
}

// Send writes one command and waits for the modem's echo. The echo is
// returned when the modem acknowledges the frame.
func (m *Modem) Send(ctx context.Context, addr insteon.Address, cmd insteon.Command, extendedData string) ([]byte, error) {
	frame, err := Frame(addr, cmd, extendedData)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, device.ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug().Str("frame", strings.ToUpper(hex.EncodeToString(frame))).Msg("Writing frame to modem")

	if _, err := m.port.Write(frame); err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrTransportFailure, err)
	}
	m.lastSent = frame

	// echo: start + code + the frame body + ack/nak
	if err := m.seek(codeSendMessage); err != nil {
		return nil, err
	}
	echo := make([]byte, len(frame)-1)
	if err := m.readFull(echo); err != nil {
		return nil, err
	}

	reply := append([]byte{frameStart, codeSendMessage}, echo...)
	switch echo[len(echo)-1] {
	case ack:
		return reply, nil
	case nak:
		return reply, device.ErrNack
	default:
		return reply, fmt.Errorf("%w: unexpected reply byte 0x%02X", device.ErrTransportFailure, echo[len(echo)-1])
	}
}

// Status waits for the next standard message received by the modem and
// reports it against the last command sent.
func (m *Modem) Status(ctx context.Context) (*insteon.HubStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, device.ErrNotConnected
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		code, err := m.nextCode()
		if err != nil {
			return nil, err
		}

		switch code {
		case codeStandardRecv:
			body := make([]byte, 9)
			if err := m.readFull(body); err != nil {
				return nil, err
			}
			return m.status(append([]byte{frameStart, codeStandardRecv}, body...)), nil
		case codeExtendedRecv:
			// skip the 23 byte body of extended messages
			if err := m.readFull(make([]byte, 23)); err != nil {
				return nil, err
			}
		}
	}
}

func (m *Modem) status(recv []byte) *insteon.HubStatus {
	s := &insteon.HubStatus{
		FullResponse: strings.ToUpper(hex.EncodeToString(recv)),
		SourceDevice: insteon.AddressFromBytes(recv[2:5]).String(),
		TargetDevice: insteon.AddressFromBytes(recv[5:8]).String(),
		Cmd1:         fmt.Sprintf("%02X", recv[9]),
		Cmd2:         fmt.Sprintf("%02X", recv[10]),
	}
	if len(m.lastSent) >= 8 {
		s.LastCommand = strings.ToUpper(hex.EncodeToString(m.lastSent[:8]))
		s.LastCommandCmd1 = fmt.Sprintf("%02X", m.lastSent[6])
		s.LastCommandCmd2 = fmt.Sprintf("%02X", m.lastSent[7])
	}
	return s
}

// IsConnected returns true until the modem is closed.
func (m *Modem) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed
}

// Close closes the serial port.
func (m *Modem) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	if err := m.port.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close modem port")
	}
}

// seek discards bytes until a frame with the given code starts.
func (m *Modem) seek(code byte) error {
	for {
		c, err := m.nextCode()
		if err != nil {
			return err
		}
		if c == code {
			return nil
		}
	}
}

// nextCode returns the code byte following the next frame start.
func (m *Modem) nextCode() (byte, error) {
	for {
		b, err := m.readByte()
		if err != nil {
			return 0, err
		}
		if b == frameStart {
			return m.readByte()
		}
	}
}

func (m *Modem) readFull(buf []byte) error {
	for i := range buf {
		b, err := m.readByte()
		if err != nil {
			return err
		}
		buf[i] = b
	}
	return nil
}

func (m *Modem) readByte() (byte, error) {
	buf := make([]byte, 1)
	n, err := m.port.Read(buf)
	if n == 1 {
		return buf[0], nil
	}
	if err == nil || err == io.EOF {
		return 0, device.ErrTimeout
	}
	return 0, fmt.Errorf("%w: %w", device.ErrTransportFailure, err)
}
