package plm

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

// SerialPort wraps a serial connection to the PowerLinc Modem.
type SerialPort struct {
	port serial.Port
	mu   sync.Mutex
}

// OpenSerial opens the serial port at 19200 baud, 8N1. Reads return
// (0, nil) once readTimeout elapses without data.
func OpenSerial(portPath string, readTimeout time.Duration) (*SerialPort, error) {
	mode := &serial.Mode{
		BaudRate: 19200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portPath, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portPath, err)
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}

	log.Info().Str("port", portPath).Msg("Serial port opened")

	return &SerialPort{port: port}, nil
}

// Write sends raw bytes to the serial port.
func (s *SerialPort) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port.Write(data)
}

// Read reads raw bytes from the serial port.
func (s *SerialPort) Read(buf []byte) (int, error) {
	return s.port.Read(buf)
}

// Close closes the serial port.
func (s *SerialPort) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port.Close()
}
