// Package hubtest provides an in-process Insteon Hub for tests.
package hubtest

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/hub"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
)

// Request is one command received by the fake hub.
type Request struct {
	Device       insteon.Address
	Command      insteon.Command
	ExtendedData string
}

// Server emulates the hub's /3 command endpoint and buffer pages.
type Server struct {
	*httptest.Server

	Username string
	Password string

	mu       sync.Mutex
	requests []Request
	statuses map[insteon.Address]int
	buffer   string
}

// NewServer starts a fake hub requiring the given basic-auth credentials.
func NewServer(username, password string) *Server {
	s := &Server{
		Username: username,
		Password: password,
		statuses: make(map[insteon.Address]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// FailDevice makes every command to addr answer with the given HTTP status.
func (s *Server) FailDevice(addr insteon.Address, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[addr] = status
}

// SetBuffer sets the hex content served from /buffstatus.xml.
func (s *Server) SetBuffer(hex string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = hex
}

// Requests returns the commands received so far, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Endpoint returns a hub endpoint pointing at this server.
func (s *Server) Endpoint() hub.Endpoint {
	host, port, _ := net.SplitHostPort(s.Listener.Addr().String())
	p, _ := strconv.Atoi(port)
	return hub.Endpoint{
		Address:  host,
		Port:     p,
		Username: s.Username,
		Password: s.Password,
	}
}

// Settings returns the endpoint as the string configuration mapping used by
// the alert action.
func (s *Server) Settings() map[string]string {
	e := s.Endpoint()
	return map[string]string{
		"address":  e.Address,
		"port":     strconv.Itoa(e.Port),
		"username": e.Username,
		"password": e.Password,
	}
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	user, pass, ok := r.BasicAuth()
	if !ok || user != s.Username || pass != s.Password {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.URL.Path {
	case "/3":
		dev, cmd, ext, err := insteon.ParseCommandPath(r.URL.RawQuery)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.requests = append(s.requests, Request{Device: dev, Command: cmd, ExtendedData: ext})
		if status, ok := s.statuses[dev]; ok {
			w.WriteHeader(status)
			return
		}
		w.WriteHeader(http.StatusOK)
	case "/buffstatus.xml":
		w.Header().Set("Content-Type", "text/xml")
		_, _ = fmt.Fprintf(w, "<response><BS>%s</BS></response>", s.buffer)
	case "/1":
		s.buffer = ""
		w.WriteHeader(http.StatusOK)
	default:
		http.NotFound(w, r)
	}
}
