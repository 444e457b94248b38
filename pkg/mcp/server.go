// Package mcp exposes Insteon command sending as Model Context Protocol
// tools over stdio.
package mcp

import (
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server around a controller
type Server struct {
	mcpServer  *server.MCPServer
	controller device.Controller
	dispatch   dispatch.Options
}

// NewServer creates a new MCP server for sending Insteon commands
func NewServer(controller device.Controller, opts dispatch.Options) *Server {
	s := &Server{
		controller: controller,
		dispatch:   opts,
	}

	s.mcpServer = server.NewMCPServer(
		"insteon-control",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
