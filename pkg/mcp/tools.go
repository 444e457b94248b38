package mcp

import "github.com/mark3labs/mcp-go/mcp"

const deviceDescription = "Insteon device address such as 0A.34.67, 0a:34:67 or 0A3467; send_command also accepts a comma-separated list"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check whether an Insteon hub or modem is configured"),
		),
		s.handleGetHealth,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_commands",
			mcp.WithDescription("List the symbolic command names with their cmd1/cmd2 bytes and repeat counts"),
		),
		s.handleListCommands,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("send_command",
			mcp.WithDescription("Send a command to one or more Insteon devices. Give a command name, or cmd1 and cmd2 as hex bytes."),
			mcp.WithString("device",
				mcp.Required(),
				mcp.Description(deviceDescription),
			),
			mcp.WithString("command",
				mcp.Description("Command name from list_commands (e.g. on, off, beep_two_times)"),
			),
			mcp.WithString("cmd1",
				mcp.Description("First command byte in hex; overrides the named command's byte"),
			),
			mcp.WithString("cmd2",
				mcp.Description("Second command byte in hex; overrides the named command's byte"),
			),
			mcp.WithString("extended_data",
				mcp.Description("Hex payload for extended commands, zero padded to 14 bytes"),
			),
		),
		s.handleSendCommand,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_hub_status",
			mcp.WithDescription("Read the last command and device reply from the hub buffer"),
		),
		s.handleGetHubStatus,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("turn_on",
			mcp.WithDescription("Turn on a device, optionally at a brightness level"),
			mcp.WithString("device",
				mcp.Required(),
				mcp.Description(deviceDescription),
			),
			mcp.WithNumber("level",
				mcp.Description("Brightness in percent, 1-100 (default 100)"),
				mcp.Min(1),
				mcp.Max(100),
			),
		),
		s.handleTurnOn,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("turn_off",
			mcp.WithDescription("Turn off a device"),
			mcp.WithString("device",
				mcp.Required(),
				mcp.Description(deviceDescription),
			),
		),
		s.handleTurnOff,
	)
}
