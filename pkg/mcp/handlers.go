package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, controllerStatus := "healthy", "connected"
	if !s.controller.IsConnected() {
		status, controllerStatus = "unhealthy", "not_configured"
	}

	out := GetHealthOutput{
		Status:     status,
		Controller: controllerStatus,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListCommands(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog := insteon.Commands()
	infos := make([]CommandInfo, 0, len(catalog))
	for _, d := range catalog {
		infos = append(infos, DescriptorToInfo(d))
	}

	out := ListCommandsOutput{Commands: infos, Count: len(infos)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSendCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := requiredString(request, "device")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cmd, err := command.ResolveCommand(
		optionalString(request, "command"),
		optionalString(request, "cmd1"),
		optionalString(request, "cmd2"),
		optionalString(request, "extended_data"),
	)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid command: %s", err)), nil
	}

	return s.send(ctx, devices, cmd)
}

func (s *Server) handleGetHubStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.controller.Status(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read hub status: %s", err)), nil
	}
	return mcp.NewToolResultText(formatJSON(GetHubStatusOutput{Status: status})), nil
}

func (s *Server) handleTurnOn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dev, err := requiredString(request, "device")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cmd, _ := insteon.Resolve("on")

	if l, ok := request.GetArguments()["level"].(float64); ok {
		if l < 1 || l > 100 {
			return mcp.NewToolResultError("parameter \"level\" must be between 1 and 100"), nil
		}
		level := byte(l * 255 / 100)
		cmd.Command = cmd.Command.SubCommand(level)
	}

	return s.send(ctx, dev, cmd)
}

func (s *Server) handleTurnOff(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dev, err := requiredString(request, "device")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cmd, _ := insteon.Resolve("off")
	return s.send(ctx, dev, cmd)
}

func (s *Server) send(ctx context.Context, deviceList string, cmd insteon.Descriptor) (*mcp.CallToolResult, error) {
	devices, err := insteon.ParseAddresses(deviceList)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid device: %s", err)), nil
	}
	if !s.controller.IsConnected() {
		return mcp.NewToolResultError("no Insteon hub or modem is configured"), nil
	}

	log.Info().Int("devices", len(devices)).Str("cmd1", cmd.Cmd1()).Str("cmd2", cmd.Cmd2()).Msg("Sending command via MCP")

	results := dispatch.New(s.controller, s.dispatch).Dispatch(ctx, devices, cmd)

	out := SendCommandOutput{Results: results}
	for _, r := range results {
		if r.Success {
			out.Succeeded++
		} else {
			out.Failed++
		}
	}
	if out.Failed > 0 && out.Succeeded == 0 {
		return mcp.NewToolResultError(formatJSON(out)), nil
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func optionalString(request mcp.CallToolRequest, key string) string {
	s, _ := request.GetArguments()[key].(string)
	return s
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
