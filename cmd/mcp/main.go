package main

import (
	"context"
	"flag"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/db"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/logging"
	insteonmcp "github.com/LukeMurphey/splunk-insteon-alert/pkg/mcp"
	"github.com/rs/zerolog/log"
)

func main() {
	dbPath := flag.String("db", "", "Path to database file")
	plmPort := flag.String("plm", "", "Serial port of a PowerLinc modem; overrides the stored hub settings")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	flag.Parse()

	// stdout is the MCP transport; logs go to stderr or the log file
	closer := logging.Setup(logging.Options{File: *logFile})
	defer func() { _ = closer.Close() }()

	ctx := context.Background()

	database, err := db.OpenReady(ctx, *dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	hubCfg := cfg.Hub
	if *plmPort != "" {
		hubCfg = &db.Hub{PLMPort: *plmPort}
	}

	controller, err := command.OpenController(hubCfg)
	if err != nil {
		log.Warn().Err(err).Msg("Insteon controller unavailable, using null controller")
		controller = device.NewNullController()
	}
	defer controller.Close()

	mcpServer := insteonmcp.NewServer(controller, dispatch.Options{})

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
