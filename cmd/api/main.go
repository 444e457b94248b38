package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/api"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/command"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/db"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/device/schema"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/dispatch"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/logging"
	"github.com/rs/zerolog/log"

	_ "github.com/LukeMurphey/splunk-insteon-alert/docs"
)

// @title           Insteon Control API
// @version         1.0
// @description     REST API for sending commands to Insteon devices through a hub or PowerLinc modem

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http

func main() {
	dbPath := flag.String("db", "", "Path to database file (default: $SPLUNK_HOME/etc/apps/insteon_control/local/insteon.db or ~/.config/insteon_control/insteon.db)")
	plmPort := flag.String("plm", "", "Serial port of a PowerLinc modem; overrides the stored hub settings")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	closer := logging.Setup(logging.Options{File: *logFile, Verbose: *verbose})
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

	log.Info().Str("path", database.Path()).Msg("Database opened")

	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("profile", cfg.Profile.Name).
		Str("api_address", cfg.APIAddress()).
		Msg("Configuration loaded")

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

	router := api.NewRouter(controller, schema.NewValidator(), dispatch.Options{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		controller.Close()
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	addr := cfg.APIAddress()
	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
