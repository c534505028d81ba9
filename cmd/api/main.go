package main

import (
	"os"

	"github.com/nadira/campusconduct/internal/pkg/logger"
	"github.com/nadira/campusconduct/internal/server"
)

// @title Campus Conduct API
// @version 1.0
// @description API for tracking student conduct reviews

// @contact.name API Support
// @contact.email support@campusconduct.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup failures are already logged with detail inside NewServer.
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
