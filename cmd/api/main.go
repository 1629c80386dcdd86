package main

import (
	"os"

	"github.com/schoolerp/student-service/internal/pkg/logger"
	"github.com/schoolerp/student-service/internal/server"
)

// @title Student Service API
// @version 1.0
// @description School administration backend for student records, ID cards, marksheets and documents

// @contact.name API Support
// @contact.email support@schoolerp.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1/student-service
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
