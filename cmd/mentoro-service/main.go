package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/mentoro-app/mentoro-server/dashboardservice"
)

func main() {
	// Load .env when present; deployed environments set variables directly.
	_ = godotenv.Load()

	if err := dashboardservice.Run(); err != nil {
		log.Error().Err(err).Msg("mentoro service exited with error")
		os.Exit(1)
	}
}
