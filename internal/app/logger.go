package app

import (
	"os"

	"github.com/ScriptVenture/checkout-service/internal/logger"
)

// InitializeLogger configures the global logger from the environment.
// LOG_LEVEL selects the level (info when unset); LOG_PRETTY=true
// switches to console output for local development.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
