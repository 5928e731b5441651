package logger

import (
	"go.uber.org/zap"

	"github.com/drpriyams/neetpg-mcq-bot/internal/config"
)

// New builds the application logger from the configured environment:
// JSON production logging for prod deployments, human-readable
// development output everywhere else.
func New(cfg *config.Config) (*zap.Logger, error) {
	switch cfg.Env {
	case "production", "prod":
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
