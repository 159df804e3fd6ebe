// Package app provides logger initialization.
package app

import (
	"github.com/threadline/ratio-service/config"
	"github.com/threadline/ratio-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
