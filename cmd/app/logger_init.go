package main

import (
	"github.com/kiwiorbit/speechive-7.1/internal/config"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
)

const (
	serviceName = "speechive-engine"
	version     = "dev"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
