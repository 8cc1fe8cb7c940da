package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osse101/wheelbet/internal/config"
	"github.com/osse101/wheelbet/internal/logger"
)

// initLogger initializes the logger using centralized app configuration.
// Logs go to LOG_FILE when set so they do not tear the terminal display;
// the returned closer releases that file.
func initLogger(cfg *config.Config) (io.Closer, error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	if cfg.LogFile == "" {
		logger.InitLogger(loggerConfig)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}
	logger.InitLoggerWithWriter(loggerConfig, f)
	return f, nil
}
