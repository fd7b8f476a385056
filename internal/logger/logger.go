package logger

import (
	"github.com/rs/zerolog"
)

// New creates a logger from the log section of the configuration file
func New(cfg FileLogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
