package logger

import (
	"io"
	"strings"

	"github.com/aleister1102/storeconf/internal/common"
	"github.com/rs/zerolog"
)

// LoggerConfig is the resolved form of FileLogConfig used by the builder.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
	// Console overrides the console destination (stderr when nil)
	Console io.Writer
}

// LogFormat selects how log events are rendered.
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

var formatNames = map[string]LogFormat{
	"json":    FormatJSON,
	"console": FormatConsole,
	"text":    FormatText,
}

func (lf LogFormat) String() string {
	for name, f := range formatNames {
		if f == lf {
			return name
		}
	}
	return "console"
}

// ParseFormat maps a format name to a LogFormat. Empty or unknown names
// render as console output; KnownFormat tells the two apart.
func ParseFormat(name string) LogFormat {
	if f, ok := formatNames[strings.ToLower(name)]; ok {
		return f
	}
	return FormatConsole
}

// KnownFormat reports whether name is empty or a recognised format.
func KnownFormat(name string) bool {
	if name == "" {
		return true
	}
	_, ok := formatNames[strings.ToLower(name)]
	return ok
}

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.InfoLevel, common.WrapError(err, "invalid log level")
	}
	return level, nil
}

// KnownLevel reports whether name is empty or a level ParseLevel accepts.
func KnownLevel(name string) bool {
	_, err := ParseLevel(name)
	return err == nil
}

// DefaultLoggerConfig returns the console-only configuration used before
// any file settings are applied.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        FormatConsole,
		EnableConsole: true,
		MaxSizeMB:     DefaultMaxLogSizeMB,
		MaxBackups:    DefaultMaxLogBackups,
	}
}
