package logger

// ConfigConverter turns the file-facing FileLogConfig into a LoggerConfig.
type ConfigConverter struct{}

func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{}
}

// ConvertConfig resolves cfg. An unparsable level falls back to info and is
// reported through the error; non-positive sizes take the defaults.
func (cc *ConfigConverter) ConvertConfig(cfg FileLogConfig) (LoggerConfig, error) {
	level, err := ParseLevel(cfg.LogLevel)

	return LoggerConfig{
		Level:         level,
		Format:        ParseFormat(cfg.LogFormat),
		EnableConsole: true,
		EnableFile:    cfg.LogFile != "",
		FilePath:      cfg.LogFile,
		MaxSizeMB:     positiveOr(cfg.MaxLogSizeMB, DefaultMaxLogSizeMB),
		MaxBackups:    positiveOr(cfg.MaxLogBackups, DefaultMaxLogBackups),
	}, err
}

func positiveOr(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}
