package config

const (
	// ConfigPathEnv overrides config file discovery when set
	ConfigPathEnv = "STORECONF_CONFIG_PATH"

	// MaxConfigFileSize caps how much of a config file is read
	MaxConfigFileSize = 10 * 1024 * 1024 // 10MB

	// Storage Defaults
	DefaultStorageDBDirectory    = "database"
	DefaultStorageIndexDirectory = "index"
)
