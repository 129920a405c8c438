package config

// LoggingConfig controls log level, handler format and an optional log file.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
		File:   envOrDefault(envLogFile, ""),
	}
}
