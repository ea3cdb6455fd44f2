package config

import (
	"os"
)

// Config holds the environment-based settings. The report path is not one
// of them; it must be given on the command line.
type Config struct {
	LogFilePath string
	LogLevel    string
}

// Load reads the configuration from environment variables.
func Load() Config {
	return Config{
		LogFilePath: getEnv("FLOWMON_LOG_FILE", ""),
		LogLevel:    getEnv("FLOWMON_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
