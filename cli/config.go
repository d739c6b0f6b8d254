package cli

import (
	"os"
	"othello/meta"
	"strconv"
)

// Config holds CLI configuration
type Config struct {
	Goroutines int
	LogLevel   string
	ListMoves  bool
	Board      string // Comma separated rows, empty for the opening position
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Goroutines: getEnvIntOrDefault("OTHELLO_GOROUTINES", meta.Goroutines),
		LogLevel:   getEnvOrDefault("OTHELLO_LOG_LEVEL", "warn"),
		ListMoves:  false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return defaultVal
}
