package cli

import (
	"fmt"
	"os"

	"github.com/mako10k/csh/internal/logger"
)

// Name is the program name shown in usage and version output
const Name = "csh"

// Version information
var (
	Version     = "1.0.0"   // Will be overridden by build-time ldflags
	BuildCommit = "unknown" // Will be overridden by build-time ldflags
	BuildTime   = "unknown" // Will be overridden by build-time ldflags
)

// Config holds all configuration for the process
type Config struct {
	LogLevel string // --log-level: debug, info, warn or error
	LogFile  string // --log-file: append logs here (empty: discard)
}

// DefaultConfig returns default configuration values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// LoadEnvironmentConfig loads configuration from environment variables
func LoadEnvironmentConfig(config *Config) {
	if val := os.Getenv("CSH_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}
	if val := os.Getenv("CSH_LOG_FILE"); val != "" {
		config.LogFile = val
	}
}

// Validate checks the configuration before the shell starts
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	return nil
}

// VersionString renders the version line printed by --version
func VersionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, BuildCommit, BuildTime)
}
