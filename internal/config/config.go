package config

import (
	"github.com/wailsapp/wails/v2/pkg/logger"
)

const appName = "GPU Manager"

// Config is resolved at build time; the application reads no flags, files
// or environment variables.
type Config struct {
	Title  string
	Width  int
	Height int

	LogLevel logger.LogLevel
	// LogPath is empty when logs go to the console.
	LogPath string
	// DevStorePath locates the SQLite file that stands in for the registry
	// on non-Windows hosts.
	DevStorePath string
}

// Default returns the configuration for the current build mode.
func Default() Config {
	return Config{
		Title:        appName,
		Width:        600,
		Height:       400,
		LogLevel:     defaultLogLevel(),
		LogPath:      defaultLogPath(),
		DevStorePath: defaultDevStorePath(),
	}
}

// Logger builds the Wails logger described by cfg.
func (c Config) Logger() logger.Logger {
	if c.LogPath == "" {
		return logger.NewDefaultLogger()
	}
	return logger.NewFileLogger(c.LogPath)
}
