//go:build prod

package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

const dirName = "gpu-manager"

// appDir returns the per-user directory for logs and the development store,
// falling back to the working directory when it cannot be created.
func appDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "."
	}

	dir := filepath.Join(configDir, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Warning: Failed to create app config dir: %v. Using fallback.", err)
		return "."
	}
	return dir
}

func defaultLogPath() string {
	return filepath.Join(appDir(), "gpu-manager.log")
}

func defaultDevStorePath() string {
	return filepath.Join(appDir(), "gpu-manager.db")
}

func defaultLogLevel() logger.LogLevel {
	return logger.INFO
}

func IsDevelopment() bool {
	return false
}
