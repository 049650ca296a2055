//go:build !prod

package config

import "github.com/wailsapp/wails/v2/pkg/logger"

// In dev mode everything lives next to the working directory for easy access.

func defaultLogPath() string {
	return ""
}

func defaultDevStorePath() string {
	return "gpu-manager-dev.db"
}

func defaultLogLevel() logger.LogLevel {
	return logger.DEBUG
}

func IsDevelopment() bool {
	return true
}
