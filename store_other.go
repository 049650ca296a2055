//go:build !windows

package main

import (
	"gorm.io/gorm/logger"

	"gpumanager/internal/config"
	"gpumanager/internal/database"
	"gpumanager/internal/repositories"
)

// openStore returns a SQLite stand-in for the registry so the UI can be
// developed on hosts without one.
func openStore(cfg config.Config) (repositories.GpuPreferenceRepository, func() error, error) {
	level := logger.Warn
	if config.IsDevelopment() {
		level = logger.Info
	}

	db, err := database.Init(database.Config{
		Path:     cfg.DevStorePath,
		LogLevel: level,
	})
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewSqliteRepository(db), func() error { return database.Close(db) }, nil
}
