//go:build windows

package main

import (
	"gpumanager/internal/config"
	"gpumanager/internal/repositories"
)

// openStore returns the registry-backed store. Registry handles are opened
// per operation, so there is nothing to close.
func openStore(config.Config) (repositories.GpuPreferenceRepository, func() error, error) {
	return repositories.NewRegistryRepository(), func() error { return nil }, nil
}
