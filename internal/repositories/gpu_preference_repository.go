package repositories

import (
	"context"
	"errors"

	"gpumanager/internal/models"
)

// NamespaceKey is the HKEY_CURRENT_USER subkey holding one value per executable.
const NamespaceKey = `Software\Microsoft\DirectX\UserGpuPreferences`

var (
	ErrNamespaceNotFound = errors.New("gpu preference namespace not found")
	ErrEntryNotFound     = errors.New("entry not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrIO                = errors.New("store i/o failure")
)

// GpuPreferenceRepository is the durable executable path -> preference mapping.
// Implementations acquire and release their store handle within each call.
type GpuPreferenceRepository interface {
	// List returns every value under the namespace in enumeration order,
	// including values that are not GPU preferences.
	List(ctx context.Context) ([]models.RawEntry, error)
	// Set creates or overwrites the value for path.
	Set(ctx context.Context, path string, pref models.Preference) error
	// Delete removes the value for path.
	Delete(ctx context.Context, path string) error
}
