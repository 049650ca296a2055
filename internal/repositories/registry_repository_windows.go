//go:build windows

package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"gpumanager/internal/models"
)

type registryRepository struct {
	root registry.Key
	path string
}

// NewRegistryRepository returns the repository backed by
// HKEY_CURRENT_USER\Software\Microsoft\DirectX\UserGpuPreferences.
func NewRegistryRepository() GpuPreferenceRepository {
	return &registryRepository{root: registry.CURRENT_USER, path: NamespaceKey}
}

func (r *registryRepository) List(_ context.Context) ([]models.RawEntry, error) {
	k, err := registry.OpenKey(r.root, r.path, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", r.path, ErrNamespaceNotFound)
		}
		return nil, classifyRegistry("open "+r.path, err)
	}
	defer k.Close()

	names, err := k.ReadValueNames(0)
	if err != nil {
		return nil, classifyRegistry("enumerate "+r.path, err)
	}

	return collectValues(names, func(name string) (string, error) {
		value, _, err := k.GetStringValue(name)
		return value, err
	}), nil
}

// collectValues reads each named value in order. Values that are not strings
// cannot be preferences and are dropped silently; values that fail to read
// for any other reason are logged and dropped so one bad value does not hide
// the rest.
func collectValues(names []string, read func(name string) (string, error)) []models.RawEntry {
	entries := make([]models.RawEntry, 0, len(names))
	for _, name := range names {
		value, err := read(name)
		if err != nil {
			if !errors.Is(err, registry.ErrUnexpectedType) {
				log.Printf("Warning: skipping registry value %q: %v", name, err)
			}
			continue
		}
		entries = append(entries, models.RawEntry{Path: name, Value: value})
	}
	return entries
}

func (r *registryRepository) Set(_ context.Context, path string, pref models.Preference) error {
	if !pref.Valid() {
		return fmt.Errorf("set %s: invalid preference %d", path, int(pref))
	}

	k, _, err := registry.CreateKey(r.root, r.path, registry.SET_VALUE)
	if err != nil {
		return classifyRegistry("open "+r.path, err)
	}
	defer k.Close()

	if err := k.SetStringValue(path, models.EncodeRawValue(pref)); err != nil {
		return classifyRegistry("set "+path, err)
	}
	return nil
}

func (r *registryRepository) Delete(_ context.Context, path string) error {
	k, err := registry.OpenKey(r.root, r.path, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return fmt.Errorf("delete %s: %w", path, ErrEntryNotFound)
		}
		return classifyRegistry("open "+r.path, err)
	}
	defer k.Close()

	if err := k.DeleteValue(path); err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return fmt.Errorf("delete %s: %w", path, ErrEntryNotFound)
		}
		return classifyRegistry("delete "+path, err)
	}
	return nil
}

func classifyRegistry(op string, err error) error {
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return fmt.Errorf("%s: %w: %w", op, ErrAccessDenied, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}
