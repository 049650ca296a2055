package mocks

import (
	"context"
	"fmt"

	"gpumanager/internal/models"
	"gpumanager/internal/repositories"
)

type GpuPreferenceRepositoryMock struct {
	ListFunc   func(ctx context.Context) ([]models.RawEntry, error)
	SetFunc    func(ctx context.Context, path string, pref models.Preference) error
	DeleteFunc func(ctx context.Context, path string) error
}

func (m *GpuPreferenceRepositoryMock) List(ctx context.Context) ([]models.RawEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.RawEntry{}, nil
}

func (m *GpuPreferenceRepositoryMock) Set(ctx context.Context, path string, pref models.Preference) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, path, pref)
	}
	return nil
}

func (m *GpuPreferenceRepositoryMock) Delete(ctx context.Context, path string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, path)
	}
	return nil
}

// MemoryGpuPreferenceRepository is an ordered in-memory namespace that
// records every write and can fail chosen paths.
type MemoryGpuPreferenceRepository struct {
	Entries []models.RawEntry
	// Missing makes List report an absent namespace until the first Set.
	Missing      bool
	SetErrors    map[string]error
	DeleteErrors map[string]error

	SetCalls    []string
	DeleteCalls []string
}

func NewMemoryGpuPreferenceRepository(entries ...models.RawEntry) *MemoryGpuPreferenceRepository {
	return &MemoryGpuPreferenceRepository{Entries: entries}
}

func (m *MemoryGpuPreferenceRepository) List(ctx context.Context) ([]models.RawEntry, error) {
	if m.Missing {
		return nil, fmt.Errorf("open %s: %w", repositories.NamespaceKey, repositories.ErrNamespaceNotFound)
	}
	out := make([]models.RawEntry, len(m.Entries))
	copy(out, m.Entries)
	return out, nil
}

func (m *MemoryGpuPreferenceRepository) Set(ctx context.Context, path string, pref models.Preference) error {
	m.SetCalls = append(m.SetCalls, path)
	if err := m.SetErrors[path]; err != nil {
		return err
	}
	m.Missing = false
	raw := models.EncodeRawValue(pref)
	for i := range m.Entries {
		if m.Entries[i].Path == path {
			m.Entries[i].Value = raw
			return nil
		}
	}
	m.Entries = append(m.Entries, models.RawEntry{Path: path, Value: raw})
	return nil
}

func (m *MemoryGpuPreferenceRepository) Delete(ctx context.Context, path string) error {
	m.DeleteCalls = append(m.DeleteCalls, path)
	if err := m.DeleteErrors[path]; err != nil {
		return err
	}
	for i := range m.Entries {
		if m.Entries[i].Path == path {
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %s: %w", path, repositories.ErrEntryNotFound)
}

// Value returns the raw value stored for path.
func (m *MemoryGpuPreferenceRepository) Value(path string) (string, bool) {
	for _, e := range m.Entries {
		if e.Path == path {
			return e.Value, true
		}
	}
	return "", false
}
