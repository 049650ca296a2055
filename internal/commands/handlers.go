package commands

import (
	"context"
	"errors"
	"fmt"

	"gpumanager/internal/entries"
	"gpumanager/internal/events"
	"gpumanager/internal/models"
	"gpumanager/internal/repositories"
)

func notifyError(format string, args ...any) Notify {
	return Notify{Type: events.EventError, Title: "Error", Message: fmt.Sprintf(format, args...)}
}

// load discards the current model, including unsaved selections.
func load(ctx context.Context, _ entries.Model, store repositories.GpuPreferenceRepository, _ Input) (entries.Model, []Effect) {
	raw, err := store.List(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNamespaceNotFound) {
			return entries.Model{}, []Effect{Log{Type: events.EventWarn, Message: "registry key not found: " + err.Error()}}
		}
		return entries.Model{}, []Effect{notifyError("Failed to load GPU preferences: %v", err)}
	}
	return entries.Load(raw), nil
}

func add(ctx context.Context, m entries.Model, store repositories.GpuPreferenceRepository, in Input) (entries.Model, []Effect) {
	if in.Path == "" {
		return m, nil
	}

	name := entries.BaseName(in.Path)
	if err := store.Set(ctx, in.Path, models.PreferenceAuto); err != nil {
		return m, []Effect{notifyError("Failed to add %s: %v", name, err)}
	}

	next, effects := load(ctx, m, store, in)
	added := Notify{Type: events.EventInfo, Title: "Add", Message: name + " added successfully!"}
	return next, append([]Effect{added}, effects...)
}

// remove deletes the selected row from the store and, on success, from the
// model. On failure the row stays even though the store may have changed.
func remove(ctx context.Context, m entries.Model, store repositories.GpuPreferenceRepository, in Input) (entries.Model, []Effect) {
	row, ok := m.Row(in.Row)
	if !ok {
		return m, []Effect{Notify{Type: events.EventWarn, Title: "Delete", Message: "No entry selected."}}
	}

	err := store.Delete(ctx, row.Path)
	switch {
	case err == nil:
		return m.Without(in.Row), []Effect{Notify{Type: events.EventInfo, Title: "Delete", Message: row.Name + " deleted successfully!"}}
	case errors.Is(err, repositories.ErrEntryNotFound):
		return m, []Effect{notifyError("The selected entry was not found.")}
	default:
		return m, []Effect{notifyError("Failed to delete %s: %v", row.Name, err)}
	}
}

// apply writes every row, changed or not. The first failure stops the loop;
// rows already written stay written.
func apply(ctx context.Context, m entries.Model, store repositories.GpuPreferenceRepository, in Input) (entries.Model, []Effect) {
	for _, row := range m.Rows() {
		pref, err := entries.ParsePreferenceDisplay(row.Selected)
		if err != nil {
			return m, []Effect{notifyError("Failed to apply settings for %s: %v", row.Name, err)}
		}
		if err := store.Set(ctx, row.Path, pref); err != nil {
			return m, []Effect{notifyError("Failed to apply settings for %s: %v", row.Name, err)}
		}
	}

	next, effects := load(ctx, m, store, in)
	applied := Notify{Type: events.EventInfo, Title: "Apply", Message: "Settings applied!"}
	return next, append([]Effect{applied}, effects...)
}

func selectPreference(_ context.Context, m entries.Model, _ repositories.GpuPreferenceRepository, in Input) (entries.Model, []Effect) {
	next, err := m.WithSelection(in.Row, in.Label)
	if err != nil {
		return m, []Effect{Log{Type: events.EventError, Message: "select preference: " + err.Error()}}
	}
	return next, nil
}

func exit(_ context.Context, m entries.Model, _ repositories.GpuPreferenceRepository, _ Input) (entries.Model, []Effect) {
	return m, []Effect{Quit{}}
}
