package services

import (
	"context"
	"sync"

	"gpumanager/internal/commands"
	"gpumanager/internal/entries"
	"gpumanager/internal/events"
	"gpumanager/internal/repositories"
)

// PreferenceService owns the preference table and runs the user's commands
// against the store. Wails may call bound methods from several goroutines;
// mu serializes them so commands run one at a time.
type PreferenceService struct {
	context    context.Context
	mu         sync.Mutex
	model      entries.Model
	store      repositories.GpuPreferenceRepository
	dispatcher *commands.Dispatcher
	ui         UI
	onQuit     func()
}

func NewPreferenceService(store repositories.GpuPreferenceRepository, ui UI) *PreferenceService {
	return &PreferenceService{
		context:    context.Background(),
		store:      store,
		dispatcher: commands.NewDispatcher(),
		ui:         ui,
	}
}

func (s *PreferenceService) Startup(ctx context.Context) {
	s.context = ctx
}

// SetQuitHandler registers what Exit runs once the command completes.
func (s *PreferenceService) SetQuitHandler(f func()) {
	s.onQuit = f
}

// Rows returns the table as currently shown.
func (s *PreferenceService) Rows() []entries.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nonNil(s.model.Rows())
}

// Choices returns the selector options.
func (s *PreferenceService) Choices() []string {
	return entries.Choices()
}

// Load reads the store into the table.
func (s *PreferenceService) Load() {
	s.run(commands.Load, commands.Input{})
}

// Refresh reloads the table, dropping unsaved selections.
func (s *PreferenceService) Refresh() {
	s.run(commands.Refresh, commands.Input{})
}

// Add asks for an executable and stores it with the automatic preference.
func (s *PreferenceService) Add() {
	path, err := s.ui.ChooseExecutable()
	if err != nil {
		s.ui.Notify(events.NewError("Error", "Failed to open file dialog: "+err.Error()))
		return
	}
	s.run(commands.Add, commands.Input{Path: path})
}

// Delete removes the row at index row; a negative index means no selection.
func (s *PreferenceService) Delete(row int) {
	s.run(commands.Delete, commands.Input{Row: row})
}

// Select changes the pending preference of a row without touching the store.
func (s *PreferenceService) Select(row int, label string) {
	s.run(commands.Select, commands.Input{Row: row, Label: label})
}

// Apply writes every row's selected preference to the store.
func (s *PreferenceService) Apply() {
	s.run(commands.Apply, commands.Input{})
}

// Exit quits the application.
func (s *PreferenceService) Exit() {
	s.run(commands.Exit, commands.Input{})
}

func (s *PreferenceService) run(name commands.Name, in commands.Input) {
	s.mu.Lock()
	next, effects, err := s.dispatcher.Dispatch(s.context, name, s.model, s.store, in)
	if err != nil {
		s.mu.Unlock()
		s.ui.Log(events.EventError, err.Error())
		return
	}
	s.model = next
	rows := nonNil(next.Rows())
	s.mu.Unlock()

	s.ui.EntriesChanged(rows)
	s.apply(effects)
}

func (s *PreferenceService) apply(effects []commands.Effect) {
	for _, e := range effects {
		switch eff := e.(type) {
		case commands.Notify:
			s.ui.Notify(events.NewNotification(eff.Type, eff.Title, eff.Message))
		case commands.Log:
			s.ui.Log(eff.Type, eff.Message)
		case commands.Quit:
			if s.onQuit != nil {
				s.onQuit()
			}
		}
	}
}

func nonNil(rows []entries.Row) []entries.Row {
	if rows == nil {
		return []entries.Row{}
	}
	return rows
}
