package services

import (
	"gpumanager/internal/entries"
	"gpumanager/internal/events"
)

// UI is the window surface the preference service drives.
type UI interface {
	// ChooseExecutable asks the user for an executable. It returns "" when
	// the user cancels.
	ChooseExecutable() (string, error)
	Notify(n events.Notification)
	Log(eventType events.EventType, message string)
	EntriesChanged(rows []entries.Row)
}
