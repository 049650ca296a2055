package mocks

import (
	"gpumanager/internal/entries"
	"gpumanager/internal/events"
)

type LogLine struct {
	Type    events.EventType
	Message string
}

// UIMock records everything the preference service shows.
type UIMock struct {
	ChooseExecutableFunc func() (string, error)

	Notifications []events.Notification
	Logs          []LogLine
	RowUpdates    [][]entries.Row
}

func (m *UIMock) ChooseExecutable() (string, error) {
	if m.ChooseExecutableFunc != nil {
		return m.ChooseExecutableFunc()
	}
	return "", nil
}

func (m *UIMock) Notify(n events.Notification) {
	m.Notifications = append(m.Notifications, n)
}

func (m *UIMock) Log(eventType events.EventType, message string) {
	m.Logs = append(m.Logs, LogLine{Type: eventType, Message: message})
}

func (m *UIMock) EntriesChanged(rows []entries.Row) {
	m.RowUpdates = append(m.RowUpdates, rows)
}

// LastRows returns the most recent table pushed to the UI.
func (m *UIMock) LastRows() []entries.Row {
	if len(m.RowUpdates) == 0 {
		return nil
	}
	return m.RowUpdates[len(m.RowUpdates)-1]
}
