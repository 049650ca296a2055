// Package tray keeps the main window's visibility in sync with the tray icon.
package tray

type State int

const (
	Visible State = iota
	Hidden
	// Exited is terminal; every event is ignored once reached.
	Exited
)

func (s State) String() string {
	switch s {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Exited:
		return "exited"
	}
	return "unknown"
}

type Event int

const (
	CloseRequested Event = iota
	Minimised
	PrimaryActivated
	SecondaryActivated
	ExitRequested
)

// Action is a side effect the owner of the machine must carry out.
type Action int

const (
	HideWindow Action = iota
	ShowWindow
	ShowMenu
	HideTray
	Quit
)

// Machine is not safe for concurrent use.
type Machine struct {
	state State
}

// NewMachine starts with the window on screen.
func NewMachine() *Machine {
	return &Machine{state: Visible}
}

func (m *Machine) State() State {
	return m.state
}

// AllowsClose reports whether a window close request may proceed.
func (m *Machine) AllowsClose() bool {
	return m.state == Exited
}

// Handle applies ev and returns the actions to perform, in order.
func (m *Machine) Handle(ev Event) []Action {
	if m.state == Exited {
		return nil
	}

	switch ev {
	case CloseRequested:
		m.state = Hidden
		return []Action{HideWindow}
	case Minimised:
		if m.state == Hidden {
			return nil
		}
		m.state = Hidden
		return []Action{HideWindow}
	case PrimaryActivated:
		m.state = Visible
		return []Action{ShowWindow}
	case SecondaryActivated:
		return []Action{ShowMenu}
	case ExitRequested:
		m.state = Exited
		return []Action{HideTray, Quit}
	}
	return nil
}
