package services

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"gpumanager/internal/entries"
	"gpumanager/internal/events"
)

// WailsUI implements UI with native dialogs and frontend events.
type WailsUI struct {
	ctx context.Context
}

func NewWailsUI() *WailsUI {
	return &WailsUI{}
}

func (u *WailsUI) Startup(ctx context.Context) {
	u.ctx = ctx
}

func (u *WailsUI) ChooseExecutable() (string, error) {
	return runtime.OpenFileDialog(u.ctx, runtime.OpenDialogOptions{
		Title: "Select Executable",
		Filters: []runtime.FileFilter{
			{DisplayName: "Executable Files (*.exe)", Pattern: "*.exe"},
		},
	})
}

func (u *WailsUI) Notify(n events.Notification) {
	events.Emit(u.ctx, events.Notifications, n)

	dialogType := runtime.InfoDialog
	switch n.Type {
	case events.EventWarn:
		dialogType = runtime.WarningDialog
	case events.EventError:
		dialogType = runtime.ErrorDialog
	}
	if _, err := runtime.MessageDialog(u.ctx, runtime.MessageDialogOptions{
		Type:    dialogType,
		Title:   n.Title,
		Message: n.Message,
	}); err != nil {
		runtime.LogError(u.ctx, "message dialog: "+err.Error())
	}
}

func (u *WailsUI) Log(eventType events.EventType, message string) {
	events.Log(u.ctx, eventType, message)
}

func (u *WailsUI) EntriesChanged(rows []entries.Row) {
	runtime.EventsEmit(u.ctx, events.EntriesChanged, rows)
}
