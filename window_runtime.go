package main

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// windowRuntime is the slice of the Wails runtime the tray state machine drives.
type windowRuntime interface {
	Hide()
	Show()
	Quit()
	Debug(message string)
}

// trayPresence is the tray icon owned by the App.
type trayPresence interface {
	Run()
	Hide()
}

type wailsWindow struct {
	ctx context.Context
}

func (w wailsWindow) Hide() { runtime.WindowHide(w.ctx) }

// Show restores a minimised window before bringing it forward.
func (w wailsWindow) Show() {
	runtime.WindowUnminimise(w.ctx)
	runtime.WindowShow(w.ctx)
}

func (w wailsWindow) Quit() { runtime.Quit(w.ctx) }

func (w wailsWindow) Debug(message string) { runtime.LogDebug(w.ctx, message) }
