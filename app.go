package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"gpumanager/internal/config"
	"gpumanager/internal/services"
	"gpumanager/internal/tray"
)

// App is the application context: it owns the window/tray state machine and
// hands user commands to the preference service.
type App struct {
	ctx         context.Context
	Preferences *services.PreferenceService
	storeClose  func() error

	mu       sync.Mutex
	window   *tray.Machine
	runtime  windowRuntime
	presence trayPresence
}

// NewApp creates a new App application struct
func NewApp(cfg config.Config, preferences *services.PreferenceService, trayIcon []byte, storeClose func() error) *App {
	a := &App{
		Preferences: preferences,
		storeClose:  storeClose,
		window:      tray.NewMachine(),
	}
	a.presence = tray.New(tray.Options{
		Icon:       trayIcon,
		Tooltip:    cfg.Title,
		OnActivate: func() { a.handle(tray.PrimaryActivated) },
		OnExit:     a.Exit,
	})
	preferences.SetQuitHandler(a.Exit)
	return a
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.runtime = wailsWindow{ctx: ctx}

	// Tray callbacks only fire once Run has started, after runtime is set.
	a.presence.Run()
	runtime.LogInfo(ctx, "tray presence started")
}

// domReady loads the table once the frontend can receive it.
func (a *App) domReady(ctx context.Context) {
	a.Preferences.Load()
}

// beforeClose hides the window instead of closing it, unless Exit was chosen.
func (a *App) beforeClose(ctx context.Context) (prevent bool) {
	a.mu.Lock()
	if a.window.AllowsClose() {
		a.mu.Unlock()
		return false
	}
	actions := a.window.Handle(tray.CloseRequested)
	a.mu.Unlock()

	a.perform(actions)
	return true
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.storeClose != nil {
		if err := a.storeClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close store: %v", err))
		} else {
			runtime.LogInfo(ctx, "store closed")
		}
		a.storeClose = nil
	}
}

// WindowMinimised is called by the frontend when the window is minimised.
func (a *App) WindowMinimised() {
	a.handle(tray.Minimised)
}

// Exit hides the tray icon and terminates the process.
func (a *App) Exit() {
	a.handle(tray.ExitRequested)
}

func (a *App) handle(ev tray.Event) {
	a.mu.Lock()
	actions := a.window.Handle(ev)
	state := a.window.State()
	a.mu.Unlock()

	a.runtime.Debug(fmt.Sprintf("window state: %s", state))
	a.perform(actions)
}

// perform runs outside mu: runtime.Quit re-enters beforeClose.
func (a *App) perform(actions []tray.Action) {
	for _, act := range actions {
		switch act {
		case tray.HideWindow:
			a.runtime.Hide()
		case tray.ShowWindow:
			a.runtime.Show()
		case tray.ShowMenu:
			a.runtime.Debug("tray menu opened")
		case tray.HideTray:
			a.presence.Hide()
		case tray.Quit:
			a.runtime.Quit()
		}
	}
}
