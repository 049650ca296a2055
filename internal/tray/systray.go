package tray

import (
	"runtime"
	"sync"

	"fyne.io/systray"
)

// Options configures the tray presence.
type Options struct {
	Icon    []byte
	Tooltip string

	// OnActivate runs on primary activation (left click).
	OnActivate func()

	// OnExit runs when the user picks Exit from the context menu.
	OnExit func()
}

// backend is the part of the systray API the presence uses.
type backend interface {
	Run(onReady, onExit func())
	Quit()
	SetIcon(icon []byte)
	SetTooltip(tooltip string)
	SetOnTapped(f func())
	AddMenuItem(title, tooltip string) <-chan struct{}
}

type systrayBackend struct{}

func (systrayBackend) Run(onReady, onExit func()) { systray.Run(onReady, onExit) }
func (systrayBackend) Quit()                      { systray.Quit() }
func (systrayBackend) SetIcon(icon []byte)        { systray.SetIcon(icon) }
func (systrayBackend) SetTooltip(tooltip string)  { systray.SetTooltip(tooltip) }
func (systrayBackend) SetOnTapped(f func())       { systray.SetOnTapped(f) }

func (systrayBackend) AddMenuItem(title, tooltip string) <-chan struct{} {
	return systray.AddMenuItem(title, tooltip).ClickedCh
}

// Presence is the tray icon. Left click calls OnActivate; right click opens
// the native context menu with its single Exit item.
type Presence struct {
	opts     Options
	backend  backend
	hideOnce sync.Once
}

// New prepares the tray icon without showing it.
func New(opts Options) *Presence {
	return &Presence{opts: opts, backend: systrayBackend{}}
}

// Run shows the tray icon on its own locked OS thread, leaving the main
// thread to the window event loop.
func (p *Presence) Run() {
	go func() {
		runtime.LockOSThread()
		p.backend.Run(p.ready, nil)
	}()
}

func (p *Presence) ready() {
	p.backend.SetIcon(p.opts.Icon)
	p.backend.SetTooltip(p.opts.Tooltip)
	if p.opts.OnActivate != nil {
		p.backend.SetOnTapped(p.opts.OnActivate)
	}

	exit := p.backend.AddMenuItem("Exit", "Exit "+p.opts.Tooltip)
	go func() {
		for range exit {
			if p.opts.OnExit != nil {
				p.opts.OnExit()
			}
		}
	}()
}

// Hide removes the tray icon. Later calls do nothing.
func (p *Presence) Hide() {
	p.hideOnce.Do(p.backend.Quit)
}
