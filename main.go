package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"gpumanager/internal/config"
	"gpumanager/internal/events"
	"gpumanager/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed build/windows/icon.ico
var trayIcon []byte

func main() {
	cfg := config.Default()

	store, storeClose, err := openStore(cfg)
	if err != nil {
		fmt.Println("Error opening GPU preference store:", err)
		return
	}

	ui := services.NewWailsUI()
	preferences := services.NewPreferenceService(store, ui)
	app := NewApp(cfg, preferences, trayIcon, storeClose)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Logger:             cfg.Logger(),
		LogLevel:           cfg.LogLevel,
		LogLevelProduction: cfg.LogLevel,
		BackgroundColour:   &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			app.startup(ctx)
			ui.Startup(ctx)
			preferences.Startup(ctx)
		},
		OnDomReady:    app.domReady,
		OnBeforeClose: app.beforeClose,
		OnShutdown:    app.shutdown,
		Bind: []interface{}{
			app,
			preferences,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
