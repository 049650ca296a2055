package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit forwards a notification to the frontend. It is a no-op until
// EnableRuntimeEmitter runs, which keeps unit tests free of the Wails runtime.
var Emit = func(ctx context.Context, name string, n Notification) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, n Notification) {
		runtime.EventsEmit(ctx, name, n)
		logRuntimeEvent(ctx, n)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, n Notification)) {
	if f == nil {
		Emit = func(context.Context, string, Notification) {}
		return
	}
	Emit = f
}
