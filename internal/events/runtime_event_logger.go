package events

import (
	"context"
	"encoding/json"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func logRuntimeEvent(ctx context.Context, n Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		runtime.LogError(ctx, "events: failed to marshal notification: "+err.Error())
		return
	}
	Log(ctx, n.Type, string(data))
}

// Log writes message to the Wails logger at the level matching eventType.
func Log(ctx context.Context, eventType EventType, message string) {
	switch eventType {
	case EventDebug:
		runtime.LogDebug(ctx, message)
	case EventError:
		runtime.LogError(ctx, message)
	case EventWarn:
		runtime.LogWarning(ctx, message)
	default:
		runtime.LogInfo(ctx, message)
	}
}
