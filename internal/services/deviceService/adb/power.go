package adb

import (
	"context"
	"strings"
)

// Power drives the display through key events and reads dumpsys power.
type Power struct {
	sh Shell
}

// WakeUp sends KEYCODE_WAKEUP. The shell has no way to pass a wake reason.
func (p *Power) WakeUp(ctx context.Context, reason string) error {
	_, err := p.sh.Run(ctx, "input", "keyevent", "KEYCODE_WAKEUP")
	return err
}

func (p *Power) GoToSleep(ctx context.Context) error {
	_, err := p.sh.Run(ctx, "input", "keyevent", "KEYCODE_SLEEP")
	return err
}

func (p *Power) IsScreenOn(ctx context.Context) (bool, error) {
	out, err := p.sh.Run(ctx, "dumpsys", "power")
	if err != nil {
		return false, err
	}
	return parseScreenOn(out), nil
}

func parseScreenOn(out string) bool {
	for _, l := range lines(out) {
		switch {
		case strings.HasPrefix(l, "mWakefulness="):
			return strings.TrimPrefix(l, "mWakefulness=") == "Awake"
		case strings.HasPrefix(l, "Display Power: state="):
			return strings.TrimPrefix(l, "Display Power: state=") == "ON"
		}
	}
	return false
}

// Windows sends window manager actions.
type Windows struct {
	sh Shell
}

// SendCustomAction broadcasts action for the system action handler.
func (w *Windows) SendCustomAction(ctx context.Context, action string) error {
	_, err := w.sh.Run(ctx, "am", "broadcast", "-a", action)
	return err
}

// ShowGlobalActions long-presses power, which opens the power menu.
func (w *Windows) ShowGlobalActions(ctx context.Context) error {
	_, err := w.sh.Run(ctx, "input", "keyevent", "--longpress", "KEYCODE_POWER")
	return err
}
