package deviceservice

import (
	"context"
	"fmt"
	"strings"
)

// Action is a named one-shot command. Run returns a short message for the
// user; commands that have nothing to report return "".
type Action struct {
	Name        string
	Description string
	run         func(d *Device, ctx context.Context) (string, error)
}

func quiet(fn func(d *Device, ctx context.Context) error) func(*Device, context.Context) (string, error) {
	return func(d *Device, ctx context.Context) (string, error) {
		return "", fn(d, ctx)
	}
}

var actions = []Action{
	{"clear-notifications", "Dismiss all notifications", quiet((*Device).ClearAllNotifications)},
	{"notifications", "Expand the notification shade", quiet((*Device).ToggleNotifications)},
	{"qs-panel", "Expand quick settings", quiet((*Device).ToggleQSPanel)},
	{"flashlight", "Toggle the camera flash", quiet((*Device).ToggleCameraFlash)},
	{"kill-app", "Force-stop the foreground app", quiet((*Device).KillForegroundApp)},
	{"screenshot", "Take a full screenshot", quiet(func(d *Device, ctx context.Context) error {
		return d.TakeScreenshot(ctx, true)
	})},
	{"screenshot-region", "Take a region screenshot", quiet(func(d *Device, ctx context.Context) error {
		return d.TakeScreenshot(ctx, false)
	})},
	{"power-menu", "Show the power menu", quiet((*Device).ShowPowerMenu)},
	{"screen-on", "Wake the screen", quiet((*Device).SwitchScreenOn)},
	{"screen-off", "Turn the screen off", quiet((*Device).SwitchScreenOff)},
	{"volume-panel", "Show the volume panel", quiet((*Device).ToggleVolumePanel)},
	{"camera", "Launch the secure camera", quiet((*Device).LaunchCamera)},
	{"voice-search", "Launch voice search", quiet((*Device).LaunchVoiceSearch)},
	{"ringer-cycle", "Cycle normal, vibrate and silent", func(d *Device, ctx context.Context) (string, error) {
		t, err := d.CycleRingerMode(ctx)
		if err != nil {
			return "", err
		}
		return t.String(), nil
	}},
	{"hush", "Apply the hush gesture preference", func(d *Device, ctx context.Context) (string, error) {
		res, err := d.TriggerHushMute(ctx)
		if err != nil {
			return "", err
		}
		return res.Guidance, nil
	}},
}

// Actions returns the registered actions in display order.
func Actions() []Action {
	return append([]Action(nil), actions...)
}

// Run executes the action registered under name.
func (d *Device) Run(ctx context.Context, name string) (string, error) {
	for _, a := range actions {
		if a.Name == strings.ToLower(name) {
			return a.run(d, ctx)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownAction, name)
}
