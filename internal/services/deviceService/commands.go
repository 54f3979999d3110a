package deviceservice

import (
	"context"
)

// fail logs and wraps a command failure.
func (d *Device) fail(command string, err error) error {
	d.logger.Printf("%s failed: %v", command, err)
	return &CommandError{Command: command, Err: err}
}

// withStatusBar runs fn against the cached status bar handle.
func (d *Device) withStatusBar(ctx context.Context, command string, fn func(StatusBar) error) error {
	sb, err := d.statusBarService(ctx)
	if err != nil {
		return d.fail(command, err)
	}
	if err := fn(sb); err != nil {
		return d.fail(command, err)
	}
	return nil
}

// ClearAllNotifications dismisses every notification for the foreground user.
func (d *Device) ClearAllNotifications(ctx context.Context) error {
	const op = "clear notifications"

	if d.c.Activities == nil {
		return d.fail(op, ErrServiceUnavailable)
	}
	user, err := d.c.Activities.CurrentUser(ctx)
	if err != nil {
		return d.fail(op, err)
	}

	return d.withStatusBar(ctx, op, func(sb StatusBar) error {
		return sb.ClearAllNotifications(ctx, user)
	})
}

func (d *Device) ToggleNotifications(ctx context.Context) error {
	return d.withStatusBar(ctx, "expand notifications", func(sb StatusBar) error {
		return sb.ExpandNotificationsPanel(ctx)
	})
}

func (d *Device) ToggleQSPanel(ctx context.Context) error {
	return d.withStatusBar(ctx, "expand quick settings", func(sb StatusBar) error {
		return sb.ExpandSettingsPanel(ctx)
	})
}

func (d *Device) ToggleCameraFlash(ctx context.Context) error {
	return d.withStatusBar(ctx, "toggle camera flash", func(sb StatusBar) error {
		return sb.ToggleCameraFlash(ctx)
	})
}

func (d *Device) KillForegroundApp(ctx context.Context) error {
	return d.withStatusBar(ctx, "kill foreground app", func(sb StatusBar) error {
		return sb.KillForegroundApp(ctx)
	})
}

// TakeScreenshot asks the window manager for a full or region screenshot.
func (d *Device) TakeScreenshot(ctx context.Context, full bool) error {
	const op = "take screenshot"

	if d.c.Windows == nil {
		return d.fail(op, ErrServiceUnavailable)
	}

	action := ActionRegionScreenshot
	if full {
		action = ActionScreenshot
	}
	if err := d.c.Windows.SendCustomAction(ctx, action); err != nil {
		return d.fail(op, err)
	}
	return nil
}

func (d *Device) ShowPowerMenu(ctx context.Context) error {
	const op = "show power menu"

	if d.c.Windows == nil {
		return d.fail(op, ErrServiceUnavailable)
	}
	if err := d.c.Windows.ShowGlobalActions(ctx); err != nil {
		return d.fail(op, err)
	}
	return nil
}

func (d *Device) SwitchScreenOn(ctx context.Context) error {
	const op = "screen on"

	if d.c.Power == nil {
		return d.fail(op, ErrServiceUnavailable)
	}
	if err := d.c.Power.WakeUp(ctx, WakeReasonCameraGesture); err != nil {
		return d.fail(op, err)
	}
	return nil
}

// SwitchScreenOff puts the display to sleep if it is on.
func (d *Device) SwitchScreenOff(ctx context.Context) error {
	const op = "screen off"

	if d.c.Power == nil {
		return d.fail(op, ErrServiceUnavailable)
	}

	on, err := d.c.Power.IsScreenOn(ctx)
	if err != nil {
		return d.fail(op, err)
	}
	if !on {
		return nil
	}

	if err := d.c.Power.GoToSleep(ctx); err != nil {
		return d.fail(op, err)
	}
	return nil
}

// ToggleVolumePanel shows the volume dialog without changing the volume.
func (d *Device) ToggleVolumePanel(ctx context.Context) error {
	const op = "volume panel"

	if d.c.Audio == nil {
		return d.fail(op, ErrServiceUnavailable)
	}
	if err := d.c.Audio.AdjustVolumeSame(ctx, true); err != nil {
		return d.fail(op, err)
	}
	return nil
}

func (d *Device) startActivity(ctx context.Context, op string, intent Intent) error {
	if d.c.Activities == nil {
		return d.fail(op, ErrServiceUnavailable)
	}
	if err := d.c.Activities.StartActivity(ctx, intent); err != nil {
		return d.fail(op, err)
	}
	return nil
}

// LaunchCamera opens the still image camera, usable over the lock screen.
func (d *Device) LaunchCamera(ctx context.Context) error {
	return d.startActivity(ctx, "launch camera", Intent{
		Action: ActionStillImageCameraSecure,
		Flags:  FlagActivityNewTask | FlagActivityClearTop,
	})
}

func (d *Device) LaunchVoiceSearch(ctx context.Context) error {
	return d.startActivity(ctx, "launch voice search", Intent{
		Action: ActionSearchLongPress,
		Flags:  FlagActivityClearTask | FlagActivityNewTask,
	})
}

// HushResult is the outcome of the hush gesture.
type HushResult struct {
	Mode     RingerMode
	Guidance string
}

const (
	GuidanceVibrate = "Calls and notifications will vibrate"
	GuidanceSilent  = "Calls and notifications will be muted"
)

// TriggerHushMute applies the user's hush gesture preference: vibrate when the
// gesture is set to vibrate, silent for mute, off or anything unknown.
func (d *Device) TriggerHushMute(ctx context.Context) (HushResult, error) {
	const op = "hush mute"

	if d.c.Settings == nil || d.c.Audio == nil {
		return HushResult{}, d.fail(op, ErrServiceUnavailable)
	}

	setting, err := d.c.Settings.IntForUser(ctx, SettingVolumeHushGesture, HushOff, UserCurrent)
	if err != nil {
		return HushResult{}, d.fail(op, err)
	}

	res := HushResult{Mode: RingerSilent, Guidance: GuidanceSilent}
	if setting == HushVibrate {
		res = HushResult{Mode: RingerVibrate, Guidance: GuidanceVibrate}
	}

	if err := d.c.Audio.SetRingerMode(ctx, res.Mode); err != nil {
		return HushResult{}, d.fail(op, err)
	}

	return res, nil
}
