package adb

import (
	"context"
	"fmt"
	"strings"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

// Audio reads the ringer mode from global settings and sets it through cmd audio.
type Audio struct {
	sh Shell
}

func (a *Audio) RingerMode(ctx context.Context) (deviceservice.RingerMode, error) {
	out, err := a.sh.Run(ctx, "settings", "get", "global", "mode_ringer")
	if err != nil {
		return 0, err
	}
	mode, err := deviceservice.ParseRingerMode(out)
	if err != nil {
		return 0, fmt.Errorf("mode_ringer: %w", err)
	}
	return mode, nil
}

func (a *Audio) SetRingerMode(ctx context.Context, mode deviceservice.RingerMode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid ringer mode %d", int(mode))
	}
	_, err := a.sh.Run(ctx, "cmd", "audio", "set-ringer-mode", mode.String())
	return err
}

func (a *Audio) AdjustVolumeSame(ctx context.Context, showUI bool) error {
	args := []string{"cmd", "media_session", "volume"}
	if showUI {
		args = append(args, "--show")
	}
	args = append(args, "--adj", "same")
	_, err := a.sh.Run(ctx, args...)
	return err
}

type Vibrator struct {
	sh Shell
}

// HasVibrator reports whether the vibrator manager lists any vibrator.
func (v *Vibrator) HasVibrator(ctx context.Context) (bool, error) {
	out, err := v.sh.Run(ctx, "cmd", "vibrator_manager", "list")
	if err != nil {
		return false, err
	}
	for _, l := range lines(out) {
		if !strings.HasPrefix(strings.ToLower(l), "no vibrator") {
			return true, nil
		}
	}
	return false, nil
}

type NotificationPolicy struct {
	sh Shell
}

func (n *NotificationPolicy) SetInterruptionFilter(ctx context.Context, filter deviceservice.InterruptionFilter) error {
	var mode string
	switch filter {
	case deviceservice.FilterAll:
		mode = "all"
	case deviceservice.FilterPriority:
		mode = "priority"
	case deviceservice.FilterNone:
		mode = "none"
	case deviceservice.FilterAlarms:
		mode = "alarms"
	default:
		return fmt.Errorf("invalid interruption filter %d", int(filter))
	}
	_, err := n.sh.Run(ctx, "cmd", "notification", "set_dnd", mode)
	return err
}
