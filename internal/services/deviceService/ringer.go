package deviceservice

import (
	"context"
	"fmt"
	"strings"
)

// RingerMode values match the platform audio manager constants.
type RingerMode int

const (
	RingerSilent  RingerMode = 0
	RingerVibrate RingerMode = 1
	RingerNormal  RingerMode = 2
)

func (m RingerMode) String() string {
	switch m {
	case RingerSilent:
		return "SILENT"
	case RingerVibrate:
		return "VIBRATE"
	case RingerNormal:
		return "NORMAL"
	default:
		return fmt.Sprintf("RingerMode(%d)", int(m))
	}
}

func (m RingerMode) Valid() bool {
	return m >= RingerSilent && m <= RingerNormal
}

// ParseRingerMode accepts the mode names or their numeric values.
func ParseRingerMode(s string) (RingerMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SILENT", "0":
		return RingerSilent, nil
	case "VIBRATE", "1":
		return RingerVibrate, nil
	case "NORMAL", "2":
		return RingerNormal, nil
	default:
		return 0, fmt.Errorf("unknown ringer mode %q", s)
	}
}

// InterruptionFilter values match the notification manager constants.
type InterruptionFilter int

const (
	FilterAll      InterruptionFilter = 1
	FilterPriority InterruptionFilter = 2
	FilterNone     InterruptionFilter = 3
	FilterAlarms   InterruptionFilter = 4
)

func (f InterruptionFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterPriority:
		return "priority"
	case FilterNone:
		return "none"
	case FilterAlarms:
		return "alarms"
	default:
		return fmt.Sprintf("InterruptionFilter(%d)", int(f))
	}
}

// RingerTransition is one step of the ringer cycle.
type RingerTransition struct {
	From    RingerMode
	To      RingerMode
	Changed bool
	// Filter, when set, is applied after the mode change.
	Filter *InterruptionFilter
}

func (t RingerTransition) String() string {
	var b strings.Builder
	if t.Changed {
		fmt.Fprintf(&b, "%s -> %s", t.From, t.To)
	} else {
		fmt.Fprintf(&b, "%s (unchanged)", t.From)
	}
	if t.Filter != nil {
		fmt.Fprintf(&b, ", interruption filter %s", t.Filter)
	}
	return b.String()
}

// NextRingerMode computes the cycle step from mode:
//
//	NORMAL  -> VIBRATE (only with a vibration motor, otherwise unchanged)
//	VIBRATE -> NORMAL, interruption filter set to priority
//	SILENT  -> NORMAL
func NextRingerMode(mode RingerMode, hasVibrator bool) (RingerTransition, error) {
	t := RingerTransition{From: mode, To: mode}

	switch mode {
	case RingerNormal:
		if hasVibrator {
			t.To, t.Changed = RingerVibrate, true
		}
	case RingerVibrate:
		priority := FilterPriority
		t.To, t.Changed, t.Filter = RingerNormal, true, &priority
	case RingerSilent:
		t.To, t.Changed = RingerNormal, true
	default:
		return t, fmt.Errorf("unknown ringer mode %d", int(mode))
	}

	return t, nil
}

// RingerMode returns the current ringer mode.
func (d *Device) RingerMode(ctx context.Context) (RingerMode, error) {
	if d.c.Audio == nil {
		return 0, ErrServiceUnavailable
	}
	return d.c.Audio.RingerMode(ctx)
}

// CycleRingerMode advances the ringer one step and returns the transition applied.
func (d *Device) CycleRingerMode(ctx context.Context) (RingerTransition, error) {
	const op = "cycle ringer mode"

	if d.c.Audio == nil {
		return RingerTransition{}, d.fail(op, ErrServiceUnavailable)
	}

	mode, err := d.c.Audio.RingerMode(ctx)
	if err != nil {
		return RingerTransition{}, d.fail(op, err)
	}

	hasVibrator := false
	if mode == RingerNormal {
		if d.c.Vibrator == nil {
			return RingerTransition{}, d.fail(op, ErrServiceUnavailable)
		}
		if hasVibrator, err = d.c.Vibrator.HasVibrator(ctx); err != nil {
			return RingerTransition{}, d.fail(op, err)
		}
	}

	t, err := NextRingerMode(mode, hasVibrator)
	if err != nil {
		return t, d.fail(op, err)
	}

	if t.Changed {
		if err := d.c.Audio.SetRingerMode(ctx, t.To); err != nil {
			return t, d.fail(op, err)
		}
	}

	if t.Filter != nil {
		if d.c.Notifications == nil {
			return t, d.fail(op, ErrServiceUnavailable)
		}
		if err := d.c.Notifications.SetInterruptionFilter(ctx, *t.Filter); err != nil {
			return t, d.fail(op, err)
		}
	}

	d.logger.Printf("ringer mode %s -> %s", t.From, t.To)

	return t, nil
}
