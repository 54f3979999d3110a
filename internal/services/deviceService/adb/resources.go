package adb

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

var densityRe = regexp.MustCompile(`(Physical|Override) density:\s*(\d+)`)

// Resources serves framework config values from a table supplied by the
// device configuration, and reads density and locale from the device.
type Resources struct {
	sh     Shell
	props  *Properties
	Bools  map[string]bool
	Dimens map[string]int
}

func (r *Resources) Bool(ctx context.Context, name string) (bool, error) {
	v, ok := r.Bools[name]
	if !ok {
		return false, fmt.Errorf("bool/%s: %w", name, deviceservice.ErrNotFound)
	}
	return v, nil
}

func (r *Resources) DimensionPixelSize(ctx context.Context, name string) (int, error) {
	v, ok := r.Dimens[name]
	if !ok {
		return 0, fmt.Errorf("dimen/%s: %w", name, deviceservice.ErrNotFound)
	}
	return v, nil
}

// DensityDPI returns the override density when one is set, else the physical one.
func (r *Resources) DensityDPI(ctx context.Context) (int, error) {
	out, err := r.sh.Run(ctx, "wm", "density")
	if err != nil {
		return 0, err
	}
	return parseDensity(out)
}

func parseDensity(out string) (int, error) {
	physical, override := 0, 0
	for _, m := range densityRe.FindAllStringSubmatch(out, -1) {
		v, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if m[1] == "Override" {
			override = v
		} else {
			physical = v
		}
	}

	switch {
	case override > 0:
		return override, nil
	case physical > 0:
		return physical, nil
	default:
		return 0, fmt.Errorf("unexpected wm density output %q", strings.TrimSpace(out))
	}
}

// Locale reads the persisted system locale, falling back to the product default.
func (r *Resources) Locale(ctx context.Context) (string, error) {
	for _, key := range []string{"persist.sys.locale", "ro.product.locale"} {
		v, err := r.props.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("locale: %w", deviceservice.ErrNotFound)
}
