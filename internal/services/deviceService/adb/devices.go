package adb

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Attached is one entry of adb devices -l.
type Attached struct {
	Serial string
	// State is device, offline, unauthorized and so on.
	State string
	Model string
}

func (a Attached) Ready() bool {
	return a.State == "device"
}

// ListDevices asks the adb server on this host for attached devices.
func ListDevices(ctx context.Context, binary string) ([]Attached, error) {
	if binary == "" {
		binary = "adb"
	}
	out, err := exec.CommandContext(ctx, binary, "devices", "-l").Output()
	if err != nil {
		return nil, fmt.Errorf("%s devices: %w", binary, err)
	}
	return parseDevices(string(out)), nil
}

// parseDevices reads lines such as
//
//	emulator-5554  device product:sdk_gphone64 model:sdk_gphone64_x86_64 device:emu64x
func parseDevices(out string) []Attached {
	var devices []Attached
	for _, l := range lines(out) {
		if strings.HasPrefix(l, "List of devices") || strings.HasPrefix(l, "*") {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) < 2 {
			continue
		}
		d := Attached{Serial: fields[0], State: fields[1]}
		for _, f := range fields[2:] {
			if model, ok := strings.CutPrefix(f, "model:"); ok {
				d.Model = model
			}
		}
		devices = append(devices, d)
	}
	return devices
}
