package adb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDevices(t *testing.T) {
	out := `* daemon not running; starting now at tcp:5037
* daemon started successfully
List of devices attached
emulator-5554          device product:sdk_gphone64_x86_64 model:sdk_gphone64_x86_64 device:emu64x transport_id:1
0A081FDD4004YD         unauthorized usb:1-4 transport_id:2

`
	devices := parseDevices(out)
	require.Len(t, devices, 2)

	assert.Equal(t, Attached{Serial: "emulator-5554", State: "device", Model: "sdk_gphone64_x86_64"}, devices[0])
	assert.True(t, devices[0].Ready())

	assert.Equal(t, "unauthorized", devices[1].State)
	assert.False(t, devices[1].Ready())
}

func TestParseDevicesEmpty(t *testing.T) {
	assert.Empty(t, parseDevices("List of devices attached\n\n"))
}
