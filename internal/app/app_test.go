package app

import (
	"context"
	"strings"
	"testing"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
	"github.com/redjax/droidutil/internal/services/deviceService/adb"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedShell map[string]string

func (s scriptedShell) Run(ctx context.Context, args ...string) (string, error) {
	return s[strings.Join(args, " ")], nil
}

func TestDefaultShellFromConfig(t *testing.T) {
	a := New()
	a.Config.ADB.Serial = "emulator-5554"

	sh, ok := a.Shell().(*adb.ExecShell)
	require.True(t, ok)
	assert.Equal(t, []string{"adb", "-s", "emulator-5554", "shell", "id"}, sh.Command("id"))
}

func TestDeviceUsesConfiguredResources(t *testing.T) {
	a := New()
	a.Config.Resources.Bool[deviceservice.ResourceFillCutout] = true
	a.SetShell(scriptedShell{})

	d := a.Device()
	assert.Same(t, d, a.Device())
	assert.True(t, d.HasNotch(context.Background()).Supported())
}

func TestSetShellRebuildsDevice(t *testing.T) {
	a := New()
	a.SetShell(scriptedShell{})
	first := a.Device()

	a.SetShell(scriptedShell{"dumpsys battery": "  temperature: 300\n"})
	second := a.Device()
	assert.NotSame(t, first, second)

	got, err := second.BatteryTemperature(context.Background(), a.TemperatureUnit())
	require.NoError(t, err)
	assert.Equal(t, "30°C", got)
}

func TestLoad(t *testing.T) {
	t.Setenv("DROIDUTIL_ADB_TRANSPORT", "local")
	t.Setenv("DROIDUTIL_BATTERY_UNIT", "f")

	a := New()
	require.NoError(t, a.Load(pflag.NewFlagSet("test", pflag.ContinueOnError), ""))
	defer a.Close()

	assert.Equal(t, deviceservice.Fahrenheit, a.TemperatureUnit())
	sh, ok := a.Shell().(*adb.ExecShell)
	require.True(t, ok)
	assert.Equal(t, []string{"getprop"}, sh.Command("getprop"))
}
