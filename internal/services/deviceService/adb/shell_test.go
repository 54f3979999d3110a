package adb

import (
	"context"
	"strings"
	"sync"
	"testing"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
	"github.com/stretchr/testify/assert"
)

// fakeShell answers commands from a table keyed by the space-joined argv.
type fakeShell struct {
	mu      sync.Mutex
	outputs map[string]string
	errs    map[string]error
	ran     []string
}

func newFakeShell(outputs map[string]string) *fakeShell {
	return &fakeShell{outputs: outputs, errs: map[string]error{}}
}

func (f *fakeShell) Run(ctx context.Context, args ...string) (string, error) {
	key := strings.Join(args, " ")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ran = append(f.ran, key)

	if err, ok := f.errs[key]; ok {
		return "", err
	}
	return f.outputs[key], nil
}

func TestExecShellCommand(t *testing.T) {
	tests := []struct {
		name  string
		shell ExecShell
		want  []string
	}{
		{"adb default", ExecShell{}, []string{"adb", "shell", "getprop", "ro.x"}},
		{"adb serial", ExecShell{Binary: "/opt/adb", Serial: "emulator-5554", Transport: TransportADB}, []string{"/opt/adb", "-s", "emulator-5554", "shell", "getprop", "ro.x"}},
		{"waydroid", ExecShell{Transport: TransportWaydroid, Binary: "adb"}, []string{"waydroid", "shell", "getprop", "ro.x"}},
		{"waydroid custom", ExecShell{Transport: TransportWaydroid, Binary: "/opt/waydroid"}, []string{"/opt/waydroid", "shell", "getprop", "ro.x"}},
		{"local", ExecShell{Transport: TransportLocal, Serial: "ignored"}, []string{"getprop", "ro.x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shell.Command("getprop", "ro.x"))
		})
	}
}

func TestTransportBinary(t *testing.T) {
	assert.Equal(t, "adb", TransportBinary(TransportADB, ""))
	assert.Equal(t, "/opt/adb", TransportBinary(TransportADB, "/opt/adb"))
	assert.Equal(t, "waydroid", TransportBinary(TransportWaydroid, "adb"))
	assert.Equal(t, "/opt/waydroid", TransportBinary(TransportWaydroid, "/opt/waydroid"))
	assert.Equal(t, "", TransportBinary(TransportLocal, "/opt/adb"))
}

func TestExecShellNoArgs(t *testing.T) {
	_, err := (&ExecShell{}).Run(context.Background())
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	assert.ErrorIs(t, classify("Permission Denial: not allowed"), deviceservice.ErrPermissionDenied)
	assert.ErrorIs(t, classify("java.lang.SecurityException: nope"), deviceservice.ErrPermissionDenied)
	assert.ErrorIs(t, classify("Can't find service: fingerprint"), deviceservice.ErrServiceUnavailable)
	assert.ErrorIs(t, classify("adb: error: device offline"), deviceservice.ErrServiceUnavailable)
	assert.NoError(t, classify("feature:android.hardware.camera"))
}

func TestShellErrorMessage(t *testing.T) {
	err := &ShellError{Args: []string{"pm", "list"}, ExitCode: 1, Stderr: "boom\n"}
	assert.Equal(t, "pm list: exit 1: boom", err.Error())
}
