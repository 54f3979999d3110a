package adb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

// Transport names accepted by ExecShell.
const (
	TransportADB      = "adb"
	TransportWaydroid = "waydroid"
	TransportLocal    = "local"
)

// Shell runs one command on the device and returns its stdout.
type Shell interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ShellError is returned when a device command exits non-zero.
type ShellError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ShellError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: exit %d: %s", strings.Join(e.Args, " "), e.ExitCode, msg)
}

func (e *ShellError) Unwrap() error {
	return e.Err
}

// ExecShell runs device commands through adb, waydroid or the local shell.
type ExecShell struct {
	// Binary is the adb or waydroid executable. Ignored for the local transport.
	Binary    string
	Serial    string
	Transport string
	// Timeout bounds each call; zero means no limit beyond ctx.
	Timeout time.Duration
}

// TransportBinary returns the executable a transport runs, or "" for the local
// transport. path is the configured adb.path; for waydroid it is used only when
// changed from the adb default.
func TransportBinary(transport, path string) string {
	switch transport {
	case TransportLocal:
		return ""
	case TransportWaydroid:
		if path == "" || path == "adb" {
			return "waydroid"
		}
		return path
	default:
		if path == "" {
			return "adb"
		}
		return path
	}
}

// Command returns the argv used to run args on the device.
func (s *ExecShell) Command(args ...string) []string {
	bin := TransportBinary(s.Transport, s.Binary)

	switch s.Transport {
	case TransportLocal:
		return append([]string{}, args...)
	case TransportWaydroid:
		return append([]string{bin, "shell"}, args...)
	default:
		argv := []string{bin}
		if s.Serial != "" {
			argv = append(argv, "-s", s.Serial)
		}
		argv = append(argv, "shell")
		return append(argv, args...)
	}
}

func (s *ExecShell) Run(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("no command given")
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	argv := s.Command(args...)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		shellErr := &ShellError{Args: args, ExitCode: -1, Stderr: stderr.String(), Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			shellErr.ExitCode = exitErr.ExitCode()
		}
		if cerr := classify(stderr.String() + stdout.String()); cerr != nil {
			return stdout.String(), fmt.Errorf("%w: %v", cerr, shellErr)
		}
		return stdout.String(), shellErr
	}

	// Older adb servers exit 0 even when the remote command failed.
	if cerr := classify(stdout.String()); cerr != nil {
		return stdout.String(), fmt.Errorf("%s: %w", strings.Join(args, " "), cerr)
	}

	return stdout.String(), nil
}

// classify maps well known platform failure messages onto facade errors.
func classify(out string) error {
	switch {
	case strings.Contains(out, "Permission Denial"),
		strings.Contains(out, "SecurityException"):
		return deviceservice.ErrPermissionDenied
	case strings.Contains(out, "Can't find service"),
		strings.Contains(out, "device offline"),
		strings.Contains(out, "no devices/emulators found"),
		strings.Contains(out, "device unauthorized"):
		return deviceservice.ErrServiceUnavailable
	default:
		return nil
	}
}

// lines splits command output into trimmed, non-empty lines.
func lines(out string) []string {
	var result []string
	for _, l := range strings.Split(out, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			result = append(result, l)
		}
	}
	return result
}
