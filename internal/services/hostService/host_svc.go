package hostservice

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

var hostInfo = host.InfoWithContext

// HostInfo describes the machine driving the device.
type HostInfo struct {
	Hostname        string
	OS              string
	Arch            string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	Uptime          time.Duration

	// Transport is the binary that reaches the device, e.g. adb or waydroid.
	Transport     string
	TransportPath string
	// TransportErr is set when the binary is not on PATH.
	TransportErr error
}

// GatherHostInfo collects controller OS details and resolves the transport
// binary. An empty transport skips the lookup, as used by the local transport.
func GatherHostInfo(ctx context.Context, transport string) (*HostInfo, error) {
	hi := &HostInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Transport: transport,
	}

	stat, err := hostInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}
	hi.Hostname = stat.Hostname
	hi.Platform = stat.Platform
	hi.PlatformVersion = stat.PlatformVersion
	hi.KernelVersion = stat.KernelVersion
	hi.Uptime = time.Duration(stat.Uptime) * time.Second

	if transport != "" {
		hi.TransportPath, hi.TransportErr = Which(transport)
	}

	return hi, nil
}

// TransportFound reports whether the transport binary resolved.
func (h HostInfo) TransportFound() bool {
	return h.Transport == "" || h.TransportErr == nil
}

func (h HostInfo) Format() string {
	var builder strings.Builder

	builder.WriteString("Host Information:\n")
	builder.WriteString(fmt.Sprintf("  Hostname:      %s\n", h.Hostname))
	builder.WriteString(fmt.Sprintf("  OS:            %s/%s\n", h.OS, h.Arch))
	builder.WriteString(fmt.Sprintf("  Platform:      %s %s\n", h.Platform, h.PlatformVersion))
	builder.WriteString(fmt.Sprintf("  Kernel:        %s\n", h.KernelVersion))
	builder.WriteString(fmt.Sprintf("  Uptime:        %s\n", h.Uptime.String()))

	switch {
	case h.Transport == "":
		builder.WriteString("  Transport:     local shell\n")
	case h.TransportErr != nil:
		builder.WriteString(fmt.Sprintf("  Transport:     %s (not found: %v)\n", h.Transport, h.TransportErr))
	default:
		builder.WriteString(fmt.Sprintf("  Transport:     %s (%s)\n", h.Transport, h.TransportPath))
	}

	return builder.String()
}
