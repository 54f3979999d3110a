package adb

import (
	"context"
	"strings"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

// Packages answers feature and package queries through the package manager shell.
type Packages struct {
	sh Shell
}

func (p *Packages) HasSystemFeature(ctx context.Context, feature string) (bool, error) {
	out, err := p.sh.Run(ctx, "pm", "list", "features")
	if err != nil {
		return false, err
	}

	for _, l := range lines(out) {
		name, ok := strings.CutPrefix(l, "feature:")
		if !ok {
			continue
		}
		// versioned features look like feature:android.hardware.vulkan.level=1
		name, _, _ = strings.Cut(name, "=")
		if name == feature {
			return true, nil
		}
	}

	return false, nil
}

// PackageInfo finds pkg among installed packages. The name filter of pm list
// packages is a substring match, so only an exact line counts.
func (p *Packages) PackageInfo(ctx context.Context, pkg string) (deviceservice.PackageInfo, error) {
	out, err := p.sh.Run(ctx, "pm", "list", "packages", pkg)
	if err != nil {
		return deviceservice.PackageInfo{}, err
	}
	if !hasPackageLine(out, pkg) {
		return deviceservice.PackageInfo{}, deviceservice.ErrNotFound
	}

	disabled, err := p.sh.Run(ctx, "pm", "list", "packages", "-d", pkg)
	if err != nil {
		return deviceservice.PackageInfo{}, err
	}

	return deviceservice.PackageInfo{Name: pkg, Enabled: !hasPackageLine(disabled, pkg)}, nil
}

func hasPackageLine(out, pkg string) bool {
	for _, l := range lines(out) {
		if l == "package:"+pkg {
			return true
		}
	}
	return false
}

// Connectivity derives mobile network support from telephony hardware and the radio property.
type Connectivity struct {
	packages *Packages
	props    *Properties
}

func (c *Connectivity) IsNetworkSupported(ctx context.Context, network deviceservice.NetworkType) (bool, error) {
	switch network {
	case deviceservice.NetworkMobile:
		noRIL, err := c.props.Get(ctx, "ro.radio.noril")
		if err != nil {
			return false, err
		}
		if deviceservice.ParseBoolProperty(noRIL, false) {
			return false, nil
		}
		return c.packages.HasSystemFeature(ctx, deviceservice.FeatureTelephony)
	case deviceservice.NetworkWiFi:
		return c.packages.HasSystemFeature(ctx, deviceservice.FeatureWiFi)
	default:
		return false, nil
	}
}
