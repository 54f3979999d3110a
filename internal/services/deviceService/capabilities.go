package deviceservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
)

// Support is the tri-state outcome of a capability query.
type Support int

const (
	Unsupported Support = iota
	Supported
	QueryFailed
)

func (s Support) String() string {
	switch s {
	case Supported:
		return "supported"
	case Unsupported:
		return "unsupported"
	case QueryFailed:
		return "query failed"
	default:
		return fmt.Sprintf("Support(%d)", int(s))
	}
}

type CapabilityName string

const (
	CapCamera            CapabilityName = "camera"
	CapFlashlight        CapabilityName = "flashlight"
	CapBackFlash         CapabilityName = "back-flash"
	CapNFC               CapabilityName = "nfc"
	CapWiFi              CapabilityName = "wifi"
	CapBluetooth         CapabilityName = "bluetooth"
	CapWiFiOnly          CapabilityName = "wifi-only"
	CapFingerprint       CapabilityName = "fingerprint"
	CapFingerprintEnroll CapabilityName = "fingerprint-enrolled"
	CapAltAmbientDisplay CapabilityName = "alt-ambient-display"
	CapABUpdate          CapabilityName = "ab-update"
	CapChineseLanguage   CapabilityName = "chinese-language"
	CapNotch             CapabilityName = "notch"
	CapPackage           CapabilityName = "package"
)

// Capability is the answer to one capability query. Err carries the reason
// for Unsupported (absence or permission) and QueryFailed results.
type Capability struct {
	Name    CapabilityName
	Support Support
	Err     error
}

// Supported fails closed: only a positive answer counts.
func (c Capability) Supported() bool {
	return c.Support == Supported
}

// capability folds a collaborator answer into the tri-state result.
func capability(name CapabilityName, ok bool, err error) Capability {
	switch {
	case err == nil && ok:
		return Capability{Name: name, Support: Supported}
	case err == nil:
		return Capability{Name: name, Support: Unsupported}
	case isAbsence(err):
		return Capability{Name: name, Support: Unsupported, Err: err}
	default:
		return Capability{Name: name, Support: QueryFailed, Err: err}
	}
}

func (d *Device) feature(ctx context.Context, name CapabilityName, feature string) Capability {
	if d.c.Packages == nil {
		return capability(name, false, ErrServiceUnavailable)
	}
	ok, err := d.c.Packages.HasSystemFeature(ctx, feature)
	return capability(name, ok, err)
}

func (d *Device) HasCamera(ctx context.Context) Capability {
	return d.feature(ctx, CapCamera, FeatureCamera)
}

func (d *Device) HasNFC(ctx context.Context) Capability {
	return d.feature(ctx, CapNFC, FeatureNFC)
}

func (d *Device) HasWiFi(ctx context.Context) Capability {
	return d.feature(ctx, CapWiFi, FeatureWiFi)
}

func (d *Device) HasBluetooth(ctx context.Context) Capability {
	return d.feature(ctx, CapBluetooth, FeatureBluetooth)
}

// HasFlashlight checks the camera flash feature flag.
func (d *Device) HasFlashlight(ctx context.Context) Capability {
	return d.feature(ctx, CapFlashlight, FeatureCameraFlash)
}

// SupportsFlashlight looks for a back facing camera that reports a flash unit.
func (d *Device) SupportsFlashlight(ctx context.Context) Capability {
	if d.c.Cameras == nil {
		return capability(CapBackFlash, false, ErrServiceUnavailable)
	}

	ids, err := d.c.Cameras.CameraIDs(ctx)
	if err != nil {
		return capability(CapBackFlash, false, err)
	}

	for _, id := range ids {
		c, err := d.c.Cameras.Characteristics(ctx, id)
		if err != nil {
			return capability(CapBackFlash, false, fmt.Errorf("camera %s: %w", id, err))
		}
		if c.FlashAvailable != nil && *c.FlashAvailable &&
			c.LensFacing != nil && *c.LensFacing == LensFacingBack {
			return capability(CapBackFlash, true, nil)
		}
	}

	return capability(CapBackFlash, false, nil)
}

func (d *Device) IsWiFiOnly(ctx context.Context) Capability {
	if d.c.Connectivity == nil {
		return capability(CapWiFiOnly, false, ErrServiceUnavailable)
	}
	mobile, err := d.c.Connectivity.IsNetworkSupported(ctx, NetworkMobile)
	return capability(CapWiFiOnly, !mobile, err)
}

func (d *Device) fingerprint(ctx context.Context, name CapabilityName, needEnrolled bool) Capability {
	b := d.c.Biometrics
	if b == nil {
		return capability(name, false, ErrServiceUnavailable)
	}

	granted, err := b.CheckPermission(ctx, PermissionUseFingerprint)
	if err != nil {
		return capability(name, false, err)
	}
	if !granted {
		return capability(name, false, fmt.Errorf("%s: %w", PermissionUseFingerprint, ErrPermissionDenied))
	}

	detected, err := b.FingerprintHardwareDetected(ctx)
	if err != nil || !detected || !needEnrolled {
		return capability(name, detected, err)
	}

	enrolled, err := b.HasEnrolledFingerprints(ctx)
	return capability(name, enrolled, err)
}

func (d *Device) HasFingerprintSupport(ctx context.Context) Capability {
	return d.fingerprint(ctx, CapFingerprint, false)
}

func (d *Device) HasFingerprintEnrolled(ctx context.Context) Capability {
	return d.fingerprint(ctx, CapFingerprintEnroll, true)
}

func (d *Device) HasAltAmbientDisplay(ctx context.Context) Capability {
	if d.c.Resources == nil {
		return capability(CapAltAmbientDisplay, false, ErrServiceUnavailable)
	}
	ok, err := d.c.Resources.Bool(ctx, ResourceAltAmbientDisplay)
	return capability(CapAltAmbientDisplay, ok, err)
}

// IsABDevice reports seamless (A/B) system update support.
func (d *Device) IsABDevice(ctx context.Context) Capability {
	if d.c.Properties == nil {
		return capability(CapABUpdate, false, ErrServiceUnavailable)
	}
	v, err := d.c.Properties.Get(ctx, PropABUpdate)
	if err != nil {
		return capability(CapABUpdate, false, err)
	}
	return capability(CapABUpdate, ParseBoolProperty(v, false), nil)
}

// ParseBoolProperty applies the system property boolean rules.
func ParseBoolProperty(v string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "y", "yes", "on", "true":
		return true
	case "0", "n", "no", "off", "false":
		return false
	default:
		return def
	}
}

var chineseBase, _ = language.Chinese.Base()

func (d *Device) IsChineseLanguage(ctx context.Context) Capability {
	if d.c.Resources == nil {
		return capability(CapChineseLanguage, false, ErrServiceUnavailable)
	}
	locale, err := d.c.Resources.Locale(ctx)
	if err != nil {
		return capability(CapChineseLanguage, false, err)
	}
	return capability(CapChineseLanguage, IsChineseLocale(locale), nil)
}

// IsChineseLocale reports whether a BCP 47 (or underscore separated) locale is Chinese.
func IsChineseLocale(locale string) bool {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return false
	}
	base, conf := tag.Base()
	return conf != language.No && base == chineseBase
}

// HasNotch prefers the explicit cutout resource and otherwise compares the
// status bar height with the 24dp default.
func (d *Device) HasNotch(ctx context.Context) Capability {
	r := d.c.Resources
	if r == nil {
		return capability(CapNotch, false, ErrServiceUnavailable)
	}

	fill, err := r.Bool(ctx, ResourceFillCutout)
	if err == nil {
		return capability(CapNotch, fill, nil)
	}
	if !errors.Is(err, ErrNotFound) {
		return capability(CapNotch, false, err)
	}

	height, err := r.DimensionPixelSize(ctx, ResourceStatusBarHeight)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return capability(CapNotch, false, err)
		}
		height = 0
	}

	dpi, err := r.DensityDPI(ctx)
	if err != nil {
		return capability(CapNotch, false, err)
	}

	return capability(CapNotch, height > defaultStatusBarPx(dpi), nil)
}

// defaultStatusBarPx converts 24dp to pixels, rounding half up.
func defaultStatusBarPx(dpi int) int {
	px := float32(24) * (float32(dpi) / 160)
	return int(math.Floor(float64(px) + 0.5))
}

// IsPackageInstalled checks that pkg is installed and, unless ignoreState is set,
// enabled. An empty package name never matches an installed package.
func (d *Device) IsPackageInstalled(ctx context.Context, pkg string, ignoreState bool) Capability {
	if pkg == "" {
		return capability(CapPackage, false, fmt.Errorf("empty package name: %w", ErrNotFound))
	}
	if d.c.Packages == nil {
		return capability(CapPackage, false, ErrServiceUnavailable)
	}

	info, err := d.c.Packages.PackageInfo(ctx, pkg)
	if err != nil {
		return capability(CapPackage, false, err)
	}

	return capability(CapPackage, info.Enabled || ignoreState, nil)
}

type probeFunc func(*Device, context.Context) Capability

// probes lists every argument-free query in display order.
var probes = []struct {
	name CapabilityName
	fn   probeFunc
}{
	{CapCamera, (*Device).HasCamera},
	{CapFlashlight, (*Device).HasFlashlight},
	{CapBackFlash, (*Device).SupportsFlashlight},
	{CapNFC, (*Device).HasNFC},
	{CapWiFi, (*Device).HasWiFi},
	{CapBluetooth, (*Device).HasBluetooth},
	{CapWiFiOnly, (*Device).IsWiFiOnly},
	{CapFingerprint, (*Device).HasFingerprintSupport},
	{CapFingerprintEnroll, (*Device).HasFingerprintEnrolled},
	{CapAltAmbientDisplay, (*Device).HasAltAmbientDisplay},
	{CapABUpdate, (*Device).IsABDevice},
	{CapChineseLanguage, (*Device).IsChineseLanguage},
	{CapNotch, (*Device).HasNotch},
}

// CapabilityNames returns the names accepted by Probe.
func CapabilityNames() []CapabilityName {
	names := make([]CapabilityName, 0, len(probes))
	for _, p := range probes {
		names = append(names, p.name)
	}
	return names
}

// Probe runs the query registered under name.
func (d *Device) Probe(ctx context.Context, name string) (Capability, error) {
	for _, p := range probes {
		if string(p.name) == strings.ToLower(name) {
			return p.fn(d, ctx), nil
		}
	}
	return Capability{}, fmt.Errorf("%w: %s", ErrUnknownCapability, name)
}

// ProbeAll runs every registered query in order.
func (d *Device) ProbeAll(ctx context.Context) []Capability {
	out := make([]Capability, 0, len(probes))
	for _, p := range probes {
		out = append(out, p.fn(d, ctx))
	}
	return out
}
