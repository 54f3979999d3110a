package adb

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

var enrollmentsRe = regexp.MustCompile(`(?i)enrollments?\s*[:=]\s*(\d+)`)

// Biometrics checks fingerprint permission, hardware and enrollment.
type Biometrics struct {
	sh       Shell
	packages *Packages
	// Caller is the package whose permission grants are checked.
	Caller string
}

func (b *Biometrics) CheckPermission(ctx context.Context, permission string) (bool, error) {
	out, err := b.sh.Run(ctx, "dumpsys", "package", b.Caller)
	if err != nil {
		return false, err
	}
	if strings.Contains(out, "Unable to find package") {
		return false, deviceservice.ErrNotFound
	}

	for _, l := range lines(out) {
		if strings.HasPrefix(l, permission+":") && strings.Contains(l, "granted=true") {
			return true, nil
		}
	}
	return false, nil
}

func (b *Biometrics) dump(ctx context.Context) (string, error) {
	out, err := b.sh.Run(ctx, "dumpsys", "fingerprint")
	if err != nil {
		return "", err
	}
	return out, nil
}

// FingerprintHardwareDetected reports whether the device declares the
// fingerprint feature and the fingerprint service answers.
func (b *Biometrics) FingerprintHardwareDetected(ctx context.Context) (bool, error) {
	if b.packages != nil {
		ok, err := b.packages.HasSystemFeature(ctx, deviceservice.FeatureFingerprint)
		if err != nil || !ok {
			return false, err
		}
	}

	out, err := b.dump(ctx)
	if errors.Is(err, deviceservice.ErrServiceUnavailable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

func (b *Biometrics) HasEnrolledFingerprints(ctx context.Context) (bool, error) {
	out, err := b.dump(ctx)
	if errors.Is(err, deviceservice.ErrServiceUnavailable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return countEnrolled(out) > 0, nil
}

type fingerprintDump struct {
	Prints []struct {
		ID    int `json:"id"`
		Count int `json:"count"`
	} `json:"prints"`
}

// countEnrolled understands both the JSON dump of older releases and the
// "Enrollments: N" text of newer ones.
func countEnrolled(out string) int {
	total := 0
	for _, l := range lines(out) {
		if strings.HasPrefix(l, "{") {
			var dump fingerprintDump
			if err := json.Unmarshal([]byte(l), &dump); err == nil {
				for _, p := range dump.Prints {
					total += p.Count
				}
				continue
			}
		}
		if m := enrollmentsRe.FindStringSubmatch(l); m != nil {
			n, _ := strconv.Atoi(m[1])
			total += n
		}
	}
	return total
}
