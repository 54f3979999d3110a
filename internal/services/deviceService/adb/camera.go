package adb

import (
	"context"
	"regexp"
	"strings"
	"sync"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

const (
	keyFlashAvailable = "android.flash.info.available"
	keyLensFacing     = "android.lens.facing"
)

// Section headers of dumpsys media.camera, e.g.
//
//	== Camera HAL device device@3.4/legacy/0 (v3.4) static information: ==
//	== Camera device 1 static information: ==
var cameraHeaderRe = regexp.MustCompile(`== Camera (?:HAL )?device (\S+?)(?: \(v[0-9.]+\))? static information: ==`)

var (
	// metadata type annotations such as byte[1] or int32[2]
	typeRe    = regexp.MustCompile(`\b(?:byte|int32|int64|float|double|rational)\[\d+\]`)
	bracketRe = regexp.MustCompile(`\[\s*([^\]\s]+)\s*\]`)
)

// Cameras reads static camera metadata from dumpsys media.camera. CameraIDs
// takes a fresh dump and Characteristics answers from it, so one enumeration
// costs a single round-trip.
type Cameras struct {
	sh Shell

	mu    sync.Mutex
	chars map[string]deviceservice.CameraCharacteristics
}

func (c *Cameras) dump(ctx context.Context) (map[string]deviceservice.CameraCharacteristics, []string, error) {
	out, err := c.sh.Run(ctx, "dumpsys", "media.camera")
	if err != nil {
		return nil, nil, err
	}
	chars, ids := parseCameraDump(out)

	c.mu.Lock()
	c.chars = chars
	c.mu.Unlock()

	return chars, ids, nil
}

func (c *Cameras) CameraIDs(ctx context.Context) ([]string, error) {
	_, ids, err := c.dump(ctx)
	return ids, err
}

func (c *Cameras) Characteristics(ctx context.Context, id string) (deviceservice.CameraCharacteristics, error) {
	c.mu.Lock()
	chars := c.chars
	c.mu.Unlock()

	if chars == nil {
		var err error
		if chars, _, err = c.dump(ctx); err != nil {
			return deviceservice.CameraCharacteristics{}, err
		}
	}

	ch, ok := chars[id]
	if !ok {
		return deviceservice.CameraCharacteristics{}, deviceservice.ErrNotFound
	}
	return ch, nil
}

// parseCameraDump collects flash and lens facing per camera id, in dump order.
// Values appear either on the key line or on the line after it, in brackets.
func parseCameraDump(out string) (map[string]deviceservice.CameraCharacteristics, []string) {
	chars := map[string]deviceservice.CameraCharacteristics{}
	var ids []string

	current := ""
	pending := ""
	for _, l := range strings.Split(out, "\n") {
		if m := cameraHeaderRe.FindStringSubmatch(l); m != nil {
			current = m[1]
			if i := strings.LastIndex(current, "/"); i >= 0 {
				current = current[i+1:]
			}
			if _, seen := chars[current]; !seen {
				ids = append(ids, current)
				chars[current] = deviceservice.CameraCharacteristics{}
			}
			pending = ""
			continue
		}
		if current == "" {
			continue
		}

		key := pending
		switch {
		case strings.Contains(l, keyFlashAvailable):
			key = keyFlashAvailable
		case strings.Contains(l, keyLensFacing):
			key = keyLensFacing
		}
		if key == "" {
			continue
		}

		m := bracketRe.FindStringSubmatch(typeRe.ReplaceAllString(l, ""))
		if m == nil {
			// value follows on the next line
			pending = key
			continue
		}
		pending = ""

		ch := chars[current]
		switch key {
		case keyFlashAvailable:
			if v, ok := parseFlash(m[1]); ok {
				ch.FlashAvailable = &v
			}
		case keyLensFacing:
			if v, ok := parseLensFacing(m[1]); ok {
				ch.LensFacing = &v
			}
		}
		chars[current] = ch
	}

	return chars, ids
}

func parseFlash(v string) (bool, bool) {
	switch strings.ToUpper(v) {
	case "TRUE", "1":
		return true, true
	case "FALSE", "0":
		return false, true
	default:
		return false, false
	}
}

func parseLensFacing(v string) (deviceservice.LensFacing, bool) {
	switch strings.ToUpper(v) {
	case "FRONT", "0":
		return deviceservice.LensFacingFront, true
	case "BACK", "1":
		return deviceservice.LensFacingBack, true
	case "EXTERNAL", "2":
		return deviceservice.LensFacingExternal, true
	default:
		return 0, false
	}
}
