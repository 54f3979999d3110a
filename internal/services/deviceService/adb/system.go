package adb

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

type Properties struct {
	sh Shell
}

func (p *Properties) Get(ctx context.Context, key string) (string, error) {
	out, err := p.sh.Run(ctx, "getprop", key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

type Settings struct {
	sh Shell
}

// IntForUser reads a secure setting, returning def when it is unset.
func (s *Settings) IntForUser(ctx context.Context, key string, def int, userID int) (int, error) {
	user := "current"
	if userID != deviceservice.UserCurrent {
		user = strconv.Itoa(userID)
	}

	out, err := s.sh.Run(ctx, "settings", "--user", user, "get", "secure", key)
	if err != nil {
		return def, err
	}

	v := strings.TrimSpace(out)
	if v == "" || v == "null" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("secure setting %s: %w", key, err)
	}
	return n, nil
}

type Activities struct {
	sh Shell
}

func (a *Activities) CurrentUser(ctx context.Context) (int, error) {
	out, err := a.sh.Run(ctx, "am", "get-current-user")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("current user: %w", err)
	}
	return n, nil
}

func (a *Activities) StartActivity(ctx context.Context, intent deviceservice.Intent) error {
	args := []string{"am", "start", "-a", intent.Action}
	if intent.Flags != 0 {
		args = append(args, "-f", fmt.Sprintf("0x%08x", uint32(intent.Flags)))
	}

	out, err := a.sh.Run(ctx, args...)
	if err != nil {
		return err
	}
	if strings.Contains(out, "Error:") {
		return fmt.Errorf("am start %s: %s", intent.Action, strings.TrimSpace(out))
	}
	return nil
}

// ForegroundPackage returns the package of the resumed activity.
func (a *Activities) ForegroundPackage(ctx context.Context) (string, error) {
	out, err := a.sh.Run(ctx, "dumpsys", "activity", "activities")
	if err != nil {
		return "", err
	}
	pkg, ok := parseForegroundPackage(out)
	if !ok {
		return "", fmt.Errorf("foreground activity: %w", deviceservice.ErrNotFound)
	}
	return pkg, nil
}

// HomePackage returns the package of the default launcher, or "" when none resolves.
func (a *Activities) HomePackage(ctx context.Context) (string, error) {
	out, err := a.sh.Run(ctx, "cmd", "package", "resolve-activity", "--brief",
		"-c", "android.intent.category.HOME", "-a", "android.intent.action.MAIN")
	if err != nil {
		return "", err
	}
	return parseResolvedPackage(out), nil
}

// parseResolvedPackage reads the component line of resolve-activity --brief:
//
//	priority=0 preferredOrder=0 match=0x108000 specificIndex=-1 isDefault=true
//	com.google.android.apps.nexuslauncher/.NexusLauncherActivity
func parseResolvedPackage(out string) string {
	ls := lines(out)
	for i := len(ls) - 1; i >= 0; i-- {
		if pkg, _, ok := strings.Cut(ls[i], "/"); ok && !strings.Contains(pkg, " ") {
			return pkg
		}
	}
	return ""
}

var temperatureRe = regexp.MustCompile(`(?m)^\s*temperature:\s*(-?\d+)`)

type Battery struct {
	sh Shell
}

func (b *Battery) Temperature(ctx context.Context) (int, error) {
	out, err := b.sh.Run(ctx, "dumpsys", "battery")
	if err != nil {
		return 0, err
	}
	m := temperatureRe.FindStringSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("battery temperature: %w", deviceservice.ErrNotFound)
	}
	return strconv.Atoi(m[1])
}
