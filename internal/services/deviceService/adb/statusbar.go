package adb

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

// StatusBarConnector checks that the statusbar service is registered before
// handing out a StatusBar bound to the shell.
type StatusBarConnector struct {
	sh         Shell
	activities *Activities
}

func (c *StatusBarConnector) Connect(ctx context.Context) (deviceservice.StatusBar, error) {
	out, err := c.sh.Run(ctx, "service", "check", "statusbar")
	if err != nil {
		return nil, err
	}
	if !strings.Contains(out, "statusbar: found") {
		return nil, fmt.Errorf("statusbar: %w", deviceservice.ErrServiceUnavailable)
	}
	return &StatusBar{sh: c.sh, activities: c.activities}, nil
}

// StatusBar maps status bar calls onto cmd statusbar. clear-all-notifications
// and toggle-camera-flash are verbs added by the ROM's SystemUI.
type StatusBar struct {
	sh         Shell
	activities *Activities
}

func (s *StatusBar) statusbar(ctx context.Context, args ...string) error {
	_, err := s.sh.Run(ctx, append([]string{"cmd", "statusbar"}, args...)...)
	return err
}

func (s *StatusBar) ClearAllNotifications(ctx context.Context, userID int) error {
	return s.statusbar(ctx, "clear-all-notifications", strconv.Itoa(userID))
}

func (s *StatusBar) ExpandNotificationsPanel(ctx context.Context) error {
	return s.statusbar(ctx, "expand-notifications")
}

func (s *StatusBar) ExpandSettingsPanel(ctx context.Context) error {
	return s.statusbar(ctx, "expand-settings")
}

func (s *StatusBar) ToggleCameraFlash(ctx context.Context) error {
	return s.statusbar(ctx, "toggle-camera-flash")
}

// systemUIPackage is never killed, nor is the default launcher.
const systemUIPackage = "com.android.systemui"

// KillForegroundApp force-stops the package of the resumed activity unless it
// is the home launcher or SystemUI.
func (s *StatusBar) KillForegroundApp(ctx context.Context) error {
	pkg, err := s.activities.ForegroundPackage(ctx)
	if err != nil {
		return err
	}
	if pkg == systemUIPackage {
		return fmt.Errorf("foreground app %s is protected: %w", pkg, deviceservice.ErrNotFound)
	}

	home, err := s.activities.HomePackage(ctx)
	if err != nil {
		return err
	}
	if pkg == home {
		return fmt.Errorf("foreground app %s is the launcher: %w", pkg, deviceservice.ErrNotFound)
	}

	_, err = s.sh.Run(ctx, "am", "force-stop", pkg)
	return err
}

// ActivityRecord{4b1c2f0 u0 com.android.settings/.Settings t12}
var resumedRe = regexp.MustCompile(`(?:mResumedActivity|topResumedActivity|ResumedActivity)[:=]\s*ActivityRecord\{\S+ u\d+ ([^/\s]+)/`)

func parseForegroundPackage(out string) (string, bool) {
	m := resumedRe.FindStringSubmatch(out)
	if m == nil {
		return "", false
	}
	return m[1], true
}
