package deviceservice

import "context"

// Hardware feature names understood by PackageManager.HasSystemFeature.
const (
	FeatureCamera      = "android.hardware.camera"
	FeatureCameraFlash = "android.hardware.camera.flash"
	FeatureNFC         = "android.hardware.nfc"
	FeatureWiFi        = "android.hardware.wifi"
	FeatureBluetooth   = "android.hardware.bluetooth"
	FeatureTelephony   = "android.hardware.telephony"
	FeatureFingerprint = "android.hardware.fingerprint"
)

const (
	PermissionUseFingerprint = "android.permission.USE_FINGERPRINT"

	// Custom window manager actions handled by the screenshot helper.
	ActionScreenshot       = "action_handler_screenshot"
	ActionRegionScreenshot = "action_handler_region_screenshot"

	ActionStillImageCameraSecure = "android.media.action.STILL_IMAGE_CAMERA_SECURE"
	ActionSearchLongPress        = "android.intent.action.SEARCH_LONG_PRESS"

	WakeReasonCameraGesture = "com.android.systemui:CAMERA_GESTURE_PREVENT_LOCK"

	PropABUpdate = "ro.build.ab_update"

	ResourceFillCutout        = "config_fillMainBuiltInDisplayCutout"
	ResourceAltAmbientDisplay = "config_alt_ambient_display"
	ResourceStatusBarHeight   = "status_bar_height"

	SettingVolumeHushGesture = "volume_hush_gesture"
)

// Values of the volume_hush_gesture secure setting.
const (
	HushOff     = 0
	HushVibrate = 1
	HushMute    = 2
)

// UserCurrent addresses whichever user is in the foreground.
const UserCurrent = -2

// IntentFlags mirrors the Android Intent flag bits used when starting activities.
type IntentFlags uint32

const (
	FlagActivityClearTask IntentFlags = 0x00008000
	FlagActivityClearTop  IntentFlags = 0x04000000
	FlagActivityNewTask   IntentFlags = 0x10000000
)

type Intent struct {
	Action string
	Flags  IntentFlags
}

type NetworkType int

const (
	NetworkMobile NetworkType = 0
	NetworkWiFi   NetworkType = 1
)

type LensFacing int

const (
	LensFacingFront    LensFacing = 0
	LensFacingBack     LensFacing = 1
	LensFacingExternal LensFacing = 2
)

// CameraCharacteristics holds the subset of static camera metadata the facade reads.
// A nil field means the key was absent for that camera.
type CameraCharacteristics struct {
	FlashAvailable *bool
	LensFacing     *LensFacing
}

type PackageInfo struct {
	Name    string
	Enabled bool
}

type PackageManager interface {
	HasSystemFeature(ctx context.Context, feature string) (bool, error)
	// PackageInfo returns ErrNotFound when the package is not installed.
	PackageInfo(ctx context.Context, pkg string) (PackageInfo, error)
}

type CameraManager interface {
	CameraIDs(ctx context.Context) ([]string, error)
	Characteristics(ctx context.Context, id string) (CameraCharacteristics, error)
}

type Connectivity interface {
	IsNetworkSupported(ctx context.Context, network NetworkType) (bool, error)
}

type Biometrics interface {
	CheckPermission(ctx context.Context, permission string) (bool, error)
	FingerprintHardwareDetected(ctx context.Context) (bool, error)
	HasEnrolledFingerprints(ctx context.Context) (bool, error)
}

type Power interface {
	WakeUp(ctx context.Context, reason string) error
	GoToSleep(ctx context.Context) error
	IsScreenOn(ctx context.Context) (bool, error)
}

// Resources exposes framework configuration values and display metrics.
// Bool and DimensionPixelSize return ErrNotFound for undefined resources.
type Resources interface {
	Bool(ctx context.Context, name string) (bool, error)
	DimensionPixelSize(ctx context.Context, name string) (int, error)
	DensityDPI(ctx context.Context) (int, error)
	Locale(ctx context.Context) (string, error)
}

type Audio interface {
	RingerMode(ctx context.Context) (RingerMode, error)
	SetRingerMode(ctx context.Context, mode RingerMode) error
	// AdjustVolumeSame leaves the volume unchanged, optionally showing the volume UI.
	AdjustVolumeSame(ctx context.Context, showUI bool) error
}

type Vibrator interface {
	HasVibrator(ctx context.Context) (bool, error)
}

type NotificationPolicy interface {
	SetInterruptionFilter(ctx context.Context, filter InterruptionFilter) error
}

// StatusBar is the remote status bar control surface behind the cached service handle.
type StatusBar interface {
	ClearAllNotifications(ctx context.Context, userID int) error
	ExpandNotificationsPanel(ctx context.Context) error
	ExpandSettingsPanel(ctx context.Context) error
	ToggleCameraFlash(ctx context.Context) error
	KillForegroundApp(ctx context.Context) error
}

// StatusBarConnector establishes the status bar service handle.
type StatusBarConnector interface {
	Connect(ctx context.Context) (StatusBar, error)
}

type WindowManager interface {
	SendCustomAction(ctx context.Context, action string) error
	ShowGlobalActions(ctx context.Context) error
}

type SecureSettings interface {
	IntForUser(ctx context.Context, key string, def int, userID int) (int, error)
}

type ActivityManager interface {
	CurrentUser(ctx context.Context) (int, error)
	StartActivity(ctx context.Context, intent Intent) error
}

type Battery interface {
	// Temperature returns the battery temperature in tenths of a degree Celsius.
	Temperature(ctx context.Context) (int, error)
}

type SystemProperties interface {
	Get(ctx context.Context, key string) (string, error)
}

// Collaborators bundles every platform dependency of a Device.
type Collaborators struct {
	Packages      PackageManager
	Cameras       CameraManager
	Connectivity  Connectivity
	Biometrics    Biometrics
	Power         Power
	Resources     Resources
	Audio         Audio
	Vibrator      Vibrator
	Notifications NotificationPolicy
	StatusBar     StatusBarConnector
	Windows       WindowManager
	Settings      SecureSettings
	Activities    ActivityManager
	Battery       Battery
	Properties    SystemProperties
}
