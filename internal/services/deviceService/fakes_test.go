package deviceservice

import (
	"context"
	"sync"
)

// fakePlatform implements every collaborator and records the calls it receives.
type fakePlatform struct {
	mu    sync.Mutex
	calls []string

	features    map[string]bool
	packages    map[string]PackageInfo
	featuresErr error

	cameras    map[string]CameraCharacteristics
	cameraIDs  []string
	camerasErr error

	mobile    bool
	mobileErr error

	permission    bool
	permissionErr error
	hwDetected    bool
	enrolled      bool

	screenOn bool
	powerErr error

	bools     map[string]bool
	dimens    map[string]int
	dpi       int
	locale    string
	resErr    error
	localeErr error

	ringer      RingerMode
	ringerErr   error
	setRinger   []RingerMode
	hasVibrator bool
	filters     []InterruptionFilter

	actionErr error
	actions   []string

	hush    int
	hushErr error

	user      int
	intents   []Intent
	startErr  error
	tenths    int
	tempErr   error
	props     map[string]string
	propErr   error
}

func (f *fakePlatform) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakePlatform) HasSystemFeature(ctx context.Context, feature string) (bool, error) {
	f.record("HasSystemFeature " + feature)
	if f.featuresErr != nil {
		return false, f.featuresErr
	}
	return f.features[feature], nil
}

func (f *fakePlatform) PackageInfo(ctx context.Context, pkg string) (PackageInfo, error) {
	f.record("PackageInfo " + pkg)
	if f.featuresErr != nil {
		return PackageInfo{}, f.featuresErr
	}
	info, ok := f.packages[pkg]
	if !ok {
		return PackageInfo{}, ErrNotFound
	}
	return info, nil
}

func (f *fakePlatform) CameraIDs(ctx context.Context) ([]string, error) {
	f.record("CameraIDs")
	return f.cameraIDs, f.camerasErr
}

func (f *fakePlatform) Characteristics(ctx context.Context, id string) (CameraCharacteristics, error) {
	f.record("Characteristics " + id)
	c, ok := f.cameras[id]
	if !ok {
		return CameraCharacteristics{}, ErrNotFound
	}
	return c, nil
}

func (f *fakePlatform) IsNetworkSupported(ctx context.Context, network NetworkType) (bool, error) {
	f.record("IsNetworkSupported")
	return f.mobile, f.mobileErr
}

func (f *fakePlatform) CheckPermission(ctx context.Context, permission string) (bool, error) {
	f.record("CheckPermission " + permission)
	return f.permission, f.permissionErr
}

func (f *fakePlatform) FingerprintHardwareDetected(ctx context.Context) (bool, error) {
	f.record("FingerprintHardwareDetected")
	return f.hwDetected, nil
}

func (f *fakePlatform) HasEnrolledFingerprints(ctx context.Context) (bool, error) {
	f.record("HasEnrolledFingerprints")
	return f.enrolled, nil
}

func (f *fakePlatform) WakeUp(ctx context.Context, reason string) error {
	f.record("WakeUp " + reason)
	return f.powerErr
}

func (f *fakePlatform) GoToSleep(ctx context.Context) error {
	f.record("GoToSleep")
	return f.powerErr
}

func (f *fakePlatform) IsScreenOn(ctx context.Context) (bool, error) {
	f.record("IsScreenOn")
	return f.screenOn, nil
}

func (f *fakePlatform) Bool(ctx context.Context, name string) (bool, error) {
	if f.resErr != nil {
		return false, f.resErr
	}
	v, ok := f.bools[name]
	if !ok {
		return false, ErrNotFound
	}
	return v, nil
}

func (f *fakePlatform) DimensionPixelSize(ctx context.Context, name string) (int, error) {
	v, ok := f.dimens[name]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (f *fakePlatform) DensityDPI(ctx context.Context) (int, error) {
	return f.dpi, nil
}

func (f *fakePlatform) Locale(ctx context.Context) (string, error) {
	return f.locale, f.localeErr
}

func (f *fakePlatform) RingerMode(ctx context.Context) (RingerMode, error) {
	f.record("RingerMode")
	return f.ringer, f.ringerErr
}

func (f *fakePlatform) SetRingerMode(ctx context.Context, mode RingerMode) error {
	f.record("SetRingerMode " + mode.String())
	f.setRinger = append(f.setRinger, mode)
	return nil
}

func (f *fakePlatform) AdjustVolumeSame(ctx context.Context, showUI bool) error {
	f.record("AdjustVolumeSame")
	return f.actionErr
}

func (f *fakePlatform) HasVibrator(ctx context.Context) (bool, error) {
	f.record("HasVibrator")
	return f.hasVibrator, nil
}

func (f *fakePlatform) SetInterruptionFilter(ctx context.Context, filter InterruptionFilter) error {
	f.record("SetInterruptionFilter " + filter.String())
	f.filters = append(f.filters, filter)
	return nil
}

func (f *fakePlatform) SendCustomAction(ctx context.Context, action string) error {
	f.record("SendCustomAction " + action)
	f.actions = append(f.actions, action)
	return f.actionErr
}

func (f *fakePlatform) ShowGlobalActions(ctx context.Context) error {
	f.record("ShowGlobalActions")
	return f.actionErr
}

func (f *fakePlatform) IntForUser(ctx context.Context, key string, def int, userID int) (int, error) {
	f.record("IntForUser " + key)
	return f.hush, f.hushErr
}

func (f *fakePlatform) CurrentUser(ctx context.Context) (int, error) {
	f.record("CurrentUser")
	return f.user, nil
}

func (f *fakePlatform) StartActivity(ctx context.Context, intent Intent) error {
	f.record("StartActivity " + intent.Action)
	f.intents = append(f.intents, intent)
	return f.startErr
}

func (f *fakePlatform) Temperature(ctx context.Context) (int, error) {
	return f.tenths, f.tempErr
}

func (f *fakePlatform) Get(ctx context.Context, key string) (string, error) {
	if f.propErr != nil {
		return "", f.propErr
	}
	return f.props[key], nil
}

// fakeStatusBar counts connects and records status bar calls.
type fakeStatusBar struct {
	mu         sync.Mutex
	connects   int
	connectErr error
	callErr    error
	calls      []string
	users      []int
}

func (s *fakeStatusBar) Connect(ctx context.Context) (StatusBar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connects++
	if s.connectErr != nil {
		return nil, s.connectErr
	}
	return s, nil
}

func (s *fakeStatusBar) call(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
	return s.callErr
}

func (s *fakeStatusBar) ClearAllNotifications(ctx context.Context, userID int) error {
	s.mu.Lock()
	s.users = append(s.users, userID)
	s.mu.Unlock()
	return s.call("ClearAllNotifications")
}

func (s *fakeStatusBar) ExpandNotificationsPanel(ctx context.Context) error {
	return s.call("ExpandNotificationsPanel")
}

func (s *fakeStatusBar) ExpandSettingsPanel(ctx context.Context) error {
	return s.call("ExpandSettingsPanel")
}

func (s *fakeStatusBar) ToggleCameraFlash(ctx context.Context) error {
	return s.call("ToggleCameraFlash")
}

func (s *fakeStatusBar) KillForegroundApp(ctx context.Context) error {
	return s.call("KillForegroundApp")
}

func newFakeDevice(f *fakePlatform, sb *fakeStatusBar) *Device {
	c := Collaborators{
		Packages:      f,
		Cameras:       f,
		Connectivity:  f,
		Biometrics:    f,
		Power:         f,
		Resources:     f,
		Audio:         f,
		Vibrator:      f,
		Notifications: f,
		Windows:       f,
		Settings:      f,
		Activities:    f,
		Battery:       f,
		Properties:    f,
	}
	if sb != nil {
		c.StatusBar = sb
	}
	return New(c, nil)
}
