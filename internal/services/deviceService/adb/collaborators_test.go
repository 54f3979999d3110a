package adb

import (
	"context"
	"errors"
	"testing"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const featuresOut = `feature:reqGlEsVersion=0x30002
feature:android.hardware.bluetooth
feature:android.hardware.camera
feature:android.hardware.camera.flash
feature:android.hardware.vulkan.level=1
feature:android.hardware.wifi
`

func TestHasSystemFeature(t *testing.T) {
	sh := newFakeShell(map[string]string{"pm list features": featuresOut})
	p := &Packages{sh: sh}
	ctx := context.Background()

	for feature, want := range map[string]bool{
		deviceservice.FeatureCamera:      true,
		deviceservice.FeatureCameraFlash: true,
		"android.hardware.vulkan.level":  true,
		deviceservice.FeatureNFC:         false,
		"android.hardware":               false,
	} {
		got, err := p.HasSystemFeature(ctx, feature)
		require.NoError(t, err)
		assert.Equal(t, want, got, feature)
	}
}

func TestPackageInfo(t *testing.T) {
	sh := newFakeShell(map[string]string{
		"pm list packages com.foo":    "package:com.foo\npackage:com.foo.bar\n",
		"pm list packages -d com.foo": "package:com.foo.bar\n",
		"pm list packages com.off":    "package:com.off\n",
		"pm list packages -d com.off": "package:com.off\n",
		"pm list packages com.nope":   "package:com.nope.extra\n",
	})
	p := &Packages{sh: sh}
	ctx := context.Background()

	info, err := p.PackageInfo(ctx, "com.foo")
	require.NoError(t, err)
	assert.True(t, info.Enabled)

	info, err = p.PackageInfo(ctx, "com.off")
	require.NoError(t, err)
	assert.False(t, info.Enabled)

	_, err = p.PackageInfo(ctx, "com.nope")
	assert.ErrorIs(t, err, deviceservice.ErrNotFound)
}

func TestConnectivityMobile(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		noril    string
		features string
		want     bool
	}{
		{"telephony", "", "feature:android.hardware.telephony\n", true},
		{"no telephony", "", featuresOut, false},
		{"noril property", "yes", "feature:android.hardware.telephony\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := newFakeShell(map[string]string{
				"getprop ro.radio.noril": tt.noril + "\n",
				"pm list features":       tt.features,
			})
			c := &Connectivity{packages: &Packages{sh: sh}, props: &Properties{sh: sh}}
			got, err := c.IsNetworkSupported(ctx, deviceservice.NetworkMobile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const cameraDump = `== Service global info: ==

Number of camera devices: 2
== Camera HAL device device@3.4/legacy/0 (v3.4) static information: ==
  Resource cost: 100
  Conflicting devices: None
  API1 Compatibility: Supported
    android.flash.info.available (50000): byte[1]
      [TRUE ]
    android.lens.facing (80005): byte[1]
      [BACK ]
== Camera HAL device device@3.4/legacy/1 (v3.4) static information: ==
  Resource cost: 100
    android.flash.info.available (50000): byte[1]
      [FALSE ]
    android.lens.facing (80005): byte[1]
      [FRONT ]
== Camera device 2 static information: ==
    android.lens.facing (80005): byte[1] [2 ]
`

func TestParseCameraDump(t *testing.T) {
	chars, ids := parseCameraDump(cameraDump)
	require.Equal(t, []string{"0", "1", "2"}, ids)

	require.NotNil(t, chars["0"].FlashAvailable)
	assert.True(t, *chars["0"].FlashAvailable)
	assert.Equal(t, deviceservice.LensFacingBack, *chars["0"].LensFacing)

	assert.False(t, *chars["1"].FlashAvailable)
	assert.Equal(t, deviceservice.LensFacingFront, *chars["1"].LensFacing)

	assert.Nil(t, chars["2"].FlashAvailable)
	assert.Equal(t, deviceservice.LensFacingExternal, *chars["2"].LensFacing)
}

func TestCamerasThroughFacade(t *testing.T) {
	sh := newFakeShell(map[string]string{"dumpsys media.camera": cameraDump})
	d := deviceservice.New(NewCollaborators(sh, Options{}), nil)

	assert.True(t, d.SupportsFlashlight(context.Background()).Supported())
	assert.Equal(t, []string{"dumpsys media.camera"}, sh.ran)

	// a later query dumps again
	d.SupportsFlashlight(context.Background())
	assert.Len(t, sh.ran, 2)
}

func TestCamerasSingleDumpPerQuery(t *testing.T) {
	const dump = `== Camera device 0 static information: ==
    android.flash.info.available (50000): byte[1] [FALSE ]
    android.lens.facing (80005): byte[1] [FRONT ]
== Camera device 1 static information: ==
    android.lens.facing (80005): byte[1] [EXTERNAL ]
== Camera device 2 static information: ==
    android.flash.info.available (50000): byte[1] [TRUE ]
    android.lens.facing (80005): byte[1] [BACK ]
`
	sh := newFakeShell(map[string]string{"dumpsys media.camera": dump})
	d := deviceservice.New(NewCollaborators(sh, Options{}), nil)

	assert.True(t, d.SupportsFlashlight(context.Background()).Supported())
	assert.Equal(t, []string{"dumpsys media.camera"}, sh.ran)
}

func TestCamerasCharacteristicsWithoutEnumeration(t *testing.T) {
	sh := newFakeShell(map[string]string{"dumpsys media.camera": cameraDump})

	_, err := (&Cameras{sh: sh}).Characteristics(context.Background(), "9")
	assert.ErrorIs(t, err, deviceservice.ErrNotFound)
}

func TestBiometrics(t *testing.T) {
	ctx := context.Background()
	sh := newFakeShell(map[string]string{
		"dumpsys package com.android.systemui": `Packages:
  Package [com.android.systemui] (5a7c3e1):
    install permissions:
      android.permission.USE_FINGERPRINT: granted=true
      android.permission.CAMERA: granted=false
`,
		"dumpsys fingerprint": `{"service":"Fingerprint Manager","prints":[{"id":0,"count":2,"accept":10,"reject":1}]}` + "\n",
	})
	b := &Biometrics{sh: sh, Caller: DefaultCaller}

	ok, err := b.CheckPermission(ctx, deviceservice.PermissionUseFingerprint)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.CheckPermission(ctx, "android.permission.CAMERA")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = b.FingerprintHardwareDetected(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.HasEnrolledFingerprints(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBiometricsServiceMissing(t *testing.T) {
	sh := newFakeShell(nil)
	sh.errs["dumpsys fingerprint"] = deviceservice.ErrServiceUnavailable
	b := &Biometrics{sh: sh, Caller: DefaultCaller}

	ok, err := b.FingerprintHardwareDetected(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBiometricsNoFingerprintFeature(t *testing.T) {
	sh := newFakeShell(map[string]string{"pm list features": featuresOut})
	b := &Biometrics{sh: sh, packages: &Packages{sh: sh}, Caller: DefaultCaller}

	ok, err := b.FingerprintHardwareDetected(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"pm list features"}, sh.ran)

	sh.outputs["pm list features"] = featuresOut + "feature:android.hardware.fingerprint\n"
	sh.outputs["dumpsys fingerprint"] = "Enrollments: 1\n"
	ok, err = b.FingerprintHardwareDetected(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCountEnrolled(t *testing.T) {
	assert.Equal(t, 0, countEnrolled(`{"service":"Fingerprint Manager","prints":[]}`))
	assert.Equal(t, 3, countEnrolled(`{"prints":[{"id":0,"count":1},{"id":10,"count":2}]}`))
	assert.Equal(t, 1, countEnrolled("Sensor: 0\n  Enrollments: 1\n"))
	assert.Equal(t, 0, countEnrolled("Fingerprint service\n"))
}

func TestParseScreenOn(t *testing.T) {
	assert.True(t, parseScreenOn("  mWakefulness=Awake\n"))
	assert.False(t, parseScreenOn("  mWakefulness=Asleep\n"))
	assert.True(t, parseScreenOn("Display Power: state=ON\n"))
	assert.False(t, parseScreenOn("Display Power: state=OFF\n"))
	assert.False(t, parseScreenOn(""))
}

func TestParseDensity(t *testing.T) {
	dpi, err := parseDensity("Physical density: 440\n")
	require.NoError(t, err)
	assert.Equal(t, 440, dpi)

	dpi, err = parseDensity("Physical density: 440\nOverride density: 400\n")
	require.NoError(t, err)
	assert.Equal(t, 400, dpi)

	_, err = parseDensity("wm: unknown command")
	assert.Error(t, err)
}

func TestResources(t *testing.T) {
	ctx := context.Background()
	sh := newFakeShell(map[string]string{
		"getprop persist.sys.locale": "\n",
		"getprop ro.product.locale":  "zh-CN\n",
		"wm density":                 "Physical density: 420\n",
	})
	r := &Resources{
		sh:     sh,
		props:  &Properties{sh: sh},
		Bools:  map[string]bool{deviceservice.ResourceAltAmbientDisplay: true},
		Dimens: map[string]int{deviceservice.ResourceStatusBarHeight: 84},
	}

	locale, err := r.Locale(ctx)
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", locale)

	_, err = r.Bool(ctx, deviceservice.ResourceFillCutout)
	assert.ErrorIs(t, err, deviceservice.ErrNotFound)

	d := deviceservice.New(deviceservice.Collaborators{Resources: r}, nil)
	assert.True(t, d.HasNotch(ctx).Supported())
	assert.True(t, d.HasAltAmbientDisplay(ctx).Supported())
	assert.True(t, d.IsChineseLanguage(ctx).Supported())
}

func TestAudio(t *testing.T) {
	ctx := context.Background()
	sh := newFakeShell(map[string]string{"settings get global mode_ringer": "1\n"})
	a := &Audio{sh: sh}

	mode, err := a.RingerMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, deviceservice.RingerVibrate, mode)

	require.NoError(t, a.SetRingerMode(ctx, deviceservice.RingerNormal))
	require.NoError(t, a.AdjustVolumeSame(ctx, true))
	assert.Error(t, a.SetRingerMode(ctx, deviceservice.RingerMode(5)))

	assert.Equal(t, []string{
		"settings get global mode_ringer",
		"cmd audio set-ringer-mode NORMAL",
		"cmd media_session volume --show --adj same",
	}, sh.ran)
}

func TestVibrator(t *testing.T) {
	ctx := context.Background()

	got, err := (&Vibrator{sh: newFakeShell(map[string]string{"cmd vibrator_manager list": "1\n"})}).HasVibrator(ctx)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = (&Vibrator{sh: newFakeShell(map[string]string{"cmd vibrator_manager list": "No vibrators in device\n"})}).HasVibrator(ctx)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCycleRingerOverShell(t *testing.T) {
	sh := newFakeShell(map[string]string{"settings get global mode_ringer": "1\n"})
	d := deviceservice.New(NewCollaborators(sh, Options{}), nil)

	_, err := d.CycleRingerMode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"settings get global mode_ringer",
		"cmd audio set-ringer-mode NORMAL",
		"cmd notification set_dnd priority",
	}, sh.ran)
}

func TestStatusBar(t *testing.T) {
	ctx := context.Background()
	sh := newFakeShell(map[string]string{
		"service check statusbar": "Service statusbar: found\n",
		"am get-current-user":     "0\n",
		"dumpsys activity activities": `  mResumedActivity: ActivityRecord{4b1c2f0 u0 com.android.settings/.Settings t12}
`,
	})
	d := deviceservice.New(NewCollaborators(sh, Options{}), nil)

	require.NoError(t, d.ToggleNotifications(ctx))
	require.NoError(t, d.ClearAllNotifications(ctx))
	require.NoError(t, d.KillForegroundApp(ctx))

	assert.Equal(t, []string{
		"service check statusbar",
		"cmd statusbar expand-notifications",
		"am get-current-user",
		"cmd statusbar clear-all-notifications 0",
		"dumpsys activity activities",
		homeQuery,
		"am force-stop com.android.settings",
	}, sh.ran)
}

const homeQuery = "cmd package resolve-activity --brief -c android.intent.category.HOME -a android.intent.action.MAIN"

func TestKillForegroundAppSparesLauncherAndSystemUI(t *testing.T) {
	tests := []struct {
		name    string
		resumed string
	}{
		{"launcher", "com.google.android.apps.nexuslauncher/.NexusLauncherActivity"},
		{"systemui", "com.android.systemui/.Somnambulator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := newFakeShell(map[string]string{
				"service check statusbar":     "Service statusbar: found\n",
				"dumpsys activity activities": "    topResumedActivity=ActivityRecord{9a2 u0 " + tt.resumed + " t8}\n",
				homeQuery: "priority=0 preferredOrder=0 match=0x108000 specificIndex=-1 isDefault=true\n" +
					"com.google.android.apps.nexuslauncher/.NexusLauncherActivity\n",
			})
			d := deviceservice.New(NewCollaborators(sh, Options{}), nil)

			err := d.KillForegroundApp(context.Background())
			assert.ErrorIs(t, err, deviceservice.ErrNotFound)
			for _, ran := range sh.ran {
				assert.NotContains(t, ran, "force-stop")
			}
		})
	}
}

func TestParseResolvedPackage(t *testing.T) {
	assert.Equal(t, "com.android.launcher3", parseResolvedPackage("priority=0 isDefault=true\ncom.android.launcher3/.uioverrides.QuickstepLauncher\n"))
	assert.Equal(t, "", parseResolvedPackage("No activity found\n"))
}

func TestStatusBarMissing(t *testing.T) {
	sh := newFakeShell(map[string]string{"service check statusbar": "Service statusbar: not found\n"})
	d := deviceservice.New(NewCollaborators(sh, Options{}), nil)

	err := d.ToggleQSPanel(context.Background())
	assert.ErrorIs(t, err, deviceservice.ErrServiceUnavailable)
}

func TestParseForegroundPackage(t *testing.T) {
	pkg, ok := parseForegroundPackage("    topResumedActivity=ActivityRecord{9a2 u0 com.google.android.apps.nexuslauncher/.NexusLauncherActivity t8}\n")
	require.True(t, ok)
	assert.Equal(t, "com.google.android.apps.nexuslauncher", pkg)

	_, ok = parseForegroundPackage("no activities")
	assert.False(t, ok)
}

func TestSettingsIntForUser(t *testing.T) {
	ctx := context.Background()
	sh := newFakeShell(map[string]string{
		"settings --user current get secure volume_hush_gesture": "1\n",
		"settings --user 10 get secure volume_hush_gesture":      "null\n",
		"settings --user 11 get secure volume_hush_gesture":      "abc\n",
	})
	s := &Settings{sh: sh}

	v, err := s.IntForUser(ctx, deviceservice.SettingVolumeHushGesture, 0, deviceservice.UserCurrent)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = s.IntForUser(ctx, deviceservice.SettingVolumeHushGesture, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = s.IntForUser(ctx, deviceservice.SettingVolumeHushGesture, 0, 11)
	assert.Error(t, err)
}

func TestStartActivity(t *testing.T) {
	sh := newFakeShell(nil)
	d := deviceservice.New(NewCollaborators(sh, Options{}), nil)

	require.NoError(t, d.LaunchCamera(context.Background()))
	require.NoError(t, d.LaunchVoiceSearch(context.Background()))
	assert.Equal(t, []string{
		"am start -a android.media.action.STILL_IMAGE_CAMERA_SECURE -f 0x14000000",
		"am start -a android.intent.action.SEARCH_LONG_PRESS -f 0x10008000",
	}, sh.ran)

	sh.outputs = map[string]string{
		"am start -a android.media.action.STILL_IMAGE_CAMERA_SECURE -f 0x14000000": "Error: Activity not started, unable to resolve Intent\n",
	}
	assert.Error(t, d.LaunchCamera(context.Background()))
}

func TestBatteryTemperature(t *testing.T) {
	sh := newFakeShell(map[string]string{"dumpsys battery": `Current Battery Service state:
  AC powered: false
  USB powered: true
  level: 87
  temperature: 216
  technology: Li-ion
`})
	d := deviceservice.New(NewCollaborators(sh, Options{}), nil)

	got, err := d.BatteryTemperature(context.Background(), deviceservice.Celsius)
	require.NoError(t, err)
	assert.Equal(t, "22°C", got)

	sh.outputs["dumpsys battery"] = "Current Battery Service state:\n"
	_, err = d.BatteryTemperature(context.Background(), deviceservice.Celsius)
	assert.ErrorIs(t, err, deviceservice.ErrNotFound)
}

func TestScreenshotAndPowerMenu(t *testing.T) {
	sh := newFakeShell(nil)
	d := deviceservice.New(NewCollaborators(sh, Options{}), nil)
	ctx := context.Background()

	require.NoError(t, d.TakeScreenshot(ctx, false))
	require.NoError(t, d.ShowPowerMenu(ctx))
	assert.Equal(t, []string{
		"am broadcast -a action_handler_region_screenshot",
		"input keyevent --longpress KEYCODE_POWER",
	}, sh.ran)
}

func TestShellFailureSurfacesAsQueryFailed(t *testing.T) {
	sh := newFakeShell(nil)
	sh.errs["pm list features"] = &ShellError{Args: []string{"pm", "list", "features"}, ExitCode: 255, Err: errors.New("exit status 255")}
	d := deviceservice.New(NewCollaborators(sh, Options{}), nil)

	c := d.HasCamera(context.Background())
	assert.Equal(t, deviceservice.QueryFailed, c.Support)
	var shellErr *ShellError
	assert.ErrorAs(t, c.Err, &shellErr)
}
