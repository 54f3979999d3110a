// Package adb implements the device facade collaborators on top of an Android
// shell. Every method issues one or two shell commands and parses their output.
package adb

import (
	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

// DefaultCaller is the package whose permissions gate biometric queries.
const DefaultCaller = "com.android.systemui"

type Options struct {
	// Caller defaults to DefaultCaller.
	Caller string
	// Framework resource values the shell cannot read, keyed by resource name.
	Bools  map[string]bool
	Dimens map[string]int
}

// NewCollaborators wires every facade collaborator to sh.
func NewCollaborators(sh Shell, opts Options) deviceservice.Collaborators {
	if opts.Caller == "" {
		opts.Caller = DefaultCaller
	}

	props := &Properties{sh: sh}
	packages := &Packages{sh: sh}
	activities := &Activities{sh: sh}
	audio := &Audio{sh: sh}
	power := &Power{sh: sh}

	return deviceservice.Collaborators{
		Packages:      packages,
		Cameras:       &Cameras{sh: sh},
		Connectivity:  &Connectivity{packages: packages, props: props},
		Biometrics:    &Biometrics{sh: sh, packages: packages, Caller: opts.Caller},
		Power:         power,
		Resources:     &Resources{sh: sh, props: props, Bools: opts.Bools, Dimens: opts.Dimens},
		Audio:         audio,
		Vibrator:      &Vibrator{sh: sh},
		Notifications: &NotificationPolicy{sh: sh},
		StatusBar:     &StatusBarConnector{sh: sh, activities: activities},
		Windows:       &Windows{sh: sh},
		Settings:      &Settings{sh: sh},
		Activities:    activities,
		Battery:       &Battery{sh: sh},
		Properties:    props,
	}
}
