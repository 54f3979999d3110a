// Package app holds per-invocation state shared by the CLI commands: the
// loaded configuration, the logger and a lazily built device facade.
package app

import (
	"io"
	"log"
	"sync"

	"github.com/redjax/droidutil/internal/config"
	"github.com/redjax/droidutil/internal/logging"
	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
	"github.com/redjax/droidutil/internal/services/deviceService/adb"
	"github.com/spf13/pflag"
)

type App struct {
	Config *config.Config
	Logger *log.Logger

	closer io.Closer

	mu     sync.Mutex
	shell  adb.Shell
	device *deviceservice.Device
}

// New returns an App with default configuration and a silent logger. Commands
// hold the pointer and Load fills it before they run.
func New() *App {
	cfg := config.Default()
	return &App{
		Config: &cfg,
		Logger: log.New(io.Discard, "", 0),
	}
}

// Load reads configuration from cfgFile, the environment and flags, then
// builds the logger.
func (a *App) Load(flags *pflag.FlagSet, cfgFile string) error {
	cfg, err := config.LoadConfig(flags, cfgFile)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.Config = cfg
	a.Logger = logger
	a.closer = closer
	a.device = nil

	logger.Printf("transport=%s serial=%q timeout=%s", cfg.ADB.Transport, cfg.ADB.Serial, cfg.ADB.Timeout)

	return nil
}

// SetShell replaces the device shell, dropping any facade built on the old one.
func (a *App) SetShell(sh adb.Shell) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shell = sh
	a.device = nil
}

func (a *App) Shell() adb.Shell {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.shellLocked()
}

func (a *App) shellLocked() adb.Shell {
	if a.shell == nil {
		a.shell = &adb.ExecShell{
			Binary:    a.Config.ADB.Path,
			Serial:    a.Config.ADB.Serial,
			Transport: a.Config.ADB.Transport,
			Timeout:   a.Config.ADB.Timeout,
		}
	}
	return a.shell
}

// Device returns the facade, building it on first use.
func (a *App) Device() *deviceservice.Device {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.device == nil {
		collab := adb.NewCollaborators(a.shellLocked(), adb.Options{
			Caller: a.Config.Biometrics.Caller,
			Bools:  a.Config.Resources.Bool,
			Dimens: a.Config.Resources.Dimen,
		})
		a.device = deviceservice.New(collab, a.Logger)
	}
	return a.device
}

// TemperatureUnit is the configured battery unit.
func (a *App) TemperatureUnit() deviceservice.TemperatureUnit {
	unit, err := deviceservice.ParseTemperatureUnit(a.Config.Battery.Unit)
	if err != nil {
		return deviceservice.Celsius
	}
	return unit
}

// Close releases the log file, if any.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
