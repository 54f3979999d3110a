package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/redjax/droidutil/internal/utils/path"
	"github.com/spf13/pflag"
)

const EnvPrefix = "DROIDUTIL_"

type Config struct {
	ADB        ADBConfig        `koanf:"adb"`
	Battery    BatteryConfig    `koanf:"battery"`
	Biometrics BiometricsConfig `koanf:"biometrics"`
	Resources  ResourcesConfig  `koanf:"resources"`
	Log        LogConfig        `koanf:"log"`
}

type ADBConfig struct {
	Path   string `koanf:"path"`
	Serial string `koanf:"serial"`
	// Transport is adb, waydroid or local.
	Transport string        `koanf:"transport"`
	Timeout   time.Duration `koanf:"timeout"`
}

type BatteryConfig struct {
	Unit string `koanf:"unit"`
}

type BiometricsConfig struct {
	// Caller is the package whose fingerprint permission is checked.
	Caller string `koanf:"caller"`
}

// ResourcesConfig holds framework resource values that cannot be read over the shell.
type ResourcesConfig struct {
	Bool  map[string]bool `koanf:"bool"`
	Dimen map[string]int  `koanf:"dimen"`
}

type LogConfig struct {
	Debug      bool   `koanf:"debug"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"maxsize"`
	MaxBackups int    `koanf:"maxbackups"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		ADB: ADBConfig{
			Path:      "adb",
			Transport: "adb",
			Timeout:   10 * time.Second,
		},
		Battery:    BatteryConfig{Unit: "c"},
		Biometrics: BiometricsConfig{Caller: "com.android.systemui"},
		Resources: ResourcesConfig{
			Bool:  map[string]bool{},
			Dimen: map[string]int{},
		},
		Log: LogConfig{MaxSizeMB: 5, MaxBackups: 3},
	}
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"serial":    "adb.serial",
	"adb":       "adb.path",
	"transport": "adb.transport",
	"timeout":   "adb.timeout",
	"debug":     "log.debug",
	"log-file":  "log.file",
	"unit":      "battery.unit",
}

// LoadConfig layers the config file, DROIDUTIL_ environment variables and
// flags (highest precedence) over Default.
func LoadConfig(flagSet *pflag.FlagSet, configFile string) (*Config, error) {
	k := koanf.New(".")

	// Load from config file if provided
	if configFile != "" {
		var err error
		if configFile, err = path.ExpandPath(configFile); err != nil {
			return nil, err
		}
		parser, err := parserForFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// DROIDUTIL_ADB_SERIAL -> adb.serial
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	if flagSet != nil {
		if err := k.Load(posflag.ProviderWithFlag(flagSet, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flagSet, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("error loading flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the device backend cannot use.
func (c *Config) Validate() error {
	switch c.ADB.Transport {
	case "adb", "waydroid", "local":
	default:
		return fmt.Errorf("unknown transport %q (want adb, waydroid or local)", c.ADB.Transport)
	}

	switch strings.ToLower(c.Battery.Unit) {
	case "c", "celsius", "f", "fahrenheit":
	default:
		return fmt.Errorf("unknown temperature unit %q (want c or f)", c.Battery.Unit)
	}

	if c.ADB.Timeout < 0 {
		return fmt.Errorf("negative adb timeout %s", c.ADB.Timeout)
	}

	return nil
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
