// Package config loads the posture daemon configuration from defaults, an
// optional YAML file and POSTURED_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/surface-duo/posture-go/pkg/lockpolicy"
	"github.com/surface-duo/posture-go/pkg/settings"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix is the prefix for environment overrides, e.g.
// POSTURED_HAL_CONNECT_TIMEOUT=500ms.
const EnvPrefix = "POSTURED"

// Config holds the daemon configuration.
type Config struct {
	Panel    settings.Panel `mapstructure:"panel"`
	Defaults DefaultsConfig `mapstructure:"defaults"`

	// SettingsFile persists user settings. Empty keeps them in memory.
	SettingsFile string `mapstructure:"settings_file"`

	HAL     HALConfig     `mapstructure:"hal"`
	Timers  TimersConfig  `mapstructure:"timers"`
	Trace   TraceConfig   `mapstructure:"trace"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Log     LogConfig     `mapstructure:"log"`
	Sim     SimConfig     `mapstructure:"sim"`

	// PeekAngleThreshold arms peek mode below this hinge angle.
	PeekAngleThreshold int32 `mapstructure:"peek_angle_threshold"`
}

// DefaultsConfig seeds user settings when no settings file exists yet.
type DefaultsConfig struct {
	LockMode        string `mapstructure:"lock_mode"`
	HingeDisabled   bool   `mapstructure:"hinge_disabled"`
	PeekModeEnabled bool   `mapstructure:"peek_mode_enabled"`
}

// HALConfig configures the hardware link manager.
type HALConfig struct {
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	ConnectInterval time.Duration `mapstructure:"connect_interval"`
	ConnectBurst    int           `mapstructure:"connect_burst"`
	BackoffInitial  time.Duration `mapstructure:"backoff_initial"`
	BackoffMax      time.Duration `mapstructure:"backoff_max"`

	// HealthInterval is the period of the link health sweep. Zero disables it.
	HealthInterval time.Duration `mapstructure:"health_interval"`
}

// TimersConfig configures delayed actions.
type TimersConfig struct {
	SensorSuspend time.Duration `mapstructure:"sensor_suspend"`
	OverlayHide   time.Duration `mapstructure:"overlay_hide"`

	// ScreenOff is the pause between hiding a sleep-after overlay and
	// putting the device to sleep. Zero sleeps right away.
	ScreenOff time.Duration `mapstructure:"screen_off"`
}

// TraceConfig configures trace capture.
type TraceConfig struct {
	// File is the .plog output path. Empty disables file capture.
	File string `mapstructure:"file"`

	// Console mirrors trace events to the operational log at debug level.
	Console bool `mapstructure:"console"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Listen is the address for /metrics. Empty disables the endpoint.
	Listen string `mapstructure:"listen"`
}

// LogConfig configures operational logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SimConfig configures the simulated hardware used off-device.
type SimConfig struct {
	// TouchVersion is "v1" or "v2".
	TouchVersion string `mapstructure:"touch_version"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Panel:    settings.DefaultPanel(),
		Defaults: DefaultsConfig{LockMode: "dynamic"},
		HAL: HALConfig{
			ConnectTimeout:  2 * time.Second,
			ConnectInterval: time.Second,
			ConnectBurst:    2,
			BackoffInitial:  time.Second,
			BackoffMax:      30 * time.Second,
			HealthInterval:  30 * time.Second,
		},
		Timers: TimersConfig{
			SensorSuspend: 1000 * time.Millisecond,
			OverlayHide:   5 * time.Second,
		},
		Log:                LogConfig{Level: "info", Format: "text"},
		Sim:                SimConfig{TouchVersion: "v2"},
		PeekAngleThreshold: 50,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("panel.width", d.Panel.Width)
	v.SetDefault("panel.height", d.Panel.Height)
	v.SetDefault("panel.hinge_gap", d.Panel.HingeGap)
	v.SetDefault("defaults.lock_mode", d.Defaults.LockMode)
	v.SetDefault("defaults.hinge_disabled", d.Defaults.HingeDisabled)
	v.SetDefault("defaults.peek_mode_enabled", d.Defaults.PeekModeEnabled)
	v.SetDefault("settings_file", d.SettingsFile)
	v.SetDefault("hal.connect_timeout", d.HAL.ConnectTimeout)
	v.SetDefault("hal.connect_interval", d.HAL.ConnectInterval)
	v.SetDefault("hal.connect_burst", d.HAL.ConnectBurst)
	v.SetDefault("hal.backoff_initial", d.HAL.BackoffInitial)
	v.SetDefault("hal.backoff_max", d.HAL.BackoffMax)
	v.SetDefault("hal.health_interval", d.HAL.HealthInterval)
	v.SetDefault("timers.sensor_suspend", d.Timers.SensorSuspend)
	v.SetDefault("timers.overlay_hide", d.Timers.OverlayHide)
	v.SetDefault("timers.screen_off", d.Timers.ScreenOff)
	v.SetDefault("trace.file", d.Trace.File)
	v.SetDefault("trace.console", d.Trace.Console)
	v.SetDefault("metrics.listen", d.Metrics.Listen)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("sim.touch_version", d.Sim.TouchVersion)
	v.SetDefault("peek_angle_threshold", d.PeekAngleThreshold)
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply. A named file that cannot be read is an
// error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Panel.Width <= 0 || c.Panel.Height <= 0 || c.Panel.HingeGap < 0 {
		return fmt.Errorf("%w: panel %dx%d gap %d", ErrInvalidConfig, c.Panel.Width, c.Panel.Height, c.Panel.HingeGap)
	}
	if _, err := lockpolicy.ParseMode(c.Defaults.LockMode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.HAL.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: hal.connect_timeout must be positive", ErrInvalidConfig)
	}
	if c.HAL.HealthInterval < 0 {
		return fmt.Errorf("%w: hal.health_interval must not be negative", ErrInvalidConfig)
	}
	if c.Timers.SensorSuspend <= 0 || c.Timers.OverlayHide <= 0 {
		return fmt.Errorf("%w: timer delays must be positive", ErrInvalidConfig)
	}
	if c.Timers.ScreenOff < 0 {
		return fmt.Errorf("%w: timers.screen_off must not be negative", ErrInvalidConfig)
	}
	if c.PeekAngleThreshold <= 0 || c.PeekAngleThreshold > 360 {
		return fmt.Errorf("%w: peek_angle_threshold %d", ErrInvalidConfig, c.PeekAngleThreshold)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	switch c.Sim.TouchVersion {
	case "v1", "v2":
	default:
		return fmt.Errorf("%w: sim.touch_version %q", ErrInvalidConfig, c.Sim.TouchVersion)
	}
	return nil
}

// InitialSettings returns the user settings seeded from Defaults and Panel.
func (c *Config) InitialSettings() settings.Settings {
	mode, _ := lockpolicy.ParseMode(c.Defaults.LockMode)
	return settings.Settings{
		LockMode:        mode,
		HingeDisabled:   c.Defaults.HingeDisabled,
		PeekModeEnabled: c.Defaults.PeekModeEnabled,
		Panel:           c.Panel,
	}
}

// ParseLevel maps a level name to an slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
