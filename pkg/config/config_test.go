package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surface-duo/posture-go/pkg/lockpolicy"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
	assert.Equal(t, int32(717), c.InitialSettings().PanelOffset())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postured.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
panel:
  width: 1344
  height: 1892
  hinge_gap: 66
defaults:
  lock_mode: left
  peek_mode_enabled: true
hal:
  connect_timeout: 750ms
timers:
  overlay_hide: 3s
  screen_off: 250ms
`), 0644))

	t.Setenv("POSTURED_HAL_HEALTH_INTERVAL", "10s")
	t.Setenv("POSTURED_LOG_LEVEL", "debug")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int32(1344), c.Panel.Width)
	assert.Equal(t, int32(66), c.Panel.HingeGap)
	assert.Equal(t, 750*time.Millisecond, c.HAL.ConnectTimeout)
	assert.Equal(t, 10*time.Second, c.HAL.HealthInterval)
	assert.Equal(t, 3*time.Second, c.Timers.OverlayHide)
	assert.Equal(t, 1000*time.Millisecond, c.Timers.SensorSuspend)
	assert.Equal(t, 250*time.Millisecond, c.Timers.ScreenOff)
	assert.Equal(t, "debug", c.Log.Level)

	s := c.InitialSettings()
	assert.Equal(t, lockpolicy.LockLeft, s.LockMode)
	assert.True(t, s.PeekModeEnabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero panel", func(c *Config) { c.Panel.Width = 0 }},
		{"bad lock mode", func(c *Config) { c.Defaults.LockMode = "sideways" }},
		{"zero connect timeout", func(c *Config) { c.HAL.ConnectTimeout = 0 }},
		{"zero suspend delay", func(c *Config) { c.Timers.SensorSuspend = 0 }},
		{"negative screen off", func(c *Config) { c.Timers.ScreenOff = -time.Second }},
		{"peek threshold", func(c *Config) { c.PeekAngleThreshold = 0 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"touch version", func(c *Config) { c.Sim.TouchVersion = "v3" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	c := Default()
	assert.NoError(t, c.Validate())
}
