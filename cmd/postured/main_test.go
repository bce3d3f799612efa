package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/surface-duo/posture-go/pkg/config"
	"github.com/surface-duo/posture-go/pkg/service"
)

func TestApplyTimers(t *testing.T) {
	c := service.DefaultConfig()
	applyTimers(&c, config.TimersConfig{
		SensorSuspend: 800 * time.Millisecond,
		OverlayHide:   3 * time.Second,
		ScreenOff:     250 * time.Millisecond,
	})

	assert.Equal(t, 800*time.Millisecond, c.SensorSuspendDelay)
	assert.Equal(t, 3*time.Second, c.OverlayHideDelay)
	assert.Equal(t, 250*time.Millisecond, c.ScreenOffDelay)
}
