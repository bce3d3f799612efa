package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("source", event.Source.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Sequence != 0 {
		attrs = append(attrs, slog.Uint64("seq", event.Sequence))
	}

	switch {
	case event.Sensor != nil:
		attrs = append(attrs,
			slog.String("kind", event.Sensor.Kind),
			slog.Int("value", int(event.Sensor.Value)),
		)
		if event.Sensor.Kind == "POSTURE" {
			attrs = append(attrs,
				slog.Float64("code", float64(event.Sensor.Code)),
				slog.Int("rotation", int(event.Sensor.Rotation)),
			)
		}
	case event.Transition != nil:
		attrs = append(attrs,
			slog.String("from", event.Transition.From),
			slog.String("candidate", event.Transition.Candidate),
			slog.String("to", event.Transition.To),
			slog.String("outcome", event.Transition.Outcome),
		)
		if event.Transition.Pending != "" {
			attrs = append(attrs, slog.String("pending", event.Transition.Pending))
		}
		if event.Transition.Promoted {
			attrs = append(attrs, slog.Bool("promoted", true))
		}
	case event.Hardware != nil:
		attrs = append(attrs,
			slog.String("class", event.Hardware.Class),
			slog.Int("composition", int(event.Hardware.Composition)),
			slog.Bool("issued", event.Hardware.Issued),
		)
		if event.Hardware.DeviceState != "" {
			attrs = append(attrs, slog.String("device_state", event.Hardware.DeviceState))
		}
		if event.Hardware.LauncherRestarted {
			attrs = append(attrs, slog.Bool("launcher_restarted", true))
		}
		if event.Hardware.Trigger != "" {
			attrs = append(attrs, slog.String("trigger", event.Hardware.Trigger))
		}
	case event.LinkState != nil:
		attrs = append(attrs,
			slog.String("link", event.LinkState.Link),
			slog.String("old_state", event.LinkState.OldState),
			slog.String("new_state", event.LinkState.NewState),
		)
		if event.LinkState.TouchVersion != "" {
			attrs = append(attrs, slog.String("touch_version", event.LinkState.TouchVersion))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_source", event.Error.Source.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
