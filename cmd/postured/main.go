// Command postured runs the posture service against simulated hardware.
//
// Usage:
//
//	postured [flags]
//
// Flags:
//
//	-config string       Configuration file path (YAML)
//	-log-level string    Log level: debug, info, warn, error
//	-log-format string   Log format: text, json
//	-trace string        Trace output file (.plog)
//	-metrics string      Listen address for /metrics (e.g. :9108)
//	-interactive         Start the interactive console
//
// Examples:
//
//	# Run with defaults and an interactive console
//	postured -interactive
//
//	# Capture a trace and expose metrics
//	postured -config /etc/postured.yaml -trace /tmp/run.plog -metrics :9108
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/surface-duo/posture-go/cmd/postured/interactive"
	"github.com/surface-duo/posture-go/internal/simhw"
	"github.com/surface-duo/posture-go/pkg/config"
	"github.com/surface-duo/posture-go/pkg/hal"
	plog "github.com/surface-duo/posture-go/pkg/log"
	"github.com/surface-duo/posture-go/pkg/metrics"
	"github.com/surface-duo/posture-go/pkg/service"
	"github.com/surface-duo/posture-go/pkg/settings"
)

type flags struct {
	ConfigFile  string
	LogLevel    string
	LogFormat   string
	TraceFile   string
	MetricsAddr string
	Interactive bool
}

var cli flags

func init() {
	flag.StringVar(&cli.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&cli.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.StringVar(&cli.LogFormat, "log-format", "", "Log format: text, json (overrides config)")
	flag.StringVar(&cli.TraceFile, "trace", "", "Trace output file (overrides config)")
	flag.StringVar(&cli.MetricsAddr, "metrics", "", "Metrics listen address (overrides config)")
	flag.BoolVar(&cli.Interactive, "interactive", false, "Start the interactive console")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(cli.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postured: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "postured: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "postured: %v\n", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config) {
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.Log.Format = cli.LogFormat
	}
	if cli.TraceFile != "" {
		cfg.Trace.File = cli.TraceFile
	}
	if cli.MetricsAddr != "" {
		cfg.Metrics.Listen = cli.MetricsAddr
	}
}

func run(cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var console *interactive.Console
	var out io.Writer = os.Stderr
	if cli.Interactive {
		c, err := interactive.New()
		if err != nil {
			return err
		}
		console = c
		out = c.Stderr()
	}

	logger, err := newLogger(out, cfg.Log)
	if err != nil {
		return err
	}

	store, update, err := openSettings(cfg, logger)
	if err != nil {
		return err
	}

	touch := hal.TouchV2
	if cfg.Sim.TouchVersion == "v1" {
		touch = hal.TouchV1
	}
	hw := simhw.NewHAL(touch)
	dev := simhw.NewDevice()

	links := hal.NewManager(hw, hal.Config{
		ConnectTimeout:  cfg.HAL.ConnectTimeout,
		ConnectInterval: cfg.HAL.ConnectInterval,
		ConnectBurst:    cfg.HAL.ConnectBurst,
		Backoff: hal.BackoffConfig{
			Initial:    cfg.HAL.BackoffInitial,
			Max:        cfg.HAL.BackoffMax,
			Multiplier: hal.BackoffMultiplier,
			Jitter:     hal.JitterFactor,
		},
		Logger: logger,
	})

	trace, closeTrace, err := newTrace(cfg.Trace, logger)
	if err != nil {
		return err
	}
	defer closeTrace()

	m := metrics.New(true)
	if cfg.Metrics.Listen != "" {
		srv := &http.Server{Addr: cfg.Metrics.Listen, Handler: metricsMux(m), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("metrics endpoint listening", "addr", cfg.Metrics.Listen)
	}

	svcConfig := service.DefaultConfig()
	svcConfig.Links = links
	svcConfig.Settings = store
	svcConfig.Platform = dev.Platform()
	svcConfig.PeekAngleThreshold = cfg.PeekAngleThreshold
	applyTimers(&svcConfig, cfg.Timers)
	svcConfig.HealthInterval = cfg.HAL.HealthInterval
	svcConfig.Trace = trace
	svcConfig.Metrics = m
	svcConfig.Logger = logger

	svc, err := service.New(svcConfig)
	if err != nil {
		return err
	}
	svc.OnNotification(func(n service.Notification) { logNotification(logger, n) })

	if err := svc.Start(ctx); err != nil {
		return err
	}
	logger.Info("posture service started", "session", svc.SessionID(), "touch", touch.String())

	if console != nil {
		go console.Run(ctx, cancel, interactive.Target{
			Service: svc,
			HAL:     hw,
			Device:  dev,
			Update:  update,
		})
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig.String())
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := svc.Stop(); err != nil {
		logger.Warn("stop failed", "error", err)
	}
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// newTrace combines the file and console trace sinks.
func newTrace(tc config.TraceConfig, logger *slog.Logger) (plog.Logger, func(), error) {
	var sinks []plog.Logger
	closeFn := func() {}

	if tc.File != "" {
		fl, err := plog.NewFileLogger(tc.File)
		if err != nil {
			return nil, nil, fmt.Errorf("open trace file: %w", err)
		}
		sinks = append(sinks, fl)
		closeFn = func() { _ = fl.Close() }
		logger.Info("trace capture enabled", "file", tc.File)
	}
	if tc.Console {
		sinks = append(sinks, plog.NewSlogAdapter(logger))
	}

	switch len(sinks) {
	case 0:
		return nil, closeFn, nil
	case 1:
		return sinks[0], closeFn, nil
	default:
		return plog.NewMultiLogger(sinks...), closeFn, nil
	}
}

// openSettings returns the settings provider and an updater for the console.
func openSettings(cfg config.Config, logger *slog.Logger) (settings.Provider, interactive.UpdateFunc, error) {
	if cfg.SettingsFile == "" {
		m := settings.NewMemoryStore(cfg.InitialSettings())
		m.OnChange(func(s settings.Settings) {
			logger.Debug("settings changed",
				"lock_mode", s.LockMode.String(),
				"hinge_disabled", s.HingeDisabled,
				"peek_mode", s.PeekModeEnabled)
		})
		return m, func(fn func(*settings.Settings)) error {
			m.Update(fn)
			return nil
		}, nil
	}
	fs, err := settings.OpenFileStore(cfg.SettingsFile, cfg.InitialSettings())
	if err != nil {
		return nil, nil, err
	}
	return fs, fs.Update, nil
}

func applyTimers(c *service.Config, t config.TimersConfig) {
	c.SensorSuspendDelay = t.SensorSuspend
	c.OverlayHideDelay = t.OverlayHide
	c.ScreenOffDelay = t.ScreenOff
}

func metricsMux(m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return mux
}

func logNotification(logger *slog.Logger, n service.Notification) {
	switch n.Type {
	case service.NotifyPostureCommitted:
		logger.Info("posture committed", "posture", n.Posture)
	case service.NotifyRotationPending:
		logger.Info("posture waiting for rotation", "posture", n.Posture)
	case service.NotifyCompositionApplied:
		logger.Info("composition applied", "composition", n.Composition.String())
	case service.NotifyLinkUp:
		logger.Info("hardware link up", "link", n.Link.String())
	case service.NotifyLinkDown:
		logger.Warn("hardware link down", "link", n.Link.String())
	case service.NotifyDecodeError:
		logger.Warn("posture decode failed", "error", n.Error)
	case service.NotifyManualMode:
		logger.Info("manual mode changed", "mode", n.Mode.String())
	}
}
