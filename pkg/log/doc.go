// Package log provides structured trace capture for the posture service.
//
// This is separate from operational logging (slog): a trace is a complete,
// machine-readable record of every sensor input, posture transition,
// hardware command and link state change, suitable for replaying a bug
// report offline.
//
// # Basic Usage
//
//	// During development: print events via slog
//	cfg.TraceLogger = log.NewSlogAdapter(slog.Default())
//
//	// On device: append to a binary file
//	cfg.TraceLogger, _ = log.NewFileLogger("/data/posture/trace.plog")
//
//	// Both
//	cfg.TraceLogger = log.NewMultiLogger(adapter, fileLogger)
//
// # Event Types
//
// Every Event carries exactly one payload:
//   - Sensor: a raw input (posture, hinge, hall, rotation, power, manual)
//   - Transition: a lock-policy/rotation-gate decision
//   - Hardware: what the composition driver issued
//   - LinkState: a hardware link state change
//   - Error: a dropped input or swallowed hardware failure
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with the .plog extension.
// The posture-log tool views, summarises and exports them.
package log
