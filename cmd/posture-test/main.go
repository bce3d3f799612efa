// Command posture-test runs YAML posture scenarios against the simulated
// device.
//
// Usage:
//
//	posture-test [flags] [id-pattern]
//
// Flags:
//
//	-scenarios string  Scenario file or directory (default "./internal/scenario/testdata")
//	-tag string        Only run scenarios carrying this tag
//	-timeout duration  Per-scenario timeout (default 30s)
//	-verbose           Show per-step results and service debug logs
//	-json              Output results as JSON
//	-trace string      Write the service trace of every run to this file
//
// Examples:
//
//	# Run every scenario
//	posture-test
//
//	# Run the recovery scenarios with a trace
//	posture-test -tag recovery -trace /tmp/recovery.plog
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/surface-duo/posture-go/internal/scenario"
	plog "github.com/surface-duo/posture-go/pkg/log"
)

var (
	scenarios = flag.String("scenarios", "./internal/scenario/testdata", "Scenario file or directory")
	tag       = flag.String("tag", "", "Only run scenarios carrying this tag")
	timeout   = flag.Duration("timeout", scenario.DefaultTimeout, "Per-scenario timeout")
	verbose   = flag.Bool("verbose", false, "Show per-step results and service debug logs")
	jsonOut   = flag.Bool("json", false, "Output results as JSON")
	traceFile = flag.String("trace", "", "File path for the service trace (CBOR format)")
)

func main() {
	flag.Parse()

	pattern := ""
	if flag.NArg() > 0 {
		pattern = flag.Arg(0)
	}

	all, err := scenario.LoadPath(*scenarios)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	selected := scenario.Filter(all, pattern, *tag)
	if len(selected) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no scenarios match")
		os.Exit(1)
	}

	opts := scenario.Options{Timeout: *timeout}
	if *verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var trace *plog.FileLogger
	if *traceFile != "" {
		trace, err = plog.NewFileLogger(*traceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create trace file: %v\n", err)
			os.Exit(1)
		}
		// Only set when non-nil to avoid a typed-nil interface.
		opts.Trace = trace
	}

	var reporter scenario.Reporter = scenario.NewTextReporter(os.Stdout, *verbose)
	if *jsonOut {
		reporter = scenario.NewJSONReporter(os.Stdout, true)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	result := scenario.NewRunner(opts).RunAll(ctx, *scenarios, selected)
	cancel()

	reporter.ReportSuite(result)

	if trace != nil {
		_ = trace.Close()
	}
	if result.FailCount > 0 {
		os.Exit(1)
	}
}
