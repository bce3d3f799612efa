// Command posture-log views and analyzes posture trace files.
//
// Trace files are written by postured with -trace or by posture-test with
// -trace.
//
// Usage:
//
//	posture-log <command> [flags] <file.plog>
//
// Examples:
//
//	# View every transition of one session
//	posture-log view --category transition --session 1b2c run.plog
//
//	# Export to CSV
//	posture-log export --format csv -o run.csv run.plog
//
//	# Show statistics
//	posture-log stats run.plog
package main

import (
	"os"

	"github.com/surface-duo/posture-go/cmd/posture-log/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
