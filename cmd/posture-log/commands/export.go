package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	plog "github.com/surface-duo/posture-go/pkg/log"
)

func exportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export <file.plog>",
		Short: "Export a trace file to JSONL or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filterFromFlags()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return RunExport(args[0], filter, format, w)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "jsonl", "output format: jsonl, csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// RunExport writes the matching events of path to w in format.
func RunExport(path string, filter ViewFilter, format string, w io.Writer) error {
	switch format {
	case "jsonl":
		enc := json.NewEncoder(w)
		return eachEvent(path, filter, func(e plog.Event) error {
			if err := enc.Encode(e); err != nil {
				return fmt.Errorf("failed to encode event: %w", err)
			}
			return nil
		})
	case "csv":
		return exportCSV(path, filter, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportCSV(path string, filter ViewFilter, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "sequence", "source", "category", "type", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	return eachEvent(path, filter, func(e plog.Event) error {
		row := []string{
			e.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			e.SessionID,
			strconv.FormatUint(e.Sequence, 10),
			e.Source.String(),
			e.Category.String(),
			eventLabel(e),
			csvDetail(e),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
}

func csvDetail(e plog.Event) string {
	switch {
	case e.Sensor != nil:
		if e.Sensor.Kind == "POSTURE" {
			return fmt.Sprintf("code=%.1f rotation=%d", e.Sensor.Code, e.Sensor.Rotation)
		}
		return fmt.Sprintf("value=%d", e.Sensor.Value)
	case e.Transition != nil:
		return fmt.Sprintf("%s->%s %s", e.Transition.From, e.Transition.To, e.Transition.Outcome)
	case e.Hardware != nil:
		return fmt.Sprintf("composition=%d issued=%t trigger=%s", e.Hardware.Composition, e.Hardware.Issued, e.Hardware.Trigger)
	case e.LinkState != nil:
		return fmt.Sprintf("%s %s->%s", e.LinkState.Link, e.LinkState.OldState, e.LinkState.NewState)
	case e.Error != nil:
		return e.Error.Message
	}
	return ""
}
