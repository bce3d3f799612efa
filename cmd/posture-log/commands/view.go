package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	plog "github.com/surface-duo/posture-go/pkg/log"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file.plog>",
		Short: "View a trace file in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filterFromFlags()
			if err != nil {
				return err
			}
			return RunView(args[0], filter, cmd.OutOrStdout())
		},
	}
}

// RunView writes every matching event of path to w.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	return eachEvent(path, filter, func(e plog.Event) error {
		formatEvent(w, e)
		return nil
	})
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// formatEvent writes a header line and the payload details of one event.
func formatEvent(w io.Writer, e plog.Event) {
	ts := e.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [%s] #%d %-8s %s\n",
		ts, shortenID(e.SessionID), e.Sequence, e.Source, eventLabel(e))

	switch {
	case e.Sensor != nil:
		s := e.Sensor
		if s.Kind == "POSTURE" {
			fmt.Fprintf(w, "  Code: %.1f  Rotation: %d\n", s.Code, s.Rotation)
		} else {
			fmt.Fprintf(w, "  Value: %d\n", s.Value)
		}
	case e.Transition != nil:
		t := e.Transition
		from := t.From
		if from == "" {
			from = "-"
		}
		fmt.Fprintf(w, "  %s -> %s (candidate %s, %s)\n", from, t.To, t.Candidate, t.Outcome)
		if t.Pending != "" {
			fmt.Fprintf(w, "  Pending: %s\n", t.Pending)
		}
		if t.Promoted {
			fmt.Fprintln(w, "  Promoted by rotation change")
		}
	case e.Hardware != nil:
		h := e.Hardware
		fmt.Fprintf(w, "  Class: %s  Composition: %d  Issued: %t\n", h.Class, h.Composition, h.Issued)
		if h.Trigger != "" {
			fmt.Fprintf(w, "  Trigger: %s\n", h.Trigger)
		}
		if h.DeviceState != "" {
			fmt.Fprintf(w, "  Device state: %s\n", h.DeviceState)
		}
		if h.LauncherRestarted {
			fmt.Fprintln(w, "  Launcher restarted")
		}
		if h.Overlay != "" {
			fmt.Fprintf(w, "  Overlay: %s\n", h.Overlay)
		}
		if h.Sleep {
			fmt.Fprintln(w, "  Sleep requested")
		}
	case e.LinkState != nil:
		l := e.LinkState
		fmt.Fprintf(w, "  %s: %s -> %s", l.Link, l.OldState, l.NewState)
		if l.TouchVersion != "" {
			fmt.Fprintf(w, " (%s)", l.TouchVersion)
		}
		fmt.Fprintln(w)
	case e.Error != nil:
		fmt.Fprintf(w, "  Message: %s\n", e.Error.Message)
		if e.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", e.Error.Context)
		}
	}

	fmt.Fprintln(w)
}

func eventLabel(e plog.Event) string {
	switch {
	case e.Sensor != nil:
		return "Input " + e.Sensor.Kind
	case e.Transition != nil:
		return "Transition"
	case e.Hardware != nil:
		return "Hardware"
	case e.LinkState != nil:
		return "Link"
	case e.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
