package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	plog "github.com/surface-duo/posture-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[plog.Category]int
	InputsByKind     map[string]int
	Outcomes         map[string]int
	Compositions     map[int32]int
	Sessions         map[string]*SessionStats
	LinkDowns        int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for one service run.
type SessionStats struct {
	FirstSeen    time.Time
	LastSeen     time.Time
	Events       int
	Applied      int
	LastPosture  string
	TouchVersion string
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.plog>",
		Short: "Show statistics about a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filterFromFlags()
			if err != nil {
				return err
			}
			return RunStats(args[0], filter, cmd.OutOrStdout())
		},
	}
}

// RunStats analyzes path and prints statistics to w.
func RunStats(path string, filter ViewFilter, w io.Writer) error {
	stats, err := Collect(path, filter)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

// Collect aggregates the matching events of path.
func Collect(path string, filter ViewFilter) (*Stats, error) {
	stats := &Stats{
		EventsByCategory: make(map[plog.Category]int),
		InputsByKind:     make(map[string]int),
		Outcomes:         make(map[string]int),
		Compositions:     make(map[int32]int),
		Sessions:         make(map[string]*SessionStats),
	}

	err := eachEvent(path, filter, func(e plog.Event) error {
		stats.TotalEvents++
		stats.EventsByCategory[e.Category]++

		if stats.TimeRange.Start.IsZero() || e.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = e.Timestamp
		}
		if e.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = e.Timestamp
		}

		sess, ok := stats.Sessions[e.SessionID]
		if !ok {
			sess = &SessionStats{FirstSeen: e.Timestamp, LastSeen: e.Timestamp}
			stats.Sessions[e.SessionID] = sess
		}
		sess.Events++
		if e.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = e.Timestamp
		}

		switch {
		case e.Sensor != nil:
			stats.InputsByKind[e.Sensor.Kind]++
		case e.Transition != nil:
			stats.Outcomes[e.Transition.Outcome]++
			sess.LastPosture = e.Transition.To
		case e.Hardware != nil:
			if e.Hardware.Issued {
				stats.Compositions[e.Hardware.Composition]++
				sess.Applied++
			}
		case e.LinkState != nil:
			if e.LinkState.OldState == "CONNECTED" {
				stats.LinkDowns++
			}
			if e.LinkState.TouchVersion != "" {
				sess.TouchVersion = e.LinkState.TouchVersion
			}
		case e.Error != nil:
			stats.Errors++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Posture Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, c := range allCategories {
		if n := stats.EventsByCategory[c]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", c.String()+":", n)
		}
	}
	fmt.Fprintln(w)

	printCounts(w, "Inputs by Kind:", stats.InputsByKind)
	printCounts(w, "Resolver Outcomes:", stats.Outcomes)

	if len(stats.Compositions) > 0 {
		fmt.Fprintln(w, "Compositions Issued:")
		ids := make([]int32, 0, len(stats.Compositions))
		for id := range stats.Compositions {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			fmt.Fprintf(w, "  %-12s %d\n", fmt.Sprintf("%d:", id), stats.Compositions[id])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, s := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, s})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, %d applied, duration %s\n",
				shortenID(s.id), s.stats.Events, s.stats.Applied, duration)
			if s.stats.LastPosture != "" {
				fmt.Fprintf(w, "           Last posture: %s\n", s.stats.LastPosture)
			}
			if s.stats.TouchVersion != "" {
				fmt.Fprintf(w, "           Touch: %s\n", s.stats.TouchVersion)
			}
		}
	}

	if stats.LinkDowns > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Link Downs: %d\n", stats.LinkDowns)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

func printCounts(w io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, title)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-12s %d\n", k+":", counts[k])
	}
	fmt.Fprintln(w)
}
