// Package commands implements the posture-log CLI commands.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	plog "github.com/surface-duo/posture-go/pkg/log"
)

var (
	sessionFlag  string
	sourceFlag   string
	categoryFlag string
	kindFlag     string
)

// Execute runs the root command.
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "posture-log",
		Short:         "View and analyze posture trace files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&sessionFlag, "session", "", "only events of sessions whose ID starts with this prefix")
	root.PersistentFlags().StringVar(&sourceFlag, "source", "", "filter by source (sensor, resolver, driver, hal, service)")
	root.PersistentFlags().StringVar(&categoryFlag, "category", "", "filter by category (input, transition, hardware, link, error)")
	root.PersistentFlags().StringVar(&kindFlag, "kind", "", "filter input events by sensor kind (posture, hinge, hall, ...)")

	root.AddCommand(viewCmd(), statsCmd(), exportCmd())
	return root
}

// filterFromFlags builds the reader filter from the persistent flags.
func filterFromFlags() (ViewFilter, error) {
	var f ViewFilter
	f.SessionPrefix = sessionFlag
	f.Kind = strings.ToUpper(kindFlag)
	if sourceFlag != "" {
		s, err := ParseSource(sourceFlag)
		if err != nil {
			return f, err
		}
		f.Source = &s
	}
	if categoryFlag != "" {
		c, err := ParseCategory(categoryFlag)
		if err != nil {
			return f, err
		}
		f.Category = &c
	}
	return f, nil
}

// ViewFilter selects events for every command.
type ViewFilter struct {
	SessionPrefix string
	Source        *plog.Source
	Category      *plog.Category
	Kind          string
}

// readerFilter returns the part of f the trace reader evaluates itself.
func (f ViewFilter) readerFilter() plog.Filter {
	return plog.Filter{Source: f.Source, Category: f.Category, SensorKind: f.Kind}
}

func (f ViewFilter) match(e plog.Event) bool {
	return f.SessionPrefix == "" || strings.HasPrefix(e.SessionID, f.SessionPrefix)
}

// ParseSource parses a source name (case-insensitive).
func ParseSource(s string) (plog.Source, error) {
	for _, src := range []plog.Source{plog.SourceSensor, plog.SourceResolver, plog.SourceDriver, plog.SourceHAL, plog.SourceService} {
		if strings.EqualFold(src.String(), s) {
			return src, nil
		}
	}
	return 0, fmt.Errorf("invalid source: %s (must be sensor, resolver, driver, hal or service)", s)
}

// ParseCategory parses a category name (case-insensitive).
func ParseCategory(s string) (plog.Category, error) {
	for _, c := range allCategories {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid category: %s (must be input, transition, hardware, link or error)", s)
}

var allCategories = []plog.Category{
	plog.CategoryInput,
	plog.CategoryTransition,
	plog.CategoryHardware,
	plog.CategoryLink,
	plog.CategoryError,
}

// eachEvent streams the matching events of path to fn.
func eachEvent(path string, filter ViewFilter, fn func(plog.Event) error) error {
	reader, err := plog.NewFilteredReader(path, filter.readerFilter())
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err != nil {
			if isEOF(err) {
				return nil
			}
			return fmt.Errorf("failed to read event: %w", err)
		}
		if !filter.match(event) {
			continue
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}
