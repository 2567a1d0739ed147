package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Stratigraph/esal/pkg/event"
	"github.com/Stratigraph/esal/pkg/ingest"
	"github.com/Stratigraph/esal/pkg/sequence"
	"github.com/Stratigraph/esal/pkg/watch"
)

var sortCmd = &cobra.Command{
	Use:   "sort <file>...",
	Short: "Sort events into their natural order",
	Long: `Read events from one or more files and print them in natural order:
sequence ID first, then time, with duration, type, and value as
tie-breaks. Multiple files are merged before sorting.

Examples:
  esal sort events.csv
  esal sort --ev-col activity --time-col timestamp jan.csv feb.csv
  esal sort measurements.xlsx --sheet Vitals`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSort,
}

var filterCmd = &cobra.Command{
	Use:   "filter <file>...",
	Short: "Filter events with a partial match",
	Long: `Read events and print those satisfying every given criterion. Omitted
criteria are wildcards. Equality criteria infer their literal the same
way ingestion does, so --val 120 matches a numeric cell.

Examples:
  esal filter events.csv --ev bpSystolic
  esal filter events.csv --ev bpSystolic --min-val 140
  esal filter events.csv --time-from 2015-04-01 --time-to 2015-05-01
  esal filter events.csv --seq patient0123456789 --count`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFilter,
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run a filter whenever the file changes",
	Long: `Watch an event file and re-print the matching events every time the
file is modified. Criteria flags work as in the filter command.

Examples:
  esal watch live.csv --ev error
  esal watch live.jsonl --sorted`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	for _, cmd := range []*cobra.Command{filterCmd, watchCmd} {
		f := cmd.Flags()
		f.StringVar(&seqFilter, "seq", "", "sequence ID to match exactly")
		f.StringVar(&evFilter, "ev", "", "event type to match exactly")
		f.StringVar(&valFilter, "val", "", "event value to match exactly")
		f.StringVar(&timeFrom, "time-from", "", "keep events at or after this time")
		f.StringVar(&timeTo, "time-to", "", "keep events strictly before this time")
		f.Float64Var(&minVal, "min-val", 0, "keep events with a numeric value >= this")
		f.Float64Var(&maxVal, "max-val", 0, "keep events with a numeric value <= this")
	}
	filterCmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of matching events")
	watchCmd.Flags().BoolVar(&watchSorted, "sorted", false, "sort matching events before printing")
}

func runSort(cmd *cobra.Command, args []string) error {
	opts, cfg, err := loadOptions()
	if err != nil {
		return err
	}

	ctx := signalContext()
	var events sequence.Sequence
	if len(args) > 1 {
		bar := progressbar.Default(int64(len(args)), "reading")
		for _, path := range args {
			batch, err := ingest.ReadFile(ctx, path, opts)
			if err != nil {
				return err
			}
			events = append(events, batch...)
			bar.Add(1)
		}
		bar.Finish()
	} else {
		if events, err = ingest.ReadFile(ctx, args[0], opts); err != nil {
			return err
		}
	}

	events.Sort()
	printEvents(events, cfg.Output)
	printSummary(events, cfg.Output)
	return nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	opts, cfg, err := loadOptions()
	if err != nil {
		return err
	}

	match, err := buildMatch(cmd)
	if err != nil {
		return err
	}

	events, err := ingest.ReadFiles(signalContext(), args, opts)
	if err != nil {
		return err
	}

	if countOnly {
		fmt.Println(events.Count(match))
		return nil
	}

	selected := events.Select(match)
	printEvents(selected, cfg.Output)
	printSummary(selected, cfg.Output)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, cfg, err := loadOptions()
	if err != nil {
		return err
	}

	match, err := buildMatch(cmd)
	if err != nil {
		return err
	}

	refresh := func(path string) error {
		events, err := ingest.ReadFile(context.Background(), path, opts)
		if err != nil {
			return err
		}
		selected := events.Select(match)
		if watchSorted {
			selected.Sort()
		}
		printRefresh(path)
		printEvents(selected, cfg.Output)
		printSummary(selected, cfg.Output)
		return nil
	}

	// Initial pass before the first change.
	if err := refresh(args[0]); err != nil {
		return err
	}

	watcher, err := watch.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watcher.OnChange = refresh
	watcher.OnError = func(path string, err error) {
		fmt.Fprintf(os.Stderr, "watch %s: %v\n", path, err)
	}
	if err := watcher.Watch(args[0]); err != nil {
		return err
	}

	ctx := signalContext()
	if err := watcher.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// buildMatch assembles the partial match from criteria flags. Equality
// flags use inferred literals; time and value bounds become predicates.
func buildMatch(cmd *cobra.Command) (event.Match, error) {
	var m event.Match

	if seqFilter != "" {
		m.Seq = event.Equals(ingest.Infer(seqFilter))
	}
	if evFilter != "" {
		m.Ev = event.Equals(ingest.Infer(evFilter))
	}
	if valFilter != "" {
		m.Val = event.Equals(ingest.Infer(valFilter))
	}

	if timeFrom != "" || timeTo != "" {
		var from, to event.Value
		if timeFrom != "" {
			t, err := ingest.ParseTime(timeFrom, timeLayouts...)
			if err != nil {
				return m, err
			}
			from = event.Time(t)
		}
		if timeTo != "" {
			t, err := ingest.ParseTime(timeTo, timeLayouts...)
			if err != nil {
				return m, err
			}
			to = event.Time(t)
		}
		m.Time = event.Where(func(v event.Value) bool {
			if v.IsNil() {
				return false
			}
			if !from.IsNil() && v.Compare(from) < 0 {
				return false
			}
			if !to.IsNil() && v.Compare(to) >= 0 {
				return false
			}
			return true
		})
	}

	minSet := cmd.Flags().Changed("min-val")
	maxSet := cmd.Flags().Changed("max-val")
	if minSet || maxSet {
		if valFilter != "" {
			return m, fmt.Errorf("--val cannot be combined with --min-val/--max-val")
		}
		lo, hi := minVal, maxVal
		m.Val = event.Where(func(v event.Value) bool {
			if v.Kind() != event.KindInt && v.Kind() != event.KindFloat {
				return false
			}
			if minSet && v.Compare(event.Float(lo)) < 0 {
				return false
			}
			if maxSet && v.Compare(event.Float(hi)) > 0 {
				return false
			}
			return true
		})
	}

	return m, nil
}

// signalContext returns a context cancelled by SIGINT/SIGTERM.
func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()
	return ctx
}
