// esal - event sequence analysis from the command line.
// Sorts and filters timestamped event records read from flat files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Stratigraph/esal/pkg/config"
	"github.com/Stratigraph/esal/pkg/ingest"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// CLI flags
var (
	configPath string

	// Column mapping flags
	seqColumn  string
	timeColumn string
	duraColumn string
	evColumn   string
	valColumn  string

	// Ingest flags
	delimiterFlag string
	assignSeq     bool
	sheetName     string
	timeLayouts   []string

	// Output flags
	limitFlag int
	noColor   bool

	// Filter flags
	seqFilter  string
	evFilter   string
	valFilter  string
	timeFrom   string
	timeTo     string
	minVal     float64
	maxVal     float64
	countOnly  bool

	// Watch flags
	watchSorted bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "esal",
	Short: "esal - sort and filter event sequences",
	Long: `esal reads timestamped event records from flat files (CSV, TSV, JSONL,
XLSX) and sorts or filters them with the esal record model.

Every record has five fields: seq (sequence ID), time, dura (duration),
ev (event type), and val (event value). Source columns are mapped onto
these fields with the --*-col flags or a config file.`,
	Version: fmt.Sprintf("%s (%s)", version, commit),
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.esal/config.yaml)")
	pf.StringVar(&seqColumn, "seq-col", "", "source column for the sequence ID")
	pf.StringVar(&timeColumn, "time-col", "", "source column for the start time")
	pf.StringVar(&duraColumn, "dura-col", "", "source column for the duration")
	pf.StringVar(&evColumn, "ev-col", "", "source column for the event type")
	pf.StringVar(&valColumn, "val-col", "", "source column for the event value")
	pf.StringVar(&delimiterFlag, "delimiter", "", "CSV delimiter (single character)")
	pf.BoolVar(&assignSeq, "assign-seq", false, "generate a sequence ID per file when no seq column exists")
	pf.StringVar(&sheetName, "sheet", "", "XLSX sheet name (default: first sheet)")
	pf.StringSliceVar(&timeLayouts, "time-layout", nil, "extra Go time layouts tried before the built-in table")
	pf.IntVar(&limitFlag, "limit", 0, "max events printed (0 = unlimited)")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadOptions merges the config file and CLI flags into ingest options.
// Flags win over the config file.
func loadOptions() (ingest.Options, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return ingest.Options{}, nil, err
	}

	opts := ingest.DefaultOptions()
	if cfg.Ingest.Columns.Seq != "" {
		opts.Mapping.Seq = cfg.Ingest.Columns.Seq
	}
	if cfg.Ingest.Columns.Time != "" {
		opts.Mapping.Time = cfg.Ingest.Columns.Time
	}
	if cfg.Ingest.Columns.Dura != "" {
		opts.Mapping.Dura = cfg.Ingest.Columns.Dura
	}
	if cfg.Ingest.Columns.Ev != "" {
		opts.Mapping.Ev = cfg.Ingest.Columns.Ev
	}
	if cfg.Ingest.Columns.Val != "" {
		opts.Mapping.Val = cfg.Ingest.Columns.Val
	}
	opts.TimeLayouts = cfg.Ingest.TimeLayouts
	opts.AssignSeq = cfg.Ingest.AssignSeq
	opts.Sheet = cfg.Ingest.Sheet
	if cfg.Ingest.Delimiter != "" {
		opts.Delimiter = rune(cfg.Ingest.Delimiter[0])
	}

	if seqColumn != "" {
		opts.Mapping.Seq = seqColumn
	}
	if timeColumn != "" {
		opts.Mapping.Time = timeColumn
	}
	if duraColumn != "" {
		opts.Mapping.Dura = duraColumn
	}
	if evColumn != "" {
		opts.Mapping.Ev = evColumn
	}
	if valColumn != "" {
		opts.Mapping.Val = valColumn
	}
	if len(timeLayouts) > 0 {
		opts.TimeLayouts = append(timeLayouts, opts.TimeLayouts...)
	}
	if assignSeq {
		opts.AssignSeq = true
	}
	if sheetName != "" {
		opts.Sheet = sheetName
	}
	if delimiterFlag != "" {
		opts.Delimiter = rune(delimiterFlag[0])
	}

	if noColor {
		cfg.Output.Color = false
	}
	if limitFlag > 0 {
		cfg.Output.Limit = limitFlag
	}
	return opts, cfg, nil
}
