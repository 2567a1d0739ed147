// Package ingest reads events from flat files. Each supported format
// (CSV/TSV, JSONL, XLSX) maps source columns onto the five event fields
// through a configurable column mapping; cell values are inferred as
// integers, floats, timestamps, or strings.
package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Stratigraph/esal/pkg/errors"
	"github.com/Stratigraph/esal/pkg/event"
	"github.com/Stratigraph/esal/pkg/sequence"
)

// Mapping names the source column for each event field. Empty entries
// leave the field absent.
type Mapping struct {
	Seq  string
	Time string
	Dura string
	Ev   string
	Val  string
}

// DefaultMapping maps columns named after the event fields themselves.
func DefaultMapping() Mapping {
	return Mapping{
		Seq:  event.FieldSeq,
		Time: event.FieldTime,
		Dura: event.FieldDura,
		Ev:   event.FieldEv,
		Val:  event.FieldVal,
	}
}

// Options controls decoding.
type Options struct {
	Mapping     Mapping
	TimeLayouts []string // tried before the built-in layout table
	Delimiter   rune     // CSV only; 0 means comma
	AssignSeq   bool     // generate a sequence ID per file when the seq column is missing
	Sheet       string   // XLSX only; empty means the first sheet
}

// DefaultOptions returns options with the default column mapping.
func DefaultOptions() Options {
	return Options{Mapping: DefaultMapping()}
}

// Format identifies a supported input format.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
	FormatJSONL Format = "jsonl"
	FormatXLSX  Format = "xlsx"
)

// DetectFormat detects the input format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".jsonl", ".ndjson", ".json":
		return FormatJSONL, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", errors.New(errors.CodeInvalidFormat, "unsupported file format").
			WithContext("path", path)
	}
}

// ReadFile reads all events from a single file, detecting the format
// from its extension.
func ReadFile(ctx context.Context, path string, opts Options) (sequence.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.ContextCanceled("read " + path)
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.FileNotFound(path)
	}

	if format == FormatXLSX {
		return ReadXLSX(path, opts)
	}
	if format == FormatTSV && opts.Delimiter == 0 {
		opts.Delimiter = '\t'
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFileNotFound, "open input")
	}
	defer f.Close()

	if format == FormatJSONL {
		return ReadJSONL(f, opts)
	}
	return ReadCSV(f, opts)
}

// ReadFiles reads several files concurrently and concatenates their
// events in argument order.
func ReadFiles(ctx context.Context, paths []string, opts Options) (sequence.Sequence, error) {
	results := make([]sequence.Sequence, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			events, err := ReadFile(ctx, path, opts)
			if err != nil {
				return err
			}
			results[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all sequence.Sequence
	for _, events := range results {
		all = append(all, events...)
	}
	return all, nil
}

// newFileSeq returns a generated per-file sequence ID, used when
// AssignSeq is set and the source has no seq column.
func newFileSeq() event.Value {
	return event.String(uuid.NewString())
}

// columnPlan holds resolved column positions for one tabular source.
// A position of -1 leaves the field absent.
type columnPlan struct {
	seq, time, dura, ev, val int
	fileSeq                  event.Value
}

// planColumns resolves the mapping against a header row. At least one
// mapped column must exist.
func planColumns(head []string, opts Options) (columnPlan, error) {
	pos := func(name string) int {
		if name == "" {
			return -1
		}
		for i, col := range head {
			if col == name {
				return i
			}
		}
		return -1
	}

	plan := columnPlan{
		seq:  pos(opts.Mapping.Seq),
		time: pos(opts.Mapping.Time),
		dura: pos(opts.Mapping.Dura),
		ev:   pos(opts.Mapping.Ev),
		val:  pos(opts.Mapping.Val),
	}
	if plan.seq < 0 && plan.time < 0 && plan.dura < 0 && plan.ev < 0 && plan.val < 0 {
		return plan, errors.MissingColumn(opts.Mapping.Ev, head)
	}
	if plan.seq < 0 && opts.AssignSeq {
		plan.fileSeq = newFileSeq()
	}
	return plan, nil
}

// rowEvent builds an event from one tabular row using a column plan.
func (p columnPlan) rowEvent(row []string, opts Options) event.Event {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var fieldOpts []event.Option
	if p.seq >= 0 {
		fieldOpts = append(fieldOpts, event.WithSeq(Infer(cell(p.seq))))
	} else if !p.fileSeq.IsNil() {
		fieldOpts = append(fieldOpts, event.WithSeq(p.fileSeq))
	}
	if p.time >= 0 {
		fieldOpts = append(fieldOpts, event.WithTime(parseTimeCell(cell(p.time), opts.TimeLayouts)))
	}
	if p.dura >= 0 {
		fieldOpts = append(fieldOpts, event.WithDura(parseDuraCell(cell(p.dura))))
	}
	if p.ev >= 0 {
		fieldOpts = append(fieldOpts, event.WithEv(Infer(cell(p.ev))))
	}
	if p.val >= 0 {
		fieldOpts = append(fieldOpts, event.WithVal(Infer(cell(p.val))))
	}
	return event.New(fieldOpts...)
}
