package ingest

import (
	"encoding/csv"
	"io"

	"github.com/Stratigraph/esal/pkg/errors"
	"github.com/Stratigraph/esal/pkg/sequence"
)

// ReadCSV reads events from CSV or TSV data. The first record is the
// header row; columns are matched against the mapping by exact name.
func ReadCSV(r io.Reader, opts Options) (sequence.Sequence, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1 // tolerate ragged rows, missing cells read as absent

	head, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.CodeInvalidFormat, "empty input")
		}
		return nil, errors.ParseError("csv", 1, err)
	}

	plan, err := planColumns(head, opts)
	if err != nil {
		return nil, err
	}

	var events sequence.Sequence
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, errors.ParseError("csv", row, err)
		}
		events = append(events, plan.rowEvent(record, opts))
	}
	return events, nil
}
