package ingest

import (
	"github.com/xuri/excelize/v2"

	"github.com/Stratigraph/esal/pkg/errors"
	"github.com/Stratigraph/esal/pkg/sequence"
)

// ReadXLSX reads events from an Excel workbook. The first row of the
// selected sheet is the header row; cells come back as display strings
// and go through the same inference as CSV cells.
func ReadXLSX(path string, opts Options) (sequence.Sequence, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidFormat, "open workbook")
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.CodeInvalidFormat, "workbook has no sheets").
				WithContext("path", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeParseFailed, "read sheet %s", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.CodeInvalidFormat, "empty sheet").
			WithContext("sheet", sheet)
	}

	plan, err := planColumns(rows[0], opts)
	if err != nil {
		return nil, err
	}

	var events sequence.Sequence
	for _, row := range rows[1:] {
		events = append(events, plan.rowEvent(row, opts))
	}
	return events, nil
}
