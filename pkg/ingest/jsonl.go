package ingest

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/Stratigraph/esal/pkg/errors"
	"github.com/Stratigraph/esal/pkg/event"
	"github.com/Stratigraph/esal/pkg/sequence"
)

// ReadJSONL reads events from newline-delimited JSON. Each line is an
// object; mapped keys become event fields, everything else is ignored.
// Numeric time values are read as Unix seconds.
func ReadJSONL(r io.Reader, opts Options) (sequence.Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024) // 16MB max line

	var fileSeq event.Value
	if opts.AssignSeq {
		fileSeq = newFileSeq()
	}

	var events sequence.Sequence
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(text), &obj); err != nil {
			return nil, errors.ParseError("jsonl", line, err)
		}

		var fieldOpts []event.Option
		if v, ok := lookup(obj, opts.Mapping.Seq); ok {
			fieldOpts = append(fieldOpts, event.WithSeq(jsonValue(v)))
		} else if !fileSeq.IsNil() {
			fieldOpts = append(fieldOpts, event.WithSeq(fileSeq))
		}
		if v, ok := lookup(obj, opts.Mapping.Time); ok {
			fieldOpts = append(fieldOpts, event.WithTime(jsonTime(v, opts.TimeLayouts)))
		}
		if v, ok := lookup(obj, opts.Mapping.Dura); ok {
			fieldOpts = append(fieldOpts, event.WithDura(jsonDura(v)))
		}
		if v, ok := lookup(obj, opts.Mapping.Ev); ok {
			fieldOpts = append(fieldOpts, event.WithEv(jsonValue(v)))
		}
		if v, ok := lookup(obj, opts.Mapping.Val); ok {
			fieldOpts = append(fieldOpts, event.WithVal(jsonValue(v)))
		}
		events = append(events, event.New(fieldOpts...))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.ParseError("jsonl", line, err)
	}
	return events, nil
}

func lookup(obj map[string]interface{}, key string) (interface{}, bool) {
	if key == "" {
		return nil, false
	}
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// jsonValue converts a decoded JSON scalar. Whole float64s become
// integers, since encoding/json reads every number as float64.
func jsonValue(v interface{}) event.Value {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return event.Int(int64(f))
	}
	return event.Of(v)
}

func jsonTime(v interface{}, layouts []string) event.Value {
	switch x := v.(type) {
	case string:
		return parseTimeCell(x, layouts)
	case float64:
		sec := int64(x)
		nsec := int64((x - float64(sec)) * float64(time.Second))
		return event.Time(time.Unix(sec, nsec))
	default:
		return event.Of(v)
	}
}

func jsonDura(v interface{}) event.Value {
	switch x := v.(type) {
	case string:
		return parseDuraCell(x)
	case float64:
		return event.Duration(time.Duration(x * float64(time.Second)))
	default:
		return event.Of(v)
	}
}
