package ffdb

import (
	"bufio"
	"fmt"
	"io"
)

// ReadNames reads a newline-delimited name list, skipping blank lines.
// Surrounding whitespace on each line is not trimmed beyond the line
// terminator itself; names are taken verbatim.
func ReadNames(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxIndexLine)

	var names []string
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read name list: %w", err)
	}
	return names, nil
}

// Select copies the entries whose names pass the include/exclude filter
// into a fresh database, preserving original index order and recomputing
// offsets.
//
// A nil include set admits every name; exclude wins on overlap. Both sets
// nil is an error wrapping [ErrArgument], since the output would be a
// plain copy.
func Select(db *DB, include, exclude map[string]bool, data io.Writer) (Index, error) {
	if include == nil && exclude == nil {
		return nil, fmt.Errorf("select needs an include or exclude list: %w", ErrArgument)
	}

	w := NewDBWriter(data)
	for _, e := range db.Index {
		if include != nil && !include[e.Name] {
			continue
		}
		if exclude[e.Name] {
			continue
		}
		if err := w.AppendEntry(db.Data, e); err != nil {
			return nil, err
		}
	}
	return w.Index(), nil
}

// NameSet builds a membership set from a name list.
func NameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
