package ffdb

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Reorder rewrites a database with its entries in a new order, recomputing
// offsets as documents are copied.
//
// When names is nil, entries are sorted lexicographically by name. When
// given, names must be a permutation of the database's entry names: the
// count must match and every name must exist, else the error wraps
// [ErrFormat] identifying the offender. For duplicate names in the
// database only the first occurrence is addressable.
func Reorder(db *DB, names []string, data io.Writer) (Index, error) {
	order := make(Index, 0, len(db.Index))

	if names == nil {
		order = append(order, db.Index...)
		slices.SortStableFunc(order, func(a, b Entry) int {
			return strings.Compare(a.Name, b.Name)
		})
	} else {
		if len(names) != len(db.Index) {
			return nil, fmt.Errorf("order lists %d names but database has %d entries: %w",
				len(names), len(db.Index), ErrFormat)
		}

		lookup := make(map[string]Entry, len(db.Index))
		for _, e := range db.Index {
			if _, dup := lookup[e.Name]; !dup {
				lookup[e.Name] = e
			}
		}

		used := make(map[string]bool, len(names))
		for _, name := range names {
			e, ok := lookup[name]
			if !ok {
				return nil, fmt.Errorf("order names unknown entry %q: %w", name, ErrFormat)
			}
			if used[name] {
				return nil, fmt.Errorf("order repeats entry %q: %w", name, ErrFormat)
			}
			used[name] = true
			order = append(order, e)
		}
	}

	w := NewDBWriter(data)
	for _, e := range order {
		if err := w.AppendEntry(db.Data, e); err != nil {
			return nil, err
		}
	}
	return w.Index(), nil
}
