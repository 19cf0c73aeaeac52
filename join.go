package ffdb

import (
	"bytes"
	"fmt"
	"io"
)

// JoinConcat performs a full outer join of documents by name across two or
// more databases, concatenating matched content.
//
// Within each database only the first occurrence of a name participates;
// later duplicates in the same database are ignored. The output order is
// first appearance: all distinct names ordered by the database that first
// mentions them, left to right, then by original index order within that
// database.
//
// For each output name the contributing documents are taken in database
// order, trailing null bytes and newlines trimmed, joined with exactly one
// newline, and terminated with a newline and a null byte. Databases
// lacking a name contribute nothing: no placeholder, no extra separator.
// A name present in a single database yields that database's content
// unchanged (modulo the trailing-terminator normalization).
func JoinConcat(dbs []*DB, data io.Writer) (Index, error) {
	if len(dbs) < 2 {
		return nil, fmt.Errorf("join requires at least 2 databases, got %d: %w", len(dbs), ErrArgument)
	}

	// One pass over every index: per-database first-occurrence lookup plus
	// the global first-appearance name order.
	lookups := make([]map[string]Entry, len(dbs))
	var names []string
	seen := make(map[string]bool)
	for i, db := range dbs {
		lookups[i] = make(map[string]Entry, len(db.Index))
		for _, e := range db.Index {
			if _, dup := lookups[i][e.Name]; dup {
				continue
			}
			lookups[i][e.Name] = e
			if !seen[e.Name] {
				seen[e.Name] = true
				names = append(names, e.Name)
			}
		}
	}

	w := NewDBWriter(data)
	var doc bytes.Buffer
	for _, name := range names {
		doc.Reset()
		for i := range dbs {
			e, ok := lookups[i][name]
			if !ok {
				continue
			}
			part, err := dbs[i].Data.ReadEntry(e)
			if err != nil {
				return nil, fmt.Errorf("join database %d: %w", i, err)
			}
			if doc.Len() > 0 {
				doc.WriteByte('\n')
			}
			doc.Write(bytes.TrimRight(part, "\x00\n"))
		}
		doc.WriteString("\n\x00")
		if err := w.AppendBytes(name, doc.Bytes()); err != nil {
			return nil, err
		}
	}
	return w.Index(), nil
}
