package ffdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Collect flattens databases into a single byte stream, in database order
// then index order within each database.
//
// Every document has its embedded null bytes stripped and its first trim
// lines dropped (a line ends at '\n'; a document with no more than trim
// lines contributes nothing, which is not an error). What remains is
// written so it ends with exactly one trailing newline before the next
// document begins. trim=1 concatenates CSV bodies while dropping each
// document's header line.
func Collect(dbs []*DB, out io.Writer, trim int) error {
	if trim < 0 {
		return fmt.Errorf("trim %d must be non-negative: %w", trim, ErrArgument)
	}

	bw := bufio.NewWriter(out)
	for i, db := range dbs {
		for _, e := range db.Index {
			doc, err := db.Data.ReadEntry(e)
			if err != nil {
				return fmt.Errorf("collect database %d: %w", i, err)
			}

			doc = bytes.ReplaceAll(doc, []byte{0}, nil)
			doc = dropLines(doc, trim)
			if len(doc) == 0 {
				continue
			}

			if _, err := bw.Write(doc); err != nil {
				return fmt.Errorf("collect: %w", err)
			}
			if doc[len(doc)-1] != '\n' {
				if err := bw.WriteByte('\n'); err != nil {
					return fmt.Errorf("collect: %w", err)
				}
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	return nil
}

// dropLines removes the first n newline-terminated lines. A final segment
// without a trailing newline counts as a line; nil is returned when fewer
// than n lines exist.
func dropLines(doc []byte, n int) []byte {
	for ; n > 0; n-- {
		j := bytes.IndexByte(doc, '\n')
		if j < 0 {
			return nil
		}
		doc = doc[j+1:]
	}
	return doc
}
