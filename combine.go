package ffdb

import (
	"fmt"
	"io"
)

// Combine concatenates databases in the given order into a single output.
//
// Each database's data file is appended to data verbatim and its entries
// are appended to the returned index with offsets increased by the running
// size of everything written before it. No deduplication or renaming
// occurs: colliding names across databases are retained as separate
// entries at their original positions. This is pure concatenation, not a
// join; see [JoinConcat] for merging by name.
func Combine(dbs []*DB, data io.Writer) (Index, error) {
	var out Index
	var base int64
	for i, db := range dbs {
		n, err := db.Data.WriteTo(data)
		if err != nil {
			return nil, fmt.Errorf("combine database %d: %w", i, err)
		}
		if n != db.Data.Size() {
			return nil, fmt.Errorf("combine database %d: wrote %d of %d bytes: %w",
				i, n, db.Data.Size(), ErrRange)
		}
		out = append(out, db.Index.Shift(base)...)
		base += n
	}
	return out, nil
}
