package ffdb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// doc pairs a name with stored document content for test databases.
type doc struct {
	name    string
	content string
}

// testDB builds an in-memory database from documents, recomputing offsets.
// Contents are stored exactly as given; callers append "\x00" themselves
// when the trailing-null convention matters.
func testDB(tb testing.TB, docs ...doc) *DB {
	tb.Helper()

	var buf bytes.Buffer
	w := NewDBWriter(&buf)
	for _, d := range docs {
		require.NoError(tb, w.AppendBytes(d.name, []byte(d.content)))
	}
	return NewDB(w.Index(), buf.Bytes())
}

// dbContents reads every document back in index order.
func dbContents(tb testing.TB, db *DB) []doc {
	tb.Helper()

	out := make([]doc, 0, len(db.Index))
	for _, e := range db.Index {
		b, err := db.Data.ReadEntry(e)
		require.NoError(tb, err)
		out = append(out, doc{name: e.Name, content: string(b)})
	}
	return out
}
