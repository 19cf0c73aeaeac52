package ffdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPair persists a database pair for filesystem-level tests.
func writeTestPair(tb testing.TB, dir, name string, docs ...doc) (dataPath, indexPath string) {
	tb.Helper()

	db := testDB(tb, docs...)
	dataPath = filepath.Join(dir, name+".ffdata")
	indexPath = filepath.Join(dir, name+".ffindex")

	var data []byte
	for _, e := range db.Index {
		b, err := db.Data.ReadEntry(e)
		require.NoError(tb, err)
		data = append(data, b...)
	}
	require.NoError(tb, os.WriteFile(dataPath, data, 0o644))

	ixf, err := os.Create(indexPath)
	require.NoError(tb, err)
	_, err = db.Index.WriteTo(ixf)
	require.NoError(tb, err)
	require.NoError(tb, ixf.Close())
	return dataPath, indexPath
}

func TestOpenDB(t *testing.T) {
	t.Parallel()

	t.Run("opens pair", func(t *testing.T) {
		t.Parallel()
		dataPath, indexPath := writeTestPair(t, t.TempDir(), "db", doc{"a", "hello\x00"})

		db, err := OpenDB(dataPath, indexPath)
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, []doc{{"a", "hello\x00"}}, dbContents(t, db))
		assert.Equal(t, int64(6), db.Data.Size())
	})

	t.Run("missing index", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		dataPath, _ := writeTestPair(t, dir, "db", doc{"a", "x\x00"})
		_, err := OpenDB(dataPath, filepath.Join(dir, "nope.ffindex"))
		require.Error(t, err)
	})

	t.Run("malformed index names the file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		dataPath, _ := writeTestPair(t, dir, "db", doc{"a", "x\x00"})
		badIndex := filepath.Join(dir, "bad.ffindex")
		require.NoError(t, os.WriteFile(badIndex, []byte("name\tabc\t10\n"), 0o644))

		_, err := OpenDB(dataPath, badIndex)
		require.ErrorIs(t, err, ErrFormat)
		assert.Contains(t, err.Error(), "bad.ffindex")
	})
}

func TestOpenPairs(t *testing.T) {
	t.Parallel()

	t.Run("opens in order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		d1, i1 := writeTestPair(t, dir, "one", doc{"a", "1\x00"})
		d2, i2 := writeTestPair(t, dir, "two", doc{"b", "2\x00"})

		dbs, err := OpenPairs([]string{d1, d2}, []string{i1, i2})
		require.NoError(t, err)
		defer CloseAll(dbs)

		require.Len(t, dbs, 2)
		assert.Equal(t, "a", dbs[0].Index[0].Name)
		assert.Equal(t, "b", dbs[1].Index[0].Name)
	})

	t.Run("mismatched counts", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		d1, i1 := writeTestPair(t, dir, "one", doc{"a", "1\x00"})

		_, err := OpenPairs([]string{d1}, []string{i1, i1})
		require.ErrorIs(t, err, ErrArgument)
	})
}
