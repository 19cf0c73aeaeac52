package ffdb

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	newOpts := func(dir string, size int) SplitOptions {
		return SplitOptions{
			Size:     size,
			Basename: filepath.Join(dir, "{name}_{index}.{ext}"),
			Name:     "db",
		}
	}

	t.Run("partitions with rebased offsets", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		db := testDB(t,
			doc{"a", "one\x00"},
			doc{"b", "two\x00"},
			doc{"c", "three\x00"},
		)

		parts, err := Split(db, newOpts(dir, 2))
		require.NoError(t, err)
		require.Equal(t, 2, parts)

		p0, err := OpenDB(filepath.Join(dir, "db_0.ffdata"), filepath.Join(dir, "db_0.ffindex"))
		require.NoError(t, err)
		defer p0.Close()
		assert.Equal(t, []doc{{"a", "one\x00"}, {"b", "two\x00"}}, dbContents(t, p0))
		assert.Equal(t, Index{{Name: "a", Start: 0, Size: 4}, {Name: "b", Start: 4, Size: 4}}, p0.Index)

		p1, err := OpenDB(filepath.Join(dir, "db_1.ffdata"), filepath.Join(dir, "db_1.ffindex"))
		require.NoError(t, err)
		defer p1.Close()
		assert.Equal(t, []doc{{"c", "three\x00"}}, dbContents(t, p1))
		assert.Equal(t, Index{{Name: "c", Start: 0, Size: 6}}, p1.Index)
	})

	t.Run("cardinality", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		docs := make([]doc, 25)
		for i := range docs {
			docs[i] = doc{fmt.Sprintf("n%02d", i), fmt.Sprintf("content %d\x00", i)}
		}
		db := testDB(t, docs...)

		parts, err := Split(db, newOpts(dir, 10))
		require.NoError(t, err)
		require.Equal(t, 3, parts)

		total := 0
		for p := 0; p < parts; p++ {
			part, err := OpenDB(
				filepath.Join(dir, fmt.Sprintf("db_%d.ffdata", p)),
				filepath.Join(dir, fmt.Sprintf("db_%d.ffindex", p)),
			)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(part.Index), 10)
			if p < parts-1 {
				assert.Len(t, part.Index, 10, "only the last partition may be short")
			}
			total += len(part.Index)
			part.Close()
		}
		assert.Equal(t, 25, total)
	})

	t.Run("combine of split round trips", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		docs := make([]doc, 7)
		for i := range docs {
			docs[i] = doc{fmt.Sprintf("seq%d", i), fmt.Sprintf("ACGT%d\n\x00", i)}
		}
		db := testDB(t, docs...)

		parts, err := Split(db, newOpts(dir, 3))
		require.NoError(t, err)

		var dataPaths, indexPaths []string
		for p := 0; p < parts; p++ {
			dataPaths = append(dataPaths, filepath.Join(dir, fmt.Sprintf("db_%d.ffdata", p)))
			indexPaths = append(indexPaths, filepath.Join(dir, fmt.Sprintf("db_%d.ffindex", p)))
		}
		dbs, err := OpenPairs(dataPaths, indexPaths)
		require.NoError(t, err)
		defer CloseAll(dbs)

		var data bytes.Buffer
		ix, err := Combine(dbs, &data)
		require.NoError(t, err)

		assert.Equal(t, db.Index, ix)
		assert.Equal(t, dbContents(t, db), dbContents(t, NewDB(ix, data.Bytes())))
	})

	t.Run("zero entries makes zero partitions", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		parts, err := Split(testDB(t), newOpts(dir, 10))
		require.NoError(t, err)
		assert.Zero(t, parts)
	})

	t.Run("non-positive size", func(t *testing.T) {
		t.Parallel()
		db := testDB(t, doc{"a", "x\x00"})
		_, err := Split(db, newOpts(t.TempDir(), 0))
		require.ErrorIs(t, err, ErrArgument)
	})
}
