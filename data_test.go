package ffdb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataReadEntry(t *testing.T) {
	t.Parallel()

	d := NewData(bytes.NewReader([]byte("hello\x00world\x00")), 12)

	t.Run("reads exact range", func(t *testing.T) {
		t.Parallel()
		b, err := d.ReadEntry(Entry{Name: "a", Start: 0, Size: 6})
		require.NoError(t, err)
		assert.Equal(t, []byte("hello\x00"), b)

		b, err = d.ReadEntry(Entry{Name: "b", Start: 6, Size: 6})
		require.NoError(t, err)
		assert.Equal(t, []byte("world\x00"), b)
	})

	t.Run("zero length", func(t *testing.T) {
		t.Parallel()
		b, err := d.ReadEntry(Entry{Name: "z", Start: 12, Size: 0})
		require.NoError(t, err)
		assert.Empty(t, b)
	})

	t.Run("range past end of file", func(t *testing.T) {
		t.Parallel()
		_, err := d.ReadEntry(Entry{Name: "big", Start: 6, Size: 7})
		require.ErrorIs(t, err, ErrRange)
		assert.Contains(t, err.Error(), "big")
	})
}

func TestDataCopyEntry(t *testing.T) {
	t.Parallel()

	d := NewData(bytes.NewReader([]byte("hello\x00world\x00")), 12)

	t.Run("streams range", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		n, err := d.CopyEntry(&buf, Entry{Name: "b", Start: 6, Size: 6})
		require.NoError(t, err)
		assert.Equal(t, int64(6), n)
		assert.Equal(t, "world\x00", buf.String())
	})

	t.Run("rejects out of range", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		_, err := d.CopyEntry(&buf, Entry{Name: "b", Start: 0, Size: 13})
		require.ErrorIs(t, err, ErrRange)
		assert.Zero(t, buf.Len())
	})
}

func TestDataWriteTo(t *testing.T) {
	t.Parallel()

	d := NewData(bytes.NewReader([]byte("abc")), 3)
	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, "abc", buf.String())
}

func TestDBWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewDBWriter(&buf)
	require.NoError(t, w.AppendBytes("a", []byte("one\x00")))
	require.NoError(t, w.Append("b", bytes.NewReader([]byte("two!\x00"))))

	src := NewData(bytes.NewReader([]byte("three\x00")), 6)
	require.NoError(t, w.AppendEntry(src, Entry{Name: "c", Start: 0, Size: 6}))

	assert.Equal(t, Index{
		{Name: "a", Start: 0, Size: 4},
		{Name: "b", Start: 4, Size: 5},
		{Name: "c", Start: 9, Size: 6},
	}, w.Index())
	assert.Equal(t, "one\x00two!\x00three\x00", buf.String())
	assert.Equal(t, int64(15), w.Offset())
}
