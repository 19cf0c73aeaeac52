package ffdb

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDConverter(t *testing.T) {
	t.Parallel()

	t.Run("fixed width padding", func(t *testing.T) {
		t.Parallel()
		c := NewIDConverter("", 4)
		assert.Equal(t, "0000", c.Encode(0))
		assert.Equal(t, "0001", c.Encode(1))
		assert.Equal(t, "000A", c.Encode(10))
		assert.Equal(t, "0010", c.Encode(36))
		assert.Equal(t, "ZZZZ", c.Encode(36*36*36*36-1))
	})

	t.Run("grows past fixed width", func(t *testing.T) {
		t.Parallel()
		c := NewIDConverter("", 4)
		assert.Equal(t, "10000", c.Encode(36*36*36*36))
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		c := NewIDConverter("doc_", 4)
		assert.Equal(t, "doc_0000", c.Encode(0))
	})

	t.Run("lexicographic order matches numeric order", func(t *testing.T) {
		t.Parallel()
		c := NewIDConverter("", 4)
		ids := make([]string, 500)
		for i := range ids {
			ids[i] = c.Encode(int64(i * 7))
		}
		assert.True(t, sort.StringsAreSorted(ids))
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		c := NewIDConverter("p", 4)
		for _, n := range []int64{0, 1, 35, 36, 12345, 1 << 40} {
			got, err := c.Decode(c.Encode(n))
			require.NoError(t, err)
			assert.Equal(t, n, got)
		}
	})

	t.Run("decode rejects bad input", func(t *testing.T) {
		t.Parallel()
		c := NewIDConverter("p", 4)
		_, err := c.Decode("0000")
		require.Error(t, err, "missing prefix")
		_, err = c.Decode("p00a0")
		require.Error(t, err, "lowercase digit")
	})

	t.Run("next advances", func(t *testing.T) {
		t.Parallel()
		c := NewIDConverter("", 4)
		assert.Equal(t, "0000", c.Next())
		assert.Equal(t, "0001", c.Next())
		assert.Equal(t, "0002", c.Next())
	})
}
