package ffdb

import "fmt"

// idAlphabet orders digits before letters so encoded ids sort
// lexicographically in numeric order.
const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IDConverter generates short, lexicographically ordered names from a
// counter: the counter is encoded in base 36 and left-padded to a minimum
// width, with an optional fixed prefix. Encodings are unique and stable
// for a given counter value, which makes them suitable as generated
// document names.
type IDConverter struct {
	prefix string
	length int
	state  int64
}

// NewIDConverter creates a converter with the given prefix and minimum
// encoded width. Width 0 defaults to 4.
func NewIDConverter(prefix string, length int) *IDConverter {
	if length <= 0 {
		length = 4
	}
	return &IDConverter{prefix: prefix, length: length}
}

// Encode returns the name for a counter value. Values below
// 36^length share a fixed width; larger values simply grow wider.
func (c *IDConverter) Encode(n int64) string {
	if n < 0 {
		panic(fmt.Sprintf("idconv: negative counter %d", n))
	}

	base := int64(len(idAlphabet))
	digits := make([]byte, 0, c.length)
	for {
		digits = append(digits, idAlphabet[n%base])
		n /= base
		if n == 0 {
			break
		}
	}
	for len(digits) < c.length {
		digits = append(digits, idAlphabet[0])
	}

	// Digits were produced least-significant first.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return c.prefix + string(digits)
}

// Decode recovers the counter value from an encoded name.
func (c *IDConverter) Decode(s string) (int64, error) {
	if len(s) < len(c.prefix) || s[:len(c.prefix)] != c.prefix {
		return 0, fmt.Errorf("idconv: %q lacks prefix %q", s, c.prefix)
	}

	var n int64
	base := int64(len(idAlphabet))
	for _, ch := range []byte(s[len(c.prefix):]) {
		d := idDigit(ch)
		if d < 0 {
			return 0, fmt.Errorf("idconv: invalid digit %q in %q", ch, s)
		}
		n = n*base + int64(d)
	}
	return n, nil
}

// Next returns the encoding of the internal counter and advances it.
func (c *IDConverter) Next() string {
	s := c.Encode(c.state)
	c.state++
	return s
}

func idDigit(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return -1
}
