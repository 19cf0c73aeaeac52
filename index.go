package ffdb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry identifies one document's byte range in a companion data file.
type Entry struct {
	// Name identifies the document. Non-empty, no embedded tab or newline.
	Name string

	// Start is the byte offset of the document in the data file.
	Start int64

	// Size is the document's length in bytes, including the conventional
	// trailing null byte.
	Size int64
}

// Index is an ordered sequence of entries as they appear in an index file.
//
// Order is significant and preserved verbatim by every operation except
// [JoinConcat] and [Reorder], which define their own deterministic output
// orders. Names are not required to be unique.
type Index []Entry

// maxIndexLine bounds a single index line. Names are ordinarily short
// identifiers; 1 MiB leaves generous headroom.
const maxIndexLine = 1 << 20

// ParseIndex parses the text manifest format: one entry per line, three
// tab-separated fields (name, offset, length), decimal integers.
//
// Empty lines are skipped. A line with the wrong field count, an empty
// name, or a non-numeric or negative offset/length fails with an error
// wrapping [ErrFormat] that identifies the line number.
func ParseIndex(r io.Reader) (Index, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxIndexLine)

	var ix Index
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("index line %d: expected 3 tab-separated fields, got %d: %w", lineno, len(fields), ErrFormat)
		}
		if fields[0] == "" {
			return nil, fmt.Errorf("index line %d: empty name: %w", lineno, ErrFormat)
		}

		start, err := parseOffset(fields[1])
		if err != nil {
			return nil, fmt.Errorf("index line %d: bad offset %q: %w", lineno, fields[1], ErrFormat)
		}
		size, err := parseOffset(fields[2])
		if err != nil {
			return nil, fmt.Errorf("index line %d: bad length %q: %w", lineno, fields[2], ErrFormat)
		}

		ix = append(ix, Entry{Name: fields[0], Start: start, Size: size})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	return ix, nil
}

// parseOffset parses a non-negative decimal integer.
func parseOffset(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

// WriteTo serializes the index in its given order, one tab-separated line
// per entry, every line newline-terminated. parse(serialize(ix)) == ix for
// any well-formed index.
func (ix Index) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for _, e := range ix {
		n, err := fmt.Fprintf(bw, "%s\t%d\t%d\n", e.Name, e.Start, e.Size)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write index: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("write index: %w", err)
	}
	return written, nil
}

// Shift returns a copy of the index with every entry's offset increased
// by the given amount. Lengths and order are unchanged.
func (ix Index) Shift(by int64) Index {
	out := make(Index, len(ix))
	for i, e := range ix {
		e.Start += by
		out[i] = e
	}
	return out
}
