package ffdb

import (
	"fmt"
	"io"
)

// Data provides random access to a database's data file.
//
// Documents are read through entries only; the data file has no structure
// of its own. Reads are bounds-checked against the file size so a
// malformed index can never return bytes that do not exist.
type Data struct {
	r    io.ReaderAt
	size int64
}

// NewData wraps a random-access byte source of the given size.
func NewData(r io.ReaderAt, size int64) *Data {
	return &Data{r: r, size: size}
}

// Size returns the data file's size in bytes.
func (d *Data) Size() int64 {
	return d.size
}

// checkRange verifies the entry's byte range lies inside the data file.
func (d *Data) checkRange(e Entry) error {
	if e.Start+e.Size > d.size {
		return fmt.Errorf("entry %q: range [%d, %d) exceeds data size %d: %w",
			e.Name, e.Start, e.Start+e.Size, d.size, ErrRange)
	}
	return nil
}

// ReadEntry returns exactly e.Size bytes starting at e.Start.
//
// The document is buffered in full; use [Data.CopyEntry] to stream large
// documents without holding them in memory.
func (d *Data) ReadEntry(e Entry) ([]byte, error) {
	if err := d.checkRange(e); err != nil {
		return nil, err
	}
	if e.Size == 0 {
		return nil, nil
	}
	buf := make([]byte, e.Size)
	if _, err := d.r.ReadAt(buf, e.Start); err != nil {
		return nil, fmt.Errorf("read entry %q: %w", e.Name, err)
	}
	return buf, nil
}

// CopyEntry streams the entry's byte range to w without buffering the
// whole document. Returns the number of bytes written, which equals
// e.Size on success.
func (d *Data) CopyEntry(w io.Writer, e Entry) (int64, error) {
	if err := d.checkRange(e); err != nil {
		return 0, err
	}
	n, err := io.Copy(w, io.NewSectionReader(d.r, e.Start, e.Size))
	if err != nil {
		return n, fmt.Errorf("copy entry %q: %w", e.Name, err)
	}
	return n, nil
}

// WriteTo streams the entire data file to w.
func (d *Data) WriteTo(w io.Writer) (int64, error) {
	n, err := io.Copy(w, io.NewSectionReader(d.r, 0, d.size))
	if err != nil {
		return n, fmt.Errorf("copy data: %w", err)
	}
	return n, nil
}
