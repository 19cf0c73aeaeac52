package ffdb

import (
	"fmt"
	"io"
)

// DBWriter appends documents to a data stream while recording index
// entries with recomputed offsets.
//
// Offsets are a running cumulative sum starting at 0, so the resulting
// index is valid against exactly the bytes written through the writer.
type DBWriter struct {
	data io.Writer
	ix   Index
	off  int64
}

// NewDBWriter wraps a data output stream.
func NewDBWriter(data io.Writer) *DBWriter {
	return &DBWriter{data: data}
}

// Append streams one document from r into the data stream and records an
// entry for it under name.
func (w *DBWriter) Append(name string, r io.Reader) error {
	n, err := io.Copy(w.data, r)
	if err != nil {
		return fmt.Errorf("append %q: %w", name, err)
	}
	w.ix = append(w.ix, Entry{Name: name, Start: w.off, Size: n})
	w.off += n
	return nil
}

// AppendBytes records one document held in memory.
func (w *DBWriter) AppendBytes(name string, doc []byte) error {
	if _, err := w.data.Write(doc); err != nil {
		return fmt.Errorf("append %q: %w", name, err)
	}
	w.ix = append(w.ix, Entry{Name: name, Start: w.off, Size: int64(len(doc))})
	w.off += int64(len(doc))
	return nil
}

// AppendEntry copies an existing document out of src, rebasing its offset.
// The entry keeps its name and size; only the offset changes.
func (w *DBWriter) AppendEntry(src *Data, e Entry) error {
	n, err := src.CopyEntry(w.data, e)
	if err != nil {
		return err
	}
	if n != e.Size {
		return fmt.Errorf("entry %q: copied %d of %d bytes: %w", e.Name, n, e.Size, ErrRange)
	}
	w.ix = append(w.ix, Entry{Name: e.Name, Start: w.off, Size: e.Size})
	w.off += e.Size
	return nil
}

// Index returns the entries recorded so far, in append order.
func (w *DBWriter) Index() Index {
	return w.ix
}

// Offset returns the number of data bytes written so far.
func (w *DBWriter) Offset() int64 {
	return w.off
}
