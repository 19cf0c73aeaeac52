// Package fastaio streams FASTA records from plain or gzip-compressed
// byte streams, preserving the raw text of each record.
package fastaio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrFormat is returned for input that is not FASTA: content appearing
// before any '>' header line.
var ErrFormat = errors.New("fastaio: malformed fasta")

// Record is one FASTA record: a '>' header line followed by zero or more
// content lines.
type Record struct {
	// ID is the header token before the first space or tab.
	ID string

	// Desc is the remainder of the header line after the ID, if any.
	Desc string

	// Raw holds the entire record verbatim, header line included, with
	// original line breaks.
	Raw []byte

	// Body holds the content lines verbatim, header excluded.
	Body []byte

	// Seq is the content with line breaks and surrounding whitespace
	// removed, suitable for digesting and length checks.
	Seq []byte
}

// ScanRecords reads records sequentially from r, calling emit for each.
//
// Records are delimited by '>' lines; everything between two headers
// belongs to the earlier record and is preserved byte-for-byte. Blank
// lines before the first header are ignored, but any other content there
// fails with an error wrapping ErrFormat. A stream with no records at all
// (empty or blank input) emits nothing and is not an error.
func ScanRecords(r io.Reader, emit func(Record) error) error {
	br := bufio.NewReaderSize(r, 64*1024)

	var rec *Record
	lineno := 0

	flush := func() error {
		if rec == nil {
			return nil
		}
		out := *rec
		rec = nil
		return emit(out)
	}

	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lineno++
			switch {
			case line[0] == '>':
				if ferr := flush(); ferr != nil {
					return ferr
				}
				id, desc := splitHeader(line)
				rec = &Record{ID: id, Desc: desc, Raw: append([]byte(nil), line...)}
			case rec == nil:
				if len(bytes.TrimSpace(line)) > 0 {
					return fmt.Errorf("line %d: content before first '>' header: %w", lineno, ErrFormat)
				}
			default:
				rec.Raw = append(rec.Raw, line...)
				rec.Body = append(rec.Body, line...)
				rec.Seq = append(rec.Seq, bytes.TrimSpace(line)...)
			}
		}
		if err == io.EOF {
			return flush()
		}
		if err != nil {
			return fmt.Errorf("read fasta: %w", err)
		}
	}
}

// splitHeader parses a '>' line into its ID and description parts.
func splitHeader(line []byte) (id, desc string) {
	hdr := bytes.TrimSpace(line[1:])
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
