package ffdb

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/opencontainers/go-digest"

	"github.com/darcyabjones/ffdb/internal/fastaio"
)

// FastaOptions configures FASTA ingestion.
type FastaOptions struct {
	// Size is the number of FASTA records grouped into each document.
	// Must be positive.
	Size int

	// MinLength skips records whose sequence is shorter than this many
	// bases. Zero keeps everything.
	MinLength int

	// Prefix is prepended to generated document names.
	Prefix string

	// Filter drops records whose id (or sequence digest, when Checksum
	// is enabled) is in the set. Nil keeps everything.
	Filter map[string]bool

	// Checksum enables deduplication: every record's sequence digest is
	// written here as an "id\tdigest" mapping line, records repeating an
	// already-seen digest are dropped, and surviving records have their
	// header rewritten to the digest. Nil disables.
	Checksum io.Writer

	// Logger receives ingestion progress. Nil discards.
	Logger *slog.Logger
}

func (o FastaOptions) log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// FromFasta builds a database from one or more FASTA streams, accumulating
// the raw text of opt.Size consecutive records per document. Documents may
// span streams: record grouping, deduplication, and naming state carry
// across the whole input sequence, and the final document may hold fewer
// records if the inputs run out. Each document ends with a null byte, and
// names are generated from a zero-based document counter by [IDConverter],
// so they are unique and stable for a given input.
//
// Streams are scanned separately, so a final record without a trailing
// newline cannot swallow the next stream's header.
//
// A stream containing content but no '>' header lines fails with an error
// wrapping [ErrFormat]. Empty input yields an empty database.
//
// The returned index describes exactly the bytes written to data.
func FromFasta(inputs []io.Reader, data io.Writer, opt FastaOptions) (Index, error) {
	if opt.Size <= 0 {
		return nil, fmt.Errorf("records per document %d must be positive: %w", opt.Size, ErrArgument)
	}
	if opt.MinLength < 0 {
		return nil, fmt.Errorf("minimum length %d must be non-negative: %w", opt.MinLength, ErrArgument)
	}

	w := NewDBWriter(data)
	conv := NewIDConverter(opt.Prefix, 0)
	seen := make(map[digest.Digest]bool)

	var chunk []byte
	records, kept, count := 0, 0, 0

	flush := func() error {
		if count == 0 {
			return nil
		}
		chunk = append(chunk, 0)
		if err := w.AppendBytes(conv.Next(), chunk); err != nil {
			return err
		}
		chunk = chunk[:0]
		count = 0
		return nil
	}

	handle := func(rec fastaio.Record) error {
		records++
		if opt.MinLength > 0 && len(rec.Seq) < opt.MinLength {
			return nil
		}

		text := rec.Raw
		if opt.Checksum != nil {
			dgst := digest.Canonical.FromBytes(rec.Seq)
			if opt.Filter[dgst.String()] {
				return nil
			}
			if _, err := fmt.Fprintf(opt.Checksum, "%s\t%s\n", rec.ID, dgst); err != nil {
				return fmt.Errorf("write checksum mapping: %w", err)
			}
			if seen[dgst] {
				return nil
			}
			seen[dgst] = true
			text = append([]byte(">"+dgst.String()+"\n"), rec.Body...)
		} else if opt.Filter[rec.ID] {
			return nil
		}

		kept++
		chunk = append(chunk, text...)
		// A record at end of stream may lack a final line break; keep
		// documents line-structured regardless.
		if len(chunk) > 0 && chunk[len(chunk)-1] != '\n' {
			chunk = append(chunk, '\n')
		}

		count++
		if count == opt.Size {
			return flush()
		}
		return nil
	}

	for _, r := range inputs {
		if err := fastaio.ScanRecords(r, handle); err != nil {
			if errors.Is(err, fastaio.ErrFormat) {
				return nil, fmt.Errorf("%w: %w", err, ErrFormat)
			}
			return nil, err
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	opt.log().Info("ingested fasta", "records", records, "kept", kept, "documents", len(w.Index()))
	return w.Index(), nil
}
