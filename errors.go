package ffdb

import "errors"

// Sentinel errors for the ffdb package.
//
// Operations wrap these with fmt.Errorf("...: %w", ...) to attach the
// offending file, line, or name; use errors.Is to classify.
var (
	// ErrFormat is returned for malformed index lines, malformed FASTA
	// input, and any other structural inconsistency found while parsing.
	ErrFormat = errors.New("ffdb: invalid format")

	// ErrRange is returned when an entry names a byte range that exceeds
	// its data file's actual size.
	ErrRange = errors.New("ffdb: entry range out of bounds")

	// ErrArgument is returned for invalid operation arguments: mismatched
	// data/index file counts, non-positive partition or chunk sizes, or a
	// negative trim.
	ErrArgument = errors.New("ffdb: invalid argument")
)
