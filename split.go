package ffdb

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// DefaultBasename is the partition naming template used when none is given.
const DefaultBasename = "{name}_{index}.{ext}"

// SplitOptions configures database partitioning.
type SplitOptions struct {
	// Size is the maximum number of entries per partition. Must be positive.
	Size int

	// Basename is the output naming template. {name} expands to the Name
	// option, {index} to the zero-based partition number, and {ext} to
	// ffdata or ffindex. Empty uses DefaultBasename.
	Basename string

	// Name is the {name} template value, conventionally the input data
	// file's basename without extension.
	Name string

	// Logger receives per-partition progress. Nil discards.
	Logger *slog.Logger
}

func (o SplitOptions) log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// partitionPath expands the basename template for one output file.
func (o SplitOptions) partitionPath(p int, ext string) string {
	basename := o.Basename
	if basename == "" {
		basename = DefaultBasename
	}
	return strings.NewReplacer(
		"{name}", o.Name,
		"{index}", strconv.Itoa(p),
		"{ext}", ext,
	).Replace(basename)
}

// Split divides a database into partitions of at most opt.Size entries,
// walking the index in its existing order. Partition p receives entries
// [p*size, min((p+1)*size, total)); each partition is written as a fresh
// database pair with offsets rebased to a cumulative sum starting at 0.
//
// Concatenating all partitions in partition order reproduces the original
// index exactly (same names, order, and content), only absolute offsets
// differ. A database with zero entries produces zero partitions.
//
// Returns the number of partitions written.
func Split(db *DB, opt SplitOptions) (int, error) {
	if opt.Size <= 0 {
		return 0, fmt.Errorf("partition size %d must be positive: %w", opt.Size, ErrArgument)
	}

	parts := 0
	for start := 0; start < len(db.Index); start += opt.Size {
		end := min(start+opt.Size, len(db.Index))
		entries := db.Index[start:end]

		dataPath := opt.partitionPath(parts, "ffdata")
		indexPath := opt.partitionPath(parts, "ffindex")

		err := SaveDB(dataPath, indexPath, func(data io.Writer) (Index, error) {
			w := NewDBWriter(data)
			for _, e := range entries {
				if err := w.AppendEntry(db.Data, e); err != nil {
					return nil, err
				}
			}
			return w.Index(), nil
		})
		if err != nil {
			return parts, fmt.Errorf("write partition %d: %w", parts, err)
		}

		opt.log().Debug("wrote partition",
			"partition", parts, "entries", len(entries), "data", dataPath, "index", indexPath)
		parts++
	}

	opt.log().Info("split database", "entries", len(db.Index), "partitions", parts)
	return parts, nil
}
