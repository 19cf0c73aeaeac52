package ffdb

import (
	"bytes"
	"fmt"
	"os"
)

// DB pairs a parsed index with random access to its data file.
//
// Databases opened with [OpenDB] hold an open file handle until Close is
// called. Databases built with [NewDB] are backed by memory and need no
// cleanup.
type DB struct {
	Index Index
	Data  *Data

	f *os.File // nil for in-memory databases
}

// NewDB builds an in-memory database from an index and its data bytes.
func NewDB(ix Index, data []byte) *DB {
	return &DB{Index: ix, Data: NewData(bytes.NewReader(data), int64(len(data)))}
}

// OpenDB opens a database pair from the filesystem.
//
// The index file is parsed eagerly; the data file stays open for random
// access until Close.
func OpenDB(dataPath, indexPath string) (*DB, error) {
	ixf, err := os.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	ix, err := ParseIndex(ixf)
	ixf.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", indexPath, err)
	}

	df, err := os.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("open data: %w", err)
	}
	st, err := df.Stat()
	if err != nil {
		df.Close()
		return nil, fmt.Errorf("stat data: %w", err)
	}

	return &DB{Index: ix, Data: NewData(df, st.Size()), f: df}, nil
}

// Close releases the underlying data file handle, if any.
func (db *DB) Close() error {
	if db.f == nil {
		return nil
	}
	return db.f.Close()
}

// OpenPairs opens positionally-corresponding data and index files as
// databases, in order. The two lists must have equal length, else the
// error wraps [ErrArgument].
//
// On any failure every database opened so far is closed. On success the
// caller owns the returned databases and must close each of them.
func OpenPairs(dataPaths, indexPaths []string) ([]*DB, error) {
	if len(dataPaths) != len(indexPaths) {
		return nil, fmt.Errorf("%d data files but %d index files: %w",
			len(dataPaths), len(indexPaths), ErrArgument)
	}

	dbs := make([]*DB, 0, len(dataPaths))
	for i := range dataPaths {
		db, err := OpenDB(dataPaths[i], indexPaths[i])
		if err != nil {
			CloseAll(dbs)
			return nil, err
		}
		dbs = append(dbs, db)
	}
	return dbs, nil
}

// CloseAll closes every database, keeping the first error.
func CloseAll(dbs []*DB) error {
	var err error
	for _, db := range dbs {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
