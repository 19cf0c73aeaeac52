package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/darcyabjones/ffdb"
)

func runSplit(argv []string, stderr io.Writer) error {
	var (
		size     int
		basename string
		verbose  bool
	)
	fs := newFlagSet("split", stderr, &verbose)
	fs.IntVar(&size, "n", 100000, "number of entries per partition")
	fs.IntVar(&size, "size", 100000, "alias of -n")
	fs.StringVar(&basename, "b", ffdb.DefaultBasename, "output name template; {name}, {index}, {ext} expand")
	fs.StringVar(&basename, "basename", ffdb.DefaultBasename, "alias of -b")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ffdb split [options] FFDATA FFINDEX")
		fs.PrintDefaults()
	}
	if err := parse(fs, argv); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		return fmt.Errorf("expected FFDATA and FFINDEX arguments, got %d: %w", fs.NArg(), ffdb.ErrArgument)
	}
	dataPath, indexPath := fs.Arg(0), fs.Arg(1)

	db, err := ffdb.OpenDB(dataPath, indexPath)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = ffdb.Split(db, ffdb.SplitOptions{
		Size:     size,
		Basename: basename,
		Name:     simpleName(dataPath),
		Logger:   logger(verbose, stderr),
	})
	return err
}

// simpleName strips the directory and extension from a path, giving the
// {name} value for partition templates.
func simpleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
