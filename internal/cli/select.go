package cli

import (
	"fmt"
	"io"

	"github.com/darcyabjones/ffdb"
)

func runSelect(argv []string, stderr io.Writer) error {
	var (
		dataOut     string
		indexOut    string
		includePath string
		excludePath string
		verbose     bool
	)
	fs := newFlagSet("select", stderr, &verbose)
	fs.StringVar(&dataOut, "d", "", "path to write the ffdata file to")
	fs.StringVar(&dataOut, "data", "", "alias of -d")
	fs.StringVar(&indexOut, "i", "", "path to write the ffindex file to")
	fs.StringVar(&indexOut, "index", "", "alias of -i")
	fs.StringVar(&includePath, "include", "", "only keep names listed in this file, one per line")
	fs.StringVar(&excludePath, "exclude", "", "drop names listed in this file, one per line")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ffdb select [options] -d OUT.ffdata -i OUT.ffindex FFDATA FFINDEX")
		fs.PrintDefaults()
	}
	if err := parse(fs, argv); err != nil {
		return err
	}
	if err := requireOut(dataOut, indexOut); err != nil {
		return err
	}
	if includePath == "" && excludePath == "" {
		return fmt.Errorf("either --include or --exclude must be given: %w", ffdb.ErrArgument)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("expected FFDATA and FFINDEX arguments, got %d: %w", fs.NArg(), ffdb.ErrArgument)
	}

	var include, exclude map[string]bool
	if includePath != "" {
		names, err := readNameFile(includePath)
		if err != nil {
			return err
		}
		include = ffdb.NameSet(names)
	}
	if excludePath != "" {
		names, err := readNameFile(excludePath)
		if err != nil {
			return err
		}
		exclude = ffdb.NameSet(names)
	}

	db, err := ffdb.OpenDB(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return err
	}
	defer db.Close()

	log := logger(verbose, stderr)
	err = ffdb.SaveDB(dataOut, indexOut, func(data io.Writer) (ffdb.Index, error) {
		ix, err := ffdb.Select(db, include, exclude, data)
		if err == nil {
			log.Info("selected entries", "input", len(db.Index), "kept", len(ix))
		}
		return ix, err
	})
	return err
}
