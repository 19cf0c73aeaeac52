package cli

import (
	"fmt"
	"io"

	"github.com/darcyabjones/ffdb"
)

func runOrder(argv []string, stderr io.Writer) error {
	var (
		dataOut   string
		indexOut  string
		orderPath string
		verbose   bool
	)
	fs := newFlagSet("order", stderr, &verbose)
	fs.StringVar(&dataOut, "d", "", "path to write the ffdata file to")
	fs.StringVar(&dataOut, "data", "", "alias of -d")
	fs.StringVar(&indexOut, "i", "", "path to write the ffindex file to")
	fs.StringVar(&indexOut, "index", "", "alias of -i")
	fs.StringVar(&orderPath, "order", "", "file of names giving the output order; default sorts by name")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ffdb order [options] -d OUT.ffdata -i OUT.ffindex FFDATA FFINDEX")
		fs.PrintDefaults()
	}
	if err := parse(fs, argv); err != nil {
		return err
	}
	if err := requireOut(dataOut, indexOut); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("expected FFDATA and FFINDEX arguments, got %d: %w", fs.NArg(), ffdb.ErrArgument)
	}

	var names []string
	if orderPath != "" {
		var err error
		names, err = readNameFile(orderPath)
		if err != nil {
			return err
		}
	}

	db, err := ffdb.OpenDB(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return err
	}
	defer db.Close()

	log := logger(verbose, stderr)
	err = ffdb.SaveDB(dataOut, indexOut, func(data io.Writer) (ffdb.Index, error) {
		return ffdb.Reorder(db, names, data)
	})
	if err == nil {
		log.Info("reordered database", "entries", len(db.Index), "data", dataOut, "index", indexOut)
	}
	return err
}
