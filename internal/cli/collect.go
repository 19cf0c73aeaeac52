package cli

import (
	"fmt"
	"io"

	"github.com/darcyabjones/ffdb"
)

func runCollect(argv []string, stdout, stderr io.Writer) error {
	var (
		trim    int
		verbose bool
	)
	fs := newFlagSet("collect", stderr, &verbose)
	fs.IntVar(&trim, "t", 0, "lines to drop from the start of each document")
	fs.IntVar(&trim, "trim", 0, "alias of -t")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ffdb collect [options] FFDATA... FFINDEX...")
		fs.PrintDefaults()
	}
	if err := parse(fs, argv); err != nil {
		return err
	}

	dataPaths, indexPaths, err := splitPairs(fs.Args())
	if err != nil {
		return err
	}
	dbs, err := ffdb.OpenPairs(dataPaths, indexPaths)
	if err != nil {
		return err
	}
	defer ffdb.CloseAll(dbs)

	return ffdb.Collect(dbs, stdout, trim)
}
