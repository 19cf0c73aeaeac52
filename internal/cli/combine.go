package cli

import (
	"fmt"
	"io"

	"github.com/darcyabjones/ffdb"
)

func runCombine(argv []string, stderr io.Writer) error {
	var (
		dataOut  string
		indexOut string
		verbose  bool
	)
	fs := newFlagSet("combine", stderr, &verbose)
	fs.StringVar(&dataOut, "d", "", "path to write the ffdata file to")
	fs.StringVar(&dataOut, "data", "", "alias of -d")
	fs.StringVar(&indexOut, "i", "", "path to write the ffindex file to")
	fs.StringVar(&indexOut, "index", "", "alias of -i")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ffdb combine [options] -d OUT.ffdata -i OUT.ffindex FFDATA... FFINDEX...")
		fs.PrintDefaults()
	}
	if err := parse(fs, argv); err != nil {
		return err
	}
	if err := requireOut(dataOut, indexOut); err != nil {
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

	log := logger(verbose, stderr)
	err = ffdb.SaveDB(dataOut, indexOut, func(data io.Writer) (ffdb.Index, error) {
		return ffdb.Combine(dbs, data)
	})
	if err == nil {
		log.Info("combined databases", "inputs", len(dbs), "data", dataOut, "index", indexOut)
	}
	return err
}
