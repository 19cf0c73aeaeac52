package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/darcyabjones/ffdb"
	"github.com/darcyabjones/ffdb/internal/fastaio"
)

func runFasta(argv []string, stderr io.Writer) error {
	var (
		dataOut   string
		indexOut  string
		size      int
		minLength int
		checksum  string
		filter    string
		prefix    string
		verbose   bool
	)
	fs := newFlagSet("fasta", stderr, &verbose)
	fs.StringVar(&dataOut, "d", "", "path to write the ffdata file to")
	fs.StringVar(&dataOut, "data", "", "alias of -d")
	fs.StringVar(&indexOut, "i", "", "path to write the ffindex file to")
	fs.StringVar(&indexOut, "index", "", "alias of -i")
	fs.IntVar(&size, "n", 1, "number of fasta records per document")
	fs.IntVar(&size, "size", 1, "alias of -n")
	fs.IntVar(&minLength, "l", 0, "skip records with sequences shorter than this")
	fs.IntVar(&minLength, "min-length", 0, "alias of -l")
	fs.StringVar(&checksum, "c", "", "deduplicate by sequence digest, writing an id-to-digest mapping here")
	fs.StringVar(&checksum, "checksum", "", "alias of -c")
	fs.StringVar(&filter, "f", "", "skip records whose id (or digest, with -c) is listed in this file")
	fs.StringVar(&filter, "filter", "", "alias of -f")
	fs.StringVar(&prefix, "prefix", "", "prefix for generated document names")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ffdb fasta [options] -d OUT.ffdata -i OUT.ffindex FASTA...")
		fmt.Fprintln(stderr, "FASTA inputs may be gzip-compressed; '-' reads stdin.")
		fs.PrintDefaults()
	}
	if err := parse(fs, argv); err != nil {
		return err
	}
	if err := requireOut(dataOut, indexOut); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("at least one FASTA input is required: %w", ffdb.ErrArgument)
	}

	readers := make([]io.Reader, 0, fs.NArg())
	closers := make([]io.Closer, 0, fs.NArg())
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	for _, path := range fs.Args() {
		rc, err := fastaio.Open(path)
		if err != nil {
			return err
		}
		readers = append(readers, rc)
		closers = append(closers, rc)
	}

	opt := ffdb.FastaOptions{
		Size:      size,
		MinLength: minLength,
		Prefix:    prefix,
		Logger:    logger(verbose, stderr),
	}
	if filter != "" {
		names, err := readNameFile(filter)
		if err != nil {
			return err
		}
		opt.Filter = ffdb.NameSet(names)
	}

	var mappingBuf *bufio.Writer
	var mappingFile *os.File
	if checksum != "" {
		var err error
		mappingFile, err = os.Create(checksum)
		if err != nil {
			return fmt.Errorf("create checksum mapping: %w", err)
		}
		mappingBuf = bufio.NewWriter(mappingFile)
		opt.Checksum = mappingBuf
	}

	err := ffdb.SaveDB(dataOut, indexOut, func(data io.Writer) (ffdb.Index, error) {
		return ffdb.FromFasta(readers, data, opt)
	})
	if mappingFile != nil {
		if err == nil {
			err = mappingBuf.Flush()
		}
		if cerr := mappingFile.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(checksum)
		}
	}
	return err
}
