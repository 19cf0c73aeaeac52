// Package cli implements the ffdb command line: subcommand dispatch,
// per-subcommand flag sets, and exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/darcyabjones/ffdb"
)

const version = "0.2.0"

// errUsage marks a flag parse failure whose message the flag package has
// already printed.
var errUsage = errors.New("usage")

// Run dispatches one subcommand invocation and returns the process exit
// code: 0 on success, 1 on any error, 2 on usage problems.
func Run(argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		usage(stderr)
		return 2
	}

	switch argv[0] {
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	case "-V", "--version", "version":
		fmt.Fprintln(stdout, "ffdb "+version)
		return 0
	}

	cmd, rest := argv[0], argv[1:]
	var err error
	switch cmd {
	case "split":
		err = runSplit(rest, stderr)
	case "combine":
		err = runCombine(rest, stderr)
	case "fasta":
		err = runFasta(rest, stderr)
	case "collect":
		err = runCollect(rest, stdout, stderr)
	case "join_concat":
		err = runJoinConcat(rest, stderr)
	case "select":
		err = runSelect(rest, stderr)
	case "order":
		err = runOrder(rest, stderr)
	default:
		fmt.Fprintf(stderr, "ffdb: unknown subcommand %q\n\n", cmd)
		usage(stderr)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "ffdb %s: %v\n", cmd, err)
		return 1
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage: ffdb SUBCOMMAND [options] FILES...")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Subcommands:")
	fmt.Fprintln(out, "  split        Split an ffindex database into fixed-size partitions.")
	fmt.Fprintln(out, "  combine      Concatenate many ffindex databases into one.")
	fmt.Fprintln(out, "  fasta        Build an ffindex database from FASTA input.")
	fmt.Fprintln(out, "  collect      Flatten database documents into a single stream on stdout.")
	fmt.Fprintln(out, "  join_concat  Full outer join of documents by name across databases.")
	fmt.Fprintln(out, "  select       Filter a database by entry name.")
	fmt.Fprintln(out, "  order        Rewrite a database with entries in a new order.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'ffdb SUBCOMMAND -h' for subcommand options.")
}

// newFlagSet creates a flag set that reports errors to stderr and
// registers the shared --verbose flag.
func newFlagSet(name string, stderr io.Writer, verbose *bool) *flag.FlagSet {
	fs := flag.NewFlagSet("ffdb "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(verbose, "verbose", false, "log progress to stderr")
	return fs
}

// parse wraps flag parsing so already-reported failures map to errUsage.
func parse(fs *flag.FlagSet, argv []string) error {
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return flag.ErrHelp
		}
		return errUsage
	}
	return nil
}

// logger builds the operation logger. Quiet runs discard everything.
func logger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// splitPairs splits the positional argument list into its data-file half
// and index-file half.
func splitPairs(args []string) (dataPaths, indexPaths []string, err error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, nil, fmt.Errorf("expected matching data and index files, got %d paths: %w",
			len(args), ffdb.ErrArgument)
	}
	half := len(args) / 2
	return args[:half], args[half:], nil
}

// requireOut validates the -d/-i output path flags.
func requireOut(dataPath, indexPath string) error {
	if dataPath == "" || indexPath == "" {
		return fmt.Errorf("both -d and -i output paths are required: %w", ffdb.ErrArgument)
	}
	return nil
}

// readNameFile loads a newline-delimited name list from disk.
func readNameFile(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	names, err := ffdb.ReadNames(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return names, nil
}
