// Command nepak builds, lists, extracts, and verifies NEPAK v1 archives.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nepak/nepak"
)

// stringList collects a repeatable --flag into a slice, mirroring clap's
// Vec<String> arguments (--exclude, --filter).
type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "build":
		err = runBuild(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: nepak <build|list|extract|verify> [flags]")
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	input := fs.String("input", "", "input directory")
	output := fs.String("output", "", "output archive path")
	prefix := fs.String("prefix", "", "mount prefix inside the archive")
	var exclude stringList
	fs.Var(&exclude, "exclude", "exclude substring (repeatable)")
	doCompress := fs.Bool("compress", false, "compress payloads with zstd")
	zstdLevel := fs.Int("zstd-level", 6, "zstd level (1..22), only with --compress")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return nepak.BuildArchive(*input, *output, *prefix, exclude, *doCompress, *zstdLevel)
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	pak := fs.String("pak", "", "archive to list")
	verbose := fs.Bool("verbose", false, "print offsets/lengths/hashes too")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return nepak.List(*pak, *verbose)
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	pak := fs.String("pak", "", "archive to extract")
	output := fs.String("output", "", "output directory")
	var filter stringList
	fs.Var(&filter, "filter", "only extract paths containing this substring (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return nepak.Extract(*pak, *output, filter)
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	pak := fs.String("pak", "", "archive to verify")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return nepak.Verify(*pak)
}
