// Command lzss compresses and decompresses files in the raw LZSS
// format with the default parameters. It behaves like gzip: by
// default it replaces each file argument with a compressed file
// carrying the suffix, and with -d it reverses the operation. Without
// file arguments it filters stdin to stdout.
//
// The format is header-less, so a decompressor must use the same
// parameters as the compressor; this tool always uses lzss.Default.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hokorisama/lzss"
	"github.com/hokorisama/lzss/internal/xlog"
)

var (
	decompress = flag.Bool("d", false, "decompress instead of compress")
	stdout     = flag.Bool("c", false, "write to stdout, keep input files")
	force      = flag.Bool("f", false, "overwrite existing output files")
	keep       = flag.Bool("k", false, "keep input files")
	quiet      = flag.Bool("q", false, "suppress warnings")
	verbose    = flag.Bool("v", false, "verbose output")
	suffix     = flag.String("S", ".lzss", "suffix for compressed files")
)

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: %s [options] [file ...]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lzss: ")
	flag.Usage = usage
	flag.Parse()

	var vlog xlog.Logger
	if *verbose && !*quiet {
		vlog = log.New(os.Stderr, "lzss: ", 0)
	}

	if flag.NArg() == 0 {
		if err := pipe(os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	exitCode := 0
	for _, path := range flag.Args() {
		if err := processFile(path, vlog); err != nil {
			exitCode = 1
			if !*quiet {
				log.Print(err)
			}
		}
	}
	os.Exit(exitCode)
}

// pipe runs one session from r to w through a buffered writer.
func pipe(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if *decompress {
		lr, err := lzss.NewReader(bufio.NewReader(r))
		if err != nil {
			return err
		}
		if _, err = io.Copy(bw, lr); err != nil {
			return err
		}
		return bw.Flush()
	}
	lw, err := lzss.NewWriter(bw)
	if err != nil {
		return err
	}
	if _, err = io.Copy(lw, bufio.NewReader(r)); err != nil {
		return err
	}
	if err = lw.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

// targetName derives the output file name from the input path, adding
// the suffix for compression and stripping it for decompression.
func targetName(path string) (string, error) {
	if !*decompress {
		return path + *suffix, nil
	}
	if !strings.HasSuffix(path, *suffix) {
		return "", fmt.Errorf("%s: unknown suffix, ignored", path)
	}
	target := path[:len(path)-len(*suffix)]
	if target == "" {
		return "", fmt.Errorf("%s: no base name", path)
	}
	return target, nil
}

func processFile(path string, vlog xlog.Logger) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	if *stdout {
		return pipe(in, os.Stdout)
	}

	target, err := targetName(path)
	if err != nil {
		return err
	}
	if _, err = os.Stat(target); err == nil && !*force {
		return fmt.Errorf("%s: file exists", target)
	}
	fi, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(target,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if err = pipe(in, out); err != nil {
		out.Close()
		os.Remove(target)
		return fmt.Errorf("%s: %v", path, err)
	}
	if err = out.Close(); err != nil {
		return err
	}
	xlog.Printf(vlog, "%s -> %s", path, target)
	if !*keep {
		in.Close()
		if err = os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
