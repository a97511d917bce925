// diff is a small CLI to manually run the diffing implementations used for benchmarking.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/txtar"

	"brieftools.io/diff/internal/benchmarks"
)

type config struct {
	impl            string
	base, candidate string
	txtar           string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.impl, "impl", "brieftools", "implementation to use for diffing")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: diff <base> <candidate>\n")
			os.Exit(1)
		}
		cfg.base = flag.CommandLine.Arg(0)
		cfg.candidate = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var impl *benchmarks.Impl
	for _, l := range benchmarks.Impls {
		if l.Name == cfg.impl {
			impl = &l
		}
	}
	if impl == nil {
		return fmt.Errorf("impl not found %q", cfg.impl)
	}

	var base, candidate string
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "base":
				base = string(f.Data)
			case "candidate":
				candidate = string(f.Data)
			}
		}
	} else {
		x, err := os.ReadFile(cfg.base)
		if err != nil {
			return err
		}
		y, err := os.ReadFile(cfg.candidate)
		if err != nil {
			return err
		}
		base, candidate = string(x), string(y)
	}

	out := impl.Diff(base, candidate)
	fmt.Println(out)
	return nil
}
