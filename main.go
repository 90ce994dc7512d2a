package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/spf13/pflag"

	"github.com/skink-lang/skink/config"
	"github.com/skink-lang/skink/driver"
	"github.com/skink-lang/skink/interp"
	"github.com/skink-lang/skink/lexer"
)

const version = "0.1.0"

func main() {
	flagVersion := pflag.BoolP("version", "v", false, "Print the skink version and exit.")
	pflag.Parse()

	if *flagVersion {
		fmt.Println("skink " + version)

		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if args := pflag.Args(); len(args) > 0 {
		if err := RunFile(args[0]); err != nil {
			// Scan errors were already rendered line by line by the driver.
			var scanErr lexer.Error
			if !errors.As(err, &scanErr) {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(1)
		}
	} else {
		if err := RunPrompt(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func newRunner() *driver.Runner {
	r := driver.NewRunner()
	r.AddPass(interp.New(os.Stdout))

	return r
}

func RunFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return newRunner().RunSource(string(bytes))
}

func RunPrompt(cfg config.Config) error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryFile), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	r := newRunner()
	for {
		input, err := line.Prompt(cfg.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}

			return err
		}
		line.AppendHistory(input)
		// Each prompt line is scanned as an independent source, so line
		// numbers in diagnostics restart at 1.
		if err := r.RunSource(input); err != nil {
			var scanErr lexer.Error
			if !errors.As(err, &scanErr) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
