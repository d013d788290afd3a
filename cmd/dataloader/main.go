// Package main provides the dataloader CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const version = "v0.1.0-dev"

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "Born dataloader %s\n", version)
		return nil
	case "gen":
		return cmdGen(args[1:], stdout, stderr)
	case "run":
		return cmdRun(args[1:], stdout, stderr)
	case "tokens":
		return cmdTokens(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return errUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Born dataloader - mini-batch iteration for training pipelines")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  gen        Write a synthetic record file")
	fmt.Fprintln(w, "  run        Iterate a record file for N epochs (-config run.yaml)")
	fmt.Fprintln(w, "  tokens     Tokenize a text file and print padded batch shapes")
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
