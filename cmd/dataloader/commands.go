package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/born-ml/dataloader/internal/config"
	"github.com/born-ml/dataloader/internal/dataloader"
	"github.com/born-ml/dataloader/internal/recordfile"
	"github.com/born-ml/dataloader/internal/report"
	"github.com/born-ml/dataloader/internal/tensor"
	"github.com/born-ml/dataloader/internal/textdata"
)

func cmdGen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "output record file")
	n := fs.Int("n", 1000, "number of samples")
	shapeText := fs.String("shape", "28,28", "per-field shape, comma separated")
	seed := fs.Uint64("seed", 1, "generator seed")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *out == "" {
		fmt.Fprintln(stderr, "gen: -out is required")
		return errUsage
	}

	shape, err := tensor.ParseShape(*shapeText)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	samples, err := recordfile.Synthetic(*n, shape, *seed)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	if err := recordfile.Save(*out, samples); err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "wrote %d samples of shape %v to %s\n", len(samples), shape, *out)
	return nil
}

func cmdRun(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML run configuration")
	quiet := fs.Bool("quiet", false, "hide the progress bar")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *cfgPath == "" {
		fmt.Fprintln(stderr, "run: -config is required")
		return errUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.Log.Level)

	ds, err := recordfile.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", slog.String("path", cfg.Dataset), slog.Int("samples", ds.Len()))

	l, err := dataloader.New(ds, dataloader.Options[dataloader.Sample, dataloader.SampleBatch]{
		BatchSize: cfg.Loader.BatchSize,
		Shuffle:   cfg.Loader.Shuffle,
		Seed:      cfg.Loader.Seed,
		LastBatch: cfg.Loader.LastBatch,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		stats := report.EpochStats{Epoch: epoch}

		bar := pb.New(l.Len())
		if *quiet {
			bar.SetWriter(io.Discard)
		} else {
			bar.SetWriter(stderr)
		}
		bar.Start()
		for batch, err := range l.All() {
			if err != nil {
				bar.Finish()
				return fmt.Errorf("epoch %d: %w", epoch, err)
			}
			stats.Observe(batch)
			bar.Increment()
		}
		bar.Finish()

		keys, rows := stats.Summary().Rows()
		fmt.Fprint(stdout, report.Table(fmt.Sprintf("Epoch %d", epoch), keys, rows))
	}
	return nil
}

func cmdTokens(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "text file, one sample per line")
	encoding := fs.String("encoding", "cl100k_base", "tiktoken encoding")
	batchSize := fs.Int("batch", 8, "batch size")
	maxLen := fs.Int("max-len", 0, "truncate sequences to this many tokens (0 = no limit)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *in == "" {
		fmt.Fprintln(stderr, "tokens: -in is required")
		return errUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(stderr, level)

	//nolint:gosec // G304: path is supplied by the user
	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}
	lines, err := textdata.ReadLines(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}

	enc, err := textdata.NewTikToken(*encoding)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}
	ds, err := textdata.NewTokenDataset(lines, enc, *maxLen)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}

	l, err := dataloader.New(ds, dataloader.Options[textdata.TokenRecord, textdata.TokenBatch]{
		BatchSize: *batchSize,
		Collate:   textdata.PadCollate(0),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}

	i := 0
	for batch, err := range l.All() {
		if err != nil {
			return fmt.Errorf("tokens: %w", err)
		}
		fmt.Fprintf(stdout, "batch %d: ids %v lengths %v\n", i, batch.IDs.Shape(), batch.Lengths)
		i++
	}
	return nil
}
