package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

var ErrIO = errors.New("input error")

// Aggregate partitions data into one range per worker, parses the ranges
// concurrently and merges the local tables. Keys of the returned table
// point into data.
func Aggregate(ctx context.Context, data []byte, workers int) (*Table, error) {
	ranges, err := Partition(data, workers)
	if err != nil {
		return nil, err
	}

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(len(ranges))

	locals := make([]*Table, len(ranges))
	for i, r := range ranges {
		eg.Go(func() error {
			table, err := ParseChunk(ectx, data, r)
			if err != nil {
				return err
			}
			locals[i] = table
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return Merge(locals), nil
}

// Solve aggregates the file named in cfg and writes the report to w.
// Nothing is written to w unless the whole input parsed.
func Solve(ctx context.Context, cfg Config, w io.Writer, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	begin := time.Now()
	in, err := OpenInput(cfg.Path)
	if err != nil {
		return err
	}
	defer in.Close()
	data := in.Bytes()
	logger.Printf("loaded %s (%s) in %v", cfg.Path, humanize.Bytes(uint64(len(data))), time.Since(begin))

	begin = time.Now()
	table, err := Aggregate(ctx, data, cfg.Workers)
	if err != nil {
		return fmt.Errorf("failed to aggregate %s: %w", cfg.Path, err)
	}
	logger.Printf("aggregated %s keys with %d workers in %v",
		humanize.Comma(int64(table.Len())), cfg.Workers, time.Since(begin))

	var out bytes.Buffer
	if err := Report(&out, table); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
