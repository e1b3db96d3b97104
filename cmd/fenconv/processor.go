// processor.go - Line reading, parallel parsing and output
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/fenboard/internal/config"
	"github.com/lgbarn/fenboard/internal/fen"
	"github.com/lgbarn/fenboard/internal/hashing"
	"github.com/lgbarn/fenboard/internal/matching"
	"github.com/lgbarn/fenboard/internal/output"
	"github.com/lgbarn/fenboard/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg      *config.Config
	detector hashing.DuplicateChecker
	matcher  matching.PositionMatcher
	writer   output.PositionWriter
}

// Stats counts what happened to the input lines.
type Stats struct {
	Total      int
	Output     int
	Duplicates int
	Filtered   int
	Failed     int
}

func (s *Stats) add(other Stats) {
	s.Total += other.Total
	s.Output += other.Output
	s.Duplicates += other.Duplicates
	s.Filtered += other.Filtered
	s.Failed += other.Failed
}

// processAllInputs processes all input files, or stdin when none are given.
func processAllInputs(ctx *ProcessingContext, args []string) Stats {
	var stats Stats

	if len(args) == 0 {
		stats.add(processInput(ctx, os.Stdin, "stdin"))
		return stats
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(ctx.cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			stats.Failed++
			continue
		}
		stats.add(processInput(ctx, file, filename))
		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}
	return stats
}

// processInput parses every FEN line of r and writes the results in input order.
func processInput(ctx *ProcessingContext, r io.Reader, source string) Stats {
	var stats Stats

	items, err := readLines(r, source)
	if err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "Error reading %s: %v\n", source, err)
		stats.Failed++
	}

	results := worker.ProcessAll(items, parseFunc(ctx.cfg), worker.WithWorkers(ctx.cfg.Workers))
	for _, res := range results {
		stats.Total++
		if res.Error != nil {
			stats.Failed++
			if ctx.cfg.Verbosity > 1 {
				fmt.Fprintf(ctx.cfg.LogFile, "%s:%d: %v\n", res.Item.Source, res.Item.Line, res.Error)
			}
			continue
		}

		if ctx.matcher != nil && !ctx.matcher.Match(res.Position) {
			stats.Filtered++
			continue
		}

		if ctx.detector != nil && ctx.detector.CheckAndAdd(res.Position) {
			stats.Duplicates++
			continue
		}

		if err := ctx.writer.WritePosition(res.Position); err != nil {
			fmt.Fprintf(ctx.cfg.LogFile, "Error writing output: %v\n", err)
			stats.Failed++
			continue
		}
		stats.Output++
	}
	return stats
}

// readLines collects the FEN lines of r, skipping blank lines and # comments.
func readLines(r io.Reader, source string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Text:   strings.TrimSpace(line),
			Source: source,
			Line:   lineNo,
			Index:  len(items),
		})
	}
	return items, scanner.Err()
}

// parseFunc returns the worker function that parses one line.
func parseFunc(cfg *config.Config) worker.ProcessFunc {
	var opts []fen.Option
	if cfg.Lenient {
		opts = append(opts, fen.WithLenient())
	}
	return func(item worker.WorkItem) worker.ProcessResult {
		pos, err := fen.Parse(item.Text, opts...)
		return worker.ProcessResult{Item: item, Position: pos, Error: err}
	}
}
