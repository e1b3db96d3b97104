// fenconv reads FEN strings, one per line, and writes them back canonically
// as FEN, JSON or board diagrams.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/lgbarn/fenboard/internal/config"
	"github.com/lgbarn/fenboard/internal/hashing"
	"github.com/lgbarn/fenboard/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenconv version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run())
}

// run does the conversion and returns the exit status. Deferred cleanup
// runs before main calls os.Exit.
func run() int {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if *profileMode != "" {
		mode, err := profileOption(*profileMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	matcher, err := setupMatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx := &ProcessingContext{
		cfg:     cfg,
		matcher: matcher,
		writer:  output.NewWriter(cfg.OutputFile, cfg.Format),
	}
	if cfg.Duplicate.Suppress {
		ctx.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.Capacity)
	}

	stats := processAllInputs(ctx, flag.Args())

	if cfg.Verbosity > 0 {
		reportStatistics(ctx, stats)
	}

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// reportStatistics prints the final statistics to the log file.
func reportStatistics(ctx *ProcessingContext, stats Stats) {
	if ctx.matcher != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "%d position(s) did not match the filters.\n", stats.Filtered)
	}
	if ctx.detector != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "%d position(s) output, %d duplicate(s), %d rejected, out of %d.\n",
			stats.Output, stats.Duplicates, stats.Failed, stats.Total)
	} else {
		fmt.Fprintf(ctx.cfg.LogFile, "%d position(s) output, %d rejected, out of %d.\n",
			stats.Output, stats.Failed, stats.Total)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenconv [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Reads one FEN per line from the input files or stdin.\n")
	fmt.Fprintf(os.Stderr, "Blank lines and lines starting with # are skipped.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
