// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/config"
	"github.com/lgbarn/fenboard/internal/errors"
	"github.com/lgbarn/fenboard/internal/matching"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output one JSON object per position")
	gridOutput   = flag.Bool("grid", false, "Output a board diagram per position")

	// Parsing
	lenient = flag.Bool("lenient", false, "Accept malformed fields the way permissive FEN readers do")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also match the move clocks")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")

	// Filtering
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")
	sideToMove         = flag.String("side", "", "Only positions with this side to move: w or b")

	// Parallelism
	workers = flag.Int("workers", 1, "Number of parsing workers")

	// Logging and info
	logFile     = flag.String("l", "", "Write diagnostics to this file")
	quiet       = flag.Bool("q", false, "Quiet mode (no summary)")
	verbose     = flag.Bool("v", false, "Report every rejected line")
	profileMode = flag.String("profile", "", "Write a profile to the current directory: cpu or mem")
	help        = flag.Bool("h", false, "Show help")
	version     = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if *jsonOutput && *gridOutput {
		return errors.Wrap(errors.ErrInvalidConfig, "-J and -grid are mutually exclusive")
	}
	switch {
	case *jsonOutput:
		cfg.Format = config.JSON
	case *gridOutput:
		cfg.Format = config.Diagram
	}

	cfg.Lenient = *lenient
	cfg.Workers = *workers

	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.Capacity = *duplicateCapacity

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}

	return cfg.Validate()
}

// profileOption maps the -profile value to a pkg/profile mode.
func profileOption(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem): %w", mode, errors.ErrInvalidConfig)
	}
}

// setupMatcher combines the filter flags into one matcher, or nil when no
// filter is set.
func setupMatcher() (matching.PositionMatcher, error) {
	composite := matching.NewCompositeMatcher(matching.MatchAll)

	if *materialMatch != "" {
		mm, err := matching.NewMaterialMatcher(*materialMatch, false)
		if err != nil {
			return nil, err
		}
		composite.Add(mm)
	}
	if *materialMatchExact != "" {
		mm, err := matching.NewMaterialMatcher(*materialMatchExact, true)
		if err != nil {
			return nil, err
		}
		composite.Add(mm)
	}

	switch *sideToMove {
	case "":
	case "w":
		composite.Add(matching.SideToMoveMatcher{Colour: chess.White})
	case "b":
		composite.Add(matching.SideToMoveMatcher{Colour: chess.Black})
	default:
		return nil, fmt.Errorf("-side must be w or b, got %q: %w", *sideToMove, errors.ErrInvalidConfig)
	}

	if composite.Len() == 0 {
		return nil, nil
	}
	return composite, nil
}
