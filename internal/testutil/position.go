package testutil

import (
	"testing"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/fen"
)

// Positions used across package tests. Every entry is in canonical form, so
// formatting the parsed position must reproduce it byte for byte.
var CanonicalFENs = []string{
	fen.InitialFEN,
	fen.EmptyFEN,
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
	"r1b1kbnr/pppp1ppp/2n5/4P3/1q6/5N2/PPPBPPPP/RN1QKB1R b KQkq - 6 5",
	"8/8/8/8/8/8/8/4K3 w - - 0 1",
	"4k3/8/8/8/8/8/8/4K2R w K - 99 255",
}

// MustParsePosition parses a FEN string and calls t.Fatal on failure.
func MustParsePosition(t *testing.T, text string) chess.Position {
	t.Helper()
	pos, err := fen.Parse(text)
	if err != nil {
		t.Fatalf("failed to parse test FEN %q: %v", text, err)
	}
	return pos
}
