package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/fen"
)

func mustParse(t *testing.T, text string) chess.Position {
	t.Helper()
	pos, err := fen.Parse(text)
	if err != nil {
		t.Fatalf("Failed to parse FEN %s: %v", text, err)
	}
	return pos
}

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(chess.NewPosition())
	hash2 := GenerateZobristHash(mustParse(t, fen.InitialFEN))

	if hash1 != hash2 {
		t.Errorf("Identical positions produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	base := GenerateZobristHash(chess.NewPosition())

	tests := []struct {
		name string
		fen  string
	}{
		{"pawn moved", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"},
		{"black to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"},
		{"castling lost", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kkq - 0 1"},
		{"en passant set", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateZobristHash(mustParse(t, tt.fen)); got == base {
				t.Error("Different positions produced the same hash")
			}
		})
	}
}

func TestZobristHashIgnoresClocks(t *testing.T) {
	a := mustParse(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	b := mustParse(t, "4k3/8/8/8/8/8/8/4K3 w - - 12 40")
	if GenerateZobristHash(a) != GenerateZobristHash(b) {
		t.Error("move clocks changed the hash")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	if detector.CheckAndAdd(chess.NewPosition()) {
		t.Error("First position should not be a duplicate")
	}
	if !detector.CheckAndAdd(mustParse(t, fen.InitialFEN)) {
		t.Error("Second identical position should be a duplicate")
	}
	if !detector.CheckAndAdd(mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 5 9")) {
		t.Error("Clock-only difference should be a duplicate without exact matching")
	}
	if detector.CheckAndAdd(mustParse(t, fen.EmptyFEN)) {
		t.Error("Different position should not be a duplicate")
	}

	if detector.DuplicateCount() != 2 {
		t.Errorf("DuplicateCount() = %d; want 2", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", detector.UniqueCount())
	}

	detector.Reset()
	if detector.DuplicateCount() != 0 || detector.UniqueCount() != 0 {
		t.Error("Reset() did not clear the detector")
	}
}

func TestDuplicateDetectorExactMatch(t *testing.T) {
	detector := NewDuplicateDetector(true, 0)
	detector.CheckAndAdd(mustParse(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1"))

	if detector.CheckAndAdd(mustParse(t, "4k3/8/8/8/8/8/8/4K3 w - - 3 1")) {
		t.Error("Exact matching should treat different clocks as distinct")
	}
	if !detector.CheckAndAdd(mustParse(t, "4k3/8/8/8/8/8/8/4K3 w - - 3 1")) {
		t.Error("Exact repeat should be a duplicate")
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 2)
	positions := []string{
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/3K4 w - - 0 1",
		"4k3/8/8/8/8/8/8/2K5 w - - 0 1",
	}
	for _, text := range positions {
		detector.CheckAndAdd(mustParse(t, text))
	}
	if !detector.IsFull() {
		t.Error("IsFull() = false after reaching capacity")
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", detector.UniqueCount())
	}
	// Stored positions are still detected once full.
	if !detector.CheckAndAdd(mustParse(t, positions[0])) {
		t.Error("stored position not detected once full")
	}
}

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	fens := []string{
		fen.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1",
	}
	positions := make([]chess.Position, len(fens))
	for i, text := range fens {
		positions[i] = mustParse(t, text)
	}

	var wg sync.WaitGroup
	for round := 0; round < 2; round++ {
		for i := range positions {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				detector.CheckAndAdd(positions[idx])
				_ = detector.IsFull()
			}(i)
		}
	}
	wg.Wait()

	if detector.DuplicateCount() != len(fens) {
		t.Errorf("Expected %d duplicates, got %d", len(fens), detector.DuplicateCount())
	}
	if detector.UniqueCount() != len(fens) {
		t.Errorf("Expected %d unique, got %d", len(fens), detector.UniqueCount())
	}
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	positions := map[string]string{
		"Initial": fen.InitialFEN,
		"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"Endgame": "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	}
	for name, text := range positions {
		b.Run(name, func(b *testing.B) {
			pos := fen.MustParse(text)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(pos)
			}
		})
	}
}
