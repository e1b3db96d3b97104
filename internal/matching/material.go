package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/errors"
)

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	counts     [chess.NumPieces]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return fmt.Errorf("material pattern %q: more than one ':': %w", pattern, errors.ErrInvalidConfig)
	}
	for side, part := range parts {
		want := chess.Colour(side)
		for i := 0; i < len(part); i++ {
			piece, ok := chess.PieceFromLetter(part[i])
			if !ok || piece.Colour() != want {
				return fmt.Errorf("material pattern %q: unexpected %q for %s: %w",
					pattern, part[i], want, errors.ErrInvalidConfig)
			}
			mm.counts[piece.Index()]++
		}
	}
	return nil
}

// Match implements PositionMatcher. Exact patterns require every piece count
// to be equal; otherwise the position needs at least the listed pieces.
func (mm *MaterialMatcher) Match(pos chess.Position) bool {
	for i, bb := range pos.Bitboards {
		have := bb.Count()
		if mm.exactMatch && have != mm.counts[i] {
			return false
		}
		if have < mm.counts[i] {
			return false
		}
	}
	return true
}

// Name implements PositionMatcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return fmt.Sprintf("MaterialMatcher(exact %s)", mm.pattern)
	}
	return fmt.Sprintf("MaterialMatcher(%s)", mm.pattern)
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
