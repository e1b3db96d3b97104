package hashing

import "github.com/lgbarn/fenboard/internal/chess"

// Zobrist keys, generated from a fixed seed so hashes are stable across runs.
var (
	zobristPiece       [chess.NumPieces][64]uint64
	zobristCastling    [4]uint64
	zobristEnPassant   [64]uint64
	zobristBlackToMove uint64
)

func init() {
	rng := prng{state: 0x98F107A2BEEF1234}

	for piece := range zobristPiece {
		for sq := range zobristPiece[piece] {
			zobristPiece[piece][sq] = rng.next()
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for sq := range zobristEnPassant {
		zobristEnPassant[sq] = rng.next()
	}
	zobristBlackToMove = rng.next()
}

// prng is a xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// GenerateZobristHash hashes placement, side to move, castling rights and the
// en-passant target. The move clocks are not part of the hash.
func GenerateZobristHash(pos chess.Position) uint64 {
	var hash uint64

	for piece, bb := range pos.Bitboards {
		for sq := chess.Square(0); sq < chess.NoSquare; sq++ {
			if bb.Has(sq) {
				hash ^= zobristPiece[piece][sq]
			}
		}
	}
	for i, ok := range pos.Castling {
		if ok {
			hash ^= zobristCastling[i]
		}
	}
	if sq, ok := pos.EnPassantTarget(); ok {
		hash ^= zobristEnPassant[sq]
	}
	if pos.ActiveColour == chess.Black {
		hash ^= zobristBlackToMove
	}
	return hash
}
