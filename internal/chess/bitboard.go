package chess

import "math/bits"

// Bitboard is a 64-bit occupancy mask, one bit per square.
// Bit 0 is h1 and bit 63 is a8: within a rank the files are stored mirrored.
type Bitboard uint64

// BoardSize is the number of ranks (and files) on the board.
const BoardSize = 8

// RankMask holds one mask per rank, rank 0 being rank "1".
var RankMask = [BoardSize]Bitboard{
	0x00000000000000FF,
	0x000000000000FF00,
	0x0000000000FF0000,
	0x00000000FF000000,
	0x000000FF00000000,
	0x0000FF0000000000,
	0x00FF000000000000,
	0xFF00000000000000,
}

// FileMask holds one mask per grid file, file 0 being the "a" side.
var FileMask = [BoardSize]Bitboard{
	0x8080808080808080,
	0x4040404040404040,
	0x2020202020202020,
	0x1010101010101010,
	0x0808080808080808,
	0x0404040404040404,
	0x0202020202020202,
	0x0101010101010101,
}

// Square identifies one of the 64 cells as rank*8 + bit, where bit 0 is the "h" side.
type Square uint8

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = 64

// SquareAt returns the square at the given rank and grid file.
func SquareAt(rank, file int) Square {
	return Square(rank*BoardSize + (BoardSize - 1 - file))
}

// Rank returns the rank of the square (0 = rank "1").
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// File returns the grid file of the square (0 = the "a" side).
func (sq Square) File() int {
	return BoardSize - 1 - int(sq)%BoardSize
}

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool {
	return sq < NoSquare
}

// SquareBB returns a bitboard with only sq set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Has reports whether the bit for sq is set.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// With returns a copy of b with the bit for sq set.
func (b Bitboard) With(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Count returns the number of set bits.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}
