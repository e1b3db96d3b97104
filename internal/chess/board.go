package chess

// Position is an immutable snapshot of a chess position.
// At most one bitboard has any given bit set; this is assumed, not enforced.
type Position struct {
	// One mask per coloured piece, indexed by Piece.Index().
	Bitboards [NumPieces]Bitboard

	// Who has the next move.
	ActiveColour Colour

	// Castling flags in FEN order.
	Castling CastlingRights

	// Square eligible for en-passant capture, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint8

	// The current move number.
	FullmoveNumber uint8
}

// Grid is an 8x8 view of a position indexed [rank][file].
type Grid [BoardSize][BoardSize]Piece

// EmptyPosition returns a position with no pieces, White to move, no castling
// rights, no en-passant target and move number 1.
func EmptyPosition() Position {
	return Position{
		ActiveColour:   White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// NewPosition returns the standard chess starting position.
func NewPosition() Position {
	p := EmptyPosition()
	p.Bitboards = [NumPieces]Bitboard{
		WhitePawn:   RankMask[1],
		BlackPawn:   RankMask[6],
		WhiteKnight: 0x0000000000000042,
		BlackKnight: 0x4200000000000000,
		WhiteBishop: 0x0000000000000024,
		BlackBishop: 0x2400000000000000,
		WhiteRook:   0x0000000000000081,
		BlackRook:   0x8100000000000000,
		WhiteQueen:  0x0000000000000010,
		BlackQueen:  0x1000000000000000,
		WhiteKing:   0x0000000000000008,
		BlackKing:   0x0800000000000000,
	}
	p.Castling = AllCastling
	return p
}

// Bitboard returns the occupancy mask of a piece.
func (p Position) Bitboard(piece Piece) Bitboard {
	return p.Bitboards[piece.Index()]
}

// PieceAt returns the piece on the given rank and grid file, or NoPiece.
// Bitboards are scanned in ascending index order and the first match wins.
// rank and file must be in 0..7; anything else panics.
func (p Position) PieceAt(rank, file int) Piece {
	mask := RankMask[rank] & FileMask[file]
	for i, bb := range p.Bitboards {
		if bb&mask != 0 {
			return Piece(i)
		}
	}
	return NoPiece
}

// Grid returns the piece on every square. It is recomputed on each call.
func (p Position) Grid() Grid {
	var g Grid
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			g[rank][file] = p.PieceAt(rank, file)
		}
	}
	return g
}

// Occupied returns the union of all piece bitboards.
func (p Position) Occupied() Bitboard {
	var occ Bitboard
	for _, bb := range p.Bitboards {
		occ |= bb
	}
	return occ
}

// ColourOccupancy returns the union of the bitboards of one colour.
func (p Position) ColourOccupancy(c Colour) Bitboard {
	var occ Bitboard
	for i := c.Index(); i < NumPieces; i += NumColours {
		occ |= p.Bitboards[i]
	}
	return occ
}

// EnPassantTarget returns the en-passant square and whether one is set.
func (p Position) EnPassantTarget() (Square, bool) {
	if !p.EnPassant.Valid() {
		return NoSquare, false
	}
	return p.EnPassant, true
}
