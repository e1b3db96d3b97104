// Package chess provides the bitboard position model and its core types.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Index returns the array index of the colour (White 0, Black 1).
func (c Colour) Index() int {
	return int(c)
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents an uncoloured chess piece type.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase FEN letter of a piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece. Its value is the bitboard index 2*kind + colour.
type Piece uint8

const (
	WhitePawn Piece = iota
	BlackPawn
	WhiteKnight
	BlackKnight
	WhiteBishop
	BlackBishop
	WhiteRook
	BlackRook
	WhiteQueen
	BlackQueen
	WhiteKing
	BlackKing
	NoPiece
)

// NumPieces is the number of coloured piece variants, one bitboard each.
const NumPieces = int(NoPiece)

// MakePiece combines a kind and a colour into a coloured piece.
func MakePiece(kind PieceKind, colour Colour) Piece {
	return Piece(2*int(kind) + colour.Index())
}

// PieceFromIndex returns the piece stored at bitboard index i.
// The second result is false if i is outside 0..11.
func PieceFromIndex(i int) (Piece, bool) {
	if i < 0 || i >= NumPieces {
		return NoPiece, false
	}
	return Piece(i), true
}

// PieceFromLetter converts a FEN letter to a piece.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return MakePiece(Pawn, colour), true
	case 'N':
		return MakePiece(Knight, colour), true
	case 'B':
		return MakePiece(Bishop, colour), true
	case 'R':
		return MakePiece(Rook, colour), true
	case 'Q':
		return MakePiece(Queen, colour), true
	case 'K':
		return MakePiece(King, colour), true
	default:
		return NoPiece, false
	}
}

// Index returns the bitboard index of the piece.
func (p Piece) Index() int {
	return int(p)
}

// Kind returns the uncoloured piece kind.
func (p Piece) Kind() PieceKind {
	return PieceKind(p >> 1)
}

// Colour returns the colour of the piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Letter returns the FEN letter, uppercase for White and lowercase for Black.
func (p Piece) Letter() byte {
	if p >= NoPiece {
		return '?'
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p >= NoPiece {
		return "NoPiece"
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// CastlingRights holds the four castling flags in FEN order.
type CastlingRights [4]bool

// Indices into CastlingRights.
const (
	WhiteKingSide = iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// AllCastling grants every castling right.
var AllCastling = CastlingRights{true, true, true, true}

// Any reports whether at least one right is set.
func (cr CastlingRights) Any() bool {
	return cr[WhiteKingSide] || cr[WhiteQueenSide] || cr[BlackKingSide] || cr[BlackQueenSide]
}
