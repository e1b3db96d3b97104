package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/errors"
	"github.com/lgbarn/fenboard/internal/fen"
	"github.com/lgbarn/fenboard/internal/hashing"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN            string                  `json:"fen"`
	Bitboards      [chess.NumPieces]uint64 `json:"bitboards"`
	ActiveColour   string                  `json:"activeColour"` // "white" or "black"
	Castling       JSONCastling            `json:"castling"`
	EnPassant      string                  `json:"enPassant"` // square token or "-"
	HalfmoveClock  uint8                   `json:"halfmoveClock"`
	FullmoveNumber uint8                   `json:"fullmoveNumber"`
	Grid           []string                `json:"grid,omitempty"` // rank 8 first
	Hash           string                  `json:"hash,omitempty"`
}

// JSONCastling represents the four castling flags.
type JSONCastling struct {
	WhiteKingSide  bool `json:"whiteKingSide"`
	WhiteQueenSide bool `json:"whiteQueenSide"`
	BlackKingSide  bool `json:"blackKingSide"`
	BlackQueenSide bool `json:"blackQueenSide"`
}

// PositionToJSON converts a position to JSON format.
func PositionToJSON(pos chess.Position) *JSONPosition {
	jp := &JSONPosition{
		FEN:            fen.Format(pos),
		ActiveColour:   strings.ToLower(pos.ActiveColour.String()),
		EnPassant:      fen.FormatSquare(pos.EnPassant),
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
		Castling: JSONCastling{
			WhiteKingSide:  pos.Castling[chess.WhiteKingSide],
			WhiteQueenSide: pos.Castling[chess.WhiteQueenSide],
			BlackKingSide:  pos.Castling[chess.BlackKingSide],
			BlackQueenSide: pos.Castling[chess.BlackQueenSide],
		},
		Grid: gridRows(pos),
		Hash: fmt.Sprintf("%016x", hashing.GenerateZobristHash(pos)),
	}
	for i, bb := range pos.Bitboards {
		jp.Bitboards[i] = uint64(bb)
	}
	return jp
}

// Position converts the JSON form back to a position. The bitboards are
// authoritative; FEN, Grid and Hash are ignored. Two pieces on one square
// are rejected.
func (jp *JSONPosition) Position() (chess.Position, error) {
	pos := chess.EmptyPosition()

	var seen chess.Bitboard
	for i, raw := range jp.Bitboards {
		bb := chess.Bitboard(raw)
		if seen&bb != 0 {
			piece, _ := chess.PieceFromIndex(i)
			return chess.Position{}, errors.Wrapf(errors.ErrMalformedPlacement, "bitboard %d (%s) overlaps another piece", i, piece)
		}
		seen |= bb
		pos.Bitboards[i] = bb
	}

	switch jp.ActiveColour {
	case "white", "":
		pos.ActiveColour = chess.White
	case "black":
		pos.ActiveColour = chess.Black
	default:
		return chess.Position{}, errors.Wrapf(errors.ErrMalformedColour, "activeColour %q", jp.ActiveColour)
	}

	pos.Castling = chess.CastlingRights{
		jp.Castling.WhiteKingSide,
		jp.Castling.WhiteQueenSide,
		jp.Castling.BlackKingSide,
		jp.Castling.BlackQueenSide,
	}

	if jp.EnPassant != "" && jp.EnPassant != "-" {
		sq, err := fen.ParseSquare(jp.EnPassant)
		if err != nil {
			return chess.Position{}, errors.Wrap(err, "enPassant")
		}
		pos.EnPassant = sq
	}

	pos.HalfmoveClock = jp.HalfmoveClock
	pos.FullmoveNumber = jp.FullmoveNumber
	return pos, nil
}

// gridRows renders each rank as eight letters, '.' for empty, rank 8 first.
func gridRows(pos chess.Position) []string {
	grid := pos.Grid()
	rows := make([]string, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		row := make([]byte, chess.BoardSize)
		for file, piece := range grid[rank] {
			row[file] = cellLetter(piece)
		}
		rows = append(rows, string(row))
	}
	return rows
}

func cellLetter(p chess.Piece) byte {
	if p == chess.NoPiece {
		return '.'
	}
	return p.Letter()
}
