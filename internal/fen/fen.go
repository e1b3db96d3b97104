// Package fen converts between chess.Position values and Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// EmptyFEN is the FEN string of a board with no pieces.
const EmptyFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

// Field indices of a FEN string.
const (
	FieldPlacement = iota
	FieldActiveColour
	FieldCastling
	FieldEnPassant
	FieldHalfmoveClock
	FieldFullmoveNumber
	NumFields
)

var fieldNames = [NumFields]string{
	"piece placement",
	"active colour",
	"castling availability",
	"en passant target",
	"half-move clock",
	"full-move number",
}

// Option configures Parse.
type Option func(*parser)

// WithLenient makes Parse tolerate malformed placement characters, unknown
// active colours, stray castling characters and unparsable en-passant targets
// instead of failing.
func WithLenient() Option {
	return func(p *parser) {
		p.lenient = true
	}
}

// parser holds the options of a single Parse call.
type parser struct {
	lenient bool
}

// Parse builds a position from a FEN string. Fields are separated by single
// ASCII spaces; fields after the sixth are ignored. On failure the zero
// Position and a *errors.FieldError are returned.
func Parse(text string, opts ...Option) (chess.Position, error) {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}

	fields := strings.Split(text, " ")
	if len(fields) < NumFields {
		return chess.Position{}, &errors.FieldError{
			Err:    errors.ErrMissingField,
			Field:  fieldNames[len(fields)],
			Index:  len(fields),
			Detail: fmt.Sprintf("got %d of %d", len(fields), NumFields),
		}
	}

	pos := chess.EmptyPosition()
	var err error

	if pos.Bitboards, err = p.parsePlacement(fields[FieldPlacement]); err != nil {
		return chess.Position{}, err
	}
	if pos.ActiveColour, err = p.parseActiveColour(fields[FieldActiveColour]); err != nil {
		return chess.Position{}, err
	}
	if pos.Castling, err = p.parseCastling(fields[FieldCastling]); err != nil {
		return chess.Position{}, err
	}
	if pos.EnPassant, err = p.parseEnPassant(fields[FieldEnPassant]); err != nil {
		return chess.Position{}, err
	}
	if pos.HalfmoveClock, err = parseCounter(fields, FieldHalfmoveClock); err != nil {
		return chess.Position{}, err
	}
	if pos.FullmoveNumber, err = parseCounter(fields, FieldFullmoveNumber); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustParse is like Parse but panics on error. Use it for literals known to be valid.
func MustParse(text string, opts ...Option) chess.Position {
	pos, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return pos
}

func placementError(detail, value string) error {
	return &errors.FieldError{
		Err:    errors.ErrMalformedPlacement,
		Field:  fieldNames[FieldPlacement],
		Index:  FieldPlacement,
		Value:  value,
		Detail: detail,
	}
}

// parsePlacement parses the piece placement field. Rank groups run from rank
// 8 down to rank 1. Squares that would fall off the board are never set.
func (p *parser) parsePlacement(placement string) ([chess.NumPieces]chess.Bitboard, error) {
	var bitboards [chess.NumPieces]chess.Bitboard

	groups := strings.Split(placement, "/")
	if !p.lenient && len(groups) != chess.BoardSize {
		return bitboards, placementError(fmt.Sprintf("got %d ranks", len(groups)), placement)
	}

	for g, group := range groups {
		if g >= chess.BoardSize {
			break
		}
		rank := chess.BoardSize - 1 - g
		file := 0

		for i := 0; i < len(group); i++ {
			c := group[i]
			switch {
			case c >= '0' && c <= '9':
				if !p.lenient && (c == '0' || c == '9') {
					return bitboards, placementError(fmt.Sprintf("rank %d: bad empty-square count", rank+1), string(c))
				}
				file += int(c - '0')
			default:
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					if p.lenient {
						continue
					}
					return bitboards, placementError(fmt.Sprintf("rank %d: invalid piece character", rank+1), string(c))
				}
				if file < chess.BoardSize {
					bitboards[piece.Index()] |= chess.SquareBB(chess.SquareAt(rank, file))
				} else if !p.lenient {
					return bitboards, placementError(fmt.Sprintf("rank %d: more than 8 squares", rank+1), group)
				}
				file++
			}
		}

		if !p.lenient && file != chess.BoardSize {
			return bitboards, placementError(fmt.Sprintf("rank %d: got %d squares", rank+1, file), group)
		}
	}
	return bitboards, nil
}

// parseActiveColour parses the side to move field.
func (p *parser) parseActiveColour(field string) (chess.Colour, error) {
	switch {
	case field == "w":
		return chess.White, nil
	case field == "b" || p.lenient:
		return chess.Black, nil
	default:
		return chess.White, &errors.FieldError{
			Err:   errors.ErrMalformedColour,
			Field: fieldNames[FieldActiveColour],
			Index: FieldActiveColour,
			Value: field,
		}
	}
}

// castlingLetters is ordered like chess.CastlingRights.
const castlingLetters = "KQkq"

// parseCastling parses the castling availability field.
func (p *parser) parseCastling(field string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights

	if p.lenient {
		for i := range rights {
			rights[i] = strings.IndexByte(field, castlingLetters[i]) >= 0
		}
		return rights, nil
	}

	if field == "-" {
		return rights, nil
	}
	if field == "" {
		return rights, &errors.FieldError{
			Err:   errors.ErrMalformedCastling,
			Field: fieldNames[FieldCastling],
			Index: FieldCastling,
		}
	}
	for i := 0; i < len(field); i++ {
		idx := strings.IndexByte(castlingLetters, field[i])
		if idx < 0 {
			return chess.CastlingRights{}, &errors.FieldError{
				Err:   errors.ErrMalformedCastling,
				Field: fieldNames[FieldCastling],
				Index: FieldCastling,
				Value: field,
			}
		}
		rights[idx] = true
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func (p *parser) parseEnPassant(field string) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, err := ParseSquare(field)
	if err != nil {
		if p.lenient {
			return chess.NoSquare, nil
		}
		return chess.NoSquare, &errors.FieldError{
			Err:   errors.ErrMalformedEnPassant,
			Field: fieldNames[FieldEnPassant],
			Index: FieldEnPassant,
			Value: field,
			Cause: err,
		}
	}
	return sq, nil
}

// parseCounter parses a clock field as an unsigned 8-bit decimal.
func parseCounter(fields []string, index int) (uint8, error) {
	n, err := strconv.ParseUint(fields[index], 10, 8)
	if err != nil {
		return 0, &errors.FieldError{
			Err:   errors.ErrMalformedNumber,
			Field: fieldNames[index],
			Index: index,
			Value: fields[index],
			Cause: err,
		}
	}
	return uint8(n), nil
}

// Format converts a position to a FEN string. It never fails.
func Format(pos chess.Position) string {
	var sb strings.Builder

	writePlacement(&sb, pos)
	sb.WriteByte(' ')
	writeActiveColour(&sb, pos)
	sb.WriteByte(' ')
	writeCastling(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(FormatSquare(pos.EnPassant))
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePlacement writes the piece placement, top rank first, in grid file order.
func writePlacement(sb *strings.Builder, pos chess.Position) {
	grid := pos.Grid()
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for _, piece := range grid[rank] {
			if piece == chess.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeActiveColour writes the side to move.
func writeActiveColour(sb *strings.Builder, pos chess.Position) {
	if pos.ActiveColour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastling writes K for even flags and Q for odd ones, lower-cased for
// Black, or "-" when no flag is set.
func writeCastling(sb *strings.Builder, pos chess.Position) {
	if !pos.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	for i, ok := range pos.Castling {
		if !ok {
			continue
		}
		c := byte('K')
		if i%2 == 1 {
			c = 'Q'
		}
		if i >= 2 {
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
}
