package fen

import (
	"fmt"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/errors"
)

// squareLetters is indexed by square / 8.
const squareLetters = "abcdefgh"

// FormatSquare encodes a square as a letter chosen by sq/8 followed by the
// 1-based digit sq%8 + 1.
func FormatSquare(sq chess.Square) string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{squareLetters[sq/8], byte('1' + sq%8)})
}

// ParseSquare decodes a two-character square token written by FormatSquare.
// The letter a..h selects sq/8 and the digit 1..8 selects sq%8 + 1.
func ParseSquare(token string) (chess.Square, error) {
	if len(token) != 2 {
		return chess.NoSquare, fmt.Errorf("%q: want 2 characters: %w", token, errors.ErrMalformedSquare)
	}
	letter, digit := token[0], token[1]
	if letter < 'a' || letter > 'h' {
		return chess.NoSquare, fmt.Errorf("%q: letter must be a-h: %w", token, errors.ErrMalformedSquare)
	}
	if digit < '1' || digit > '8' {
		return chess.NoSquare, fmt.Errorf("%q: digit must be 1-8: %w", token, errors.ErrMalformedSquare)
	}
	return chess.Square(int(letter-'a')*8 + int(digit-'1')), nil
}
