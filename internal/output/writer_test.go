package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/config"
	fenerrors "github.com/lgbarn/fenboard/internal/errors"
	"github.com/lgbarn/fenboard/internal/fen"
	"github.com/lgbarn/fenboard/internal/testutil"
)

// TestFENWriter_WritePosition verifies FEN writer outputs one line per position
func TestFENWriter_WritePosition(t *testing.T) {
	var buf bytes.Buffer
	writer := NewFENWriter(&buf)

	if err := writer.WritePosition(chess.NewPosition()); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	if err := writer.WritePosition(chess.EmptyPosition()); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}

	want := fen.InitialFEN + "\n" + fen.EmptyFEN + "\n"
	testutil.AssertEqual(t, buf.String(), want)
}

// TestJSONWriter_WritePosition verifies JSON writer outputs JSON lines
func TestJSONWriter_WritePosition(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	for i := 0; i < 2; i++ {
		if err := writer.WritePosition(chess.NewPosition()); err != nil {
			t.Fatalf("WritePosition failed: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var jp JSONPosition
	if err := json.Unmarshal([]byte(lines[0]), &jp); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if jp.FEN != fen.InitialFEN {
		t.Errorf("FEN = %q, want %q", jp.FEN, fen.InitialFEN)
	}
	if jp.ActiveColour != "white" {
		t.Errorf("ActiveColour = %q, want white", jp.ActiveColour)
	}
	if !strings.Contains(lines[0], `"whiteKingSide":true`) {
		t.Errorf("missing castling flags in %s", lines[0])
	}
}

func TestDiagram(t *testing.T) {
	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
		fen.InitialFEN,
		"",
	}, "\n")

	testutil.AssertEqual(t, Diagram(chess.NewPosition()), want)

	var buf bytes.Buffer
	if err := NewDiagramWriter(&buf).WritePosition(chess.NewPosition()); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	testutil.AssertEqual(t, buf.String(), want+"\n")
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := NewWriter(&buf, config.FEN).(*FENWriter); !ok {
		t.Error("NewWriter(FEN) is not a *FENWriter")
	}
	if _, ok := NewWriter(&buf, config.JSON).(*JSONWriter); !ok {
		t.Error("NewWriter(JSON) is not a *JSONWriter")
	}
	if _, ok := NewWriter(&buf, config.Diagram).(*DiagramWriter); !ok {
		t.Error("NewWriter(Diagram) is not a *DiagramWriter")
	}
}

// TestJSONPosition_RoundTrip verifies the JSON form converts back to the same position
func TestJSONPosition_RoundTrip(t *testing.T) {
	for _, text := range testutil.CanonicalFENs {
		t.Run(text, func(t *testing.T) {
			pos := testutil.MustParsePosition(t, text)

			data, err := json.Marshal(PositionToJSON(pos))
			testutil.AssertNoError(t, err)

			var jp JSONPosition
			testutil.AssertNoError(t, json.Unmarshal(data, &jp))

			got, err := jp.Position()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, pos)
			testutil.AssertEqual(t, jp.FEN, text)
		})
	}
}

func TestJSONPosition_Grid(t *testing.T) {
	jp := PositionToJSON(fen.MustParse("8/8/8/8/8/8/8/K7 w - - 0 1"))
	testutil.AssertEqual(t, jp.Grid[7], "K.......")
	testutil.AssertEqual(t, jp.Bitboards[chess.WhiteKing.Index()], uint64(0x80))
	testutil.AssertEqual(t, len(jp.Hash), 16)
}

func TestJSONPosition_Errors(t *testing.T) {
	tests := []struct {
		name string
		jp   JSONPosition
		want error
	}{
		{
			name: "overlapping bitboards",
			jp: func() JSONPosition {
				var jp JSONPosition
				jp.Bitboards[chess.WhitePawn.Index()] = 0x1
				jp.Bitboards[chess.BlackRook.Index()] = 0x1
				return jp
			}(),
			want: fenerrors.ErrMalformedPlacement,
		},
		{
			name: "bad colour",
			jp:   JSONPosition{ActiveColour: "red"},
			want: fenerrors.ErrMalformedColour,
		},
		{
			name: "bad en passant",
			jp:   JSONPosition{EnPassant: "z9"},
			want: fenerrors.ErrMalformedSquare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := tt.jp.Position()
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertEqual(t, pos, chess.Position{})
		})
	}
}

func TestJSONPosition_Defaults(t *testing.T) {
	var jp JSONPosition
	pos, err := jp.Position()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.EnPassant, chess.NoSquare)
	testutil.AssertEqual(t, pos.ActiveColour, chess.White)
}
