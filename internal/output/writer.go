// Package output provides position output formatting as FEN, JSON and diagrams.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/config"
	"github.com/lgbarn/fenboard/internal/fen"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats.
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(pos chess.Position) error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, format config.OutputFormat) PositionWriter {
	switch format {
	case config.JSON:
		return NewJSONWriter(w)
	case config.Diagram:
		return NewDiagramWriter(w)
	default:
		return NewFENWriter(w)
	}
}

// FENWriter writes one canonical FEN per line.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WritePosition writes a position as a FEN line.
func (fw *FENWriter) WritePosition(pos chess.Position) error {
	_, err := fmt.Fprintln(fw.w, fen.Format(pos))
	return err
}

// JSONWriter writes one JSON object per line.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON lines writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// WritePosition writes a position as a single line of JSON.
func (jw *JSONWriter) WritePosition(pos chess.Position) error {
	return jw.enc.Encode(PositionToJSON(pos))
}

// DiagramWriter writes an 8x8 board diagram followed by the FEN.
type DiagramWriter struct {
	w io.Writer
}

// NewDiagramWriter creates a new diagram writer.
func NewDiagramWriter(w io.Writer) *DiagramWriter {
	return &DiagramWriter{w: w}
}

// WritePosition writes a position as a labelled diagram and a blank line.
func (dw *DiagramWriter) WritePosition(pos chess.Position) error {
	_, err := io.WriteString(dw.w, Diagram(pos)+"\n")
	return err
}

// Diagram renders the board with rank labels on the left and file labels
// below, rank 8 at the top, followed by the FEN on its own line.
func Diagram(pos chess.Position) string {
	var buf []byte
	for i, row := range gridRows(pos) {
		buf = append(buf, byte('8'-i), ' ')
		for file := 0; file < len(row); file++ {
			if file > 0 {
				buf = append(buf, ' ')
			}
			buf = append(buf, row[file])
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, "  a b c d e f g h\n"...)
	buf = append(buf, fen.Format(pos)...)
	buf = append(buf, '\n')
	return string(buf)
}
