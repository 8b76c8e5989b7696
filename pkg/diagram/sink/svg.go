package sink

import (
	"bytes"

	"github.com/napobear/FEN2SVG/pkg/diagram"
)

// Render assembles a complete SVG document from a fitted glyph
// template and the drawing instructions for one diagram. The board
// background is painted before the pieces so that glyphs land on top
// of their squares.
func Render(t *Template, board, pieces []diagram.Use) []byte {
	var buf bytes.Buffer
	for _, line := range t.lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	for _, u := range board {
		buf.WriteString(u.String())
		buf.WriteByte('\n')
	}
	for _, u := range pieces {
		buf.WriteString(u.String())
		buf.WriteByte('\n')
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
