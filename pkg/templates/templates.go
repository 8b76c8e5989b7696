// Package templates provides the embedded default glyph template for
// SVG diagram rendering.
//
// The template is embedded directly into the binary using go:embed,
// so diagrams can be produced without any external files. A custom
// template may still be supplied on the command line as long as it
// honors the same symbol ids and geometry.
package templates

import _ "embed"

// Board is the default glyph template. It defines one symbol per piece
// (whiteking through blackpawn), the two square colors, the board
// frame, the coordinate labels and the side-to-move marker, all sized
// on a 72x72 grid.

//go:embed board.svg
var board []byte

// Board returns the default glyph template data.
func Board() []byte {
	return board
}
