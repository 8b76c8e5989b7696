// Package fen parses the piece-placement and active-color fields of
// FEN (Forsyth–Edwards Notation) strings.
//
// Only the first two fields matter for drawing a diagram; castling
// rights, en passant squares, and move counters are accepted and
// ignored. The parser is deliberately lenient about rank separators:
// the running square count alone decides rank boundaries, so a missing
// or misplaced '/' is not an error.
package fen

import "fmt"

// ExcerptLength bounds how much of an input line is inspected. It
// accommodates the longest useful prefix: 64 fillable squares, 7 rank
// separators, one blank, and the side to move.
const ExcerptLength = 75

// Color identifies the side to move.
type Color int

const (
	White Color = iota
	Black
)

// String returns the lowercase color name used as an SVG fill value.
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Piece is one square occupant. The zero value is an empty square.
type Piece int

const (
	NoPiece Piece = iota
	WhiteKing
	WhiteQueen
	WhiteRook
	WhiteBishop
	WhiteKnight
	WhitePawn
	BlackKing
	BlackQueen
	BlackRook
	BlackBishop
	BlackKnight
	BlackPawn
)

// pieceFromByte converts a FEN placement character to its Piece.
// It returns NoPiece for anything that is not one of KQRBNPkqrbnp.
func pieceFromByte(ch byte) Piece {
	switch ch {
	case 'K':
		return WhiteKing
	case 'Q':
		return WhiteQueen
	case 'R':
		return WhiteRook
	case 'B':
		return WhiteBishop
	case 'N':
		return WhiteKnight
	case 'P':
		return WhitePawn
	case 'k':
		return BlackKing
	case 'q':
		return BlackQueen
	case 'r':
		return BlackRook
	case 'b':
		return BlackBishop
	case 'n':
		return BlackKnight
	case 'p':
		return BlackPawn
	default:
		return NoPiece
	}
}

// Glyph returns the definitions-layer id for the piece, e.g. "whiteking".
// It returns "" for NoPiece.
func (p Piece) Glyph() string {
	switch p {
	case WhiteKing:
		return "whiteking"
	case WhiteQueen:
		return "whitequeen"
	case WhiteRook:
		return "whiterook"
	case WhiteBishop:
		return "whitebishop"
	case WhiteKnight:
		return "whiteknight"
	case WhitePawn:
		return "whitepawn"
	case BlackKing:
		return "blackking"
	case BlackQueen:
		return "blackqueen"
	case BlackRook:
		return "blackrook"
	case BlackBishop:
		return "blackbishop"
	case BlackKnight:
		return "blackknight"
	case BlackPawn:
		return "blackpawn"
	}
	return ""
}

// Position is a parsed FEN excerpt: 64 square occupants in field scan
// order (a8 first, h1 last) plus the side to move.
type Position struct {
	Squares [64]Piece
	Active  Color
}

// ParseError identifies the byte that broke a placement field and its
// index within the scanned line.
type ParseError struct {
	Line  string // the offending input line
	Char  byte   // the unexpected character
	Index int    // byte offset of Char within Line
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected character %q at index %d in piece placement of %q", e.Char, e.Index, e.Line)
}

// Excerpt truncates an input line to the leading ExcerptLength bytes.
func Excerpt(line string) string {
	if len(line) > ExcerptLength {
		return line[:ExcerptLength]
	}
	return line
}

// Parse scans the placement field of line and the active-color token
// that may follow it.
//
// A digit 1-8 skips that many empty squares, a piece letter fills the
// current square, and '/' is ignored. Any other character, or a square
// count past 64, fails with a *ParseError. Fields after the active
// color are ignored, and a missing active color means white to move.
// A field accounting for fewer than 64 squares parses successfully;
// the remaining squares stay empty.
func Parse(line string) (Position, error) {
	var pos Position

	i := 0
	square := 0
	for ; i < len(line) && !isBlank(line[i]); i++ {
		ch := line[i]
		switch {
		case ch >= '1' && ch <= '8':
			square += int(ch - '0')
			if square > 64 {
				return Position{}, &ParseError{Line: line, Char: ch, Index: i}
			}
		case ch == '/':
			// Rank separator. The square cursor alone determines rank
			// boundaries, so nothing to do here.
		default:
			p := pieceFromByte(ch)
			if p == NoPiece || square >= 64 {
				return Position{}, &ParseError{Line: line, Char: ch, Index: i}
			}
			pos.Squares[square] = p
			square++
		}
	}

	for i < len(line) && isBlank(line[i]) {
		i++
	}
	if i < len(line) && line[i] == 'b' {
		pos.Active = Black
	}
	return pos, nil
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t'
}
