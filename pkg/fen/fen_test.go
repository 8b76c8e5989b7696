package fen

import (
	"errors"
	"strings"
	"testing"
)

const startPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestParseStartPosition(t *testing.T) {
	pos, err := Parse(startPos)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", startPos, err)
	}

	if pos.Active != White {
		t.Errorf("Active = %v, want White", pos.Active)
	}
	if got := pos.Squares[0]; got != BlackRook {
		t.Errorf("Squares[0] = %v, want BlackRook (a8)", got)
	}
	if got := pos.Squares[4]; got != BlackKing {
		t.Errorf("Squares[4] = %v, want BlackKing (e8)", got)
	}
	if got := pos.Squares[60]; got != WhiteKing {
		t.Errorf("Squares[60] = %v, want WhiteKing (e1)", got)
	}
	if got := pos.Squares[63]; got != WhiteRook {
		t.Errorf("Squares[63] = %v, want WhiteRook (h1)", got)
	}
	for i := 16; i < 48; i++ {
		if pos.Squares[i] != NoPiece {
			t.Fatalf("Squares[%d] = %v, want NoPiece", i, pos.Squares[i])
		}
	}
}

func TestParseActiveColor(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Color
	}{
		{"explicit white", "8/8/8/8/8/8/8/8 w - - 0 1", White},
		{"explicit black", "8/8/8/8/8/8/8/8 b - - 0 1", Black},
		{"missing defaults to white", "8/8/8/8/8/8/8/8", White},
		{"placement only with trailing space", "8/8/8/8/8/8/8/8 ", White},
		{"extra blanks before token", "8/8/8/8/8/8/8/8   b", Black},
		{"trailing garbage ignored", "4k3/8/8/8/8/8/8/4K3 b KQkq e3 42 99 junk", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.line, err)
			}
			if pos.Active != tt.want {
				t.Errorf("Active = %v, want %v", pos.Active, tt.want)
			}
		})
	}
}

func TestParseLenientSeparators(t *testing.T) {
	// Rank boundaries come from the square cursor, so mangled or
	// missing separators still parse.
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnrpppppppp8888PPPPPPPPRNBQKBNR",
		"rnbqkbnr//pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR/",
	}

	want, err := Parse(tests[0])
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", tests[0], err)
	}
	for _, line := range tests[1:] {
		got, err := Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", line, err)
		}
		if got != want {
			t.Errorf("Parse(%q) differs from separator-correct parse", line)
		}
	}
}

func TestParseUnderfullField(t *testing.T) {
	pos, err := Parse("4k3")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if pos.Squares[4] != BlackKing {
		t.Errorf("Squares[4] = %v, want BlackKing", pos.Squares[4])
	}
	for i, p := range pos.Squares {
		if i != 4 && p != NoPiece {
			t.Fatalf("Squares[%d] = %v, want NoPiece", i, p)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantChar  byte
		wantIndex int
	}{
		{"unexpected letter", "4k2X/8/8/8/8/8/8/4K3 w - - 0 1", 'X', 4},
		{"digit nine", "9/8/8/8/8/8/8/8", '9', 0},
		{"digit overflow", "8/8/8/8/8/8/8/8/8", '8', 16},
		{"piece overflow", "8/8/8/8/8/8/8/8k", 'k', 15},
		{"punctuation", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ.BNR", '.', 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error = %v, want *ParseError", tt.line, err)
			}
			if perr.Char != tt.wantChar {
				t.Errorf("Char = %q, want %q", perr.Char, tt.wantChar)
			}
			if perr.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", perr.Index, tt.wantIndex)
			}
			if perr.Line != tt.line {
				t.Errorf("Line = %q, want %q", perr.Line, tt.line)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("4k2X/8")
	if err == nil {
		t.Fatal("Parse should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"X"`) || !strings.Contains(msg, "index 4") {
		t.Errorf("error message %q should name the character and its index", msg)
	}
}

func TestExcerpt(t *testing.T) {
	long := startPos + strings.Repeat("x", 200)
	got := Excerpt(long)
	if len(got) != ExcerptLength {
		t.Errorf("len(Excerpt(long)) = %d, want %d", len(got), ExcerptLength)
	}
	if !strings.HasPrefix(long, got) {
		t.Error("Excerpt should be a prefix of the input")
	}
	if short := "8/8 w"; Excerpt(short) != short {
		t.Errorf("Excerpt(%q) = %q, want unchanged", short, Excerpt(short))
	}
}

func TestPieceGlyphs(t *testing.T) {
	tests := []struct {
		piece Piece
		want  string
	}{
		{WhiteKing, "whiteking"},
		{WhiteQueen, "whitequeen"},
		{WhiteRook, "whiterook"},
		{WhiteBishop, "whitebishop"},
		{WhiteKnight, "whiteknight"},
		{WhitePawn, "whitepawn"},
		{BlackKing, "blackking"},
		{BlackQueen, "blackqueen"},
		{BlackRook, "blackrook"},
		{BlackBishop, "blackbishop"},
		{BlackKnight, "blackknight"},
		{BlackPawn, "blackpawn"},
		{NoPiece, ""},
	}

	for _, tt := range tests {
		if got := tt.piece.Glyph(); got != tt.want {
			t.Errorf("Glyph(%v) = %q, want %q", tt.piece, got, tt.want)
		}
	}
}
