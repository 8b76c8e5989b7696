// Package diagram turns parsed FEN positions into ordered sequences of
// SVG drawing instructions.
//
// Every pixel placement flows through the Config geometry methods, so
// the static board layer and the overlaid pieces always agree. The
// geometric constants match the conventions of the definitions
// template and must not change independently of it.
package diagram

import "github.com/napobear/FEN2SVG/pkg/fen"

// Template geometry conventions, in SVG user units.
const (
	SquareWidth  = 72
	SquareHeight = 72

	// BorderThickness is the frame drawn around the chessboard.
	BorderThickness = 2

	// CoordinateBandWidth is the vertical band holding rank labels;
	// CoordinateBandHeight the horizontal band holding file labels.
	CoordinateBandWidth  = 48
	CoordinateBandHeight = 48

	// MoveIndicatorWidth is the band right of the board holding the
	// side-to-move marker.
	MoveIndicatorWidth = 72
)

// Orientation selects which side's back rank is drawn at the bottom.
type Orientation int

const (
	WhiteAtBottom Orientation = iota
	BlackAtBottom
)

// String returns a short name for logging.
func (o Orientation) String() string {
	if o == BlackAtBottom {
		return "black-at-bottom"
	}
	return "white-at-bottom"
}

// Config is the immutable per-run render configuration: which optional
// features are drawn around the fixed 8x8 grid.
type Config struct {
	Border        bool
	Coordinates   bool
	MoveIndicator bool
	Rotate        bool
	FENNames      bool
}

// Width returns the total canvas width for this configuration.
func (c Config) Width() int {
	w := 8 * SquareWidth
	if c.Coordinates {
		w += CoordinateBandWidth
	}
	if c.Border {
		w += 2 * BorderThickness
	}
	if c.MoveIndicator {
		w += MoveIndicatorWidth
	}
	return w
}

// Height returns the total canvas height for this configuration.
func (c Config) Height() int {
	h := 8 * SquareHeight
	if c.Border {
		h += 2 * BorderThickness
	}
	if c.Coordinates {
		h += CoordinateBandHeight
	}
	return h
}

// boardOffset is the translation applied to the board grid by the
// enabled coordinate band and border.
func (c Config) boardOffset() (x, y int) {
	if c.Coordinates {
		x += CoordinateBandWidth
	}
	if c.Border {
		x += BorderThickness
		y += BorderThickness
	}
	return x, y
}

// SquareOrigin maps a file and rank (both 0-7, rank 0 being rank 1) to
// the pixel origin of that square. BlackAtBottom is the point
// reflection of WhiteAtBottom within the board area.
func (c Config) SquareOrigin(file, rank int, o Orientation) (x, y int) {
	if o == BlackAtBottom {
		file, rank = 7-file, 7-rank
	}
	tx, ty := c.boardOffset()
	return tx + file*SquareWidth, ty + (7-rank)*SquareHeight
}

// RankLabelOrigin returns the pixel origin of the i-th rank label from
// the top of the coordinate band. The border thickness offsets the
// label even when no border is drawn, matching the template layout.
func (c Config) RankLabelOrigin(i int) (x, y int) {
	return 0, BorderThickness + i*SquareHeight
}

// FileLabelOrigin returns the pixel origin of the i-th file label from
// the left of the bottom coordinate band.
func (c Config) FileLabelOrigin(i int) (x, y int) {
	return CoordinateBandWidth + BorderThickness + i*SquareWidth,
		8*SquareHeight + 2*BorderThickness
}

// BorderOrigin returns the pixel origin of the border frame.
func (c Config) BorderOrigin() (x, y int) {
	if c.Coordinates {
		return CoordinateBandWidth, 0
	}
	return 0, 0
}

// MoveIndicatorOrigin returns the pixel origin of the side-to-move
// marker, off board to the right of the 8th file on the bottom row.
// An enabled border shifts the marker by twice its thickness
// horizontally but only once vertically.
func (c Config) MoveIndicatorOrigin() (x, y int) {
	x = 8 * SquareWidth
	y = 7 * SquareHeight
	if c.Coordinates {
		x += CoordinateBandWidth
	}
	if c.Border {
		x += 2 * BorderThickness
		y += BorderThickness
	}
	return x, y
}

// OrientationFor selects the board orientation for a position: black at
// the bottom only when rotation is enabled and black is to move.
func (c Config) OrientationFor(pos fen.Position) Orientation {
	if c.Rotate && pos.Active == fen.Black {
		return BlackAtBottom
	}
	return WhiteAtBottom
}
