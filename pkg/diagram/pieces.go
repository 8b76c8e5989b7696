package diagram

import "github.com/napobear/FEN2SVG/pkg/fen"

// Pieces converts a parsed position into its drawing instructions: one
// per occupied square, in the scan order of the original placement
// field, plus the move indicator when enabled. Scan order fixes the
// SVG paint order, which only matters cosmetically for overlapping
// glyphs but keeps output reproducible.
func Pieces(pos fen.Position, cfg Config, o Orientation) []Use {
	var uses []Use
	for i, p := range pos.Squares {
		if p == fen.NoPiece {
			continue
		}
		file, rank := i%8, 7-i/8
		x, y := cfg.SquareOrigin(file, rank, o)
		uses = append(uses, Use{Ref: p.Glyph(), X: x, Y: y})
	}

	if cfg.MoveIndicator {
		x, y := cfg.MoveIndicatorOrigin()
		uses = append(uses, Use{Ref: "moveindicator", Fill: pos.Active.String(), X: x, Y: y})
	}
	return uses
}
