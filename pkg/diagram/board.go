package diagram

// EmptyBoard produces the static layer for one orientation: 64
// checkerboard squares, the border frame if enabled, and the rank and
// file labels if coordinates are enabled. The result is computed at
// most once per orientation per run and shared read-only across every
// diagram of that orientation.
func EmptyBoard(cfg Config, o Orientation) []Use {
	uses := make([]Use, 0, 64+17)

	// Square coloring is independent of orientation: flipping both
	// axes preserves the parity of file+rank.
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			ref := "darksquare"
			if (col+row)%2 == 0 {
				ref = "lightsquare"
			}
			x, y := cfg.SquareOrigin(col, 7-row, WhiteAtBottom)
			uses = append(uses, Use{Ref: ref, X: x, Y: y})
		}
	}

	if cfg.Border {
		x, y := cfg.BorderOrigin()
		uses = append(uses, Use{Ref: "borders", X: x, Y: y})
	}

	if cfg.Coordinates {
		for i := 0; i < 8; i++ {
			digit := byte('8' - i)
			if o == BlackAtBottom {
				digit = byte('1' + i)
			}
			x, y := cfg.RankLabelOrigin(i)
			uses = append(uses, Use{Ref: "coordinate" + string(digit), X: x, Y: y})
		}
		for i := 0; i < 8; i++ {
			letter := byte('a' + i)
			if o == BlackAtBottom {
				letter = byte('h' - i)
			}
			x, y := cfg.FileLabelOrigin(i)
			uses = append(uses, Use{Ref: "coordinate" + string(letter), X: x, Y: y})
		}
	}

	return uses
}
