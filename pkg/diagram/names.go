package diagram

import (
	"fmt"
	"strings"
)

// Extension is appended to every generated diagram file name.
const Extension = ".svg"

// NumberedFileName names the n-th successfully rendered diagram of a
// run, e.g. "dia00042.svg". Numbering starts at 1.
func NumberedFileName(n int) string {
	return fmt.Sprintf("dia%05d%s", n, Extension)
}

// admissible reports whether a placement-field byte may appear in a
// FEN-derived file name: empty-square digits and piece letters.
func admissible(ch byte) bool {
	if ch >= '1' && ch <= '8' {
		return true
	}
	return strings.IndexByte("KQRBNPkqrbnp", ch) >= 0
}

// FileNameFromFEN derives a file name from a FEN excerpt: the
// admissible characters of the placement field, a trailing 'w' or 'b'
// for the side to move, and the diagram extension. Two positions that
// differ only in castling rights or move counters map to the same
// name; the later diagram overwrites the earlier one.
func FileNameFromFEN(line string) string {
	var b strings.Builder

	i := 0
	for ; i < len(line) && line[i] != ' ' && line[i] != '\t'; i++ {
		if admissible(line[i]) {
			b.WriteByte(line[i])
		}
	}
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i < len(line) && line[i] == 'b' {
		b.WriteByte('b')
	} else {
		b.WriteByte('w')
	}
	b.WriteString(Extension)
	return b.String()
}
