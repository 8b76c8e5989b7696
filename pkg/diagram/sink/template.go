// Package sink assembles diagram instructions into SVG documents.
//
// A diagram is produced in two steps: a glyph template supplies the
// opening <svg> element and a <defs> block with one symbol per board
// glyph, and the renderer appends <use> references for squares,
// pieces and decorations before closing the document.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napobear/FEN2SVG/pkg/errors"
)

// Template holds the glyph definitions file split into lines. The
// first line must open the <svg> element and the last line must close
// it; everything between is copied into each diagram verbatim.
type Template struct {
	lines []string
}

// Load reads a glyph template and validates its frame.
func Load(r io.Reader) (*Template, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTemplate, err, "reading template")
	}

	if len(lines) < 2 {
		return nil, errors.New(errors.ErrCodeTemplate, "template has %d lines, need at least an <svg> and a </svg> line", len(lines))
	}
	if !strings.HasPrefix(lines[0], "<svg") {
		return nil, errors.New(errors.ErrCodeTemplate, "template does not start with %q", "<svg")
	}
	if !strings.HasPrefix(lines[len(lines)-1], "</svg>") {
		return nil, errors.New(errors.ErrCodeTemplate, "template does not end with %q", "</svg>")
	}

	return &Template{lines: lines}, nil
}

// LoadFile reads a glyph template from disk.
func LoadFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTemplate, err, "cannot open template %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Fit sizes the template for a canvas of the given dimensions. The
// opening <svg> line is rewritten with the canvas size and the closing
// line is dropped, so instructions can be appended before the document
// is closed. Canvas size is fixed per run, so fitting happens once,
// not per diagram.
func (t *Template) Fit(width, height int) *Template {
	out := make([]string, len(t.lines)-1)
	out[0] = fmt.Sprintf(`<svg width = "%d" height = "%d" version = "1.1"`, width, height)
	copy(out[1:], t.lines[1:len(t.lines)-1])
	return &Template{lines: out}
}
