package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napobear/FEN2SVG/pkg/errors"
)

const sampleTemplate = `<svg width = "0" height = "0" version = "1.1"
     xmlns = "http://www.w3.org/2000/svg"
     xmlns:xlink = "http://www.w3.org/1999/xlink">
  <defs>
    <symbol id = "lightsquare"><rect width = "72" height = "72" fill = "#ffce9e" /></symbol>
    <symbol id = "darksquare"><rect width = "72" height = "72" fill = "#d18b47" /></symbol>
  </defs>
</svg>`

func TestLoad(t *testing.T) {
	tmpl, err := Load(strings.NewReader(sampleTemplate))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	lines := tmpl.Fit(576, 628).lines
	if lines[0] != `<svg width = "576" height = "628" version = "1.1"` {
		t.Errorf("first line = %q", lines[0])
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "</svg>") {
			t.Error("fitted lines must not contain the closing tag")
		}
	}
	if lines[1] != `     xmlns = "http://www.w3.org/2000/svg"` {
		t.Errorf("second line = %q, want the template body preserved", lines[1])
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single line", "<svg>"},
		{"missing svg open", "<defs>\n</svg>"},
		{"missing svg close", "<svg>\n<defs>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Load() error = nil, want template error")
			}
			if !errors.Is(err, errors.ErrCodeTemplate) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeTemplate)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.svg")
	if err := os.WriteFile(path, []byte(sampleTemplate), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err != nil {
		t.Errorf("LoadFile() error = %v", err)
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.svg"))
	if !errors.Is(err, errors.ErrCodeTemplate) {
		t.Errorf("missing file error code = %v, want %v", errors.GetCode(err), errors.ErrCodeTemplate)
	}
}
