package diagram

import "testing"

func TestNumberedFileName(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "dia00001.svg"},
		{42, "dia00042.svg"},
		{130, "dia00130.svg"},
		{99999, "dia99999.svg"},
	}

	for _, tt := range tests {
		if got := NumberedFileName(tt.n); got != tt.want {
			t.Errorf("NumberedFileName(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFileNameFromFEN(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			"separators dropped",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			"rnbqkbnrpppppppp8888PPPPPPPPRNBQKBNRw.svg",
		},
		{
			"black to move",
			"4k3/8/8/8/8/8/8/4K3 b - - 0 1",
			"4k3888888884K3b.svg",
		},
		{
			"missing active color defaults to white",
			"4k3/8/8/8/8/8/8/4K3",
			"4k3888888884K3w.svg",
		},
		{
			"castling and counters do not leak into the name",
			"8/8/8/8/8/8/8/8 w KQkq e3 42 99",
			"88888888w.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileNameFromFEN(tt.line); got != tt.want {
				t.Errorf("FileNameFromFEN(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
