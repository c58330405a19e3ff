package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func plainConfig() *config.DisplayConfig {
	cfg := config.NewDisplayConfig()
	cfg.Colour = false
	return cfg
}

func initialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

func TestRender_InitialPosition(t *testing.T) {
	got := New(plainConfig()).String(initialBoard())

	want := strings.Join([]string{
		"   A  B  C  D  E  F  G  H ",
		"8| r  n  b  q  k  b  n  r |8",
		"7| p  p  p  p  p  p  p  p |7",
		"6| #  #  #  #  #  #  #  # |6",
		"5| #  #  #  #  #  #  #  # |5",
		"4| #  #  #  #  #  #  #  # |4",
		"3| #  #  #  #  #  #  #  # |3",
		"2| P  P  P  P  P  P  P  P |2",
		"1| R  N  B  Q  K  B  N  R |1",
		"   A  B  C  D  E  F  G  H ",
		"",
	}, "\n")

	testutil.AssertEqual(t, got, want)
}

func TestRender_Flipped(t *testing.T) {
	cfg := plainConfig()
	cfg.Flip = true
	lines := strings.Split(New(cfg).String(initialBoard()), "\n")

	tests := []struct {
		line int
		want string
	}{
		{0, "   H  G  F  E  D  C  B  A "},
		{1, "1| R  N  B  K  Q  B  N  R |1"},
		{8, "8| r  n  b  k  q  b  n  r |8"},
	}

	for _, tt := range tests {
		if lines[tt.line] != tt.want {
			t.Errorf("line %d = %q; want %q", tt.line, lines[tt.line], tt.want)
		}
	}
}

func TestRender_NoCoordinates(t *testing.T) {
	cfg := plainConfig()
	cfg.Coordinates = false
	got := New(cfg).String(chess.NewBoard())

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != chess.BoardSize {
		t.Fatalf("got %d lines; want %d", len(lines), chess.BoardSize)
	}
	for i, line := range lines {
		if line != strings.Repeat(" # ", chess.BoardSize) {
			t.Errorf("line %d = %q; want all empty cells", i, line)
		}
	}
}

func TestRender_Colour(t *testing.T) {
	cfg := config.NewDisplayConfig()
	var buf bytes.Buffer
	if err := New(cfg).Render(&buf, initialBoard()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	testutil.AssertContains(t, buf.String(), "\x1b[")
	testutil.AssertContains(t, buf.String(), " K ")
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		piece chess.ColouredPiece
		want  string
	}{
		{chess.W(chess.King), "K"},
		{chess.B(chess.King), "k"},
		{chess.W(chess.Knight), "N"},
		{chess.B(chess.Pawn), "p"},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := Glyph(tt.piece); got != tt.want {
				t.Errorf("Glyph(%v) = %q; want %q", tt.piece, got, tt.want)
			}
		})
	}
}
