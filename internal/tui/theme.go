package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// Theme is used for colouring the board table.
type Theme struct {
	SquareDark  tcell.Color
	SquareLight tcell.Color
	SquareHigh  tcell.Color // Selected piece
	SquareHint  tcell.Color // Destinations of the selected piece
	White       tcell.Color
	Black       tcell.Color
	Label       tcell.Color
}

// DefaultTheme keeps to the xterm 256 colour palette.
var DefaultTheme = Theme{
	SquareDark:  tcell.ColorGreen,
	SquareLight: tcell.ColorBlue,
	SquareHigh:  tcell.ColorRed,
	SquareHint:  tcell.ColorOlive,
	White:       tcell.ColorWhite,
	Black:       tcell.ColorBlack,
	Label:       tcell.ColorYellow,
}

// highlight marks how a square is emphasised.
type highlight int

const (
	noHighlight highlight = iota
	selectedSquare
	hintSquare
)

// squareColour returns the background for a square.
func (t Theme) squareColour(c chess.Coord, hl highlight) tcell.Color {
	switch hl {
	case selectedSquare:
		return t.SquareHigh
	case hintSquare:
		return t.SquareHint
	}
	if (c.Row+c.Column)%2 == 0 {
		return t.SquareDark
	}
	return t.SquareLight
}

// pieceColour returns the foreground for a piece.
func (t Theme) pieceColour(colour chess.Colour) tcell.Color {
	if colour == chess.White {
		return t.White
	}
	return t.Black
}
