// Package render draws a board as a grid of text for terminal output.
package render

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
)

// Renderer turns boards into printable grids.
type Renderer struct {
	cfg *config.DisplayConfig

	whitePiece *color.Color
	blackPiece *color.Color
	emptyCell  *color.Color
	label      *color.Color
}

// New creates a Renderer for the given display settings.
func New(cfg *config.DisplayConfig) *Renderer {
	r := &Renderer{
		cfg:        cfg,
		whitePiece: color.New(color.FgBlack, color.BgWhite),
		blackPiece: color.New(color.FgHiWhite, color.BgHiBlack),
		emptyCell:  color.New(color.FgGreen),
		label:      color.New(color.FgGreen),
	}

	// Set explicitly so output does not depend on whether stdout is a tty.
	for _, c := range []*color.Color{r.whitePiece, r.blackPiece, r.emptyCell, r.label} {
		if cfg.Colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes the board grid to w.
func (r *Renderer) Render(w io.Writer, board *chess.Board) error {
	_, err := io.WriteString(w, r.String(board))
	return err
}

// String returns the board grid. Rank 8 is on top unless the display is
// flipped.
func (r *Renderer) String(board *chess.Board) string {
	var sb strings.Builder

	files := "   A  B  C  D  E  F  G  H \n"
	if r.cfg.Flip {
		files = "   H  G  F  E  D  C  B  A \n"
	}
	if r.cfg.Coordinates {
		sb.WriteString(r.label.Sprint(files))
	}

	for _, row := range r.rows() {
		rank := string(rune(chess.RankBase + row))
		if r.cfg.Coordinates {
			sb.WriteString(r.label.Sprint(rank + "|"))
		}
		for _, col := range r.columns() {
			sb.WriteString(r.cell(board, chess.Coord{Row: row, Column: col}))
		}
		if r.cfg.Coordinates {
			sb.WriteString(r.label.Sprint("|" + rank))
		}
		sb.WriteByte('\n')
	}

	if r.cfg.Coordinates {
		sb.WriteString(r.label.Sprint(files))
	}
	return sb.String()
}

func (r *Renderer) rows() []int {
	rows := make([]int, chess.BoardSize)
	for i := range rows {
		if r.cfg.Flip {
			rows[i] = i
		} else {
			rows[i] = chess.BoardSize - 1 - i
		}
	}
	return rows
}

func (r *Renderer) columns() []int {
	cols := make([]int, chess.BoardSize)
	for i := range cols {
		if r.cfg.Flip {
			cols[i] = chess.BoardSize - 1 - i
		} else {
			cols[i] = i
		}
	}
	return cols
}

func (r *Renderer) cell(board *chess.Board, c chess.Coord) string {
	piece, ok := board.PieceAt(c)
	if !ok {
		return r.emptyCell.Sprint(" # ")
	}
	text := " " + Glyph(piece) + " "
	if piece.Colour == chess.White {
		return r.whitePiece.Sprint(text)
	}
	return r.blackPiece.Sprint(text)
}

// Glyph returns the piece letter: upper case for White, lower case for Black.
func Glyph(piece chess.ColouredPiece) string {
	letter := string(piece.Kind.Letter())
	if piece.Colour == chess.White {
		return strings.ToUpper(letter)
	}
	return letter
}
