package tui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/render"
)

// The table holds the 8x8 squares in rows 0-7 and columns 1-8, rank
// numbers in column 0 and file letters in row 8.
const (
	labelRow = chess.BoardSize
	labelCol = 0
)

// posToCoord maps a table cell to a board coordinate.
func posToCoord(row, col int, flip bool) (chess.Coord, bool) {
	if row < 0 || row >= chess.BoardSize || col < 1 || col > chess.BoardSize {
		return chess.Coord{}, false
	}
	col-- // 1 column for the rank
	if !flip { // descending order if White is at the bottom
		row = chess.BoardSize - row - 1
	} else {
		col = chess.BoardSize - col - 1
	}
	return chess.Coord{Row: row, Column: col}, true
}

// coordToPos is the inverse of posToCoord.
func coordToPos(c chess.Coord, flip bool) (row, col int) {
	if !flip {
		return chess.BoardSize - c.Row - 1, c.Column + 1
	}
	return c.Row, chess.BoardSize - c.Column
}

// renderTable redraws every cell of the table from the current board.
func (u *UI) renderTable() {
	for r := 0; r <= labelRow; r++ {
		for f := 0; f <= chess.BoardSize; f++ {
			if f == labelCol && r != labelRow { // draw rank square
				c, _ := posToCoord(r, 1, u.flip)
				u.Table.SetCell(r, f, u.labelCell(fmt.Sprintf("%d", c.Row+1)))
				continue
			}
			if r == labelRow && f != labelCol { // draw files square
				c, _ := posToCoord(0, f, u.flip)
				u.Table.SetCell(r, f, u.labelCell(fmt.Sprintf(" %c", chess.FileBase+c.Column)))
				continue
			}
			if r == labelRow && f == labelCol {
				u.Table.SetCell(r, f, u.labelCell(""))
				continue
			}

			c, _ := posToCoord(r, f, u.flip)
			u.Table.SetCell(r, f, u.squareCell(c))
		}
	}
}

func (u *UI) labelCell(text string) *tview.TableCell {
	return tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(u.theme.Label).
		SetSelectable(false)
}

func (u *UI) squareCell(c chess.Coord) *tview.TableCell {
	text := "  "
	cell := tview.NewTableCell("").SetAlign(tview.AlignCenter)
	if piece, ok := u.board.PieceAt(c); ok {
		text = " " + render.Glyph(piece)
		cell.SetTextColor(u.theme.pieceColour(piece.Colour))
	}
	cell.Text = text
	return cell.SetBackgroundColor(u.theme.squareColour(c, u.highlights[c]))
}
