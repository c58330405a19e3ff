// Package tui runs an interactive board in the terminal. A square is
// picked with the mouse or the arrow keys and Enter; the first pick chooses
// a piece and the second its destination.
package tui

import (
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
)

// UI is the board application.
type UI struct {
	App    *tview.Application
	Table  *tview.Table
	Status *tview.TextView
	Layout *tview.Grid

	board  *chess.Board
	flip   bool
	theme  Theme
	logger *log.Logger

	selecting     bool
	lastSelection chess.Coord
	highlights    map[chess.Coord]highlight
	state         chess.GameState
}

// New builds the application around board. logger may be nil.
func New(board *chess.Board, cfg *config.DisplayConfig, logger *log.Logger) *UI {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	app := tview.NewApplication()
	table := tview.NewTable()
	status := tview.NewTextView().SetDynamicColors(true)

	quitBtn := tview.NewButton("Quit").SetSelectedFunc(func() {
		app.Stop()
	})

	layout := tview.NewGrid().
		SetRows(-1, 10, 3, -1).
		SetColumns(-1, 30, 10, -1).
		AddItem(table, 1, 1, 1, 1, 0, 0, true).
		AddItem(quitBtn, 1, 2, 1, 1, 0, 0, false).
		AddItem(status, 2, 1, 1, 2, 0, 0, false)

	u := &UI{
		App:        app,
		Table:      table,
		Status:     status,
		Layout:     layout,
		board:      board,
		flip:       cfg.Flip,
		theme:      DefaultTheme,
		logger:     logger,
		highlights: make(map[chess.Coord]highlight),
		state:      engine.ClassifyEndState(board),
	}
	u.initTable()
	u.showTurn()
	return u
}

// Run starts the event loop and blocks until the user quits.
func (u *UI) Run() error {
	return u.App.SetRoot(u.Layout, true).EnableMouse(true).Run()
}

// State returns the state after the last move.
func (u *UI) State() chess.GameState {
	return u.state
}

func (u *UI) initTable() {
	u.renderTable()
	u.Table.SetSelectable(true, true)
	u.Table.Select(0, 1).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			u.App.Stop()
		}
	}).SetSelectedFunc(u.selectCell)
}

// selectCell handles a pick of table cell (row, col).
func (u *UI) selectCell(row, col int) {
	c, ok := posToCoord(row, col, u.flip)
	if !ok || u.state.Over() {
		return
	}

	switch {
	case u.selecting && c == u.lastSelection: // chose the last square to deactivate
		u.clearSelection()
	case u.selecting: // choosing destination
		u.moveTo(c)
	default:
		u.pick(c)
	}
	u.renderTable()
}

// pick starts a move from c if its piece may move.
func (u *UI) pick(c chess.Coord) {
	sq := chess.SquareFromCoord(c)
	space := u.board.Get(sq)
	if !engine.CanSquareMove(u.board, space, sq) {
		u.setStatus(fmt.Sprintf("Cannot move from %s", sq))
		return
	}

	piece, _ := space.Piece()
	u.selecting = true
	u.lastSelection = c
	u.highlights[c] = selectedSquare
	for _, m := range engine.PieceMoves(u.board, piece, sq.Index, false) {
		u.highlights[m.End.Coord] = hintSquare
	}
	u.setStatus(fmt.Sprintf("Selected %s on %s", piece, sq))
}

// moveTo completes the selected move.
func (u *UI) moveTo(c chess.Coord) {
	start := u.lastSelection
	u.clearSelection()

	state, err := engine.AttemptMoveWithCoords(u.board, start, c)
	if err != nil {
		u.logger.Printf("rejected %v -> %v: %v", start, c, err)
		u.setStatus(fmt.Sprintf("[red]Could not move: %v[-]", err))
		return
	}
	u.logger.Printf("move %s-%s", chess.SquareFromCoord(start), chess.SquareFromCoord(c))

	u.state = state
	switch state.Outcome {
	case chess.Checkmate:
		u.setStatus(fmt.Sprintf("%s wins!", state.Loser.Opposite()))
	case chess.Stalemate:
		u.setStatus("Stalemate...")
	default:
		u.showTurn()
	}
}

func (u *UI) clearSelection() {
	u.selecting = false
	u.lastSelection = chess.Coord{}
	for c := range u.highlights {
		delete(u.highlights, c)
	}
}

func (u *UI) showTurn() {
	text := fmt.Sprintf("It's %s's turn!", u.board.Turn)
	if _, inCheck := engine.InCheck(u.board); inCheck {
		text += " Check."
	}
	u.setStatus(text)
}

func (u *UI) setStatus(text string) {
	u.Status.SetText(text)
}
