package engine

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// MovePiece validates move, applies it to board and returns the state of the
// game for the side now to move. A pawn reaching its last rank becomes a
// queen. On error the board is left unmodified.
func MovePiece(board *chess.Board, move chess.Move) (chess.GameState, error) {
	if err := play(board, move); err != nil {
		return chess.GameState{}, err
	}
	return ClassifyEndState(board), nil
}

// AttemptMoveWithCoords moves whatever piece stands on start to end.
func AttemptMoveWithCoords(board *chess.Board, start, end chess.Coord) (chess.GameState, error) {
	if !chess.ValidCoord(start) || !chess.ValidCoord(end) {
		return chess.GameState{}, fmt.Errorf("start %v, end %v: %w", start, end, errors.ErrInvalidCoord)
	}

	from := chess.SquareFromCoord(start)
	piece, ok := board.Get(from).Piece()
	if !ok {
		return chess.GameState{}, fmt.Errorf("square %s: %w", from, errors.ErrEmptySquare)
	}

	return MovePiece(board, chess.Move{Piece: piece, Start: from, End: chess.SquareFromCoord(end)})
}

// ValidateMove returns true if move is one of the pseudo-legal moves of the
// piece standing on its start square.
func ValidateMove(board *chess.Board, move chess.Move) bool {
	if board.Get(move.Start) != chess.Occupied(move.Piece) {
		return false
	}
	for _, m := range PieceMoves(board, move.Piece, move.Start.Index, false) {
		if m == move {
			return true
		}
	}
	return false
}

// play performs every check and then commits move. It does not classify
// the resulting position.
func play(board *chess.Board, move chess.Move) error {
	if !ValidateMove(board, move) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: move.String()}
	}
	if move.Piece.Colour != board.Turn {
		return &errors.MoveError{
			Err:      fmt.Errorf("it is currently %s's turn: %w", board.Turn, errors.ErrWrongTurn),
			MoveText: move.String(),
		}
	}

	move = promote(move)

	if leavesKingInCheck(board, move) {
		return &errors.MoveError{
			Err:      errors.ErrSelfCheck,
			MoveText: move.String(),
			Side:     move.Piece.Colour.String(),
		}
	}

	commit(board, move)
	return nil
}

// commit applies a move already known to be legal and passes the turn.
func commit(board *chess.Board, move chess.Move) {
	move = promote(move)
	updateCastlingRights(board, move)
	executeMoveRaw(board, move)
	board.Turn = board.Turn.Opposite()
}

// executeMoveRaw places the piece without any legality checks. It is shared
// by check simulation and real execution, so it must never call MovePiece.
func executeMoveRaw(board *chess.Board, move chess.Move) {
	board.Set(move.End, chess.Occupied(move.Piece))
	board.Set(move.Start, chess.Empty)

	// Swap rook to new position during castle
	if side, ok := castleSide(move); ok {
		relocateRook(board, move.Start.Coord.Row, side)
	}
}

// Successor returns a copy of board with a legal move applied, leaving board
// itself unchanged.
func Successor(board *chess.Board, move chess.Move) *chess.Board {
	next := board.Copy()
	commit(next, move)
	return next
}
