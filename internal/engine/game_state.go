package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// LegalMoves returns every fully legal move for the side to move: the
// pseudo-legal moves that do not leave its own king in check.
func LegalMoves(board *chess.Board) []chess.Move {
	candidates := PossibleMoves(board, board.Turn, false)
	moves := candidates[:0]
	for _, m := range candidates {
		if !leavesKingInCheck(board, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// ClassifyEndState returns the state of the game for the side to move.
func ClassifyEndState(board *chess.Board) chess.GameState {
	if len(LegalMoves(board)) > 0 {
		return chess.GameState{Outcome: chess.Playing}
	}
	if _, inCheck := InCheck(board); inCheck {
		return chess.Mated(board.Turn)
	}
	return chess.GameState{Outcome: chess.Stalemate}
}

// CanSquareMove reports whether the occupant of space, standing on sq,
// belongs to the side to move and has a pseudo-legal destination. It does
// not check king safety, so MovePiece may still reject what it allows.
func CanSquareMove(board *chess.Board, space chess.Space, sq chess.Square) bool {
	piece, ok := space.Piece()
	if !ok || piece.Colour != board.Turn {
		return false
	}
	return len(PieceMoves(board, piece, sq.Index, false)) > 0
}
