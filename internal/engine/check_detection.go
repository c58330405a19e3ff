package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// IsThreatened returns true if any pseudo-legal move of byColour, castling
// excluded, ends on sq. It is recomputed from scratch on every call.
func IsThreatened(board *chess.Board, byColour chess.Colour, sq chess.Square) bool {
	for i, space := range board.Squares {
		piece, ok := space.Piece()
		if !ok || piece.Colour != byColour {
			continue
		}
		for _, m := range PieceMoves(board, piece, i, true) {
			if m.End.Index == sq.Index {
				return true
			}
		}
	}
	return false
}

// InCheck returns the side to move if its king is attacked. No check is
// reported when either king is missing from the board.
func InCheck(board *chess.Board) (chess.Colour, bool) {
	whiteKing, ok := board.FindKing(chess.White)
	if !ok {
		return board.Turn, false
	}
	blackKing, ok := board.FindKing(chess.Black)
	if !ok {
		return board.Turn, false
	}

	king := whiteKing
	if board.Turn == chess.Black {
		king = blackKing
	}
	if IsThreatened(board, board.Turn.Opposite(), king) {
		return board.Turn, true
	}
	return board.Turn, false
}

// leavesKingInCheck simulates move on a scratch copy and reports whether the
// mover's own king is then attacked. The real board is not touched.
func leavesKingInCheck(board *chess.Board, move chess.Move) bool {
	scratch := board.Copy()
	executeMoveRaw(scratch, move)
	scratch.Turn = move.Piece.Colour
	_, inCheck := InCheck(scratch)
	return inCheck
}
