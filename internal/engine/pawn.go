package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// pawnTargets returns the pseudo-legal destinations of a pawn. Forward steps
// are blocked by any piece; diagonal steps need an enemy piece to capture.
// There is no en passant.
func pawnTargets(board *chess.Board, colour chess.Colour, from chess.Coord) []chess.Coord {
	dir := chess.ColourOffset(colour)
	targets := make([]chess.Coord, 0, 4)

	one := from.Add(dir, 0)
	if chess.ValidCoord(one) && isVacant(board, one) {
		targets = append(targets, one)

		// Double push from starting rank
		two := from.Add(2*dir, 0)
		if from.Row == chess.PawnRow(colour) && isVacant(board, two) {
			targets = append(targets, two)
		}
	}

	// Captures
	for _, dc := range []int{1, -1} {
		diag := from.Add(dir, dc)
		if occupant, ok := board.PieceAt(diag); ok && occupant.Colour != colour {
			targets = append(targets, diag)
		}
	}

	return targets
}

// isVacant returns true if c is on the board and empty.
func isVacant(board *chess.Board, c chess.Coord) bool {
	if !chess.ValidCoord(c) {
		return false
	}
	_, occupied := board.PieceAt(c)
	return !occupied
}

// promote rewrites a pawn reaching its last rank into a queen.
func promote(move chess.Move) chess.Move {
	if move.Piece.Kind == chess.Pawn && move.End.Coord.Row == chess.PromotionRow(move.Piece.Colour) {
		move.Piece.Kind = chess.Queen
	}
	return move
}
