package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// kingHomeColumn is the e-file, where both kings start.
const kingHomeColumn = 4

// castlePath describes one castling option by column on the home row.
type castlePath struct {
	kingTo   int
	rookFrom int
	rookTo   int
	// Columns that must be empty and unthreatened.
	between []int
}

var castlePaths = [2]castlePath{
	chess.KingSide:  {kingTo: 6, rookFrom: 7, rookTo: 5, between: []int{5, 6}},
	chess.QueenSide: {kingTo: 2, rookFrom: 0, rookTo: 3, between: []int{1, 2, 3}},
}

// CanCastle reports whether colour may castle towards side. The right must
// still be held, king and rook must be on their home squares, and every
// square between them must be empty and not threatened by the opponent.
// Whether the king currently stands in check is not examined.
func CanCastle(board *chess.Board, colour chess.Colour, side chess.CastleSide) bool {
	if !board.CastleRights(colour).Has(side) {
		return false
	}

	row := chess.HomeRow(colour)
	path := castlePaths[side]

	if board.Get(homeSquare(row, kingHomeColumn)) != chess.Occupied(chess.ColouredPiece{Kind: chess.King, Colour: colour}) {
		return false
	}
	if board.Get(homeSquare(row, path.rookFrom)) != chess.Occupied(chess.ColouredPiece{Kind: chess.Rook, Colour: colour}) {
		return false
	}

	for _, col := range path.between {
		sq := homeSquare(row, col)
		if !board.Get(sq).IsEmpty() || IsThreatened(board, colour.Opposite(), sq) {
			return false
		}
	}
	return true
}

// castleTargets returns the king destinations for every castle colour may
// make from from.
func castleTargets(board *chess.Board, colour chess.Colour, from chess.Coord) []chess.Coord {
	row := chess.HomeRow(colour)
	if from != (chess.Coord{Row: row, Column: kingHomeColumn}) {
		return nil
	}

	var targets []chess.Coord
	for _, side := range []chess.CastleSide{chess.KingSide, chess.QueenSide} {
		if CanCastle(board, colour, side) {
			targets = append(targets, chess.Coord{Row: row, Column: castlePaths[side].kingTo})
		}
	}
	return targets
}

// castleSide returns the side a move castles towards, if it is a castle:
// a king move of exactly two columns.
func castleSide(move chess.Move) (chess.CastleSide, bool) {
	if move.Piece.Kind != chess.King {
		return chess.KingSide, false
	}
	delta := move.End.Coord.Column - move.Start.Coord.Column
	switch delta {
	case 2:
		return chess.KingSide, true
	case -2:
		return chess.QueenSide, true
	}
	return chess.KingSide, false
}

// relocateRook moves the rook across the king after a castle.
func relocateRook(board *chess.Board, row int, side chess.CastleSide) {
	path := castlePaths[side]
	from := homeSquare(row, path.rookFrom)
	to := homeSquare(row, path.rookTo)
	board.Set(to, board.Get(from))
	board.Set(from, chess.Empty)
}

// updateCastlingRights removes rights when the king moves or a rook leaves
// its original corner.
func updateCastlingRights(board *chess.Board, move chess.Move) {
	colour := move.Piece.Colour
	rights := board.CastleRights(colour)

	switch move.Piece.Kind {
	case chess.King:
		rights = 0
	case chess.Rook:
		if move.Start.Coord.Row != chess.HomeRow(colour) {
			return
		}
		switch move.Start.Coord.Column {
		case castlePaths[chess.KingSide].rookFrom:
			rights = rights.Without(chess.KingSide)
		case castlePaths[chess.QueenSide].rookFrom:
			rights = rights.Without(chess.QueenSide)
		}
	default:
		return
	}

	board.SetCastleRights(colour, rights)
}

// homeSquare returns the square at (row, col); both are known to be on the board.
func homeSquare(row, col int) chess.Square {
	return chess.SquareFromCoord(chess.Coord{Row: row, Column: col})
}
