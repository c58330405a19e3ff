// Package engine implements the chess rules: pseudo-legal move generation,
// threat and check detection, castling, move execution and end-of-game
// classification.
package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// maxRay is the longest distance a sliding piece can travel.
const maxRay = chess.BoardSize - 1

var (
	knightOffsets = [][2]int{{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {-2, 1}, {-2, -1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = [][2]int{{0, 1}, {1, 0}, {-1, 0}, {0, -1}}
	allDirs       = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// PieceMoves returns the pseudo-legal moves of piece standing on origin:
// moves that obey the piece's movement and blocking rules but may leave its
// own king in check. Castling targets are included for a king unless
// excludeCastle is set. It panics if origin is not a board index.
func PieceMoves(board *chess.Board, piece chess.ColouredPiece, origin int, excludeCastle bool) []chess.Move {
	start := chess.SquareFromIndex(origin)
	targets := pieceTargets(board, piece, start.Coord, excludeCastle)

	moves := make([]chess.Move, 0, len(targets))
	for _, c := range targets {
		if !chess.ValidCoord(c) || c == start.Coord {
			continue
		}
		if occupant, ok := board.PieceAt(c); ok && occupant.Colour == piece.Colour {
			continue
		}
		moves = append(moves, chess.Move{Piece: piece, Start: start, End: chess.SquareFromCoord(c)})
	}
	return moves
}

// PossibleMoves returns the pseudo-legal moves of every piece of colour, in
// board index order.
func PossibleMoves(board *chess.Board, colour chess.Colour, excludeCastle bool) []chess.Move {
	var moves []chess.Move
	for i, space := range board.Squares {
		piece, ok := space.Piece()
		if !ok || piece.Colour != colour {
			continue
		}
		moves = append(moves, PieceMoves(board, piece, i, excludeCastle)...)
	}
	return moves
}

// pieceTargets generates raw destination coordinates for piece at from.
// Results may still include off-board coordinates; PieceMoves filters them.
func pieceTargets(board *chess.Board, piece chess.ColouredPiece, from chess.Coord, excludeCastle bool) []chess.Coord {
	switch piece.Kind {
	case chess.Pawn:
		return pawnTargets(board, piece.Colour, from)
	case chess.Knight:
		return stepTargets(from, knightOffsets)
	case chess.Bishop:
		return rayTargets(board, piece.Colour, from, diagonalDirs)
	case chess.Rook:
		return rayTargets(board, piece.Colour, from, straightDirs)
	case chess.Queen:
		return rayTargets(board, piece.Colour, from, allDirs)
	case chess.King:
		targets := stepTargets(from, kingOffsets)
		if !excludeCastle {
			targets = append(targets, castleTargets(board, piece.Colour, from)...)
		}
		return targets
	}
	return nil
}

// stepTargets returns from shifted by each offset.
func stepTargets(from chess.Coord, offsets [][2]int) []chess.Coord {
	targets := make([]chess.Coord, 0, len(offsets))
	for _, off := range offsets {
		targets = append(targets, from.Add(off[0], off[1]))
	}
	return targets
}

// rayTargets casts a ray along each direction. A ray stops at the first
// occupied square, which is included only if it holds an enemy piece.
func rayTargets(board *chess.Board, colour chess.Colour, from chess.Coord, dirs [][2]int) []chess.Coord {
	var targets []chess.Coord
	for _, dir := range dirs {
		for step := 1; step <= maxRay; step++ {
			c := from.Add(dir[0]*step, dir[1]*step)
			if !chess.ValidCoord(c) {
				break
			}
			if occupant, ok := board.PieceAt(c); ok {
				if occupant.Colour != colour {
					targets = append(targets, c)
				}
				break
			}
			targets = append(targets, c)
		}
	}
	return targets
}
