// Package hashing provides Zobrist position keys and a transposition table
// for caching perft node counts.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/termchess-go/internal/chess"
)

const numPieceKinds = 6

// zobristSeed is fixed so keys are stable between runs.
const zobristSeed = 0x5eed

var (
	pieceKeys   [2][numPieceKinds][chess.NumSquares]uint64
	castleKeys  [2][chess.AllCastleRights + 1]uint64
	blackToMove uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for colour := range pieceKeys {
		for kind := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][kind] {
				pieceKeys[colour][kind][sq] = r.Uint64()
			}
		}
	}
	for colour := range castleKeys {
		for rights := range castleKeys[colour] {
			castleKeys[colour][rights] = r.Uint64()
		}
	}
	blackToMove = r.Uint64()
}

// Key returns the Zobrist key of board. It covers everything move
// generation depends on: the pieces, the side to move and both sides'
// castling rights.
func Key(board *chess.Board) uint64 {
	var key uint64
	for i, space := range board.Squares {
		piece, ok := space.Piece()
		if !ok {
			continue
		}
		key ^= pieceKeys[piece.Colour][piece.Kind][i]
	}
	key ^= castleKeys[chess.White][board.WhiteCastle]
	key ^= castleKeys[chess.Black][board.BlackCastle]
	if board.Turn == chess.Black {
		key ^= blackToMove
	}
	return key
}
