package hashing

import (
	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
)

// Perft counts leaf nodes like engine.Perft, reusing counts stored in cache
// for positions reached by more than one move order.
func Perft(board *chess.Board, depth int, cache Cache) uint64 {
	if depth <= 1 || cache == nil {
		return engine.Perft(board, depth)
	}

	key := Key(board)
	if nodes, ok := cache.Lookup(key, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range engine.LegalMoves(board) {
		nodes += Perft(engine.Successor(board, m), depth-1, cache)
	}
	cache.Store(key, depth, nodes)
	return nodes
}
