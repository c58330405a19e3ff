package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree below board to depth.
// Promotions count once, as the engine always promotes to a queen.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(Successor(board, m), depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide returns the node count below each legal root move.
func PerftDivide(board *chess.Board, depth int) []DivideEntry {
	moves := LegalMoves(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(Successor(board, m), depth-1)})
	}
	return entries
}
