package worker

import (
	"context"
	"fmt"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/hashing"
)

// CountNodes is the ProcessFunc used for perft: it counts the leaves below
// item.Move on a private successor board.
func CountNodes(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Move: item.Move}
	if item.Depth < 1 {
		result.Error = fmt.Errorf("perft depth %d below 1", item.Depth)
		return result
	}
	result.Nodes = engine.Perft(engine.Successor(item.Board, item.Move), item.Depth-1)
	return result
}

// CachedCounter returns a ProcessFunc like CountNodes that shares cache
// between workers. cache must be safe for concurrent use when the pool has
// more than one worker.
func CachedCounter(cache hashing.Cache) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Move: item.Move}
		if item.Depth < 1 {
			result.Error = fmt.Errorf("perft depth %d below 1", item.Depth)
			return result
		}
		result.Nodes = hashing.Perft(engine.Successor(item.Board, item.Move), item.Depth-1, cache)
		return result
	}
}

// Divide counts the leaves below each legal root move of board to depth,
// spreading root moves over the pool's workers. Entries come back in root
// move order. Cancelling ctx stops workers picking up further moves.
func Divide(ctx context.Context, board *chess.Board, depth int, opts ...PoolOption) ([]engine.DivideEntry, error) {
	return DivideWith(ctx, board, depth, CountNodes, opts...)
}

// DivideWith is Divide with count run for each root move.
func DivideWith(ctx context.Context, board *chess.Board, depth int, count ProcessFunc, opts ...PoolOption) ([]engine.DivideEntry, error) {
	moves := engine.LegalMoves(board)
	entries := make([]engine.DivideEntry, len(moves))
	if len(moves) == 0 {
		return entries, nil
	}

	// Every root move is submitted before any result is read, so the buffers
	// must hold all of them whatever the caller asked for.
	poolOpts := append(append([]PoolOption{}, opts...), WithBufferSize(len(moves)))
	pool := NewPool(count, poolOpts...)
	pool.Start()
	for i, m := range moves {
		pool.Submit(WorkItem{Index: i, Board: board, Move: m, Depth: depth})
	}
	go pool.Close()

	done := ctx.Done()
	received := 0
	var firstErr error
	for received < len(moves) {
		select {
		case <-done:
			pool.Stop()
			done = nil
			firstErr = ctx.Err()
		case result, ok := <-pool.Results():
			if !ok {
				if firstErr == nil {
					firstErr = fmt.Errorf("perft stopped after %d of %d root moves", received, len(moves))
				}
				return entries, firstErr
			}
			received++
			if result.Error != nil && firstErr == nil {
				firstErr = result.Error
			}
			entries[result.Index] = engine.DivideEntry{Move: result.Move, Nodes: result.Nodes}
		}
	}
	return entries, firstErr
}

// Total sums the node counts of entries.
func Total(entries []engine.DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
