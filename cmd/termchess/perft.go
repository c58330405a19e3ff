package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/hashing"
	"github.com/lgbarn/termchess-go/internal/notation"
	"github.com/lgbarn/termchess-go/internal/worker"
)

// runPerft prints the node count below each root move and the total.
func runPerft(ctx context.Context, cfg *config.Config, board *chess.Board, logger *log.Logger) error {
	start := time.Now()

	entries, table, err := divide(ctx, cfg, board)
	if err != nil {
		return fmt.Errorf("perft depth %d: %w", cfg.Perft.Depth, err)
	}

	out := cfg.OutputFile
	for _, e := range entries {
		fmt.Fprintf(out, "%s: %d\n", notation.FormatMove(e.Move), e.Nodes)
	}
	total := worker.Total(entries)
	fmt.Fprintf(out, "\nNodes searched: %d\n", total)

	logger.Printf("perft depth %d with %d workers: %d nodes in %v",
		cfg.Perft.Depth, cfg.Perft.Workers, total, time.Since(start))
	if table != nil {
		logger.Printf("transposition table: %d entries, %d hits", table.Len(), table.Hits())
	}
	return nil
}

// divide runs a single uncached worker serially and everything else on the
// pool. The returned table is nil when hashing is off.
func divide(ctx context.Context, cfg *config.Config, board *chess.Board) ([]engine.DivideEntry, *hashing.ThreadSafeTable, error) {
	if cfg.Perft.HashEntries == 0 && cfg.Perft.Workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		return engine.PerftDivide(board, cfg.Perft.Depth), nil, nil
	}

	count := worker.CountNodes
	var table *hashing.ThreadSafeTable
	if cfg.Perft.HashEntries > 0 {
		table = hashing.NewThreadSafeTable(cfg.Perft.HashEntries)
		count = worker.CachedCounter(table)
	}
	entries, err := worker.DivideWith(ctx, board, cfg.Perft.Depth, count, worker.WithWorkers(cfg.Perft.Workers))
	return entries, table, err
}
