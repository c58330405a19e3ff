package config

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// MaxPerftDepth bounds the depth accepted from the command line.
const MaxPerftDepth = 8

// DefaultHashEntries is the default transposition table size for perft.
const DefaultHashEntries = 1 << 20

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	Depth   int
	Workers int
	// HashEntries caps the shared transposition table (0 = no table)
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:       3,
		Workers:     defaultWorkers(),
		HashEntries: DefaultHashEntries,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d not in 1..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("perft hash entries %d must not be negative: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	return nil
}
