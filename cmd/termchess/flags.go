// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/termchess-go/internal/config"
)

var (
	// Front end
	modeName = flag.String("mode", "text", "Front end: text, board or perft")

	// Display options
	flipBoard     = flag.Bool("flip", false, "Draw the board from Black's side")
	noColour      = flag.Bool("nocolour", false, "Don't use ANSI colours in text mode")
	noCoordinates = flag.Bool("nocoords", false, "Don't print file letters and rank numbers")

	// Game setup
	premovesFile = flag.String("premoves", "", "File of moves to play before reading input, one per line")

	// Perft
	perftDepth   = flag.Int("depth", 3, "Perft depth")
	perftWorkers = flag.Int("workers", 0, "Perft worker goroutines (0 = one per CPU)")
	perftHash    = flag.Int("hash", config.DefaultHashEntries, "Perft transposition table entries (0 = no table)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this log file")
	appendLog = flag.String("L", "", "Append diagnostics to this log file")
	verbosity = flag.Int("v", 1, "Log verbosity: 0 nothing, 1 moves, 2 move lists")
	quiet     = flag.Bool("q", false, "Quiet mode, same as -v 0")

	// Misc
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	mode, err := config.ParseMode(*modeName)
	if err != nil {
		return err
	}
	cfg.Mode = mode

	applyDisplayFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}

	if *premovesFile != "" {
		moves, err := config.LoadPremoves(*premovesFile)
		if err != nil {
			return err
		}
		cfg.Premoves = moves
	}
	return nil
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Flip = *flipBoard
	cfg.Display.Colour = !*noColour
	cfg.Display.Coordinates = !*noCoordinates
}

// applyPerftFlags configures move-tree counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	if *perftWorkers > 0 {
		cfg.Perft.Workers = *perftWorkers
	}
	cfg.Perft.HashEntries = *perftHash
}
