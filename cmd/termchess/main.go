// termchess is a two-player chess game for the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/tui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("termchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run starts the configured front end.
func run(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg.LogFile, cfg.Mode)
	logger.Printf("starting in %s mode", cfg.Mode)

	switch cfg.Mode {
	case config.PerftMode:
		return runPerft(ctx, cfg, engine.NewInitialBoard(), logger)
	case config.BoardMode:
		board := engine.NewInitialBoard()
		if err := playPremoves(cfg, board, logger); err != nil {
			return err
		}
		ui := tui.New(board, cfg.Display, logger)
		go func() {
			<-ctx.Done()
			ui.App.Stop()
		}()
		return ui.Run()
	default:
		_, err := playText(cfg, engine.NewInitialBoard(), logger)
		return err
	}
}

// newLogger wraps the configured log writer with a mode prefix.
func newLogger(w io.Writer, mode config.Mode) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.New(w, fmt.Sprintf("%s: ", mode), log.LstdFlags)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: termchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  text   Type moves such as nf3, pe4 or ng1f3 (default)\n")
	fmt.Fprintf(os.Stderr, "  board  Pick squares with the mouse or arrow keys and Enter\n")
	fmt.Fprintf(os.Stderr, "  perft  Count move-tree leaves from the start position\n")
}
