package main

import (
	"bufio"
	"fmt"
	"log"
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/notation"
	"github.com/lgbarn/termchess-go/internal/render"
)

const quitCommand = "quit"

// playText runs the line-based shell until the game ends, the input runs out
// or the player types quit. Premoves are played first, as if typed.
func playText(cfg *config.Config, board *chess.Board, logger *log.Logger) (chess.GameState, error) {
	out := cfg.OutputFile
	renderer := render.New(cfg.Display)
	scanner := bufio.NewScanner(cfg.Input)
	premoves := append([]string(nil), cfg.Premoves...)

	state := engine.ClassifyEndState(board)
	msg := ""
	for {
		if err := renderer.Render(out, board); err != nil {
			return state, err
		}
		if msg != "" {
			fmt.Fprintln(out, msg)
			msg = ""
		}
		fmt.Fprintf(out, "%s Player, enter your next move. Examples: nf3; ng1f3; pe3; pe4; etc\n", board.Turn)

		var line string
		if len(premoves) > 0 {
			line, premoves = premoves[0], premoves[1:]
		} else if scanner.Scan() {
			line = scanner.Text()
		} else {
			return state, scanner.Err()
		}

		text := strings.TrimSpace(line)
		if text == quitCommand {
			logger.Printf("quit by %s", board.Turn)
			return state, nil
		}

		var done bool
		state, msg, done = playLine(cfg, board, text, logger)
		if done {
			if err := renderer.Render(out, board); err != nil {
				return state, err
			}
			fmt.Fprintln(out, msg)
			return state, nil
		}
	}
}

// playLine parses and plays one move. It returns the new state, the message
// to show and whether the game is over.
func playLine(cfg *config.Config, board *chess.Board, text string, logger *log.Logger) (chess.GameState, string, bool) {
	move, err := notation.ParseMove(text, board)
	if err != nil {
		logger.Printf("invalid %q: %v", text, err)
		return engine.ClassifyEndState(board), fmt.Sprintf("Command invalid: %v", err), false
	}

	state, err := engine.MovePiece(board, move)
	if err != nil {
		logger.Printf("rejected %s: %v", notation.FormatMove(move), err)
		return engine.ClassifyEndState(board), fmt.Sprintf("Could not move: %v", err), false
	}

	if cfg.Verbosity >= 1 {
		logger.Printf("%s played %s", move.Piece.Colour, notation.FormatMove(move))
	}
	if cfg.Verbosity >= 2 {
		logger.Printf("%d legal replies", len(engine.LegalMoves(board)))
	}

	switch state.Outcome {
	case chess.Checkmate:
		return state, fmt.Sprintf("%s wins!", state.Loser.Opposite()), true
	case chess.Stalemate:
		return state, "Stalemate...", true
	}
	return state, "", false
}

// playPremoves applies the configured premoves to board before an
// interactive front end takes over.
func playPremoves(cfg *config.Config, board *chess.Board, logger *log.Logger) error {
	for _, text := range cfg.Premoves {
		move, err := notation.ParseMove(strings.TrimSpace(text), board)
		if err != nil {
			return fmt.Errorf("premove %q: %w", text, err)
		}
		if _, err := engine.MovePiece(board, move); err != nil {
			return fmt.Errorf("premove %q: %w", text, err)
		}
		logger.Printf("premove %s", notation.FormatMove(move))
	}
	return nil
}
