// Package config provides configuration for termchess.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// Mode selects the front end the program runs.
type Mode int

const (
	TextMode  Mode = iota // Line-based shell reading move text
	BoardMode             // Interactive board driven by mouse or keys
	PerftMode             // Move-tree node counting
)

// String returns the flag spelling of a mode.
func (m Mode) String() string {
	switch m {
	case TextMode:
		return "text"
	case BoardMode:
		return "board"
	case PerftMode:
		return "perft"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps flag text to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return TextMode, nil
	case "board", "tui":
		return BoardMode, nil
	case "perft":
		return PerftMode, nil
	}
	return TextMode, fmt.Errorf("unknown mode %q (want text, board or perft): %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Mode      Mode
	Verbosity int // 0=nothing, 1=every move, 2=move lists as well

	// Moves played before reading any input.
	Premoves []string

	Display *DisplayConfig
	Perft   *PerftConfig

	// Streams
	Input      io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       TextMode,
		Verbosity:  1,
		Display:    NewDisplayConfig(),
		Perft:      NewPerftConfig(),
		Input:      os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    io.Discard,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Mode < TextMode || c.Mode > PerftMode {
		return fmt.Errorf("mode %v: %w", c.Mode, errors.ErrInvalidConfig)
	}
	if c.Perft != nil {
		if err := c.Perft.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadPremoves reads a moves file: one move per line, blank lines and
// lines starting with '#' skipped.
func LoadPremoves(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening premoves file %s", path)
	}
	defer f.Close()

	moves, err := ReadPremoves(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading premoves file %s", path)
	}
	return moves, nil
}

// ReadPremoves reads moves in the LoadPremoves format from r.
func ReadPremoves(r io.Reader) ([]string, error) {
	var moves []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		moves = append(moves, line)
	}
	return moves, scanner.Err()
}

// defaultWorkers is the perft worker count when none is given.
func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
