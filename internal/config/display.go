package config

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// Colour enables ANSI colours in the text renderer
	Colour bool

	// Flip draws the board from Black's side, rank 1 on top
	Flip bool

	// Coordinates prints file letters and rank numbers around the grid
	Coordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:      true,
		Coordinates: true,
	}
}
