package chess

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Coord is an arbitrary (row, column) pair. It may lie off the board while
// move offsets are being computed.
type Coord struct {
	Row    int
	Column int
}

// Add returns the coordinate shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Column: c.Column + dc}
}

// ValidCoord returns true if c lies on the board.
func ValidCoord(c Coord) bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Column >= 0 && c.Column < BoardSize
}

// Square is a coordinate known to be on the board, with its linear index.
type Square struct {
	Coord Coord
	Index int
}

// SquareFromIndex builds the square for index i.
// It panics if i is outside [0,63]; callers validate first.
func SquareFromIndex(i int) Square {
	if i < 0 || i >= NumSquares {
		panic(fmt.Sprintf("chess: invalid square index %d", i))
	}
	return Square{
		Coord: Coord{Row: i / BoardSize, Column: i % BoardSize},
		Index: i,
	}
}

// SquareFromCoord builds the square at c.
// It panics if c is off the board; callers validate first.
func SquareFromCoord(c Coord) Square {
	if !ValidCoord(c) {
		panic(fmt.Sprintf("chess: invalid coordinate row %d column %d", c.Row, c.Column))
	}
	return Square{Coord: c, Index: c.Row*BoardSize + c.Column}
}

// ParseSquare parses two characters of square text such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q must be two characters: %w", text, errors.ErrInvalidSquare)
	}
	file, rank := text[0], text[1]
	if file < FileBase || file >= FileBase+BoardSize {
		return Square{}, fmt.Errorf("invalid column letter %q: %w", file, errors.ErrInvalidSquare)
	}
	if rank < '0' || rank > '9' {
		return Square{}, fmt.Errorf("row %q was not a number: %w", rank, errors.ErrInvalidSquare)
	}
	row := int(rank) - RankBase
	if row < 0 || row >= BoardSize {
		return Square{}, fmt.Errorf("row %q was not 1 to 8: %w", rank, errors.ErrInvalidSquare)
	}
	return SquareFromCoord(Coord{Row: row, Column: int(file - FileBase)}), nil
}

// MustParseSquare is ParseSquare for literal square text; it panics on error.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(FileBase + s.Coord.Column), byte(RankBase + s.Coord.Row)})
}

// Move is a piece travelling from Start to End. Piece is the mover as it
// stands before the move. Moves compare equal only when all fields agree.
type Move struct {
	Piece ColouredPiece
	Start Square
	End   Square
}

// Inverse returns the move travelling back from End to Start.
func (m Move) Inverse() Move {
	return Move{Piece: m.Piece, Start: m.End, End: m.Start}
}

// String returns e.g. "White Knight g1-f3".
func (m Move) String() string {
	return fmt.Sprintf("%s %s-%s", m.Piece, m.Start, m.End)
}
