package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// BoardFromDiagram builds a position from eight ranks of text, rank 8 first.
// Uppercase letters are White, lowercase Black, '.' an empty square; spaces
// are ignored. No castling rights are granted.
//
//	BoardFromDiagram(t, chess.Black, `
//		....k...
//		........
//		........
//		........
//		........
//		........
//		........
//		....K..R`)
func BoardFromDiagram(t testing.TB, turn chess.Colour, diagram string) *chess.Board {
	t.Helper()

	var ranks []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line != "" {
			ranks = append(ranks, line)
		}
	}
	if len(ranks) != chess.BoardSize {
		t.Fatalf("diagram has %d ranks, want %d", len(ranks), chess.BoardSize)
	}

	board := chess.NewBoard()
	board.Turn = turn
	for i, rank := range ranks {
		if len(rank) != chess.BoardSize {
			t.Fatalf("diagram rank %d is %q, want %d squares", chess.BoardSize-i, rank, chess.BoardSize)
		}
		row := chess.BoardSize - 1 - i
		for col := 0; col < chess.BoardSize; col++ {
			c := rank[col]
			if c == '.' {
				continue
			}
			kind, ok := chess.KindFromLetter(c)
			if !ok {
				t.Fatalf("diagram rank %d has unknown piece %q", chess.BoardSize-i, c)
			}
			colour := chess.Black
			if c >= 'A' && c <= 'Z' {
				colour = chess.White
			}
			sq := chess.SquareFromCoord(chess.Coord{Row: row, Column: col})
			board.Set(sq, chess.Occupied(chess.ColouredPiece{Kind: kind, Colour: colour}))
		}
	}
	return board
}

// Diagram renders board in the format BoardFromDiagram reads.
func Diagram(board *chess.Board) string {
	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.PieceAt(chess.Coord{Row: row, Column: col})
			if !ok {
				sb.WriteByte('.')
				continue
			}
			letter := piece.Kind.Letter()
			if piece.Colour == chess.White {
				letter -= 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
