package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

// destinations returns the sorted end squares of moves.
func destinations(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.End.String())
	}
	sort.Strings(out)
	return out
}

func TestPieceMoves_InitialPosition(t *testing.T) {
	board := NewInitialBoard()

	tests := []struct {
		square string
		want   []string
	}{
		{"b1", []string{"a3", "c3"}},
		{"g1", []string{"f3", "h3"}},
		{"e2", []string{"e3", "e4"}},
		{"a2", []string{"a3", "a4"}},
		{"b8", []string{"a6", "c6"}},
		{"d7", []string{"d5", "d6"}},
		{"a1", []string{}},
		{"c1", []string{}},
		{"d1", []string{}},
		{"e1", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq := chess.MustParseSquare(tt.square)
			piece, _ := board.Get(sq).Piece()
			got := destinations(PieceMoves(board, piece, sq.Index, false))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPossibleMoves_InitialCount(t *testing.T) {
	board := NewInitialBoard()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if got := len(PossibleMoves(board, colour, false)); got != 20 {
			t.Errorf("len(PossibleMoves(%v)) = %d; want 20", colour, got)
		}
	}
}

func TestPieceMoves_Sliders(t *testing.T) {
	board := testutil.BoardFromDiagram(t, chess.White, `
		........
		........
		........
		...p....
		........
		........
		.P......
		...R....`)

	tests := []struct {
		name   string
		square string
		piece  chess.ColouredPiece
		want   []string
	}{
		{
			name:   "rook blocked by enemy captures it",
			square: "d1", piece: chess.W(chess.Rook),
			want: []string{"a1", "b1", "c1", "d2", "d3", "d4", "d5", "e1", "f1", "g1", "h1"},
		},
		{
			name:   "bishop blocked by own pawn",
			square: "c1", piece: chess.W(chess.Bishop),
			want: []string{"d2", "e3", "f4", "g5", "h6"},
		},
		{
			name:   "queen from the corner",
			square: "a1", piece: chess.W(chess.Queen),
			want: []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scratch := board.Copy()
			sq := chess.MustParseSquare(tt.square)
			scratch.Set(sq, chess.Occupied(tt.piece))
			got := destinations(PieceMoves(scratch, tt.piece, sq.Index, false))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPieceMoves_Knight(t *testing.T) {
	board := testutil.BoardFromDiagram(t, chess.White, `
		........
		........
		........
		........
		...N....
		.....P..
		........
		........`)

	sq := chess.MustParseSquare("d4")
	got := destinations(PieceMoves(board, chess.W(chess.Knight), sq.Index, false))
	want := []string{"b3", "b5", "c2", "c6", "e2", "e6", "f5"}
	testutil.AssertEqual(t, got, want)
}

func TestPieceMoves_Pawn(t *testing.T) {
	tests := []struct {
		name    string
		turn    chess.Colour
		diagram string
		square  string
		want    []string
	}{
		{
			name: "blocked double push",
			turn: chess.White,
			diagram: `
				........
				........
				........
				........
				....n...
				........
				....P...
				........`,
			square: "e2",
			want:   []string{"e3"},
		},
		{
			name: "blocked single push stops double",
			turn: chess.White,
			diagram: `
				........
				........
				........
				........
				........
				....n...
				....P...
				........`,
			square: "e2",
			want:   []string{},
		},
		{
			name: "captures both ways",
			turn: chess.Black,
			diagram: `
				........
				........
				........
				...p....
				..N.B...
				........
				........
				........`,
			square: "d5",
			want:   []string{"c4", "d4", "e4"},
		},
		{
			name: "no capture of own piece",
			turn: chess.Black,
			diagram: `
				........
				...p....
				..p.....
				........
				........
				........
				........
				........`,
			square: "d7",
			want:   []string{"d5", "d6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardFromDiagram(t, tt.turn, tt.diagram)
			sq := chess.MustParseSquare(tt.square)
			piece, _ := board.Get(sq).Piece()
			got := destinations(PieceMoves(board, piece, sq.Index, false))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPieceMoves_KingCastleTargets(t *testing.T) {
	board := testutil.BoardFromDiagram(t, chess.White, `
		....k...
		........
		........
		........
		........
		........
		...PPP..
		R...K..R`)
	sq := chess.MustParseSquare("e1")

	withCastle := destinations(PieceMoves(board, chess.W(chess.King), sq.Index, false))
	testutil.AssertEqual(t, withCastle, []string{"d1", "f1"})

	board.WhiteCastle = chess.AllCastleRights
	withCastle = destinations(PieceMoves(board, chess.W(chess.King), sq.Index, false))
	testutil.AssertEqual(t, withCastle, []string{"c1", "d1", "f1", "g1"})

	excluded := destinations(PieceMoves(board, chess.W(chess.King), sq.Index, true))
	testutil.AssertEqual(t, excluded, []string{"d1", "f1"})
}

func TestPieceMoves_InvalidOriginPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("PieceMoves(64) did not panic")
		}
	}()
	PieceMoves(NewInitialBoard(), chess.W(chess.Pawn), chess.NumSquares, false)
}
