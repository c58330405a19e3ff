package notation

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestParseMove_Short(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantPiece chess.ColouredPiece
		wantStart string
		wantEnd   string
	}{
		{"knight to f3", "nf3", chess.W(chess.Knight), "g1", "f3"},
		{"knight to c3", "nc3", chess.W(chess.Knight), "b1", "c3"},
		{"upper case letter", "Nf3", chess.W(chess.Knight), "g1", "f3"},
		{"pawn double push", "pe4", chess.W(chess.Pawn), "e2", "e4"},
		{"pawn single push", "pa3", chess.W(chess.Pawn), "a2", "a3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := engine.NewInitialBoard()
			got, err := ParseMove(tt.text, board)
			testutil.AssertNoError(t, err)

			want := chess.Move{
				Piece: tt.wantPiece,
				Start: chess.MustParseSquare(tt.wantStart),
				End:   chess.MustParseSquare(tt.wantEnd),
			}
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestParseMove_UsesSideToMove(t *testing.T) {
	board := engine.NewInitialBoard()
	board.Turn = chess.Black

	got, err := ParseMove("nf6", board)
	testutil.AssertNoError(t, err)
	if got.Start != chess.MustParseSquare("g8") || got.Piece != chess.B(chess.Knight) {
		t.Errorf("ParseMove(nf6) = %v; want Black Knight g8-f6", got)
	}
}

func TestParseMove_Ambiguous(t *testing.T) {
	board := testutil.BoardFromDiagram(t, chess.White, `
		....k...
		........
		........
		........
		........
		........
		...N....
		....K.N.`)

	_, err := ParseMove("nf3", board)
	testutil.AssertErrorIs(t, err, errors.ErrAmbiguousMove)
	testutil.AssertContains(t, err.Error(), "ng1f3")

	got, err := ParseMove("ng1f3", board)
	testutil.AssertNoError(t, err)
	if got.Start != chess.MustParseSquare("g1") {
		t.Errorf("ParseMove(ng1f3).Start = %v; want g1", got.Start)
	}
}

func TestParseMove_Long(t *testing.T) {
	board := engine.NewInitialBoard()

	tests := []struct {
		name      string
		text      string
		wantPiece chess.ColouredPiece
	}{
		{"matching letter", "ng1f3", chess.W(chess.Knight)},
		// The occupant wins over a mismatched letter.
		{"mismatched letter", "qg1f3", chess.W(chess.Knight)},
		{"pawn", "pe2e4", chess.W(chess.Pawn)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.text, board)
			testutil.AssertNoError(t, err)
			if got.Piece != tt.wantPiece {
				t.Errorf("ParseMove(%q).Piece = %v; want %v", tt.text, got.Piece, tt.wantPiece)
			}
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"empty", "", errors.ErrInvalidNotation},
		{"too short", "nf", errors.ErrInvalidNotation},
		{"four characters", "e2e4", errors.ErrInvalidNotation},
		{"too long", "ng1f3x", errors.ErrInvalidNotation},
		{"non-ASCII", "né3", errors.ErrInvalidNotation},
		{"unknown piece", "xf3", errors.ErrInvalidNotation},
		{"bad file", "ni3", errors.ErrInvalidSquare},
		{"rank zero", "nf0", errors.ErrInvalidSquare},
		{"rank nine", "nf9", errors.ErrInvalidSquare},
		{"rank letter", "nfx", errors.ErrInvalidSquare},
		{"long bad destination", "ng1z3", errors.ErrInvalidSquare},
		{"no candidate", "nd4", errors.ErrNoCandidate},
		{"empty origin", "ne4e5", errors.ErrEmptySquare},
		{"long pawn too far", "pe2e5", errors.ErrIllegalMove},
		{"long rook blocked", "ra1a5", errors.ErrIllegalMove},
		{"long knight off pattern", "ng1g3", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := engine.NewInitialBoard()
			before := board.Copy()

			_, err := ParseMove(tt.text, board)
			if !stderrors.Is(err, tt.wantErr) {
				t.Errorf("ParseMove(%q) error = %v; want %v", tt.text, err, tt.wantErr)
			}
			testutil.AssertBoardEqual(t, board, before)
		})
	}
}

func TestFormatMove_RoundTrip(t *testing.T) {
	board := engine.NewInitialBoard()
	for _, move := range engine.PossibleMoves(board, board.Turn, false) {
		text := FormatMove(move)
		got, err := ParseMove(text, board)
		if err != nil {
			t.Errorf("ParseMove(FormatMove(%v)) failed: %v", move, err)
			continue
		}
		testutil.AssertEqual(t, got, move, "round trip of %s", text)
	}
}

func TestFormatMove(t *testing.T) {
	move := chess.Move{
		Piece: chess.B(chess.Queen),
		Start: chess.MustParseSquare("d8"),
		End:   chess.MustParseSquare("h4"),
	}
	if got := FormatMove(move); got != "qd8h4" {
		t.Errorf("FormatMove() = %q; want %q", got, "qd8h4")
	}
}
