// Package notation converts between move text and engine moves.
//
// Two forms are accepted: "nf3" names a piece letter and a destination, and
// the origin is found on the board; "ng1f3" names both squares. Piece letters
// are p, n, b, r, q and k in either case.
package notation

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
)

const (
	shortLen = 3
	longLen  = 5
)

// ParseMove resolves text against board. The board is only read.
func ParseMove(text string, board *chess.Board) (chess.Move, error) {
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7f {
			return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidNotation, Input: text, Got: "non-ASCII text"}
		}
	}

	switch len(text) {
	case shortLen:
		return parseShort(text, board)
	case longLen:
		return parseLong(text, board)
	}
	return chess.Move{}, &errors.ParseError{
		Err:      errors.ErrInvalidNotation,
		Input:    text,
		Expected: "3 or 5 characters",
		Got:      fmt.Sprintf("%d", len(text)),
	}
}

// parseShort handles "nf3": the side to move's only piece of that kind able
// to reach the square is the origin.
func parseShort(text string, board *chess.Board) (chess.Move, error) {
	kind, err := pieceKind(text)
	if err != nil {
		return chess.Move{}, err
	}
	end, err := chess.ParseSquare(text[1:3])
	if err != nil {
		return chess.Move{}, &errors.ParseError{Err: err, Input: text}
	}

	want := chess.ColouredPiece{Kind: kind, Colour: board.Turn}
	var candidates []chess.Square
	for i, space := range board.Squares {
		if space != chess.Occupied(want) {
			continue
		}
		for _, m := range engine.PieceMoves(board, want, i, false) {
			if m.End == end {
				candidates = append(candidates, m.Start)
				break
			}
		}
	}

	switch len(candidates) {
	case 0:
		return chess.Move{}, fmt.Errorf("%s to %s: %w", want, end, errors.ErrNoCandidate)
	case 1:
	default:
		return chess.Move{}, fmt.Errorf("%s to %s from %v, use the form %c%s%s: %w",
			want, end, candidates, kind.Letter(), candidates[0], end, errors.ErrAmbiguousMove)
	}

	piece, _ := board.Get(candidates[0]).Piece()
	move := chess.Move{Piece: piece, Start: candidates[0], End: end}
	if !engine.ValidateMove(board, move) {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text}
	}
	return move, nil
}

// parseLong handles "ng1f3". The letter must name a piece, but the piece on
// the origin square is the one moved, and it must be able to reach the
// destination.
func parseLong(text string, board *chess.Board) (chess.Move, error) {
	if _, err := pieceKind(text); err != nil {
		return chess.Move{}, err
	}
	start, err := chess.ParseSquare(text[1:3])
	if err != nil {
		return chess.Move{}, &errors.ParseError{Err: err, Input: text}
	}
	end, err := chess.ParseSquare(text[3:5])
	if err != nil {
		return chess.Move{}, &errors.ParseError{Err: err, Input: text}
	}

	piece, ok := board.Get(start).Piece()
	if !ok {
		return chess.Move{}, fmt.Errorf("square %s: %w", start, errors.ErrEmptySquare)
	}
	move := chess.Move{Piece: piece, Start: start, End: end}
	if !engine.ValidateMove(board, move) {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text}
	}
	return move, nil
}

func pieceKind(text string) (chess.PieceKind, error) {
	kind, ok := chess.KindFromLetter(text[0])
	if !ok {
		return chess.Pawn, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    text,
			Expected: "piece letter",
			Got:      fmt.Sprintf("%q", text[0]),
		}
	}
	return kind, nil
}

// FormatMove renders move in the long form, e.g. "ng1f3".
func FormatMove(move chess.Move) string {
	return string(move.Piece.Kind.Letter()) + move.Start.String() + move.End.String()
}
