// Package chess provides the core chess types: colours, pieces, squares,
// moves and the board itself.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single lowercase letter used for the piece in move text.
func (k PieceKind) Letter() byte {
	letters := []byte{'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter maps a piece letter (either case) to its kind.
func KindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	}
	return Pawn, false
}

// ColouredPiece is a piece of a given colour occupying a square.
type ColouredPiece struct {
	Kind   PieceKind
	Colour Colour
}

// W creates a white piece.
func W(kind PieceKind) ColouredPiece {
	return ColouredPiece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) ColouredPiece {
	return ColouredPiece{Kind: kind, Colour: Black}
}

// String returns e.g. "White Knight".
func (p ColouredPiece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Space is the content of one board square: empty or holding one piece.
type Space struct {
	piece    ColouredPiece
	occupied bool
}

// Empty is the unoccupied Space.
var Empty = Space{}

// Occupied returns a Space holding p.
func Occupied(p ColouredPiece) Space {
	return Space{piece: p, occupied: true}
}

// Piece returns the occupant, if any.
func (s Space) Piece() (ColouredPiece, bool) {
	return s.piece, s.occupied
}

// IsEmpty returns true if no piece occupies the space.
func (s Space) IsEmpty() bool {
	return !s.occupied
}

// String returns the occupant's name or "Empty".
func (s Space) String() string {
	if !s.occupied {
		return "Empty"
	}
	return s.piece.String()
}

// CastleSide names the wing a king castles towards.
type CastleSide int

const (
	KingSide CastleSide = iota
	QueenSide
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == KingSide {
		return "KingSide"
	}
	return "QueenSide"
}

// CastleRights is the set of sides a colour may still castle towards.
type CastleRights uint8

// AllCastleRights holds both sides.
const AllCastleRights = CastleRights(1<<KingSide | 1<<QueenSide)

// Has reports whether side is still in the set.
func (r CastleRights) Has(side CastleSide) bool {
	return r&(1<<side) != 0
}

// Without returns the set with side removed.
func (r CastleRights) Without(side CastleSide) CastleRights {
	return r &^ (1 << side)
}

// Outcome classifies the position for the side about to move.
type Outcome int

const (
	Playing Outcome = iota
	Checkmate
	Stalemate
)

// GameState is the result attached to the side to move after a move completes.
// Loser is only meaningful when Outcome is Checkmate.
type GameState struct {
	Outcome Outcome
	Loser   Colour
}

// Mated returns the checkmate state for the given losing colour.
func Mated(loser Colour) GameState {
	return GameState{Outcome: Checkmate, Loser: loser}
}

// String returns the string representation of a game state.
func (g GameState) String() string {
	switch g.Outcome {
	case Checkmate:
		return "Checkmate(" + g.Loser.String() + ")"
	case Stalemate:
		return "Stalemate"
	default:
		return "Playing"
	}
}

// Over returns true for the terminal states.
func (g GameState) Over() bool {
	return g.Outcome != Playing
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRow returns the back-rank row of colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRow returns the row colour's pawns start on.
func PawnRow(colour Colour) int {
	return HomeRow(colour) + ColourOffset(colour)
}

// PromotionRow returns the row on which colour's pawns promote.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}
