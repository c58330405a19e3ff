package chess

// Board represents a chess board with all state needed for the game.
// Index 0 is a1, White's bottom-left square; index = row*8 + column.
type Board struct {
	// The 64 squares, rank 1 first.
	Squares [NumSquares]Space

	// Who has the next move.
	Turn Colour

	// Sides each colour may still castle towards.
	WhiteCastle CastleRights
	BlackCastle CastleRights
}

// NewBoard creates a new empty board with White to move and no castling rights.
func NewBoard() *Board {
	return &Board{Turn: White}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for i := range b.Squares {
		b.Squares[i] = Empty
	}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col] = Occupied(W(backRank[col]))
		b.Squares[BoardSize+col] = Occupied(W(Pawn))
		b.Squares[6*BoardSize+col] = Occupied(B(Pawn))
		b.Squares[7*BoardSize+col] = Occupied(B(backRank[col]))
	}

	b.Turn = White
	b.WhiteCastle = AllCastleRights
	b.BlackCastle = AllCastleRights
}

// Get returns the contents of sq.
func (b *Board) Get(sq Square) Space {
	return b.Squares[sq.Index]
}

// Set places space on sq.
func (b *Board) Set(sq Square, space Space) {
	b.Squares[sq.Index] = space
}

// Put places piece on the square named by text, e.g. "e4". It panics on bad
// text and exists for position setup.
func (b *Board) Put(text string, piece ColouredPiece) {
	b.Set(MustParseSquare(text), Occupied(piece))
}

// PieceAt returns the piece at c, or false if c is off the board or empty.
func (b *Board) PieceAt(c Coord) (ColouredPiece, bool) {
	if !ValidCoord(c) {
		return ColouredPiece{}, false
	}
	return b.Squares[SquareFromCoord(c).Index].Piece()
}

// CastleRights returns the rights still held by colour.
func (b *Board) CastleRights(colour Colour) CastleRights {
	if colour == White {
		return b.WhiteCastle
	}
	return b.BlackCastle
}

// SetCastleRights replaces the rights held by colour.
func (b *Board) SetCastleRights(colour Colour, rights CastleRights) {
	if colour == White {
		b.WhiteCastle = rights
	} else {
		b.BlackCastle = rights
	}
}

// FindKing returns the square of colour's king. A board may lack a king,
// so callers must handle false.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := Occupied(ColouredPiece{Kind: King, Colour: colour})
	for i, space := range b.Squares {
		if space == king {
			return SquareFromIndex(i), true
		}
	}
	return Square{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
