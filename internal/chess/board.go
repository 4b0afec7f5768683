package chess

// Occupant is a piece standing on a board square.
type Occupant struct {
	Colour Colour
	Piece  Piece
}

// Glyph returns the Unicode chess symbol for the occupant.
func (o Occupant) Glyph() rune {
	light := map[Piece]rune{
		Pawn: '♙', Knight: '♘', Bishop: '♗',
		Rook: '♖', Queen: '♕', King: '♔',
	}
	dark := map[Piece]rune{
		Pawn: '♟', Knight: '♞', Bishop: '♝',
		Rook: '♜', Queen: '♛', King: '♚',
	}
	if o.Colour == White {
		return light[o.Piece]
	}
	return dark[o.Piece]
}

// Board is a static 8x8 piece placement model. It carries no legality or
// move-application logic; the only mutation is a full reset to the
// starting position.
type Board struct {
	// squares[rank][file], 0-based from white's side.
	squares [BoardSize][BoardSize]*Occupant
}

// NewBoard returns a board set up in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the standard starting position.
func (b *Board) Reset() {
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			b.squares[r][f] = nil
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < BoardSize; f++ {
		b.squares[0][f] = &Occupant{Colour: White, Piece: backRank[f]}
		b.squares[1][f] = &Occupant{Colour: White, Piece: Pawn}
		b.squares[6][f] = &Occupant{Colour: Black, Piece: Pawn}
		b.squares[7][f] = &Occupant{Colour: Black, Piece: backRank[f]}
	}
}

// At returns the occupant of a square, or nil when the square is empty
// or the coordinate is incomplete.
func (b *Board) At(f File, r Rank) *Occupant {
	if !f.IsSet() || !r.IsSet() {
		return nil
	}
	return b.squares[r.Index()][f.Index()]
}

// AtIndex returns the occupant by 0-based rank and file indices.
func (b *Board) AtIndex(rank, file int) *Occupant {
	return b.squares[rank][file]
}
