package chess

import (
	errs "github.com/rrojas/gochess/internal/errors"
)

// Move is the structured form of a single half-move. A Move is only
// obtained from MoveBuilder.Build, which validates the notation rules,
// and is immutable afterwards.
type Move struct {
	// Origin square, possibly partial (disambiguation) or empty.
	Origin Coordinate

	// Destination square. Empty only for castling moves; otherwise
	// guaranteed complete by the builder.
	Destination Coordinate

	// The moving piece. Defaults to Pawn when absent from the notation.
	Piece Piece

	// Castling direction, mutually exclusive with capture and promotion.
	Castle Castle

	// The piece promoted to (NoPiece if not a promotion).
	Promotion Piece

	// Whether the move is a capture.
	Capture bool

	// Whether the move gives check or checkmate. At most one is set.
	Check     bool
	Checkmate bool
}

// MoveBuilder accumulates move fields and validates them in Build.
// Setters may be chained; Build is the only place errors surface.
type MoveBuilder struct {
	m Move
}

// NewMove returns an empty move builder.
func NewMove() *MoveBuilder {
	return &MoveBuilder{}
}

// SetOrigin sets the origin square.
func (b *MoveBuilder) SetOrigin(c Coordinate) *MoveBuilder {
	b.m.Origin = c
	return b
}

// SetDestination sets the destination square.
func (b *MoveBuilder) SetDestination(c Coordinate) *MoveBuilder {
	b.m.Destination = c
	return b
}

// SetPiece sets the moving piece.
func (b *MoveBuilder) SetPiece(p Piece) *MoveBuilder {
	b.m.Piece = p
	return b
}

// SetCastle sets the castling direction.
func (b *MoveBuilder) SetCastle(c Castle) *MoveBuilder {
	b.m.Castle = c
	return b
}

// SetPromotion sets the promotion piece.
func (b *MoveBuilder) SetPromotion(p Piece) *MoveBuilder {
	b.m.Promotion = p
	return b
}

// SetCapture sets the capture flag.
func (b *MoveBuilder) SetCapture(capture bool) *MoveBuilder {
	b.m.Capture = capture
	return b
}

// SetCheck sets the check flag.
func (b *MoveBuilder) SetCheck(check bool) *MoveBuilder {
	b.m.Check = check
	return b
}

// SetCheckmate sets the checkmate flag.
func (b *MoveBuilder) SetCheckmate(mate bool) *MoveBuilder {
	b.m.Checkmate = mate
	return b
}

// Build validates the accumulated fields and returns the finished move.
// Validation covers PGN notation rules only, never board legality:
//
//   - check and checkmate are mutually exclusive
//   - castling excludes capture and promotion (checkmate on a castle is
//     representable, e.g. a mating O-O)
//   - a present destination must be complete
//   - a move without a destination must be a castle
//   - an absent piece means a pawn
//   - a pawn capture must carry its origin file
func (b *MoveBuilder) Build() (*Move, error) {
	m := b.m

	if m.Check && m.Checkmate {
		return nil, errs.ErrImpossibleMove
	}

	if m.Castle != NoCastle && (m.Capture || m.Promotion != NoPiece) {
		return nil, errs.ErrImpossibleMove
	}

	if !m.Destination.IsEmpty() {
		if !m.Destination.IsComplete() {
			return nil, errs.ErrMissingDestination
		}
	} else if m.Castle == NoCastle {
		return nil, errs.ErrMissingMoveData
	}

	if m.Piece == NoPiece {
		m.Piece = Pawn
	}

	if m.Piece == Pawn && m.Capture && !m.Origin.File.IsSet() {
		return nil, errs.ErrMissingMoveData
	}

	return &m, nil
}

// IsCastle reports whether the move is a castling move.
func (m *Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// IsPromotion reports whether the move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// Clone returns a copy of the move.
func (m *Move) Clone() *Move {
	c := *m
	return &c
}
