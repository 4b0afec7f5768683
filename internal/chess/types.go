// Package chess provides the core notation types: files, ranks, pieces,
// coordinates, moves, move lists, and the PGN game record.
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

// Turn indicates which side moves next.
type Turn int

const (
	WhiteToMove Turn = iota
	BlackToMove
)

// String returns the string representation of a turn.
func (t Turn) String() string {
	if t == WhiteToMove {
		return "White to move"
	}
	return "Black to move"
}

// File represents a chess file (column). Its value is the file character
// 'a'-'h'; the zero value means no file.
type File byte

// Rank represents a chess rank (row). Its value is the rank character
// '1'-'8'; the zero value means no rank.
type Rank byte

// Constants for the board's coordinate limits.
const (
	BoardSize = 8

	FirstFile File = 'a'
	LastFile  File = 'h'
	FirstRank Rank = '1'
	LastRank  Rank = '8'
)

// FileFromChar decodes a file from its character. It returns the zero
// File when c is not a file character, so callers can probe a character
// against several decoders without error handling.
func FileFromChar(c byte) File {
	if c >= byte(FirstFile) && c <= byte(LastFile) {
		return File(c)
	}
	return 0
}

// RankFromChar decodes a rank from its character, returning the zero
// Rank on no match.
func RankFromChar(c byte) Rank {
	if c >= byte(FirstRank) && c <= byte(LastRank) {
		return Rank(c)
	}
	return 0
}

// IsSet reports whether the file holds a value.
func (f File) IsSet() bool {
	return f != 0
}

// Index converts the file to a 0-based board index.
func (f File) Index() int {
	return int(f - FirstFile)
}

// String returns the file character, or the empty string if unset.
func (f File) String() string {
	if f == 0 {
		return ""
	}
	return string(byte(f))
}

// IsSet reports whether the rank holds a value.
func (r Rank) IsSet() bool {
	return r != 0
}

// Index converts the rank to a 0-based board index.
func (r Rank) Index() int {
	return int(r - FirstRank)
}

// String returns the rank character, or the empty string if unset.
func (r Rank) String() string {
	if r == 0 {
		return ""
	}
	return string(byte(r))
}

// Piece represents a chess piece kind.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceFromChar decodes a piece from its SAN letter. Pawns have no
// letter and are never decoded; the zero Piece is returned on no match.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoPiece
}

// Letter returns the SAN letter of a piece. The pawn letter 'P' is never
// written in move text but is provided for completeness.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// String returns the name of the piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Castle represents a castling direction.
type Castle int

const (
	NoCastle Castle = iota
	KingsideCastle
	QueensideCastle
)

// String returns the PGN token for the castle direction.
func (c Castle) String() string {
	switch c {
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	}
	return ""
}
