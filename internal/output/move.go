// Package output renders moves and game records as PGN text and JSON.
package output

import (
	"strings"

	"github.com/rrojas/gochess/internal/chess"
)

// FormatMove renders a validated move as its canonical SAN string. It is
// total: every move that passed the builder is renderable. Parsing the
// returned string reproduces the move exactly.
func FormatMove(m *chess.Move) string {
	var sb strings.Builder

	if m.Castle != chess.NoCastle {
		sb.WriteString(m.Castle.String())
	} else {
		if m.Piece != chess.Pawn && m.Piece != chess.NoPiece {
			sb.WriteByte(m.Piece.Letter())
		}

		if m.Origin.File.IsSet() {
			sb.WriteByte(byte(m.Origin.File))
		}
		// Pawn moves never show an origin rank: the file alone is the
		// minimal disambiguation.
		if m.Origin.Rank.IsSet() && m.Piece != chess.Pawn {
			sb.WriteByte(byte(m.Origin.Rank))
		}

		if m.Capture {
			sb.WriteByte('x')
		}

		sb.WriteString(m.Destination.String())

		if m.Promotion != chess.NoPiece {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}

	if m.Checkmate {
		sb.WriteByte('#')
	} else if m.Check {
		sb.WriteByte('+')
	}

	return sb.String()
}
