package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rrojas/gochess/internal/chess"
)

// FormatGame renders a game record in PGN export format: the seven tag
// pairs, a blank line, then the movetext wrapped to the default line
// length with the result token last.
func FormatGame(g *chess.Game) string {
	return FormatGameWidth(g, DefaultLineLength)
}

// FormatGameWidth renders a game record with a custom column budget.
func FormatGameWidth(g *chess.Game, width int) string {
	var sb strings.Builder

	for _, tag := range g.TagPairs() {
		sb.WriteString(tag.String())
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	lw := NewLineWriter(width)
	for i, pair := range g.Moves.Pairs() {
		if pair.White == nil {
			continue
		}
		lw.WriteToken(fmt.Sprintf("%d.", i+1))
		lw.WriteToken(FormatMove(pair.White))
		if pair.Black != nil {
			lw.WriteToken(FormatMove(pair.Black))
		}
	}
	// The result token terminates the movetext, on its own line when
	// appending would overflow the budget.
	lw.WriteToken(g.Result.String())
	sb.WriteString(lw.String())

	return sb.String()
}

// WriteGame writes the PGN export of a game followed by a newline.
func WriteGame(w io.Writer, g *chess.Game) error {
	_, err := fmt.Fprintln(w, FormatGame(g))
	return err
}
