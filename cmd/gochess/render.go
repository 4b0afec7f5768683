package main

import (
	"fmt"
	"strings"

	"github.com/rrojas/gochess/internal/chess"
)

const colourReset = "\x1b[0m"

// 256-colour palette for the board: muted green and tan squares, bright
// and dim piece glyphs.
const (
	lightSquareBg = 180
	darkSquareBg  = 64
	lightPieceFg  = 255
	darkPieceFg   = 240
)

func bg256(c int) string {
	return fmt.Sprintf("\x1b[48;5;%dm", c)
}

func fg256(c int) string {
	return fmt.Sprintf("\x1b[38;5;%dm", c)
}

// renderBoard draws the board from white's side, rank 8 at the top, with
// a rank label on each row and a file legend underneath. With colour off
// it falls back to plain glyphs and dots for empty squares.
func renderBoard(b *chess.Board, colour bool) string {
	var sb strings.Builder

	for r := chess.BoardSize - 1; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r+1)
		for f := 0; f < chess.BoardSize; f++ {
			occ := b.AtIndex(r, f)
			if colour {
				if (r+f)%2 == 0 {
					sb.WriteString(bg256(darkSquareBg))
				} else {
					sb.WriteString(bg256(lightSquareBg))
				}
				if occ != nil {
					if occ.Colour == chess.White {
						sb.WriteString(fg256(lightPieceFg))
					} else {
						sb.WriteString(fg256(darkPieceFg))
					}
				}
			}
			glyph := ' '
			if occ != nil {
				glyph = occ.Glyph()
			} else if !colour {
				glyph = '.'
			}
			fmt.Fprintf(&sb, " %c ", glyph)
		}
		if colour {
			sb.WriteString(colourReset)
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("   A  B  C  D  E  F  G  H\n")
	return sb.String()
}
