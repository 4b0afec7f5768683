// Package parser converts PGN move text into structured moves and loads
// single-game PGN files.
package parser

import (
	"strings"

	"github.com/rrojas/gochess/internal/chess"
	errs "github.com/rrojas/gochess/internal/errors"
)

// phase is the state of the move scanner. Phases run strictly left to
// right; a phase hands the current character to its successor when it
// cannot interpret it (one character of lookahead, no backtracking).
type phase int

const (
	phaseCastle phase = iota
	phasePiece
	phaseOrigin
	phaseCapture
	phaseDestination
	phasePromotion
	phaseChecks
	phaseDone
)

// ParseMove parses one SAN half-move (e.g. "Nbxd5+", "O-O-O", "e8=Q#")
// into a validated Move. Failures are classified by the sentinel errors
// in the errors package and carry the offending text.
func ParseMove(text string) (*chess.Move, error) {
	if len(text) == 0 {
		return nil, &errs.MoveError{Err: errs.ErrMissingMoveData, Text: text}
	}
	if !isASCII(text) {
		return nil, &errs.MoveError{Err: errs.ErrInvalidInputFormat, Text: text}
	}
	s := strings.TrimSpace(text)

	fail := func(err error) (*chess.Move, error) {
		return nil, &errs.MoveError{Err: err, Text: text}
	}

	b := chess.NewMove()
	ph := phaseCastle
	pos := 0
	castleCount := 0
	var file chess.File
	var rank chess.Rank

	at := func(i int) (byte, bool) {
		if i >= len(s) {
			return 0, false
		}
		return s[i], true
	}

scan:
	for {
		c, ok := at(pos)

		switch ph {
		case phaseCastle:
			finish := !ok
			if ok {
				switch c {
				case 'O':
					castleCount++
				case '-':
					// separator, swallowed
				default:
					finish = true
				}
			}
			if finish {
				switch {
				case castleCount == 3:
					b.SetCastle(chess.QueensideCastle).SetPiece(chess.King)
					ph = phaseChecks
					continue
				case castleCount == 2:
					b.SetCastle(chess.KingsideCastle).SetPiece(chess.King)
					ph = phaseChecks
					continue
				case castleCount == 0 && ok:
					ph = phasePiece
					continue
				default:
					return fail(errs.ErrInvalidMove)
				}
			}

		case phasePiece:
			if !ok {
				return fail(errs.ErrInvalidMove)
			}
			ph = phaseOrigin
			if p := chess.PieceFromChar(c); p != chess.NoPiece {
				b.SetPiece(p)
			} else {
				continue
			}

		case phaseOrigin, phaseDestination:
			// Greedily collect up to one file and one rank character, in
			// either order.
			complete := !ok
			if ok {
				if f := chess.FileFromChar(c); !file.IsSet() && f != 0 {
					file = f
				} else if r := chess.RankFromChar(c); !rank.IsSet() && r != 0 {
					rank = r
					pos++
					complete = true
				} else {
					complete = true
				}
			}
			if !complete {
				break
			}

			coord := chess.Coord(file, rank)
			next, more := at(pos)
			if !coord.IsEmpty() {
				if ph == phaseDestination {
					b.SetDestination(coord)
				} else if !more || next == '=' || next == '+' || next == '#' {
					// The only coordinate in the string, or one followed
					// directly by a promotion/check marker, is really the
					// destination square.
					b.SetDestination(coord)
				} else {
					b.SetOrigin(coord)
				}
			}
			if !more {
				break scan
			}
			file, rank = 0, 0
			if ph == phaseOrigin {
				switch next {
				case '=':
					ph = phasePromotion
				case '+', '#':
					ph = phaseChecks
				default:
					ph = phaseCapture
				}
			} else {
				ph = phasePromotion
			}
			continue

		case phaseCapture:
			if !ok {
				return fail(errs.ErrInvalidMove)
			}
			ph = phaseDestination
			if c != 'x' {
				continue
			}
			b.SetCapture(true)

		case phasePromotion:
			if !ok {
				break scan
			}
			ph = phaseChecks
			if c != '=' {
				continue
			}
			pos++
			pc, more := at(pos)
			if !more {
				return fail(errs.ErrInvalidMove)
			}
			p := chess.PieceFromChar(pc)
			if p == chess.NoPiece {
				return fail(errs.ErrInvalidMove)
			}
			b.SetPromotion(p)

		case phaseChecks:
			if !ok {
				break scan
			}
			ph = phaseDone
			switch c {
			case '+':
				b.SetCheck(true)
			case '#':
				b.SetCheckmate(true)
			default:
				return fail(errs.ErrInvalidMove)
			}

		case phaseDone:
			break scan
		}

		pos++
	}

	m, err := b.Build()
	if err != nil {
		return fail(err)
	}
	return m, nil
}

// isASCII reports whether s contains only ASCII bytes.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
