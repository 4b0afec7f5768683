package parser

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rrojas/gochess/internal/chess"
	errs "github.com/rrojas/gochess/internal/errors"
)

// tagLineRegex matches a PGN tag pair line like [Event "F/S Return Match"].
var tagLineRegex = regexp.MustCompile(`^\[(\w+)\s+"(.*)"\]$`)

// ParseGame reads a single game in PGN export format: tag pair lines,
// a blank separator, then movetext. Move number tokens and the result
// token are skipped; every other token must parse as a move. Comments,
// variations, and NAGs are not supported.
func ParseGame(r io.Reader) (*chess.Game, error) {
	game := chess.NewGame()

	scanner := bufio.NewScanner(r)
	inMovetext := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !inMovetext {
			if m := tagLineRegex.FindStringSubmatch(line); m != nil {
				if err := game.SetTag(m[1], m[2]); err != nil {
					return nil, err
				}
				continue
			}
			inMovetext = true
		}

		for _, token := range strings.Fields(line) {
			if isMoveNumber(token) || chess.IsResultToken(token) {
				continue
			}
			// A move number glued to its move ("1.e4") splits here.
			if i := strings.LastIndexByte(token, '.'); i >= 0 && isMoveNumber(token[:i+1]) {
				token = token[i+1:]
				if token == "" {
					continue
				}
			}
			move, err := ParseMove(token)
			if err != nil {
				return nil, err
			}
			game.PushMove(move)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(err, "reading PGN")
	}

	return game, nil
}

// ParseGameFile loads a single-game PGN file.
func ParseGameFile(path string) (*chess.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	game, err := ParseGame(f)
	if err != nil {
		return nil, errs.Wrapf(err, "loading %s", path)
	}
	return game, nil
}

// isMoveNumber reports whether token is a move number indicator such as
// "1." or "23...".
func isMoveNumber(token string) bool {
	trimmed := strings.TrimRight(token, ".")
	if trimmed == token || trimmed == "" {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < '0' || trimmed[i] > '9' {
			return false
		}
	}
	return true
}
