// gochess is an interactive terminal chess notation recorder: it parses
// PGN moves, tracks the game record, and saves/loads PGN files.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rrojas/gochess/internal/chess"
	errs "github.com/rrojas/gochess/internal/errors"
	"github.com/rrojas/gochess/internal/output"
	"github.com/rrojas/gochess/internal/parser"
)

const programVersion = "0.1.0"

// session holds the state of one interactive game.
type session struct {
	board *chess.Board
	game  *chess.Game

	// Half-moves taken back by undo, most recent last. Any fresh move
	// invalidates the stack.
	redoStack []*chess.Move
}

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("gochess version %s\n", programVersion)
		os.Exit(0)
	}

	s := &session{
		board: chess.NewBoard(),
		game:  chess.NewGame(),
	}

	if *loadFile != "" {
		if err := s.load(*loadFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *loadFile, err)
			os.Exit(1)
		}
	}

	s.run(os.Stdin)
}

// run drives the read-eval-print loop until quit or end of input.
func (s *session) run(in *os.File) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print(renderBoard(s.board, !*noColor))
		fmt.Printf("[%s] >> ", s.game.Turn())

		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Println(err)
			continue
		}

		if quit := s.dispatch(cmd); quit {
			return
		}
	}
}

// dispatch executes one command, reporting true when the loop should end.
func (s *session) dispatch(cmd command) bool {
	switch cmd.kind {
	case cmdMove:
		move, err := parser.ParseMove(cmd.arg)
		if err != nil {
			fmt.Printf("Invalid move %q: %s\n", cmd.arg, describeMoveError(err))
			return false
		}
		s.game.PushMove(move)
		s.redoStack = nil
		fmt.Printf("Entered move: %s\n", output.FormatMove(move))

	case cmdUndo:
		undone := 0
		for i := 0; i < cmd.count; i++ {
			m := s.game.PopMove()
			if m == nil {
				break
			}
			s.redoStack = append(s.redoStack, m)
			undone++
		}
		fmt.Printf("Undid %d move(s)\n", undone)

	case cmdRedo:
		redone := 0
		for i := 0; i < cmd.count && len(s.redoStack) > 0; i++ {
			m := s.redoStack[len(s.redoStack)-1]
			s.redoStack = s.redoStack[:len(s.redoStack)-1]
			s.game.PushMove(m)
			redone++
		}
		fmt.Printf("Redid %d move(s)\n", redone)

	case cmdReset:
		fmt.Println("Resetting board.")
		s.board.Reset()
		s.game = chess.NewGame()
		s.redoStack = nil

	case cmdSave:
		if err := s.save(cmd.arg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", cmd.arg, err)
		} else {
			fmt.Printf("Saved game to %s\n", cmd.arg)
		}

	case cmdLoad:
		if err := s.load(cmd.arg); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", cmd.arg, err)
		} else {
			fmt.Printf("Loaded game from %s\n", cmd.arg)
		}

	case cmdQuit:
		fmt.Println("Quitting game.")
		return true

	case cmdHelp:
		fmt.Print(helpText())
	}
	return false
}

// save writes the game record to path, as JSON when the path ends in
// .json and as PGN otherwise.
func (s *session) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".json") {
		return output.WriteJSON(f, s.game)
	}
	if *lineWidth != output.DefaultLineLength {
		_, err = fmt.Fprintln(f, output.FormatGameWidth(s.game, *lineWidth))
		return err
	}
	return output.WriteGame(f, s.game)
}

// load replaces the current game with one read from a PGN file and puts
// the board back to the starting position.
func (s *session) load(path string) error {
	game, err := parser.ParseGameFile(path)
	if err != nil {
		return err
	}
	s.game = game
	s.board.Reset()
	s.redoStack = nil
	return nil
}

// describeMoveError maps the parser's error taxonomy to a short message
// for the prompt.
func describeMoveError(err error) string {
	switch {
	case errors.Is(err, errs.ErrInvalidInputFormat):
		return "moves must be plain ASCII notation"
	case errors.Is(err, errs.ErrMissingMoveData):
		return "the move is incomplete"
	case errors.Is(err, errs.ErrMissingDestination):
		return "the destination square needs both file and rank"
	case errors.Is(err, errs.ErrImpossibleMove):
		return "the move contradicts itself"
	case errors.Is(err, errs.ErrInvalidMove):
		return "not a recognizable PGN move"
	}
	return err.Error()
}
