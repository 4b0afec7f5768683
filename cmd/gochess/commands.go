package main

import (
	"fmt"
	"strconv"
	"strings"
)

// commandKind identifies a REPL command.
type commandKind int

const (
	cmdMove commandKind = iota
	cmdUndo
	cmdRedo
	cmdReset
	cmdSave
	cmdLoad
	cmdQuit
	cmdHelp
)

// command is a parsed REPL input line.
type command struct {
	kind commandKind

	// Move text for cmdMove, file path for cmdSave/cmdLoad.
	arg string

	// Repeat count for cmdUndo/cmdRedo (defaults to 1).
	count int
}

// registeredCommand binds a command word to its kind and argument shape.
type registeredCommand struct {
	word     string
	kind     commandKind
	needsArg bool
	hasCount bool
	help     string
}

var commandTable = []registeredCommand{
	{word: "move", kind: cmdMove, needsArg: true, help: "move <san>   make a move (e.g. move e4, move O-O)"},
	{word: "undo", kind: cmdUndo, hasCount: true, help: "undo [n]     take back the last n half-moves"},
	{word: "redo", kind: cmdRedo, hasCount: true, help: "redo [n]     replay the last n undone half-moves"},
	{word: "reset", kind: cmdReset, help: "reset        start a new game"},
	{word: "save", kind: cmdSave, needsArg: true, help: "save <file>  save the game (PGN, or JSON for .json files)"},
	{word: "load", kind: cmdLoad, needsArg: true, help: "load <file>  load a PGN game"},
	{word: "quit", kind: cmdQuit, help: "quit         leave the game"},
	{word: "help", kind: cmdHelp, help: "help         show this message"},
}

// parseCommand parses one input line against the command table. A bare
// SAN token is accepted as shorthand for "move <token>".
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, fmt.Errorf("empty command")
	}

	for _, reg := range commandTable {
		if fields[0] != reg.word {
			continue
		}
		cmd := command{kind: reg.kind, count: 1}
		switch {
		case reg.needsArg:
			if len(fields) < 2 {
				return command{}, fmt.Errorf("%s: missing argument", reg.word)
			}
			cmd.arg = fields[1]
		case reg.hasCount:
			if len(fields) > 1 {
				n, err := strconv.Atoi(fields[1])
				if err != nil || n < 1 {
					return command{}, fmt.Errorf("%s: count must be a positive number", reg.word)
				}
				cmd.count = n
			}
		}
		return cmd, nil
	}

	// Anything else is treated as a move; the parser sorts out nonsense.
	return command{kind: cmdMove, arg: fields[0], count: 1}, nil
}

// helpText returns the usage text for the REPL.
func helpText() string {
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, reg := range commandTable {
		sb.WriteString("  ")
		sb.WriteString(reg.help)
		sb.WriteByte('\n')
	}
	return sb.String()
}
