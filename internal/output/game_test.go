package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rrojas/gochess/internal/chess"
	"github.com/rrojas/gochess/internal/parser"
	"github.com/rrojas/gochess/internal/testutil"
)

// scholarsMate returns a short finished game for formatting tests.
func scholarsMate(t *testing.T) *chess.Game {
	t.Helper()
	g := chess.NewGame()
	g.Event = "Casual Game"
	g.Site = "Home"
	g.Date = chess.Date{Year: 2024, Month: 3, Day: 9}
	g.Round = chess.Round{Numbers: []int{1}}
	g.White = "Alice"
	g.Black = "Bob"
	g.Result = chess.WhiteWin

	for _, text := range []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"} {
		m, err := parser.ParseMove(text)
		if err != nil {
			t.Fatalf("parsing %q: %v", text, err)
		}
		g.PushMove(m)
	}
	return g
}

func TestFormatGame(t *testing.T) {
	want := `[Event "Casual Game"]
[Site "Home"]
[Date "2024.03.09"]
[Round "1"]
[White "Alice"]
[Black "Bob"]
[Result "1-0"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0`

	testutil.AssertEqual(t, FormatGame(scholarsMate(t)), want)
}

func TestFormatGameEmpty(t *testing.T) {
	g := chess.NewGame()
	g.Date = chess.Date{}

	want := `[Event ""]
[Site ""]
[Date "????.??.??"]
[Round "?"]
[White ""]
[Black ""]
[Result "*"]

*`

	testutil.AssertEqual(t, FormatGame(g), want)
}

func TestFormatGameWrapsLongMovetext(t *testing.T) {
	g := chess.NewGame()
	// Shuffle knights long enough to overflow a single line.
	for i := 0; i < 30; i++ {
		for _, text := range []string{"Nf3", "Nf6"} {
			m, err := parser.ParseMove(text)
			testutil.AssertNoError(t, err)
			g.PushMove(m)
		}
	}

	out := FormatGame(g)
	parts := strings.SplitN(out, "\n\n", 2)
	if len(parts) != 2 {
		t.Fatalf("missing blank separator line in %q", out)
	}
	movetext := parts[1]

	lines := strings.Split(movetext, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped movetext, got a single line: %q", movetext)
	}
	for i, line := range lines {
		if len(line) > DefaultLineLength {
			t.Errorf("line %d exceeds %d columns: %q", i, DefaultLineLength, line)
		}
	}

	// Wrapping must not reorder or drop tokens.
	tokens := strings.Fields(movetext)
	testutil.AssertEqual(t, tokens[0], "1.")
	testutil.AssertEqual(t, tokens[len(tokens)-1], "*")
	testutil.AssertEqual(t, len(tokens), 30*3+1)
}

func TestFormatGameResultOnOwnLineWhenFull(t *testing.T) {
	g := scholarsMate(t)
	// A width that exactly fits "4. Qxf7#" cannot take the trailing
	// result, which moves to its own line.
	out := FormatGameWidth(g, 8)
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	testutil.AssertEqual(t, last, "1-0")
}

func TestWriteGameAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteGame(&buf, scholarsMate(t)))
	testutil.AssertTrue(t, strings.HasSuffix(buf.String(), "1-0\n"))
}

// A formatted game must load back with identical tags and moves.
func TestFormatGameParseGameRoundTrip(t *testing.T) {
	g := scholarsMate(t)

	loaded, err := parser.ParseGame(strings.NewReader(FormatGame(g)))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, loaded.TagPairs(), g.TagPairs())
	testutil.AssertEqual(t, loaded.Moves.PlyCount(), g.Moves.PlyCount())
	testutil.AssertEqual(t, loaded.Moves.Pairs(), g.Moves.Pairs())
}

func TestGameToJSON(t *testing.T) {
	jg := GameToJSON(scholarsMate(t))
	testutil.AssertEqual(t, jg.White, "Alice")
	testutil.AssertEqual(t, jg.Result, "1-0")
	testutil.AssertEqual(t, jg.Moves, []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteJSON(&buf, scholarsMate(t)))
	testutil.AssertContains(t, buf.String(), `"moves": [`)
	testutil.AssertContains(t, buf.String(), `"date": "2024.03.09"`)
}
