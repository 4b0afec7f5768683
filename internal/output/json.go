package output

import (
	"encoding/json"
	"io"

	"github.com/rrojas/gochess/internal/chess"
)

// GameJSON is the JSON shape of a game record: the seven tags plus the
// SAN token for each half-move in order.
type GameJSON struct {
	Event  string   `json:"event"`
	Site   string   `json:"site"`
	Date   string   `json:"date"`
	Round  string   `json:"round"`
	White  string   `json:"white"`
	Black  string   `json:"black"`
	Result string   `json:"result"`
	Moves  []string `json:"moves"`
}

// GameToJSON converts a game record to its JSON shape.
func GameToJSON(g *chess.Game) *GameJSON {
	jg := &GameJSON{
		Event:  g.Event,
		Site:   g.Site,
		Date:   g.Date.String(),
		Round:  g.Round.String(),
		White:  g.White,
		Black:  g.Black,
		Result: g.Result.String(),
		Moves:  []string{},
	}
	for _, pair := range g.Moves.Pairs() {
		if pair.White != nil {
			jg.Moves = append(jg.Moves, FormatMove(pair.White))
		}
		if pair.Black != nil {
			jg.Moves = append(jg.Moves, FormatMove(pair.Black))
		}
	}
	return jg
}

// WriteJSON writes the indented JSON export of a game record.
func WriteJSON(w io.Writer, g *chess.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g))
}
