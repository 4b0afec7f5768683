package chess

// Game is a PGN game record: the seven required tag pairs plus the move
// list. Moves are only added after a successful parse, so the list never
// holds partially-applied state.
type Game struct {
	Event  string
	Site   string
	Date   Date
	Round  Round
	White  string
	Black  string
	Result Result

	Moves MoveList
}

// NewGame returns a game record with today's date, an unknown round, and
// an unknown result.
func NewGame() *Game {
	return &Game{
		Date:  DateNow(),
		Round: RoundUnknown(),
	}
}

// TagPairs returns the seven required tag pairs in roster order.
func (g *Game) TagPairs() []TagPair {
	return []TagPair{
		{Name: "Event", Value: g.Event},
		{Name: "Site", Value: g.Site},
		{Name: "Date", Value: g.Date.String()},
		{Name: "Round", Value: g.Round.String()},
		{Name: "White", Value: g.White},
		{Name: "Black", Value: g.Black},
		{Name: "Result", Value: g.Result.String()},
	}
}

// SetTag sets a roster tag from its PGN string value. Unknown tag names
// are ignored; typed tags report their parse errors.
func (g *Game) SetTag(name, value string) error {
	switch name {
	case "Event":
		g.Event = value
	case "Site":
		g.Site = value
	case "Date":
		d, err := ParseDate(value)
		if err != nil {
			return err
		}
		g.Date = d
	case "Round":
		r, err := ParseRound(value)
		if err != nil {
			return err
		}
		g.Round = r
	case "White":
		g.White = value
	case "Black":
		g.Black = value
	case "Result":
		r, err := ParseResult(value)
		if err != nil {
			return err
		}
		g.Result = r
	}
	return nil
}

// PushMove appends a half-move to the move list.
func (g *Game) PushMove(m *Move) {
	g.Moves.Push(m)
}

// PopMove removes and returns the most recent half-move, or nil if the
// game has no moves.
func (g *Game) PopMove() *Move {
	return g.Moves.Pop()
}

// Turn returns whose move it is.
func (g *Game) Turn() Turn {
	return g.Moves.Turn()
}
