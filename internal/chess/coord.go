package chess

// Coordinate identifies a board square, possibly partially. A partial
// coordinate (file-only or rank-only) carries disambiguation information
// in PGN notation; a destination square must always be complete.
type Coordinate struct {
	File File
	Rank Rank
}

// Coord builds a coordinate from a file and a rank, either of which may
// be the zero value.
func Coord(f File, r Rank) Coordinate {
	return Coordinate{File: f, Rank: r}
}

// IsEmpty reports whether neither file nor rank is set.
func (c Coordinate) IsEmpty() bool {
	return !c.File.IsSet() && !c.Rank.IsSet()
}

// IsPartial reports whether at least one of file and rank is set.
func (c Coordinate) IsPartial() bool {
	return c.File.IsSet() || c.Rank.IsSet()
}

// IsComplete reports whether both file and rank are set.
func (c Coordinate) IsComplete() bool {
	return c.File.IsSet() && c.Rank.IsSet()
}

// String returns the coordinate in algebraic form, omitting unset parts.
func (c Coordinate) String() string {
	return c.File.String() + c.Rank.String()
}
