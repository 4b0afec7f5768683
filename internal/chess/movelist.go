package chess

// PairState describes how far a move pair has been filled.
type PairState int

const (
	PairWhiteToMove PairState = iota // no half-moves yet
	PairBlackToMove                  // white present, black absent
	PairComplete                     // both present
)

// MovePair holds the white and black half-moves sharing a move number.
type MovePair struct {
	White *Move
	Black *Move
}

// State returns the fill state of the pair.
func (p *MovePair) State() PairState {
	switch {
	case p.White == nil:
		return PairWhiteToMove
	case p.Black == nil:
		return PairBlackToMove
	default:
		return PairComplete
	}
}

// add places the move in the first free half-move slot. It returns false
// when the pair is already complete.
func (p *MovePair) add(m *Move) bool {
	switch {
	case p.White == nil:
		p.White = m
	case p.Black == nil:
		p.Black = m
	default:
		return false
	}
	return true
}

// remove takes back the most recent half-move of the pair, or nil when
// the pair is empty.
func (p *MovePair) remove() *Move {
	if p.Black != nil {
		m := p.Black
		p.Black = nil
		return m
	}
	if p.White != nil {
		m := p.White
		p.White = nil
		return m
	}
	return nil
}

// MoveList is an ordered sequence of move pairs. Only the final pair may
// be incomplete; Push and Pop are the only mutators and both preserve
// that invariant.
type MoveList struct {
	pairs []MovePair
}

// Push appends a half-move, filling the black slot of the last pair or
// opening a new pair.
func (l *MoveList) Push(m *Move) {
	if n := len(l.pairs); n > 0 && l.pairs[n-1].State() != PairComplete {
		l.pairs[n-1].add(m)
		return
	}
	l.pairs = append(l.pairs, MovePair{White: m})
}

// Pop removes and returns the most recently added half-move, dropping
// any pair it empties. It returns nil when the list is exhausted. The
// loop tolerates a trailing empty pair even though Push/Pop never leave
// one behind.
func (l *MoveList) Pop() *Move {
	for len(l.pairs) > 0 {
		last := &l.pairs[len(l.pairs)-1]
		m := last.remove()
		if last.State() == PairWhiteToMove {
			l.pairs = l.pairs[:len(l.pairs)-1]
		}
		if m != nil {
			return m.Clone()
		}
	}
	return nil
}

// Turn derives whose move it is from the state of the last pair.
func (l *MoveList) Turn() Turn {
	if n := len(l.pairs); n > 0 && l.pairs[n-1].State() == PairBlackToMove {
		return BlackToMove
	}
	return WhiteToMove
}

// Pairs returns the underlying move pairs in order.
func (l *MoveList) Pairs() []MovePair {
	return l.pairs
}

// PlyCount returns the number of half-moves in the list.
func (l *MoveList) PlyCount() int {
	count := 0
	for i := range l.pairs {
		if l.pairs[i].White != nil {
			count++
		}
		if l.pairs[i].Black != nil {
			count++
		}
	}
	return count
}
