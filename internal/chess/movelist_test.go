package chess

import (
	"testing"

	"github.com/rrojas/gochess/internal/testutil"
)

// testMove builds a simple pawn push for move-list tests.
func testMove(t *testing.T, file byte, rank byte) *Move {
	t.Helper()
	m, err := NewMove().SetDestination(Coord(File(file), Rank(rank))).Build()
	if err != nil {
		t.Fatalf("building test move: %v", err)
	}
	return m
}

func TestMoveListPushPairsMoves(t *testing.T) {
	var l MoveList
	m1 := testMove(t, 'e', '4')
	m2 := testMove(t, 'e', '5')
	m3 := testMove(t, 'd', '4')

	testutil.AssertEqual(t, l.Turn(), WhiteToMove)

	l.Push(m1)
	testutil.AssertEqual(t, l.Turn(), BlackToMove)
	testutil.AssertEqual(t, len(l.Pairs()), 1)

	l.Push(m2)
	testutil.AssertEqual(t, l.Turn(), WhiteToMove)
	testutil.AssertEqual(t, len(l.Pairs()), 1)
	testutil.AssertEqual(t, l.Pairs()[0].State(), PairComplete)
	testutil.AssertEqual(t, *l.Pairs()[0].White, *m1)
	testutil.AssertEqual(t, *l.Pairs()[0].Black, *m2)

	l.Push(m3)
	testutil.AssertEqual(t, len(l.Pairs()), 2)
	testutil.AssertEqual(t, l.Pairs()[1].State(), PairBlackToMove)
	testutil.AssertEqual(t, l.PlyCount(), 3)
}

func TestMoveListPopReversesPush(t *testing.T) {
	var l MoveList
	m1 := testMove(t, 'e', '4')
	m2 := testMove(t, 'e', '5')

	l.Push(m1)
	l.Push(m2)

	got := l.Pop()
	testutil.AssertEqual(t, *got, *m2)
	testutil.AssertEqual(t, l.Turn(), BlackToMove)
	testutil.AssertEqual(t, len(l.Pairs()), 1)

	got = l.Pop()
	testutil.AssertEqual(t, *got, *m1)
	testutil.AssertEqual(t, len(l.Pairs()), 0, "emptied pair must be dropped")
	testutil.AssertEqual(t, l.Turn(), WhiteToMove)

	if m := l.Pop(); m != nil {
		t.Errorf("Pop on empty list = %v, want nil", m)
	}
}

func TestMoveListOnlyLastPairIncomplete(t *testing.T) {
	var l MoveList
	for i := 0; i < 5; i++ {
		l.Push(testMove(t, 'e', '4'))
	}
	pairs := l.Pairs()
	for i := 0; i < len(pairs)-1; i++ {
		testutil.AssertEqual(t, pairs[i].State(), PairComplete, "pair %d", i)
	}
	testutil.AssertEqual(t, pairs[len(pairs)-1].State(), PairBlackToMove)
}

func TestMoveListPopReturnsClone(t *testing.T) {
	var l MoveList
	m := testMove(t, 'e', '4')
	l.Push(m)

	popped := l.Pop()
	popped.Capture = true
	testutil.AssertTrue(t, !m.Capture, "popped move aliases the pushed move")
}
