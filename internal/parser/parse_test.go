package parser

import (
	"testing"

	"github.com/rrojas/gochess/internal/chess"
	errs "github.com/rrojas/gochess/internal/errors"
	"github.com/rrojas/gochess/internal/testutil"
)

// coord is a shorthand for building test coordinates.
func coord(f, r byte) chess.Coordinate {
	return chess.Coord(chess.File(f), chess.Rank(r))
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  chess.Move
	}{
		{"e4", chess.Move{
			Piece:       chess.Pawn,
			Destination: coord('e', '4'),
		}},
		{"Nc3", chess.Move{
			Piece:       chess.Knight,
			Destination: coord('c', '3'),
		}},
		{"Bf4", chess.Move{
			Piece:       chess.Bishop,
			Destination: coord('f', '4'),
		}},
		{"Rb1", chess.Move{
			Piece:       chess.Rook,
			Destination: coord('b', '1'),
		}},
		{"Qd3", chess.Move{
			Piece:       chess.Queen,
			Destination: coord('d', '3'),
		}},
		{"Kf1", chess.Move{
			Piece:       chess.King,
			Destination: coord('f', '1'),
		}},
		{"O-O", chess.Move{
			Piece:  chess.King,
			Castle: chess.KingsideCastle,
		}},
		{"O-O-O", chess.Move{
			Piece:  chess.King,
			Castle: chess.QueensideCastle,
		}},
		{"exd5", chess.Move{
			Piece:       chess.Pawn,
			Origin:      coord('e', 0),
			Destination: coord('d', '5'),
			Capture:     true,
		}},
		{"Nxd5", chess.Move{
			Piece:       chess.Knight,
			Destination: coord('d', '5'),
			Capture:     true,
		}},
		{"Nec3", chess.Move{
			Piece:       chess.Knight,
			Origin:      coord('e', 0),
			Destination: coord('c', '3'),
		}},
		{"N5c3", chess.Move{
			Piece:       chess.Knight,
			Origin:      coord(0, '5'),
			Destination: coord('c', '3'),
		}},
		{"Nb5c3", chess.Move{
			Piece:       chess.Knight,
			Origin:      coord('b', '5'),
			Destination: coord('c', '3'),
		}},
		{"Nbxd5+", chess.Move{
			Piece:       chess.Knight,
			Origin:      coord('b', 0),
			Destination: coord('d', '5'),
			Capture:     true,
			Check:       true,
		}},
		{"e8=Q", chess.Move{
			Piece:       chess.Pawn,
			Destination: coord('e', '8'),
			Promotion:   chess.Queen,
		}},
		{"e8=Q+", chess.Move{
			Piece:       chess.Pawn,
			Destination: coord('e', '8'),
			Promotion:   chess.Queen,
			Check:       true,
		}},
		{"e8=Q#", chess.Move{
			Piece:       chess.Pawn,
			Destination: coord('e', '8'),
			Promotion:   chess.Queen,
			Checkmate:   true,
		}},
		{"exd8=Q", chess.Move{
			Piece:       chess.Pawn,
			Origin:      coord('e', 0),
			Destination: coord('d', '8'),
			Promotion:   chess.Queen,
			Capture:     true,
		}},
		{"exd8=Q#", chess.Move{
			Piece:       chess.Pawn,
			Origin:      coord('e', 0),
			Destination: coord('d', '8'),
			Promotion:   chess.Queen,
			Capture:     true,
			Checkmate:   true,
		}},
		{"e7+", chess.Move{
			Piece:       chess.Pawn,
			Destination: coord('e', '7'),
			Check:       true,
		}},
		{"e7#", chess.Move{
			Piece:       chess.Pawn,
			Destination: coord('e', '7'),
			Checkmate:   true,
		}},
		{"Ne4xd6#", chess.Move{
			Piece:       chess.Knight,
			Origin:      coord('e', '4'),
			Destination: coord('d', '6'),
			Capture:     true,
			Checkmate:   true,
		}},
		{"Rxe1", chess.Move{
			Piece:       chess.Rook,
			Destination: coord('e', '1'),
			Capture:     true,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			testutil.AssertNoError(t, err)
			if got != nil {
				testutil.AssertEqual(t, *got, tt.want)
			}
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", errs.ErrMissingMoveData},
		{"🤔", errs.ErrInvalidInputFormat},
		{"héllo", errs.ErrInvalidInputFormat},
		{"   ", errs.ErrInvalidMove},
		{"asdf;lkj", errs.ErrInvalidMove},
		{"O", errs.ErrInvalidMove},
		{"O-", errs.ErrInvalidMove},
		{"O-O-O-O", errs.ErrInvalidMove},
		{"Pe4", errs.ErrInvalidMove},
		{"Bk4", errs.ErrInvalidMove},
		{"BF0", errs.ErrInvalidMove},
		{"e8=", errs.ErrInvalidMove},
		{"e8=P", errs.ErrInvalidMove},
		// A capture with nothing after it has no destination.
		{"e4x", errs.ErrMissingMoveData},
		// A pawn capture without an origin file.
		{"xd5", errs.ErrMissingMoveData},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseMove(tt.input)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

// The castle phase hands an uninterpretable character straight to the
// check phase, so a mating castle is representable.
func TestParseCastleWithCheckMarkers(t *testing.T) {
	got, err := ParseMove("O-O#")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *got, chess.Move{
		Piece:     chess.King,
		Castle:    chess.KingsideCastle,
		Checkmate: true,
	})

	got, err = ParseMove("O-O-O+")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *got, chess.Move{
		Piece:  chess.King,
		Castle: chess.QueensideCastle,
		Check:  true,
	})
}

func TestParseMoveWhitespaceTrimmed(t *testing.T) {
	got, err := ParseMove("  e4  ")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Destination, coord('e', '4'))
}

func TestParseMoveErrorIncludesText(t *testing.T) {
	_, err := ParseMove("Pe4")
	testutil.AssertContains(t, err.Error(), "Pe4")
}
