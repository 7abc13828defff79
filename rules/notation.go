package rules

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrNotation reports a malformed algebraic square or move string.
var ErrNotation = errors.New("invalid notation")

// ParseSquare converts algebraic notation ("e2") to a Square. The rank
// digit counts from White's side, so "a8" is {0, 0} and "h1" is {7, 7}.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrNotation, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrNotation, s)
	}
	return Square{Rank: 8 - int(rank-'0'), File: int(file - 'a')}, nil
}

// String renders the square in algebraic notation, or "-" when off the
// board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File), '0' + byte(8-s.Rank)})
}

// ParseMove converts "e2-e4" to a Move.
func ParseMove(s string) (Move, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrNotation, s)
	}
	f, err := ParseSquare(from)
	if err != nil {
		return Move{}, err
	}
	t, err := ParseSquare(to)
	if err != nil {
		return Move{}, err
	}
	return Move{From: f, To: t}, nil
}

// String renders the move as "e2-e4".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// SortMoves orders a move set by notation, in place. LegalMoves returns
// an unordered set; callers that present moves sort them first.
func SortMoves(moves []Move) {
	slices.SortFunc(moves, func(a, b Move) bool {
		return a.String() < b.String()
	})
}

// MoveStrings renders a move set as sorted notation strings.
func MoveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}
