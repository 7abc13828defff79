package rules

import (
	"errors"
	"fmt"
)

// Named structural invariants checked by ValidateBoard. Callers match
// with errors.Is to find out which one a board violated.
var (
	ErrPawnOnBackRank  = errors.New("pawn on first or last rank")
	ErrKingCount       = errors.New("invalid number of kings")
	ErrPawnCount       = errors.New("invalid number of pawns")
	ErrPromotionBudget = errors.New("too many promoted pieces")
)

// ValidateBoard checks the structural invariants a position must
// satisfy before move generation can be trusted: no pawn on a back
// rank, exactly one king per color, at most eight pawns per color, and
// any piece counts above the natural caps (two rooks, knights and
// bishops, one queen) must fit within that color's promotion budget of
// 8 - pawns. It does not verify reachability from the starting
// position; passing is a necessary, not sufficient, condition.
func ValidateBoard(b *Board) error {
	var pawns, rooks, knights, bishops, queens, kings [2]int

	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p := b[r][f]
			if p == NoPiece {
				continue
			}
			c := p.Color()
			switch p.Type() {
			case PieceTypePawn:
				if r == 0 || r == 7 {
					return fmt.Errorf("%w: %s", ErrPawnOnBackRank, Square{Rank: r, File: f})
				}
				pawns[c]++
			case PieceTypeRook:
				rooks[c]++
			case PieceTypeKnight:
				knights[c]++
			case PieceTypeBishop:
				bishops[c]++
			case PieceTypeQueen:
				queens[c]++
			case PieceTypeKing:
				kings[c]++
			}
		}
	}

	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("%w: %d white, %d black", ErrKingCount, kings[White], kings[Black])
	}
	if pawns[White] > 8 || pawns[Black] > 8 {
		return fmt.Errorf("%w: %d white, %d black", ErrPawnCount, pawns[White], pawns[Black])
	}

	for _, c := range [2]Color{White, Black} {
		budget := 8 - pawns[c]
		for _, over := range []struct {
			count, cap int
		}{
			{rooks[c], 2},
			{knights[c], 2},
			{bishops[c], 2},
			{queens[c], 1},
		} {
			if over.count > over.cap {
				budget -= over.count - over.cap
			}
		}
		if budget < 0 {
			return fmt.Errorf("%w: %s exceeds promotion budget by %d", ErrPromotionBudget, c, -budget)
		}
	}
	return nil
}
