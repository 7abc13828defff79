package rules

// SquareAttacked reports whether target is attacked by any piece of the
// attacking side on the given board. It scans all 64 squares, derives
// each attacker's pseudo-legal coverage with castling neutralized
// (castle destinations never count as attacks) and short-circuits on
// the first hit.
//
// The board parameter is whatever snapshot the caller hands in — in
// particular the legality filter calls this against a private scratch
// copy with the king already relocated, which is how king-move safety
// is decided.
func SquareAttacked(b *Board, target Square, by Color, ep Square) bool {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p := b[r][f]
			if p == NoPiece || p.Color() != by {
				continue
			}
			from := Square{Rank: r, File: f}

			// Pawns cover their diagonals whether or not anything
			// currently stands there; pushes never attack.
			if p.Type() == PieceTypePawn {
				for _, sq := range pawnAttackSquares(from, by) {
					if sq == target {
						return true
					}
				}
				continue
			}

			for _, group := range pieceMoves(b, from, ep, 0) {
				for _, sq := range group {
					if sq == target {
						return true
					}
				}
			}
		}
	}
	return false
}

// InCheck reports whether the side to move's king is attacked.
func InCheck(st *GameState) bool {
	king := st.Board.kingSquare(st.SideToMove)
	if king == NoSquare {
		return false
	}
	return SquareAttacked(&st.Board, king, st.SideToMove.Opponent(), st.EnPassant)
}
