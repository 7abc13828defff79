package rules

// Perft counts the leaf positions of the legal move tree to the given
// depth. Promotions collapse onto the queen, so totals diverge from
// generators that branch per promotion piece once pawns reach the back
// rank.
func Perft(st *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(st)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := Apply(st, m)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// PerftDivide returns the node count beneath each root move.
func PerftDivide(st *GameState, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	for _, m := range LegalMoves(st) {
		next := Apply(st, m)
		div[m] = Perft(&next, depth-1)
	}
	return div
}
