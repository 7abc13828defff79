package rules

// GameStatus classifies the position for the side to move by combining
// the legal move set with the check test:
//
//	moves exist, king attacked   -> Check
//	moves exist, king safe       -> Ongoing
//	no moves,    king attacked   -> Checkmate
//	no moves,    king safe       -> Stalemate
//
// The halfmove-clock draw (clock >= 100) is tracked by the caller and
// takes precedence over re-classification for that ply; it is not
// computed here.
func GameStatus(st *GameState) Status {
	hasMoves := len(LegalMoves(st)) > 0
	inCheck := InCheck(st)

	switch {
	case hasMoves && inCheck:
		return Check
	case hasMoves:
		return Ongoing
	case inCheck:
		return Checkmate
	default:
		return Stalemate
	}
}
