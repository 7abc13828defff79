package rules

// Apply plays a move on a copy of the state and returns the successor
// position. The move must come from LegalMoves for the given state;
// Apply performs no legality checking of its own. The input state is
// never mutated.
//
// Bookkeeping handled here:
//   - auto-queen promotion when a pawn reaches the last rank
//   - en-passant capture (the passed pawn leaves its own rank) and the
//     target square, set only for the ply after a two-square advance
//   - the rook relocation of a castle
//   - monotonic castling-rights clearing: a king move drops both of its
//     side's flags, a rook moving from or being captured on its home
//     corner drops that corner's flag
//   - halfmove clock (reset on pawn moves and captures) and fullmove
//     number (incremented after Black's move)
func Apply(st *GameState, m Move) GameState {
	next := *st
	b := &next.Board

	piece := b[m.From.Rank][m.From.File]
	target := b[m.To.Rank][m.To.File]

	if piece.Type() == PieceTypePawn || target != NoPiece {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	b[m.To.Rank][m.To.File] = piece
	b[m.From.Rank][m.From.File] = NoPiece

	if piece.Type() == PieceTypePawn {
		switch {
		case abs(m.From.Rank-m.To.Rank) == 2:
			next.EnPassant = Square{Rank: (m.From.Rank + m.To.Rank) / 2, File: m.From.File}
		case m.To == st.EnPassant:
			// The captured pawn sits beside the origin, not on the
			// landing square.
			b[m.From.Rank][m.To.File] = NoPiece
			next.EnPassant = NoSquare
		default:
			next.EnPassant = NoSquare
		}
		if m.To.Rank == 0 || m.To.Rank == 7 {
			b[m.To.Rank][m.To.File] = PieceFromType(piece.Color(), PieceTypeQueen)
		}
	} else {
		next.EnPassant = NoSquare
	}

	if piece.Type() == PieceTypeKing {
		if piece.Color() == White {
			next.Castling &^= CastleWhiteK | CastleWhiteQ
		} else {
			next.Castling &^= CastleBlackK | CastleBlackQ
		}
		if abs(m.From.File-m.To.File) == 2 {
			moveCastleRook(b, m)
		}
	}

	// A rook leaving its home corner, or anything capturing on one,
	// retires that corner's right.
	next.Castling &^= cornerRight(m.From)
	next.Castling &^= cornerRight(m.To)

	if next.SideToMove = st.SideToMove.Opponent(); next.SideToMove == White {
		next.FullmoveNumber++
	}
	return next
}

// moveCastleRook relocates the rook matching a two-square king move.
func moveCastleRook(b *Board, m Move) {
	rank := m.From.Rank
	if m.To.File == 6 { // kingside: rook h -> f
		b[rank][5] = b[rank][7]
		b[rank][7] = NoPiece
	} else { // queenside: rook a -> d
		b[rank][3] = b[rank][0]
		b[rank][0] = NoPiece
	}
}

// cornerRight maps a rook home corner to its castling flag.
func cornerRight(sq Square) CastlingRights {
	switch sq {
	case Square{Rank: 7, File: 0}:
		return CastleWhiteQ
	case Square{Rank: 7, File: 7}:
		return CastleWhiteK
	case Square{Rank: 0, File: 0}:
		return CastleBlackQ
	case Square{Rank: 0, File: 7}:
		return CastleBlackK
	}
	return 0
}
