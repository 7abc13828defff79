package rules

// Pseudo-legal move generation. Each generator returns the destinations
// for the piece on the origin square grouped per ray (sliders) or per
// offset (knight, king), ignoring whether the move exposes its own
// king. Keeping the groups separate lets the legality filter test
// "does this ray reach the king" and "can this ray be blocked" without
// re-deriving geometry.
//
// The origin square must be occupied; behavior is undefined otherwise.

// Ray directions as (rank, file) deltas. Rank 0 is the eighth rank, so
// White pawns advance toward smaller rank indices.
var (
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets = [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
)

// pieceMoves dispatches on the piece kind occupying from. Castling
// rights only matter for kings; every other kind ignores them.
func pieceMoves(b *Board, from Square, ep Square, rights CastlingRights) [][]Square {
	switch b.At(from).Type() {
	case PieceTypePawn:
		return pawnMoves(b, from, ep)
	case PieceTypeKnight:
		return offsetMoves(b, from, knightOffsets)
	case PieceTypeBishop:
		return slideMoves(b, from, bishopDirs[:])
	case PieceTypeRook:
		return slideMoves(b, from, rookDirs[:])
	case PieceTypeQueen:
		return slideMoves(b, from, append(rookDirs[:], bishopDirs[:]...))
	case PieceTypeKing:
		return kingMoves(b, from, rights)
	}
	return nil
}

// slideMoves walks each direction ray one square at a time, stopping at
// the first occupied square and including it only when it holds an
// opposing piece. Empty rays are dropped.
func slideMoves(b *Board, from Square, dirs [][2]int) [][]Square {
	us := b.At(from).Color()
	groups := make([][]Square, 0, len(dirs))
	for _, d := range dirs {
		var ray []Square
		sq := Square{Rank: from.Rank + d[0], File: from.File + d[1]}
		for sq.OnBoard() {
			p := b.At(sq)
			if p != NoPiece {
				if p.Color() != us {
					ray = append(ray, sq)
				}
				break
			}
			ray = append(ray, sq)
			sq.Rank += d[0]
			sq.File += d[1]
		}
		if len(ray) > 0 {
			groups = append(groups, ray)
		}
	}
	return groups
}

// offsetMoves builds singleton groups from a fixed offset set: on-board
// destinations not occupied by a same-color piece.
func offsetMoves(b *Board, from Square, offsets [8][2]int) [][]Square {
	us := b.At(from).Color()
	groups := make([][]Square, 0, 8)
	for _, d := range offsets {
		sq := Square{Rank: from.Rank + d[0], File: from.File + d[1]}
		if !sq.OnBoard() {
			continue
		}
		if p := b.At(sq); p == NoPiece || p.Color() != us {
			groups = append(groups, []Square{sq})
		}
	}
	return groups
}

// pawnMoves returns exactly two groups: [attack, regular]. The attack
// group holds diagonal capture destinations (an opposing piece or the
// en-passant target); the regular group holds forward pushes onto empty
// squares. The split matters because attack squares threaten the enemy
// king while push squares never threaten anything.
func pawnMoves(b *Board, from Square, ep Square) [][]Square {
	us := b.At(from).Color()
	dir, home := -1, 6 // White advances toward rank index 0
	if us == Black {
		dir, home = 1, 1
	}

	var attack, regular []Square

	one := Square{Rank: from.Rank + dir, File: from.File}
	if one.OnBoard() && b.At(one) == NoPiece {
		regular = append(regular, one)
		if from.Rank == home {
			two := Square{Rank: from.Rank + 2*dir, File: from.File}
			if b.At(two) == NoPiece {
				regular = append(regular, two)
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		sq := Square{Rank: from.Rank + dir, File: from.File + df}
		if !sq.OnBoard() {
			continue
		}
		if p := b.At(sq); p != NoPiece && p.Color() != us {
			attack = append(attack, sq)
		} else if sq == ep {
			attack = append(attack, sq)
		}
	}

	return [][]Square{attack, regular}
}

// pawnAttackSquares returns the two diagonal squares a pawn of the
// given color covers from the origin, regardless of what stands there.
// The attack oracle uses this so that pawn coverage of empty squares
// (castle transit squares, hypothetical king destinations) is seen.
func pawnAttackSquares(from Square, us Color) []Square {
	dir := -1
	if us == Black {
		dir = 1
	}
	var out []Square
	for _, df := range [2]int{-1, 1} {
		sq := Square{Rank: from.Rank + dir, File: from.File + df}
		if sq.OnBoard() {
			out = append(out, sq)
		}
	}
	return out
}

// kingMoves produces the eight singleton offset groups plus, when any
// structural castling precondition set holds, one extra group with the
// castle destinations. The castle group deliberately ignores checks and
// attacked transit squares; the legality filter resolves those.
func kingMoves(b *Board, from Square, rights CastlingRights) [][]Square {
	groups := offsetMoves(b, from, kingOffsets)
	if castles := castleDestinations(b, from, rights); len(castles) > 0 {
		groups = append(groups, castles)
	}
	return groups
}

// castleDestinations checks the structural preconditions only: the
// rights flag is set, the king sits on its home square, the squares
// strictly between king and rook are empty, and the rook occupies its
// home corner.
func castleDestinations(b *Board, from Square, rights CastlingRights) []Square {
	var out []Square
	switch b.At(from) {
	case WhiteKing:
		if from != (Square{Rank: 7, File: 4}) {
			return nil
		}
		if rights&CastleWhiteK != 0 &&
			b[7][5] == NoPiece && b[7][6] == NoPiece && b[7][7] == WhiteRook {
			out = append(out, Square{Rank: 7, File: 6})
		}
		if rights&CastleWhiteQ != 0 &&
			b[7][1] == NoPiece && b[7][2] == NoPiece && b[7][3] == NoPiece && b[7][0] == WhiteRook {
			out = append(out, Square{Rank: 7, File: 2})
		}
	case BlackKing:
		if from != (Square{Rank: 0, File: 4}) {
			return nil
		}
		if rights&CastleBlackK != 0 &&
			b[0][5] == NoPiece && b[0][6] == NoPiece && b[0][7] == BlackRook {
			out = append(out, Square{Rank: 0, File: 6})
		}
		if rights&CastleBlackQ != 0 &&
			b[0][1] == NoPiece && b[0][2] == NoPiece && b[0][3] == NoPiece && b[0][0] == BlackRook {
			out = append(out, Square{Rank: 0, File: 2})
		}
	}
	return out
}
