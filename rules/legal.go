package rules

import "sync"

// genEntry is one occupied square's pseudo-legal output.
type genEntry struct {
	from   Square
	piece  Piece
	groups [][]Square
}

// generateAll runs the pseudo-legal generators for every occupied
// square. The scan fans out one worker per rank, each writing only its
// own partial slice; the partials are then concatenated in rank order.
// No shared accumulator is mutated concurrently, so the result is
// identical to a sequential scan.
func generateAll(b *Board, ep Square, rights CastlingRights) []genEntry {
	var perRank [8][]genEntry
	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			for f := 0; f < 8; f++ {
				p := b[r][f]
				if p == NoPiece {
					continue
				}
				from := Square{Rank: r, File: f}
				perRank[r] = append(perRank[r], genEntry{
					from:   from,
					piece:  p,
					groups: pieceMoves(b, from, ep, rights),
				})
			}
		}(r)
	}
	wg.Wait()

	var all []genEntry
	for r := 0; r < 8; r++ {
		all = append(all, perRank[r]...)
	}
	return all
}

// attackPath records one way an opposing piece reaches the king. For
// sliders the path is the ray from the attacker up to and including the
// king's square, which is exactly the set of squares a blocking move
// may land on. Knight and pawn attacks cannot be blocked, so their path
// is empty and only capturing the attacker resolves them.
type attackPath struct {
	attacker Square
	path     []Square
}

// LegalMoves enumerates every legal move for the side to move. The
// result is a set: callers that need a stable order sort it themselves.
func LegalMoves(st *GameState) []Move {
	board := &st.Board
	us := st.SideToMove

	entries := generateAll(board, st.EnPassant, st.Castling)

	king := board.kingSquare(us)

	// Collect candidate moves and the opposing attack paths that hit
	// the king.
	var candidates []Move
	var attacks []attackPath
	for _, e := range entries {
		if e.piece.Color() != us {
			for _, group := range e.groups {
				if !containsSquare(group, king) {
					continue
				}
				ap := attackPath{attacker: e.from}
				if isSlider(e.piece) {
					ap.path = group
				}
				attacks = append(attacks, ap)
			}
			continue
		}
		for _, group := range e.groups {
			for _, to := range group {
				candidates = append(candidates, Move{From: e.from, To: to})
			}
		}
	}

	inCheck := len(attacks) > 0
	doubleCheck := len(attacks) > 1

	pins := pinnedPieces(board, king, us)

	legal := candidates[:0]
	for _, m := range candidates {
		if m.From == king {
			if kingMoveSafe(st, m, inCheck) {
				legal = append(legal, m)
			}
			continue
		}

		// En-passant captures shift two pieces off the board at once;
		// ray logic cannot see the combined effect, so they are judged
		// by full simulation. This also admits the en-passant capture
		// of a pawn that is giving check.
		if board.At(m.From).Type() == PieceTypePawn && m.To == st.EnPassant {
			if enPassantSafe(st, m, king) {
				legal = append(legal, m)
			}
			continue
		}

		if axis, pinned := pins[m.From]; pinned && !containsSquare(axis, m.To) {
			continue
		}
		if inCheck {
			if doubleCheck {
				continue
			}
			if m.To != attacks[0].attacker && !containsSquare(attacks[0].path, m.To) {
				continue
			}
		}
		legal = append(legal, m)
	}
	return legal
}

// kingMoveSafe simulates the king move on a scratch board and rejects
// it when the destination is attacked there. A castle move is further
// rejected while in check or when the single square the king crosses is
// attacked on the current board.
func kingMoveSafe(st *GameState, m Move, inCheck bool) bool {
	board := &st.Board
	them := st.SideToMove.Opponent()

	if m.From.Rank == m.To.Rank && abs(m.From.File-m.To.File) == 2 {
		if inCheck {
			return false
		}
		crossed := Square{Rank: m.From.Rank, File: (m.From.File + m.To.File) / 2}
		if SquareAttacked(board, crossed, them, st.EnPassant) {
			return false
		}
	}

	scratch := *board
	scratch[m.To.Rank][m.To.File] = scratch[m.From.Rank][m.From.File]
	scratch[m.From.Rank][m.From.File] = NoPiece
	return !SquareAttacked(&scratch, m.To, them, st.EnPassant)
}

// enPassantSafe performs the full en-passant capture on a scratch board
// (mover relocated, origin vacated, the passed pawn removed from its
// own rank) and accepts the move only if the king is not attacked
// afterwards.
func enPassantSafe(st *GameState, m Move, king Square) bool {
	scratch := st.Board
	scratch[m.To.Rank][m.To.File] = scratch[m.From.Rank][m.From.File]
	scratch[m.From.Rank][m.From.File] = NoPiece
	scratch[m.From.Rank][m.To.File] = NoPiece
	if king == NoSquare {
		return true
	}
	return !SquareAttacked(&scratch, king, st.SideToMove.Opponent(), NoSquare)
}

// pinnedPieces casts the eight slider rays outward from the king. When
// the first piece on a ray is ours and the next one is an opposing
// slider that moves along that ray, the first piece is absolutely
// pinned: it may only move between the king and the pinning slider,
// capturing it included. The returned map holds that allowed axis per
// pinned square.
func pinnedPieces(b *Board, king Square, us Color) map[Square][]Square {
	if king == NoSquare {
		return nil
	}
	pins := make(map[Square][]Square)
	for i, d := range [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	} {
		orthogonal := i < 4
		var axis []Square
		var candidate Square
		found := false
		sq := Square{Rank: king.Rank + d[0], File: king.File + d[1]}
		for sq.OnBoard() {
			p := b.At(sq)
			if p == NoPiece {
				axis = append(axis, sq)
				sq.Rank += d[0]
				sq.File += d[1]
				continue
			}
			if !found {
				if p.Color() != us {
					break // nearest piece is theirs: a check or nothing, not a pin
				}
				candidate = sq
				found = true
				sq.Rank += d[0]
				sq.File += d[1]
				continue
			}
			if p.Color() != us && sliderMovesAlong(p, orthogonal) {
				axis = append(axis, sq) // capturing the pinner stays on the axis
				pins[candidate] = axis
			}
			break
		}
	}
	return pins
}

func sliderMovesAlong(p Piece, orthogonal bool) bool {
	switch p.Type() {
	case PieceTypeQueen:
		return true
	case PieceTypeRook:
		return orthogonal
	case PieceTypeBishop:
		return !orthogonal
	}
	return false
}

func isSlider(p Piece) bool {
	switch p.Type() {
	case PieceTypeBishop, PieceTypeRook, PieceTypeQueen:
		return true
	}
	return false
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
