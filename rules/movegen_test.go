package rules

import "testing"

// mustParse is a test helper for positions given as FEN.
func mustParse(t *testing.T, fen string) *GameState {
	t.Helper()
	st, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return st
}

func sq(t *testing.T, s string) Square {
	t.Helper()
	square, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", s, err)
	}
	return square
}

func flatten(groups [][]Square) []Square {
	var out []Square
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func TestRookMoves_OpenBoard(t *testing.T) {
	st := mustParse(t, "7k/8/8/8/3R4/8/8/7K w - - 0 1")
	groups := pieceMoves(&st.Board, sq(t, "d4"), NoSquare, 0)
	if len(groups) != 4 {
		t.Fatalf("expected 4 ray groups, got %d", len(groups))
	}
	if got := len(flatten(groups)); got != 14 {
		t.Fatalf("rook on d4: got %d destinations, want 14", got)
	}
}

func TestRookMoves_BlockedAndCapture(t *testing.T) {
	// Own pawn on d6 blocks the ray before it; enemy pawn on f4 is a capture.
	st := mustParse(t, "7k/8/3P4/8/3R1p2/8/8/7K w - - 0 1")
	dests := flatten(pieceMoves(&st.Board, sq(t, "d4"), NoSquare, 0))
	if containsSquare(dests, sq(t, "d6")) {
		t.Fatalf("rook must not capture its own pawn on d6")
	}
	if !containsSquare(dests, sq(t, "d5")) {
		t.Fatalf("rook should reach the empty square before its own pawn")
	}
	if !containsSquare(dests, sq(t, "f4")) {
		t.Fatalf("rook should capture the enemy pawn on f4")
	}
	if containsSquare(dests, sq(t, "g4")) {
		t.Fatalf("ray must stop at the captured pawn")
	}
}

func TestBishopAndQueenMoves_OpenBoard(t *testing.T) {
	st := mustParse(t, "7k/8/8/8/3B4/8/8/7K w - - 0 1")
	if got := len(flatten(pieceMoves(&st.Board, sq(t, "d4"), NoSquare, 0))); got != 13 {
		t.Fatalf("bishop on d4: got %d destinations, want 13", got)
	}
	st = mustParse(t, "7k/8/8/8/3Q4/8/8/7K w - - 0 1")
	if got := len(flatten(pieceMoves(&st.Board, sq(t, "d4"), NoSquare, 0))); got != 27 {
		t.Fatalf("queen on d4: got %d destinations, want 27", got)
	}
}

func TestKnightMoves(t *testing.T) {
	st := mustParse(t, rankOnly("N6k", "7K"))
	dests := flatten(pieceMoves(&st.Board, sq(t, "a8"), NoSquare, 0))
	if len(dests) != 2 {
		t.Fatalf("knight on a8: got %d destinations, want 2", len(dests))
	}

	// From the starting position b1 reaches a3 and c3 only; d2 holds a pawn.
	st = mustParse(t, FENStartPos)
	dests = flatten(pieceMoves(&st.Board, sq(t, "b1"), NoSquare, 0))
	if len(dests) != 2 || !containsSquare(dests, sq(t, "a3")) || !containsSquare(dests, sq(t, "c3")) {
		t.Fatalf("knight on b1 from startpos: got %v, want a3 and c3", dests)
	}
}

func TestKingMoves_CenterAndCorner(t *testing.T) {
	st := mustParse(t, "7k/8/8/8/3K4/8/8/8 w - - 0 1")
	if got := len(flatten(pieceMoves(&st.Board, sq(t, "d4"), NoSquare, 0))); got != 8 {
		t.Fatalf("king on d4: got %d destinations, want 8", got)
	}
	st = mustParse(t, "7k/8/8/8/8/8/8/K7 w - - 0 1")
	if got := len(flatten(pieceMoves(&st.Board, sq(t, "a1"), NoSquare, 0))); got != 3 {
		t.Fatalf("king on a1: got %d destinations, want 3", got)
	}
}

func TestPawnMoves_StartAndBlocked(t *testing.T) {
	st := mustParse(t, FENStartPos)
	groups := pieceMoves(&st.Board, sq(t, "e2"), NoSquare, 0)
	if len(groups) != 2 {
		t.Fatalf("pawn output must be [attack, regular], got %d groups", len(groups))
	}
	if len(groups[0]) != 0 {
		t.Fatalf("pawn on e2 has nothing to capture, attack group = %v", groups[0])
	}
	if len(groups[1]) != 2 {
		t.Fatalf("pawn on e2: got %d pushes, want e3 and e4", len(groups[1]))
	}

	// A blocker on e4 leaves only the single push; one on e3 leaves nothing.
	st = mustParse(t, "7k/8/8/8/4n3/8/4P3/7K w - - 0 1")
	groups = pieceMoves(&st.Board, sq(t, "e2"), NoSquare, 0)
	if len(groups[1]) != 1 || groups[1][0] != sq(t, "e3") {
		t.Fatalf("double push through a blocker: got %v, want [e3]", groups[1])
	}
	st = mustParse(t, "7k/8/8/8/8/4n3/4P3/7K w - - 0 1")
	groups = pieceMoves(&st.Board, sq(t, "e2"), NoSquare, 0)
	if len(groups[1]) != 0 {
		t.Fatalf("blocked pawn still pushes: %v", groups[1])
	}
}

func TestPawnMoves_CapturesAndEnPassant(t *testing.T) {
	st := mustParse(t, "7k/8/8/2p1p3/3P4/8/8/7K w - - 0 1")
	groups := pieceMoves(&st.Board, sq(t, "d4"), NoSquare, 0)
	if len(groups[0]) != 2 {
		t.Fatalf("pawn on d4: got %d captures, want c5 and e5", len(groups[0]))
	}
	if len(groups[1]) != 1 || groups[1][0] != sq(t, "d5") {
		t.Fatalf("pawn on d4: got pushes %v, want [d5]", groups[1])
	}

	// The en-passant target counts as a capture square even though it is empty.
	st = mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	groups = pieceMoves(&st.Board, sq(t, "e5"), st.EnPassant, 0)
	if !containsSquare(groups[0], sq(t, "d6")) {
		t.Fatalf("pawn on e5 should see the d6 en-passant target, got %v", groups[0])
	}
}

func TestPawnAttackSquares_IgnoreOccupancy(t *testing.T) {
	// The covered diagonals are reported even when empty; pushes never are.
	from := Square{Rank: 4, File: 4} // e4
	attacks := pawnAttackSquares(from, White)
	if len(attacks) != 2 {
		t.Fatalf("white pawn on e4 covers two diagonals, got %v", attacks)
	}
	for _, sq := range attacks {
		if sq.Rank != 3 {
			t.Fatalf("white pawn attack left its forward rank: %v", sq)
		}
	}
	edge := pawnAttackSquares(Square{Rank: 4, File: 0}, Black)
	if len(edge) != 1 {
		t.Fatalf("a-file pawn covers one diagonal, got %v", edge)
	}
}

// rankOnly builds a FEN with the two given ranks as ranks 8 and 1.
func rankOnly(rank8, rank1 string) string {
	return rank8 + "/8/8/8/8/8/8/" + rank1 + " w - - 0 1"
}
