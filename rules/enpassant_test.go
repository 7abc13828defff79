package rules

import "testing"

func TestEnPassant_CaptureOfferedAndExecuted(t *testing.T) {
	// Black just played d7-d5; the e5 pawn may take it in passing.
	st := mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	moves := LegalMoves(st)
	set := moveStrings(moves)
	if !set["e5-d6"] {
		t.Fatalf("en-passant capture e5-d6 missing from %v", moves)
	}
	if len(moves) != 5 {
		t.Fatalf("got %d legal moves, want 5", len(moves))
	}

	next := Apply(st, Move{From: sq(t, "e5"), To: sq(t, "d6")})
	if next.Board.At(sq(t, "d6")) != WhitePawn {
		t.Fatalf("capturing pawn not on d6")
	}
	if next.Board.At(sq(t, "d5")) != NoPiece {
		t.Fatalf("the passed pawn on d5 must be removed, not the landing square")
	}
	if next.Board.At(sq(t, "e5")) != NoPiece {
		t.Fatalf("origin square not vacated")
	}
	if next.EnPassant != NoSquare {
		t.Fatalf("en-passant target must clear after the capture")
	}
}

func TestEnPassant_TargetExpiresAfterOnePly(t *testing.T) {
	st := mustParse(t, FENStartPos)
	next := Apply(st, Move{From: sq(t, "e2"), To: sq(t, "e4")})
	if next.EnPassant != sq(t, "e3") {
		t.Fatalf("double advance must expose e3, got %v", next.EnPassant)
	}
	after := Apply(&next, Move{From: sq(t, "g8"), To: sq(t, "f6")})
	if after.EnPassant != NoSquare {
		t.Fatalf("en-passant target survived an unrelated move")
	}
}

func TestEnPassant_RejectedWhenItExposesTheKing(t *testing.T) {
	// Capturing in passing removes both pawns from the fifth rank and
	// opens the rook's line to the king.
	st := mustParse(t, "7k/8/8/KPp4r/8/8/8/8 w - c6 0 1")
	set := moveStrings(LegalMoves(st))
	if set["b5-c6"] {
		t.Fatalf("b5-c6 uncovers the king to the h5 rook")
	}
	if !set["b5-b6"] {
		t.Fatalf("the plain push b5-b6 should remain legal")
	}
}

func TestEnPassant_CaptureOfCheckingPawn(t *testing.T) {
	// The d5 pawn checks the king on e4; taking it in passing is the
	// only capture that resolves the check.
	st := mustParse(t, "7k/8/8/3pP3/4K3/8/8/8 w - d6 0 1")
	if !InCheck(st) {
		t.Fatalf("expected the d5 pawn to give check")
	}
	set := moveStrings(LegalMoves(st))
	if !set["e5-d6"] {
		t.Fatalf("en-passant capture of the checking pawn must be legal")
	}
}
