// Package rules implements the chess rules engine: pseudo-legal move
// generation per piece, attack detection, legality filtering and game
// status classification over an immutable position snapshot.
package rules

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastleWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastleWhiteQ
	// Black king-side castling
	CastleBlackK
	// Black queen-side castling
	CastleBlackQ
)

// Square identifies a board cell. Rank 0 is the eighth rank (Black's
// back rank), file 0 is the a-file, so the board reads like a printed
// diagram and like the piece-placement field of a FEN string.
type Square struct {
	Rank int
	File int
}

// NoSquare is the sentinel for "no square" (e.g. no en-passant target).
var NoSquare = Square{Rank: -1, File: -1}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.Rank >= 0 && s.Rank < 8 && s.File >= 0 && s.File < 8
}

// Board holds the piece placement. It is a plain value type: copying a
// Board is an array copy, which is how scratch boards for king-safety
// simulation are made without touching the caller's snapshot.
type Board [8][8]Piece

// At returns the piece on sq. The square must be on the board.
func (b *Board) At(sq Square) Piece { return b[sq.Rank][sq.File] }

// Move is an ordered (from, to) square pair. Promotion carries no
// choice: a pawn reaching the last rank always becomes a queen.
type Move struct {
	From Square
	To   Square
}

// GameState is the full position snapshot the engine operates on:
// placement, side to move, castling rights, en-passant target and the
// move counters. The engine never retains or mutates a GameState; every
// query is a pure function of the snapshot it is handed.
type GameState struct {
	Board          Board
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare when no target exists
	HalfmoveClock  int
	FullmoveNumber int
}

// Status classifies a position for the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// kingSquare locates the king of the given color, or NoSquare if absent.
// A missing king for the side to move is an input error of the caller;
// legality queries treat it as "no king to attack".
func (b *Board) kingSquare(c Color) Square {
	want := PieceFromType(c, PieceTypeKing)
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if b[r][f] == want {
				return Square{Rank: r, File: f}
			}
		}
	}
	return NoSquare
}
