package rules

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) rune {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '?' // should not happen for valid pieces
	}
}

// ParseFEN parses a FEN string into a GameState. The first FEN rank is
// the eighth rank, which is rank index 0 here, so placement rows map
// straight onto the board array. Returns an error if the FEN is invalid.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	st := &GameState{EnPassant: NoSquare, FullmoveNumber: 1}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for r, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, errors.New("invalid FEN: empty rank description")
		}
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				// Digit: skip that many files (empty squares)
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			st.Board[r][file] = piece
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		st.SideToMove = White
	case "b":
		st.SideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				st.Castling |= CastleWhiteK
			case 'Q':
				st.Castling |= CastleWhiteQ
			case 'k':
				st.Castling |= CastleBlackK
			case 'q':
				st.Castling |= CastleBlackQ
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, errors.New("invalid FEN: invalid en passant square")
		}
		st.EnPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		st.HalfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		st.FullmoveNumber = fullmove
	}

	return st, nil
}

// FEN produces the FEN string representation of the game state.
func (st *GameState) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			p := st.Board[r][f]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if st.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if st.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if st.Castling&CastleWhiteK != 0 {
			sb.WriteByte('K')
		}
		if st.Castling&CastleWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if st.Castling&CastleBlackK != 0 {
			sb.WriteByte('k')
		}
		if st.Castling&CastleBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	if st.EnPassant != NoSquare {
		sb.WriteString(st.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	// 5. Halfmove clock and fullmove number
	sb.WriteString(strconv.Itoa(st.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(st.FullmoveNumber))
	return sb.String()
}
