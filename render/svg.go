// Package render draws board positions as SVG documents.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/Ren-B-7/chess-backend/rules"
)

const (
	cellSize = 64
	margin   = 24
	boardPx  = 8 * cellSize
)

const (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
)

var glyphs = map[rules.Piece]string{
	rules.WhiteKing:   "♔",
	rules.WhiteQueen:  "♕",
	rules.WhiteRook:   "♖",
	rules.WhiteBishop: "♗",
	rules.WhiteKnight: "♘",
	rules.WhitePawn:   "♙",
	rules.BlackKing:   "♚",
	rules.BlackQueen:  "♛",
	rules.BlackRook:   "♜",
	rules.BlackBishop: "♝",
	rules.BlackKnight: "♞",
	rules.BlackPawn:   "♟",
}

// WriteBoard renders the position from White's perspective, with file
// letters along the bottom edge and rank digits along the left edge.
func WriteBoard(w io.Writer, b *rules.Board) {
	canvas := svg.New(w)
	canvas.Start(boardPx+2*margin, boardPx+2*margin)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := margin + file*cellSize
			y := margin + rank*cellSize
			fill := lightFill
			if (rank+file)%2 == 1 {
				fill = darkFill
			}
			canvas.Rect(x, y, cellSize, cellSize, fill)

			piece := b[rank][file]
			if piece == rules.NoPiece {
				continue
			}
			canvas.Text(x+cellSize/2, y+cellSize*3/4, glyphs[piece],
				"font-size:48px;text-anchor:middle")
		}
	}

	labelStyle := "font-size:14px;text-anchor:middle;font-family:sans-serif"
	for file := 0; file < 8; file++ {
		canvas.Text(margin+file*cellSize+cellSize/2, margin+boardPx+16,
			string(rune('a'+file)), labelStyle)
	}
	for rank := 0; rank < 8; rank++ {
		canvas.Text(margin/2, margin+rank*cellSize+cellSize/2+5,
			string(rune('8'-rank)), labelStyle)
	}

	canvas.End()
}
