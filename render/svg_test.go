package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Ren-B-7/chess-backend/rules"
)

func TestWriteBoard_StartingPosition(t *testing.T) {
	st, err := rules.ParseFEN(rules.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var buf bytes.Buffer
	WriteBoard(&buf, &st.Board)
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("output does not start with an XML declaration: %.40q", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not a closed SVG document")
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Fatalf("drew %d cells, want 64", got)
	}
	for _, glyph := range []string{"♔", "♚", "♙", "♟"} {
		if !strings.Contains(out, glyph) {
			t.Fatalf("missing piece glyph %s", glyph)
		}
	}
	for _, label := range []string{">a<", ">h<", ">1<", ">8<"} {
		if !strings.Contains(out, label) {
			t.Fatalf("missing edge label %s", label)
		}
	}
}

func TestWriteBoard_EmptyBoardHasNoGlyphs(t *testing.T) {
	var b rules.Board
	var buf bytes.Buffer
	WriteBoard(&buf, &b)
	out := buf.String()
	if strings.Contains(out, "♔") || strings.Contains(out, "♟") {
		t.Fatalf("empty board rendered pieces")
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Fatalf("drew %d cells, want 64", got)
	}
}
