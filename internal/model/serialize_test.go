package model

import (
	"strings"
	"testing"
)

const initialGrid = `rnbqkbnr
pppppppp
........
........
........
........
PPPPPPPP
RNBQKBNR`

func TestCompactTextInitial(t *testing.T) {
	board := NewStandardBoard()
	if got := board.CompactText(); got != initialGrid {
		t.Errorf("initial compact text:\n%s\nwant:\n%s", got, initialGrid)
	}
}

func TestCompactTextRoundTrip(t *testing.T) {
	boards := map[string]*Board{
		"initial": NewStandardBoard(),
		"empty":   NewEmptyBoard(),
	}

	played := NewStandardBoard()
	moves := [][2]string{{"e2", "e4"}, {"d7", "d5"}, {"e4", "d5"}, {"g8", "f6"}}
	for _, m := range moves {
		if _, err := played.ApplyMove(Coord(m[0]), Coord(m[1])); err != nil {
			t.Fatalf("setup move %s%s failed: %v", m[0], m[1], err)
		}
	}
	boards["after moves"] = played

	for name, board := range boards {
		text := board.CompactText()
		parsed, err := BoardFromCompactText(text)
		if err != nil {
			t.Fatalf("%s: parse failed: %v", name, err)
		}
		if !parsed.Equal(board) {
			t.Errorf("%s: compact text did not round trip:\n%s", name, text)
		}
		if parsed.CompactText() != text {
			t.Errorf("%s: re-encoding produced different text", name)
		}
	}

	// A trailing newline is tolerated.
	parsed, err := BoardFromCompactText(initialGrid + "\n")
	if err != nil {
		t.Fatalf("parse with trailing newline failed: %v", err)
	}
	if !parsed.Equal(NewStandardBoard()) {
		t.Error("parse with trailing newline did not round trip")
	}
}

func TestCompactTextParseErrors(t *testing.T) {
	inputs := map[string]string{
		"too few lines":  "........\n........",
		"short line":     strings.Replace(initialGrid, "pppppppp", "ppppppp", 1),
		"unknown letter": strings.Replace(initialGrid, "q", "z", 1),
	}
	for name, input := range inputs {
		if _, err := BoardFromCompactText(input); err == nil {
			t.Errorf("%s: parse should have failed", name)
		}
	}
}

func TestStructuredForm(t *testing.T) {
	board := NewStandardBoard()
	placed := board.Structured()

	if len(placed) != 32 {
		t.Fatalf("initial board should list 32 pieces, got %d", len(placed))
	}
	// Scan order starts at a8 with the black rook and ends at h1.
	if placed[0] != (PlacedPiece{Square: "a8", Type: Rook, Color: Black}) {
		t.Errorf("first entry = %v, want black rook on a8", placed[0])
	}
	if placed[31] != (PlacedPiece{Square: "h1", Type: Rook, Color: White}) {
		t.Errorf("last entry = %v, want white rook on h1", placed[31])
	}

	rebuilt, err := BoardFromStructured(placed)
	if err != nil {
		t.Fatalf("BoardFromStructured failed: %v", err)
	}
	if !rebuilt.Equal(board) {
		t.Error("structured form did not round trip")
	}

	// Order independence: reverse the entries and rebuild.
	reversed := make([]PlacedPiece, 0, len(placed))
	for i := len(placed) - 1; i >= 0; i-- {
		reversed = append(reversed, placed[i])
	}
	rebuilt, err = BoardFromStructured(reversed)
	if err != nil {
		t.Fatalf("BoardFromStructured of reversed entries failed: %v", err)
	}
	if !rebuilt.Equal(board) {
		t.Error("structured rebuild should be order independent")
	}
}

func TestStructuredFormErrors(t *testing.T) {
	cases := map[string]PlacedPiece{
		"bad square": {Square: "i9", Type: Pawn, Color: White},
		"bad type":   {Square: "e4", Type: PieceType("dragon"), Color: White},
		"bad color":  {Square: "e4", Type: Pawn, Color: Color("green")},
	}
	for name, entry := range cases {
		if _, err := BoardFromStructured([]PlacedPiece{entry}); err == nil {
			t.Errorf("%s: BoardFromStructured should have failed", name)
		}
	}
}

func TestFEN(t *testing.T) {
	board := NewStandardBoard()
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	if got := board.FEN(White); got != want {
		t.Errorf("initial FEN = %q, want %q", got, want)
	}

	if _, err := board.ApplyMove(Coord("e2"), Coord("e4")); err != nil {
		t.Fatalf("e2e4 failed: %v", err)
	}
	want = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"
	if got := board.FEN(Black); got != want {
		t.Errorf("FEN after e2e4 = %q, want %q", got, want)
	}

	if got := NewEmptyBoard().FEN(White); got != "8/8/8/8/8/8/8/8 w - - 0 1" {
		t.Errorf("empty board FEN = %q", got)
	}
}
