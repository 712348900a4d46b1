package model

import (
	"fmt"
	"strings"
)

const emptySquareChar = '.'

// CompactText renders the board as eight lines of eight characters, ranks
// 8 down to 1, files a to h. White pieces are uppercase letters, black
// lowercase, empty squares '.'. BoardFromCompactText reverses it exactly.
func (b *Board) CompactText() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		if rank < 7 {
			sb.WriteByte('\n')
		}
		for file := 0; file < 8; file++ {
			if piece := b.squares[rank][file]; piece != nil {
				sb.WriteByte(piece.Letter())
			} else {
				sb.WriteByte(emptySquareChar)
			}
		}
	}
	return sb.String()
}

// BoardFromCompactText parses the grid produced by CompactText. A single
// trailing newline is tolerated.
func BoardFromCompactText(text string) (*Board, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 8 {
		return nil, fmt.Errorf("compact board must have 8 lines, got %d", len(lines))
	}
	board := NewEmptyBoard()
	for i, line := range lines {
		if len(line) != 8 {
			return nil, fmt.Errorf("compact board line %d must have 8 characters, got %d", i+1, len(line))
		}
		rank := 7 - i
		for file := 0; file < 8; file++ {
			if line[file] == emptySquareChar {
				continue
			}
			piece, ok := pieceFromLetter(line[file])
			if !ok {
				return nil, fmt.Errorf("unknown piece letter %q at line %d", line[file], i+1)
			}
			board.squares[rank][file] = &piece
		}
	}
	return board, nil
}

// PlacedPiece is one entry of the structured board form.
type PlacedPiece struct {
	Square string    `json:"square"`
	Type   PieceType `json:"type"`
	Color  Color     `json:"color"`
}

// Structured lists every occupied square in scan order, rank 8 down to
// rank 1, file a to h.
func (b *Board) Structured() []PlacedPiece {
	placed := []PlacedPiece{}
	for _, square := range AllSquares() {
		if piece := b.PieceAt(square); piece != nil {
			placed = append(placed, PlacedPiece{
				Square: square.String(),
				Type:   piece.Type,
				Color:  piece.Color,
			})
		}
	}
	return placed
}

// BoardFromStructured rebuilds a board from the structured form. Entry
// order does not matter; occupancy does.
func BoardFromStructured(placed []PlacedPiece) (*Board, error) {
	board := NewEmptyBoard()
	for _, entry := range placed {
		square, err := ParseCoordinate(entry.Square)
		if err != nil {
			return nil, err
		}
		if _, ok := pieceLetters[entry.Type]; !ok {
			return nil, fmt.Errorf("unknown piece type %q at %s", entry.Type, entry.Square)
		}
		if !entry.Color.valid() {
			return nil, fmt.Errorf("unknown color %q at %s", entry.Color, entry.Square)
		}
		board.Place(square, Piece{Type: entry.Type, Color: entry.Color})
	}
	return board, nil
}

// FEN renders the piece-placement field plus the side to move. The kernel
// tracks neither castling rights nor en-passant nor move clocks, so those
// fields are emitted as their permissive placeholders.
func (b *Board) FEN(turn Color) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		if rank < 7 {
			sb.WriteByte('/')
		}
		emptyRun := 0
		for file := 0; file < 8; file++ {
			piece := b.squares[rank][file]
			if piece == nil {
				emptyRun++
				continue
			}
			if emptyRun > 0 {
				sb.WriteByte('0' + byte(emptyRun))
				emptyRun = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyRun > 0 {
			sb.WriteByte('0' + byte(emptyRun))
		}
	}
	side := "w"
	if turn == Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", sb.String(), side)
}
