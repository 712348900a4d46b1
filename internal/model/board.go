package model

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Board is the 8x8 grid of optional pieces. The zero value is usable and
// empty; NewStandardBoard builds the canonical starting layout. Squares
// are indexed [rank][file] with rank 0 = rank 1, so every Coordinate
// indexes safely.
//
// Board itself is not goroutine safe; the owner serializes access.
type Board struct {
	squares [8][8]*Piece
}

var backRankOrder = []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard produces the canonical starting layout: white on ranks
// 1 and 2, black on ranks 7 and 8.
func NewStandardBoard() *Board {
	board := NewEmptyBoard()
	for file, pieceType := range backRankOrder {
		board.squares[0][file] = &Piece{Type: pieceType, Color: White}
		board.squares[7][file] = &Piece{Type: pieceType, Color: Black}
	}
	for file := 0; file < 8; file++ {
		board.squares[1][file] = &Piece{Type: Pawn, Color: White}
		board.squares[6][file] = &Piece{Type: Pawn, Color: Black}
	}
	return board
}

func NewEmptyBoard() *Board {
	return &Board{}
}

// PieceAt returns the piece on the square, or nil when empty. It never
// fails for a valid Coordinate.
func (b *Board) PieceAt(c Coordinate) *Piece {
	return b.squares[c.Rank][c.File]
}

// Place unconditionally sets a square's occupant, overwriting anything
// there. No legality check; it exists for setup and as Remove's
// complement.
func (b *Board) Place(c Coordinate, p Piece) {
	b.squares[c.Rank][c.File] = &p
}

// Remove clears a square and returns what was removed, nil if the square
// was already empty.
func (b *Board) Remove(c Coordinate) *Piece {
	removed := b.squares[c.Rank][c.File]
	b.squares[c.Rank][c.File] = nil
	return removed
}

// ApplyMove is the sole authority on move legality and capture semantics.
// It fails with ErrEmptyOriginSquare when from is empty and with
// ErrIllegalMove when to is not among the mover's legal destinations
// (which already excludes friendly captures). On any failure the board is
// untouched.
func (b *Board) ApplyMove(from, to Coordinate) (*MoveResult, error) {
	mover := b.PieceAt(from)
	if mover == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyOriginSquare, from)
	}
	if !slices.Contains(mover.LegalDestinations(b, from), to) {
		return nil, fmt.Errorf("%w: %s %s to %s", ErrIllegalMove, mover.Type, from, to)
	}
	captured := b.Remove(to)
	b.squares[to.Rank][to.File] = mover
	b.squares[from.Rank][from.File] = nil
	return &MoveResult{
		Piece:    *mover,
		From:     from,
		To:       to,
		Captured: captured,
	}, nil
}

// Equal reports whether two boards have identical occupancy.
func (b *Board) Equal(other *Board) bool {
	for _, square := range AllSquares() {
		mine, theirs := b.PieceAt(square), other.PieceAt(square)
		if (mine == nil) != (theirs == nil) {
			return false
		}
		if mine != nil && *mine != *theirs {
			return false
		}
	}
	return true
}
