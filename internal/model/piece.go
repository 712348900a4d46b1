package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) valid() bool {
	return c == White || c == Black
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

var pieceLetters = map[PieceType]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

// Piece is an immutable (color, type) pair. Pieces are placed, removed and
// replaced on the board; they are never mutated.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// Letter returns the compact-text encoding: uppercase for white, lowercase
// for black.
func (p Piece) Letter() byte {
	letter := pieceLetters[p.Type]
	if p.Color == Black {
		letter += 'a' - 'A'
	}
	return letter
}

func pieceFromLetter(letter byte) (Piece, bool) {
	color := White
	if letter >= 'a' && letter <= 'z' {
		color = Black
		letter -= 'a' - 'A'
	}
	for pieceType, pieceLetter := range pieceLetters {
		if pieceLetter == letter {
			return Piece{Type: pieceType, Color: color}, true
		}
	}
	return Piece{}, false
}

type delta struct {
	file int
	rank int
}

var (
	rookDirs   = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = []delta{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingDirs   = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func (c Coordinate) shift(d delta) Coordinate {
	return Coordinate{File: c.File + d.file, Rank: c.Rank + d.rank}
}

// LegalDestinations returns every square the piece could move to from the
// given square under its movement pattern and the current occupancy.
// Squares holding a same-color piece are never included; squares holding
// an opposing piece are included and mean a capture. The board is not
// mutated.
func (p Piece) LegalDestinations(b *Board, from Coordinate) []Coordinate {
	switch p.Type {
	case Pawn:
		return p.pawnDestinations(b, from)
	case Knight:
		return p.stepDestinations(b, from, knightDirs)
	case King:
		return p.stepDestinations(b, from, kingDirs)
	case Bishop:
		return p.slideDestinations(b, from, bishopDirs)
	case Rook:
		return p.slideDestinations(b, from, rookDirs)
	case Queen:
		return p.slideDestinations(b, from, kingDirs)
	default:
		return nil
	}
}

// Pawn rules are deliberately simplified: forward advance of one square
// (two if both squares ahead are empty, from any rank), and a capture onto
// any diagonally adjacent square that holds an opposing piece. No
// en-passant, no promotion.
func (p Piece) pawnDestinations(b *Board, from Coordinate) []Coordinate {
	destinations := []Coordinate{}
	forward := delta{0, 1}
	if p.Color == Black {
		forward = delta{0, -1}
	}
	oneAhead := from.shift(forward)
	if oneAhead.onBoard() && b.PieceAt(oneAhead) == nil {
		destinations = append(destinations, oneAhead)
		twoAhead := oneAhead.shift(forward)
		if twoAhead.onBoard() && b.PieceAt(twoAhead) == nil {
			destinations = append(destinations, twoAhead)
		}
	}
	for _, d := range bishopDirs {
		target := from.shift(d)
		if !target.onBoard() {
			continue
		}
		if occupant := b.PieceAt(target); occupant != nil && occupant.Color != p.Color {
			destinations = append(destinations, target)
		}
	}
	return destinations
}

func (p Piece) stepDestinations(b *Board, from Coordinate, dirs []delta) []Coordinate {
	destinations := []Coordinate{}
	for _, d := range dirs {
		target := from.shift(d)
		if !target.onBoard() {
			continue
		}
		if occupant := b.PieceAt(target); occupant == nil || occupant.Color != p.Color {
			destinations = append(destinations, target)
		}
	}
	return destinations
}

func (p Piece) slideDestinations(b *Board, from Coordinate, dirs []delta) []Coordinate {
	destinations := []Coordinate{}
	for _, d := range dirs {
		for target := from.shift(d); target.onBoard(); target = target.shift(d) {
			occupant := b.PieceAt(target)
			if occupant == nil {
				destinations = append(destinations, target)
				continue
			}
			if occupant.Color != p.Color {
				destinations = append(destinations, target)
			}
			break
		}
	}
	return destinations
}
