package model

import "fmt"

// Coordinate is a validated board location. File and Rank are zero-based
// (file 0 = 'a', rank 0 = rank 1), so a Coordinate that exists is always
// within board bounds. Construct one with ParseCoordinate or Coord.
type Coordinate struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// ParseCoordinate parses two-character algebraic notation like "e4".
func ParseCoordinate(text string) (Coordinate, error) {
	if len(text) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, text)
	}
	file := int(text[0] - 'a')
	rank := int(text[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, text)
	}
	return Coordinate{File: file, Rank: rank}, nil
}

// Coord is for coordinates known to be valid at compile time (setup
// tables, tests). It panics on out-of-range input.
func Coord(text string) Coordinate {
	c, err := ParseCoordinate(text)
	if err != nil {
		panic(err)
	}
	return c
}

// String is the inverse of ParseCoordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("%c%c", 'a'+byte(c.File), '1'+byte(c.Rank))
}

func (c Coordinate) onBoard() bool {
	return c.File >= 0 && c.File < 8 && c.Rank >= 0 && c.Rank < 8
}

// AllSquares lists every coordinate in scan order, rank 8 down to rank 1,
// file a to file h. Serialization relies on this order for determinism.
func AllSquares() []Coordinate {
	squares := make([]Coordinate, 0, 64)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			squares = append(squares, Coordinate{File: file, Rank: rank})
		}
	}
	return squares
}
