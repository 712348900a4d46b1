package model

import "errors"

// Engine failures surfaced to the HTTP boundary. All of them are caller
// errors; none of them leaves the board in a partially mutated state.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrEmptyOriginSquare = errors.New("no piece at origin square")
	ErrIllegalMove       = errors.New("illegal move")
)
