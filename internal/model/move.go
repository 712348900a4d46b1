package model

// MoveResult is the outcome of a successful ApplyMove: the mover, the two
// endpoints, and the capture if the destination held an opposing piece
// immediately before the move. Transient, never stored on the board.
type MoveResult struct {
	Piece    Piece      `json:"piece"`
	From     Coordinate `json:"from"`
	To       Coordinate `json:"to"`
	Captured *Piece     `json:"captured"`
}
