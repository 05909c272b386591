// errors.go names the error kinds surfaced at the engine's boundary: a bad
// FEN, a move that does not appear in the current legal move list, or an
// internal consistency check failing. None of these ever abort a running
// search; see DESIGN.md for how each is handled.
package engine

import "errors"

var (
	// ErrInvalidFen is returned when a FEN string is malformed.
	ErrInvalidFen = errors.New("invalid fen")
	// ErrIllegalMove is returned when a move does not match any move the
	// current position can legally play.
	ErrIllegalMove = errors.New("illegal move")
)
