package board

import "errors"

// Error taxonomy: parse and coordinate errors are fatal at the boundary,
// move-application precondition violations are programming errors that
// should never occur during a legal search.
var (
	// ErrInvalidLayout is returned when a layout string is not exactly
	// 100 characters long.
	ErrInvalidLayout = errors.New("board: layout must be exactly 100 characters")
	// ErrInvalidCharacter is returned when a layout contains a byte
	// outside the permitted alphabet (PNBRQKpnbrqk0-).
	ErrInvalidCharacter = errors.New("board: invalid character in layout")
	// ErrInvalidSquare is returned for an algebraic square outside
	// a1..h8, or an index outside the 64 playable squares.
	ErrInvalidSquare = errors.New("board: invalid square")
	// ErrEmptyOrigin is returned by Apply when there is no piece on the
	// move's origin square.
	ErrEmptyOrigin = errors.New("board: move origin has no piece")
)
