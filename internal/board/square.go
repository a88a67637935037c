package board

import (
	"fmt"
	"strings"
)

// Index is a position in the 10x10 bordered layout, 0..99.
type Index int

// Geometry constants for the bordered 10x10 board. The playable 8x8 area
// occupies indices whose tens digit is 1..8 and whose units digit is 1..8;
// the ring around it (index < 11, index > 88, or either digit 0 or 9) is
// the edge.
const (
	boardWidth = 10
	firstRank  = 1
	lastRank   = 8
)

// OffBoard reports whether idx falls outside the playable 8x8 area. Move
// generators use this rather than a piece lookup to reject wrap-around.
func OffBoard(idx Index) bool {
	return idx < 11 || idx > 88 || int(idx)%10 == 0 || int(idx)%10 == 9
}

// SquareIndex converts an algebraic square name ("a1".."h8", case
// insensitive) to its board index. index = (9-rank)*10 + (file+1), with
// file(a)=0, so a8->11, h8->18, a1->81, h1->88.
func SquareIndex(name string) (Index, error) {
	if len(name) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, name)
	}
	name = strings.ToLower(name)
	file := int(name[0] - 'a')
	rank := int(name[1] - '0')
	if file < 0 || file > 7 || rank < firstRank || rank > lastRank {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, name)
	}
	return Index((9-rank)*boardWidth + file + 1), nil
}

// IndexToSquare is the inverse of SquareIndex. It is defined only on
// playable indices; any other index is a programmer error.
func IndexToSquare(idx Index) (string, error) {
	if OffBoard(idx) {
		return "", fmt.Errorf("%w: index %d is not a playable square", ErrInvalidSquare, idx)
	}
	file := int(idx)%10 - 1
	rank := 8 - (int(idx)/10 - 1)
	return fmt.Sprintf("%c%d", 'a'+file, rank), nil
}
