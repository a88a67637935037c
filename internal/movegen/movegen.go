// Package movegen produces pseudo-legal destination squares for each
// piece kind on the bordered 10x10 board: moves that respect piece
// geometry and own-color blocking but may leave the mover's own king in
// check. Package rules filters those down to legal moves.
package movegen

import "github.com/robtaussig/mailboxchess/internal/board"

// Direction constants on the bordered 10x10 layout.
const (
	North     = -10
	South     = 10
	East      = 1
	West      = -1
	Northeast = -9
	Northwest = -11
	Southeast = 11
	Southwest = 9
)

// Orthogonal gives the four rook/queen/king directions.
var Orthogonal = [4]int{North, South, East, West}

// Diagonal gives the four bishop/queen/king directions.
var Diagonal = [4]int{Northeast, Northwest, Southeast, Southwest}

// Omnidirectional gives all eight queen/king directions.
var Omnidirectional = [8]int{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// KnightJumps gives the eight knight move deltas.
var KnightJumps = [8]int{-8, 8, -12, 12, -19, 19, -21, 21}

// pawnGeometry bundles a color's push/capture/double-push deltas and the
// rank band a pawn must start on to double-push.
type pawnGeometry struct {
	push         int
	captures     [2]int
	doublePush   int
	bandFrom     board.Index
	bandTo       board.Index
}

var whitePawn = pawnGeometry{
	push:       North,
	captures:   [2]int{Northeast, Northwest},
	doublePush: 2 * North,
	bandFrom:   71,
	bandTo:     78,
}

var blackPawn = pawnGeometry{
	push:       South,
	captures:   [2]int{Southeast, Southwest},
	doublePush: 2 * South,
	bandFrom:   21,
	bandTo:     28,
}

func pawnGeometryFor(c board.Color) pawnGeometry {
	if c == board.White {
		return whitePawn
	}
	return blackPawn
}

// PseudoLegalMoves returns every pseudo-legal destination for the piece
// of the given color standing on origin within pos: moves that respect
// geometry and own-color blocking but have not been checked for leaving
// the mover in check.
func PseudoLegalMoves(pos board.Position, origin board.Index, piece board.Piece) []board.Move {
	switch piece.Kind {
	case board.Bishop:
		return slide(pos, origin, piece.Color, Diagonal[:])
	case board.Rook:
		return slide(pos, origin, piece.Color, Orthogonal[:])
	case board.Queen:
		return slide(pos, origin, piece.Color, Omnidirectional[:])
	case board.Knight:
		return step(pos, origin, piece.Color, KnightJumps[:])
	case board.King:
		return step(pos, origin, piece.Color, Omnidirectional[:])
	case board.Pawn:
		return pawnMoves(pos, origin, piece.Color)
	default:
		return nil
	}
}

// slide walks each direction until it falls off the board, hits a
// friendly piece (stop, no emit), or hits an enemy piece (emit, stop);
// empty squares are emitted and walking continues.
func slide(pos board.Position, origin board.Index, color board.Color, directions []int) []board.Move {
	var moves []board.Move
	for _, d := range directions {
		for to := origin + board.Index(d); ; to += board.Index(d) {
			if board.OffBoard(to) {
				break
			}
			occupant, has := pos.PieceAt(to)
			if !has {
				moves = append(moves, board.Move{From: origin, To: to})
				continue
			}
			if occupant.Color != color {
				moves = append(moves, board.Move{From: origin, To: to})
			}
			break
		}
	}
	return moves
}

// step emits a single destination per delta when it is on-board and
// either empty or holds an enemy piece.
func step(pos board.Position, origin board.Index, color board.Color, deltas []int) []board.Move {
	var moves []board.Move
	for _, d := range deltas {
		to := origin + board.Index(d)
		if board.OffBoard(to) {
			continue
		}
		occupant, has := pos.PieceAt(to)
		if !has || occupant.Color != color {
			moves = append(moves, board.Move{From: origin, To: to})
		}
	}
	return moves
}

// pawnMoves generates single push, double push (from the color's starting
// rank band only, and only when both the intermediate and destination
// squares are empty), and diagonal captures (only onto an enemy piece).
func pawnMoves(pos board.Position, origin board.Index, color board.Color) []board.Move {
	g := pawnGeometryFor(color)
	var moves []board.Move

	if to := origin + board.Index(g.push); !board.OffBoard(to) {
		if _, has := pos.PieceAt(to); !has {
			moves = append(moves, board.Move{From: origin, To: to})

			if origin >= g.bandFrom && origin <= g.bandTo {
				mid := origin + board.Index(g.push)
				to2 := origin + board.Index(g.doublePush)
				if !board.OffBoard(to2) {
					if _, midHas := pos.PieceAt(mid); !midHas {
						if _, toHas := pos.PieceAt(to2); !toHas {
							moves = append(moves, board.Move{From: origin, To: to2})
						}
					}
				}
			}
		}
	}

	for _, d := range g.captures {
		to := origin + board.Index(d)
		if board.OffBoard(to) {
			continue
		}
		occupant, has := pos.PieceAt(to)
		if has && occupant.Color != color {
			moves = append(moves, board.Move{From: origin, To: to})
		}
	}

	return moves
}
