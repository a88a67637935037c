// Package eval scores a position as (white, black) totals using material
// plus per-square positional tables. The caller derives a side-relative
// score as own - opp.
package eval

import "github.com/robtaussig/mailboxchess/internal/board"

// Material values, in centipawns.
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 300
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 10000
)

var materialValue = map[board.PieceKind]int{
	board.Pawn:   PawnValue,
	board.Knight: KnightValue,
	board.Bishop: BishopValue,
	board.Rook:   RookValue,
	board.Queen:  QueenValue,
	board.King:   KingValue,
}

var whiteTable = map[board.PieceKind]*[100]int{
	board.Pawn:   &whitePositionalP,
	board.Knight: &whitePositionalN,
	board.Bishop: &whitePositionalB,
	board.Rook:   &whitePositionalR,
	board.Queen:  &whitePositionalQ,
	board.King:   &whitePositionalK,
}

var blackTable = map[board.PieceKind]*[100]int{
	board.Pawn:   &blackPositionalP,
	board.Knight: &blackPositionalN,
	board.Bishop: &blackPositionalB,
	board.Rook:   &blackPositionalR,
	board.Queen:  &blackPositionalQ,
	board.King:   &blackPositionalK,
}

// Evaluate sums piece_value + positional_table[color,kind][index] over
// every square, separately for each color; empty and edge squares
// contribute 0.
func Evaluate(pos board.Position) (white, black int) {
	for i := board.Index(0); i < 100; i++ {
		if board.OffBoard(i) {
			continue
		}
		piece, has := pos.PieceAt(i)
		if !has {
			continue
		}
		table := whiteTable
		if piece.Color == board.Black {
			table = blackTable
		}
		score := materialValue[piece.Kind] + table[piece.Kind][i]
		if piece.Color == board.White {
			white += score
		} else {
			black += score
		}
	}
	return white, black
}

// Relative returns pos.Side's evaluation minus the opponent's.
func Relative(pos board.Position) int {
	white, black := Evaluate(pos)
	if pos.Side == board.White {
		return white - black
	}
	return black - white
}
