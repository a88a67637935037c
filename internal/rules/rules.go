// Package rules detects whether a side's king is attacked and filters
// movegen's pseudo-legal moves down to legal ones (those that do not
// leave the mover in check).
package rules

import (
	"github.com/robtaussig/mailboxchess/internal/board"
	"github.com/robtaussig/mailboxchess/internal/movegen"
)

// InCheck reports whether the king of pos.Side is attacked. It locates
// the king, then — treating the king's square as the origin and the
// king's own color as the moving side — reuses movegen's attack patterns
// in reverse: any bishop/queen on a pseudo-legal bishop destination,
// rook/queen on a pseudo-legal rook destination, knight on a knight
// destination, king on a king destination (adjacency), or pawn on a
// pawn-capture destination means the king is attacked.
func InCheck(pos board.Position) bool {
	king, found := findKing(pos, pos.Side)
	if !found {
		return false
	}

	self := board.Piece{Kind: board.Bishop, Color: pos.Side}
	for _, m := range movegen.PseudoLegalMoves(pos, king, self) {
		if attackedBy(pos, m.To, board.Bishop, board.Queen) {
			return true
		}
	}

	self = board.Piece{Kind: board.Rook, Color: pos.Side}
	for _, m := range movegen.PseudoLegalMoves(pos, king, self) {
		if attackedBy(pos, m.To, board.Rook, board.Queen) {
			return true
		}
	}

	self = board.Piece{Kind: board.Knight, Color: pos.Side}
	for _, m := range movegen.PseudoLegalMoves(pos, king, self) {
		if attackedBy(pos, m.To, board.Knight) {
			return true
		}
	}

	self = board.Piece{Kind: board.King, Color: pos.Side}
	for _, m := range movegen.PseudoLegalMoves(pos, king, self) {
		if attackedBy(pos, m.To, board.King) {
			return true
		}
	}

	for _, to := range pawnCaptureSquares(king, pos.Side) {
		if attackedBy(pos, to, board.Pawn) {
			return true
		}
	}

	return false
}

// attackedBy reports whether the square at idx holds an enemy piece of
// one of the given kinds. The square must already be a legal movegen
// destination from the king's square, so "enemy" is implied by the
// destination being reachable in the first place for sliders/steppers;
// for pawn-capture squares (computed directly, not via movegen) we also
// need to check the occupant's color here.
func attackedBy(pos board.Position, idx board.Index, kinds ...board.PieceKind) bool {
	occupant, has := pos.PieceAt(idx)
	if !has || occupant.Color == pos.Side {
		return false
	}
	for _, k := range kinds {
		if occupant.Kind == k {
			return true
		}
	}
	return false
}

// pawnCaptureSquares returns the on-board squares (two, or one on an edge
// file) from which an enemy pawn could capture onto origin, using
// origin's color's own pawn-capture
// geometry (a white king is attacked by a black pawn standing on one of
// the squares a white pawn would capture onto from the king's square).
func pawnCaptureSquares(origin board.Index, color board.Color) []board.Index {
	deltas := []int{movegen.Northeast, movegen.Northwest}
	if color == board.Black {
		deltas = []int{movegen.Southeast, movegen.Southwest}
	}
	var squares []board.Index
	for _, d := range deltas {
		to := origin + board.Index(d)
		if !board.OffBoard(to) {
			squares = append(squares, to)
		}
	}
	return squares
}

func findKing(pos board.Position, color board.Color) (board.Index, bool) {
	for i := board.Index(0); i < 100; i++ {
		if board.OffBoard(i) {
			continue
		}
		if p, has := pos.PieceAt(i); has && p.Kind == board.King && p.Color == color {
			return i, true
		}
	}
	return 0, false
}

// LegalMoves returns every legal move for the piece at origin: the
// pseudo-legal moves intersected with the non-self-check constraint. For
// each candidate, it builds the hypothetical next position, flips its
// side back to the mover (Apply already toggled it), and keeps the move
// only if the mover is not left in check.
func LegalMoves(pos board.Position, origin board.Index, piece board.Piece) []board.Move {
	candidates := movegen.PseudoLegalMoves(pos, origin, piece)
	var legal []board.Move
	for _, m := range candidates {
		next, err := pos.WithMove(m)
		if err != nil {
			continue
		}
		next.Side = piece.Color
		if !InCheck(next) {
			legal = append(legal, m)
		}
	}
	return legal
}

// AllLegalMoves returns the union of LegalMoves for every piece of
// pos.Side, in unspecified order.
func AllLegalMoves(pos board.Position) []board.Move {
	var all []board.Move
	for i := board.Index(0); i < 100; i++ {
		if board.OffBoard(i) {
			continue
		}
		piece, has := pos.PieceAt(i)
		if !has || piece.Color != pos.Side {
			continue
		}
		all = append(all, LegalMoves(pos, i, piece)...)
	}
	return all
}
