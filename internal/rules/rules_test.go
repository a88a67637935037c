package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robtaussig/mailboxchess/internal/board"
)

const startingLayout = "00000000000rnbqkbnr00pppppppp00--------00--------00--------00--------00PPPPPPPP00RNBQKBNR00000000000"

func mustMove(t *testing.T, pos *board.Position, from, to string) {
	t.Helper()
	f, err := board.SquareIndex(from)
	assert.NoError(t, err)
	tt, err := board.SquareIndex(to)
	assert.NoError(t, err)
	assert.NoError(t, pos.Apply(board.Move{From: f, To: tt}))
}

// Starting position, White to move, has 20 legal moves.
func TestAllLegalMovesStartingPosition(t *testing.T) {
	pos, err := board.NewPosition(startingLayout, board.White)
	assert.NoError(t, err)
	assert.Len(t, AllLegalMoves(pos), 20)
}

// After e2e4, Black to move also has 20 legal moves.
func TestAllLegalMovesAfterOnePly(t *testing.T) {
	pos, err := board.NewPosition(startingLayout, board.White)
	assert.NoError(t, err)
	mustMove(t, &pos, "e2", "e4")
	assert.Equal(t, board.Black, pos.Side)
	assert.Len(t, AllLegalMoves(pos), 20)
}

// After e2e4, d7d5, White to move has 31 legal moves (captures appear
// for the e4 pawn).
func TestAllLegalMovesWithCapture(t *testing.T) {
	pos, err := board.NewPosition(startingLayout, board.White)
	assert.NoError(t, err)
	mustMove(t, &pos, "e2", "e4")
	mustMove(t, &pos, "d7", "d5")
	assert.Equal(t, board.White, pos.Side)
	assert.Len(t, AllLegalMoves(pos), 31)
}

// A fool's-mate-style check: e2e4, f7f5, d1h5 leaves Black in check;
// g7g6 escapes it.
func TestInCheckFoolsMate(t *testing.T) {
	pos, err := board.NewPosition(startingLayout, board.White)
	assert.NoError(t, err)
	mustMove(t, &pos, "e2", "e4")
	mustMove(t, &pos, "f7", "f5")
	mustMove(t, &pos, "d1", "h5")
	assert.Equal(t, board.Black, pos.Side)
	assert.True(t, InCheck(pos))

	mustMove(t, &pos, "g7", "g6")
	// Apply handed the move to White; flip back to ask about Black's king.
	pos.Side = board.Black
	assert.False(t, InCheck(pos))
}

// After e2e4, d7d5, d1h5, the f7 pawn is pinned against its king and has
// no legal move.
func TestSelfCheckExclusionPinnedPawn(t *testing.T) {
	pos, err := board.NewPosition(startingLayout, board.White)
	assert.NoError(t, err)
	mustMove(t, &pos, "e2", "e4")
	mustMove(t, &pos, "d7", "d5")
	mustMove(t, &pos, "d1", "h5")
	assert.Equal(t, board.Black, pos.Side)

	f7, err := board.SquareIndex("f7")
	assert.NoError(t, err)
	piece, has := pos.PieceAt(f7)
	assert.True(t, has)
	assert.Equal(t, board.Pawn, piece.Kind)
	assert.Empty(t, LegalMoves(pos, f7, piece))
}

// Self-check exclusion invariant: every legal move, replayed and flipped
// back to the mover, leaves the mover out of check.
func TestSelfCheckExclusionInvariant(t *testing.T) {
	pos, err := board.NewPosition(startingLayout, board.White)
	assert.NoError(t, err)
	mustMove(t, &pos, "e2", "e4")
	mustMove(t, &pos, "d7", "d5")
	mustMove(t, &pos, "d1", "h5")

	for _, m := range AllLegalMoves(pos) {
		next, err := pos.WithMove(m)
		assert.NoError(t, err)
		next.Side = pos.Side
		assert.False(t, InCheck(next), "move %v left mover in check", m)
	}
}
