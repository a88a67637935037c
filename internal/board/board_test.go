package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const startingLayout = "00000000000rnbqkbnr00pppppppp00--------00--------00--------00--------00PPPPPPPP00RNBQKBNR00000000000"

func TestNewPositionRoundTrip(t *testing.T) {
	pos, err := NewPosition(startingLayout, White)
	assert.NoError(t, err)
	assert.Equal(t, startingLayout+"1", pos.Key)

	pos, err = NewPosition(startingLayout, Black)
	assert.NoError(t, err)
	assert.Equal(t, startingLayout+"0", pos.Key)
}

func TestNewPositionInvalidLength(t *testing.T) {
	_, err := NewPosition(startingLayout[:99], White)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestNewPositionInvalidCharacter(t *testing.T) {
	bad := "x" + startingLayout[1:]
	_, err := NewPosition(bad, White)
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestEdgeTotality(t *testing.T) {
	pos, err := NewPosition(startingLayout, White)
	assert.NoError(t, err)
	for i := Index(0); i < 100; i++ {
		if OffBoard(i) {
			_, has := pos.PieceAt(i)
			assert.False(t, has, "index %d should be edge/empty", i)
		}
	}
}

func TestApplyBijectionOnKey(t *testing.T) {
	pos, err := NewPosition(startingLayout, White)
	assert.NoError(t, err)
	before := pos.Key

	m := Move{From: 75, To: 55} // e2e4
	err = pos.Apply(m)
	assert.NoError(t, err)

	for i := 0; i < 100; i++ {
		switch Index(i) {
		case m.From:
			assert.Equal(t, byte('-'), pos.Key[i])
		case m.To:
			assert.Equal(t, before[m.From], pos.Key[i])
		default:
			assert.Equal(t, before[i], pos.Key[i], "index %d should be unchanged", i)
		}
	}
	assert.Equal(t, byte('0'), pos.Key[100])
	assert.Equal(t, Black, pos.Side)
}

func TestApplyEmptyOrigin(t *testing.T) {
	pos, err := NewPosition(startingLayout, White)
	assert.NoError(t, err)
	err = pos.Apply(Move{From: 65, To: 55}) // rank 3, no piece there
	assert.ErrorIs(t, err, ErrEmptyOrigin)
}

func TestWithMoveLeavesOriginalUntouched(t *testing.T) {
	pos, err := NewPosition(startingLayout, White)
	assert.NoError(t, err)
	next, err := pos.WithMove(Move{From: 75, To: 55})
	assert.NoError(t, err)

	_, hasOriginal := pos.PieceAt(75)
	assert.True(t, hasOriginal)
	assert.Equal(t, White, pos.Side)

	_, hasMoved := next.PieceAt(75)
	assert.False(t, hasMoved)
	assert.Equal(t, Black, next.Side)
}

func TestSquareIndexRoundTrip(t *testing.T) {
	cases := map[string]Index{
		"a8": 11, "h8": 18, "a1": 81, "h1": 88,
		"e2": 75, "e4": 55, "c2": 73, "c4": 53,
	}
	for name, idx := range cases {
		got, err := SquareIndex(name)
		assert.NoError(t, err)
		assert.Equal(t, idx, got, name)

		back, err := IndexToSquare(idx)
		assert.NoError(t, err)
		assert.Equal(t, name, back, name)
	}
}

func TestSquareIndexCaseInsensitive(t *testing.T) {
	lower, err := SquareIndex("e2")
	assert.NoError(t, err)
	upper, err := SquareIndex("E2")
	assert.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestSquareIndexInvalid(t *testing.T) {
	for _, s := range []string{"", "i1", "a9", "a0", "z"} {
		_, err := SquareIndex(s)
		assert.True(t, errors.Is(err, ErrInvalidSquare), s)
	}
}

func TestIndexToSquareOffBoard(t *testing.T) {
	_, err := IndexToSquare(0)
	assert.ErrorIs(t, err, ErrInvalidSquare)
	_, err = IndexToSquare(10)
	assert.ErrorIs(t, err, ErrInvalidSquare)
}

func TestOffBoard(t *testing.T) {
	onBoard := []Index{11, 18, 81, 88, 55}
	for _, idx := range onBoard {
		assert.False(t, OffBoard(idx), idx)
	}
	off := []Index{0, 9, 10, 19, 20, 89, 90, 99, 100}
	for _, idx := range off {
		assert.True(t, OffBoard(idx), idx)
	}
}
