package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSnakeLaysBodyBehindHead(t *testing.T) {
	s := NewSnake(Vector{X: 0, Y: 0}, PlusX, 3)
	require.Equal(t, PlusX, s.Facing())
	require.Equal(t, []Vector{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -2, Y: 0}}, s.Body())
}

func TestNewSnakeRejectsShortBody(t *testing.T) {
	require.Panics(t, func() { NewSnake(Vector{}, PlusX, 1) })
	require.Panics(t, func() { NewSnake(Vector{}, PlusX, 0) })
	require.NotPanics(t, func() { NewSnake(Vector{}, PlusX, 2) })
}

func TestMoveForwardKeepsLength(t *testing.T) {
	s := NewSnake(Vector{X: 0, Y: 0}, PlusX, 3)
	s.MoveForward()
	require.Equal(t, []Vector{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: -1, Y: 0}}, s.Body())
}

func TestMoveForwardAfterEatGrows(t *testing.T) {
	s := NewSnake(Vector{X: 0, Y: 0}, PlusX, 3)
	s.Eat(2)
	require.Equal(t, 2, s.PendingGrowth())

	s.MoveForward()
	require.Equal(t, 1, s.PendingGrowth())
	require.Equal(t, []Vector{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: -1, Y: 0}, {X: -2, Y: 0}}, s.Body())

	s.MoveForward()
	require.Equal(t, 0, s.PendingGrowth())
	require.Equal(t, []Vector{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: -1, Y: 0}, {X: -2, Y: 0}}, s.Body())

	// Credits spent, length holds again.
	s.MoveForward()
	require.Equal(t, 5, s.Length())
}

func TestTrySetLookDirectionRejectsOnlyBackward(t *testing.T) {
	// Head (0,0), neck (-1,0): backward is -x.
	s := NewSnake(Vector{X: 0, Y: 0}, PlusX, 3)

	require.False(t, s.TrySetLookDirection(MinusX))
	require.Equal(t, PlusX, s.Facing())

	require.True(t, s.TrySetLookDirection(PlusY))
	require.Equal(t, PlusY, s.Facing())

	require.True(t, s.TrySetLookDirection(MinusY))
	require.Equal(t, MinusY, s.Facing())

	require.True(t, s.TrySetLookDirection(PlusX))
	require.Equal(t, PlusX, s.Facing())
}

func TestTrySetLookDirectionAcceptsCurrentFacing(t *testing.T) {
	s := NewSnake(Vector{X: 0, Y: 0}, PlusX, 2)
	require.True(t, s.TrySetLookDirection(PlusX))
	require.Equal(t, PlusX, s.Facing())
}

func TestTrySetLookDirectionPanicsOnGappedBody(t *testing.T) {
	s := NewSnake(Vector{X: 0, Y: 0}, PlusX, 2)
	s.body[1] = Vector{X: -5, Y: 0}
	require.Panics(t, func() { s.TrySetLookDirection(PlusY) })
}

func TestHeadAndTail(t *testing.T) {
	s := NewSnake(Vector{X: 3, Y: 4}, MinusY, 2)
	require.Equal(t, Vector{X: 3, Y: 4}, s.Head())
	require.Equal(t, Vector{X: 3, Y: 5}, s.Tail())
}
