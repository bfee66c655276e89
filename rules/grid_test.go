package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(4, 3)
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			require.Equal(t, CellEmpty, g.At(x, y).Kind)
		}
	}
}

func TestStampSnakeTagsParts(t *testing.T) {
	g := NewGrid(10, 10)
	g.StampSnake(2, []Vector{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}})

	require.Equal(t, Cell{Kind: CellSnake, Player: 2, Part: PartHead}, g.At(1, 1))
	require.Equal(t, Cell{Kind: CellSnake, Player: 2, Part: PartBody}, g.At(1, 2))
	require.Equal(t, Cell{Kind: CellSnake, Player: 2, Part: PartTail}, g.At(1, 3))
	require.Equal(t, CellEmpty, g.At(1, 4).Kind)
}

func TestStampFood(t *testing.T) {
	g := NewGrid(5, 5)
	g.StampFood([]Vector{{X: 0, Y: 0}, {X: 4, Y: 4}})
	require.Equal(t, CellFood, g.At(0, 0).Kind)
	require.Equal(t, CellFood, g.At(4, 4).Kind)
	require.Equal(t, CellEmpty, g.At(2, 2).Kind)
}

func TestNthEmptyCellXMajorOrder(t *testing.T) {
	g := NewGrid(3, 3)
	// Occupy the first column so the scan skips it.
	g.StampSnake(0, []Vector{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}})

	require.Equal(t, Vector{X: 1, Y: 0}, g.NthEmptyCell(0))
	require.Equal(t, Vector{X: 1, Y: 1}, g.NthEmptyCell(1))
	require.Equal(t, Vector{X: 2, Y: 2}, g.NthEmptyCell(5))
}

func TestNthEmptyCellExhaustedPanics(t *testing.T) {
	g := NewGrid(2, 1)
	g.StampFood([]Vector{{X: 0, Y: 0}})
	require.Equal(t, Vector{X: 1, Y: 0}, g.NthEmptyCell(0))
	require.Panics(t, func() { g.NthEmptyCell(1) })
}
