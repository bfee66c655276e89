package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorAdd(t *testing.T) {
	c := Vector{X: 1, Y: 2}.Add(Vector{X: 3, Y: 4})
	require.Equal(t, Vector{X: 4, Y: 6}, c)
}

func TestVectorSub(t *testing.T) {
	c := Vector{X: 1, Y: 2}.Sub(Vector{X: 3, Y: 4})
	require.Equal(t, Vector{X: -2, Y: -2}, c)
}

func TestVectorNeg(t *testing.T) {
	require.Equal(t, Vector{X: -1, Y: -2}, Vector{X: 1, Y: 2}.Neg())
}

func TestVectorScale(t *testing.T) {
	require.Equal(t, Vector{X: 3, Y: -6}, Vector{X: 1, Y: -2}.Scale(3))
}

func TestDirectionUnit(t *testing.T) {
	require.Equal(t, Vector{X: 1}, PlusX.Unit())
	require.Equal(t, Vector{X: -1}, MinusX.Unit())
	require.Equal(t, Vector{Y: 1}, PlusY.Unit())
	require.Equal(t, Vector{Y: -1}, MinusY.Unit())
}

func TestDirectionUnitUnknownPanics(t *testing.T) {
	require.Panics(t, func() { Direction(42).Unit() })
}
