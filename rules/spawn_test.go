package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawnPointTable(t *testing.T) {
	fieldSize := Vector{X: 10, Y: 10}

	pos, dir, err := SpawnPoint(0, 3, fieldSize)
	require.NoError(t, err)
	require.Equal(t, Vector{X: 2, Y: 5}, pos)
	require.Equal(t, MinusX, dir)

	pos, dir, err = SpawnPoint(1, 3, fieldSize)
	require.NoError(t, err)
	require.Equal(t, Vector{X: 5, Y: 2}, pos)
	require.Equal(t, MinusY, dir)

	pos, dir, err = SpawnPoint(2, 3, fieldSize)
	require.NoError(t, err)
	require.Equal(t, Vector{X: 8, Y: 5}, pos)
	require.Equal(t, PlusX, dir)

	pos, dir, err = SpawnPoint(3, 3, fieldSize)
	require.NoError(t, err)
	require.Equal(t, Vector{X: 5, Y: 8}, pos)
	require.Equal(t, PlusY, dir)
}

func TestSpawnPointRejectsExtraSlots(t *testing.T) {
	_, _, err := SpawnPoint(4, 3, Vector{X: 10, Y: 10})
	require.Error(t, err)

	_, _, err = SpawnPoint(-1, 3, Vector{X: 10, Y: 10})
	require.Error(t, err)
}
