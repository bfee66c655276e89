package rules

import "github.com/pkg/errors"

// spawnDirections lists each roster slot's outward facing. The spawn
// point is the field center pushed length cells the same way, so
// snakes start head-out from the middle and never overlap.
var spawnDirections = [...]Direction{MinusX, MinusY, PlusX, PlusY}

// MaxPlayers is the number of spawn slots on a field.
const MaxPlayers = len(spawnDirections)

// SpawnPoint computes the head position and facing for the snake in
// the given roster slot. Slots outside the spawn table are rejected.
func SpawnPoint(slot, length int, fieldSize Vector) (Vector, Direction, error) {
	if slot < 0 || slot >= MaxPlayers {
		return Vector{}, 0, errors.Errorf("no spawn slot %d, the field seats %d snakes", slot, MaxPlayers)
	}
	dir := spawnDirections[slot]
	center := Vector{X: fieldSize.X / 2, Y: fieldSize.Y / 2}
	return center.Add(dir.Unit().Scale(length)), dir, nil
}
