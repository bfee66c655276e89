package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snakezio/snakez/rules"
)

func TestDrainIntentsAppliesInOrder(t *testing.T) {
	intents := make(chan rules.Direction, 4)
	p := &Player{
		snake:   rules.NewSnake(rules.Vector{X: 5, Y: 5}, rules.PlusX, 2),
		intents: intents,
	}

	// The later intent in the same tick wins.
	intents <- rules.PlusY
	intents <- rules.MinusY
	p.drainIntents()
	require.Equal(t, rules.MinusY, p.snake.Facing())
}

func TestDrainIntentsIgnoresReversal(t *testing.T) {
	intents := make(chan rules.Direction, 1)
	p := &Player{
		snake:   rules.NewSnake(rules.Vector{X: 5, Y: 5}, rules.PlusX, 2),
		intents: intents,
	}

	intents <- rules.MinusX
	p.drainIntents()
	require.Equal(t, rules.PlusX, p.snake.Facing())
}

func TestDrainIntentsDiscardsForDeadPlayer(t *testing.T) {
	intents := make(chan rules.Direction, 2)
	p := &Player{
		snake:   rules.NewSnake(rules.Vector{X: 5, Y: 5}, rules.PlusX, 2),
		intents: intents,
	}
	p.kill(rules.DeathCauseWallCollision)

	intents <- rules.PlusY
	intents <- rules.MinusY
	p.drainIntents()
	require.Len(t, intents, 0, "dead player's intents must still be consumed")
	require.False(t, p.Alive())
}

func TestDrainIntentsClosedSourceReadsAsSilence(t *testing.T) {
	intents := make(chan rules.Direction)
	close(intents)
	p := &Player{
		snake:   rules.NewSnake(rules.Vector{X: 5, Y: 5}, rules.PlusX, 2),
		intents: intents,
	}

	p.drainIntents()
	require.Equal(t, rules.PlusX, p.snake.Facing())
	// Further drains are no-ops, not busy reads from the closed channel.
	p.drainIntents()
}

func TestDrainIntentsNilSource(t *testing.T) {
	p := &Player{snake: rules.NewSnake(rules.Vector{X: 5, Y: 5}, rules.PlusX, 2)}
	require.NotPanics(t, func() { p.drainIntents() })
}

func TestPlayerSummary(t *testing.T) {
	p := &Player{
		snake: rules.NewSnake(rules.Vector{X: 5, Y: 5}, rules.PlusX, 2),
		score: 7,
	}
	require.Equal(t, PlayerSummary{Score: 7, Alive: true}, p.Summary())

	p.kill(rules.DeathCauseSnakeCollision)
	require.Equal(t, PlayerSummary{Score: 7, Alive: false}, p.Summary())
	require.Equal(t, rules.DeathCauseSnakeCollision, p.DeathCause())
	require.Nil(t, p.Snake())
}
