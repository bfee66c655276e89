// Package game owns the player roster, the food pool and the tick
// loop. The loop is the single owner of all game state for its whole
// lifetime; the outside world reaches it only through per-player
// intent channels, a one-shot stop channel and the broadcast event
// stream.
package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/snakezio/snakez/config"
	"github.com/snakezio/snakez/rules"
)

// Game runs one simulation on a fixed-size field.
type Game struct {
	ID string

	fieldSize    rules.Vector
	tickInterval time.Duration
	pollInterval time.Duration
	foodTarget   int
	snakeLength  int

	players []*Player
	food    []rules.Vector
	grid    *rules.Grid
	turn    int64
	events  *Broadcaster
	started bool
}

// New creates a game on the given field, tuned from package config.
func New(fieldSize rules.Vector) *Game {
	return &Game{
		ID:           uuid.NewV4().String(),
		fieldSize:    fieldSize,
		tickInterval: config.TickInterval,
		pollInterval: config.LoopPoll,
		foodTarget:   config.FoodCount,
		snakeLength:  config.SnakeLength,
		events:       NewBroadcaster(),
	}
}

// FieldSize returns the fixed field dimensions.
func (g *Game) FieldSize() rules.Vector {
	return g.fieldSize
}

// Subscribe attaches a consumer to the outbound event stream. See
// Broadcaster.Subscribe.
func (g *Game) Subscribe() (<-chan Event, func()) {
	return g.events.Subscribe()
}

// RegisterPlayer assigns the next free roster slot and returns its
// index, the player's stable identity for the whole game. The snake
// spawns at the slot's table position facing outward from the field
// center. Registration closes once Run starts, and the field seats at
// most four snakes.
func (g *Game) RegisterPlayer(intents <-chan rules.Direction) (int, error) {
	if g.started {
		return 0, errors.New("game already started, registration is closed")
	}
	slot := len(g.players)
	pos, dir, err := rules.SpawnPoint(slot, g.snakeLength, g.fieldSize)
	if err != nil {
		return 0, errors.Wrap(err, "register player")
	}
	g.players = append(g.players, &Player{
		snake:   rules.NewSnake(pos, dir, g.snakeLength),
		intents: intents,
	})
	return slot, nil
}

// Run drives the simulation until every player is dead or the stop
// channel fires, then closes the event stream. Each iteration polls
// the stop channel without blocking, drains all pending intents, and
// applies at most one step per elapsed tick interval.
func (g *Game) Run(stop <-chan struct{}) {
	g.started = true
	defer g.events.Close()

	g.rebuildGrid()
	g.replenishFood()

	log.WithFields(log.Fields{
		"GameID":  g.ID,
		"Players": len(g.players),
		"Width":   g.fieldSize.X,
		"Height":  g.fieldSize.Y,
	}).Info("game loop starting")

	last := time.Now()
	for g.aliveCount() > 0 {
		select {
		case <-stop:
			log.WithFields(log.Fields{
				"GameID": g.ID,
				"Turn":   g.turn,
			}).Info("stop requested")
			return
		default:
		}

		for _, p := range g.players {
			p.drainIntents()
		}

		// One interval is subtracted rather than resetting the clock,
		// so a surplus carries into the next measurement and the loop
		// never drifts. A step is never skipped or doubled.
		if time.Since(last) >= g.tickInterval {
			last = last.Add(g.tickInterval)
			g.step()
			g.events.Publish(Update{
				Turn:      g.turn,
				Grid:      g.grid,
				Summaries: g.summaries(),
			})
			continue
		}

		time.Sleep(g.pollInterval)
	}

	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Turn":   g.turn,
	}).Info("game over")
	g.events.Publish(GameOver{Summaries: g.summaries()})
}

// step applies one simulation update in two phases: predict an action
// for every player from the pre-step snapshot, then apply all actions.
// Prediction and mutation are never interleaved between agents.
func (g *Game) step() {
	g.turn++

	snakes := make([]*rules.Snake, len(g.players))
	for i, p := range g.players {
		snakes[i] = p.snake
	}
	predictions := rules.PredictActions(g.fieldSize, snakes)

	for i, pr := range predictions {
		switch pr.Action {
		case rules.ActionMove:
			g.moveAndEat(i)
		case rules.ActionDie:
			log.WithFields(log.Fields{
				"GameID": g.ID,
				"Turn":   g.turn,
				"Player": i,
				"Cause":  pr.Cause,
			}).Info("snake died")
			g.players[i].kill(pr.Cause)
			snakeDeaths.WithLabelValues(pr.Cause).Inc()
		}
	}

	g.rebuildGrid()
	g.replenishFood()
	stepsApplied.Inc()
}

// moveAndEat advances one snake and consumes any food its new head
// lands on. This is the only place score changes and food leaves the
// pool.
func (g *Game) moveAndEat(idx int) {
	p := g.players[idx]
	p.snake.MoveForward()
	head := p.snake.Head()
	for i, f := range g.food {
		if f != head {
			continue
		}
		p.score++
		p.snake.Eat(1)
		g.food = append(g.food[:i], g.food[i+1:]...)
		foodEaten.Inc()
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.turn,
			"Player": idx,
			"Food":   f,
		}).Info("snake ate")
		break
	}
}

// rebuildGrid derives a fresh snapshot from the food pool and every
// alive snake. Dead players contribute nothing.
func (g *Game) rebuildGrid() {
	grid := rules.NewGrid(g.fieldSize.X, g.fieldSize.Y)
	grid.StampFood(g.food)
	for i, p := range g.players {
		if p.Alive() {
			grid.StampSnake(i, p.snake.Body())
		}
	}
	g.grid = grid
}

// replenishFood tops the pool back up to the configured target. Each
// spawn picks a uniformly random index into the grid's empty cells;
// the grid is stamped as food lands so later picks stay consistent.
func (g *Game) replenishFood() {
	empty := g.numEmptyCells()
	for len(g.food) < g.foodTarget && empty > 0 {
		p := g.grid.NthEmptyCell(rand.Intn(empty))
		g.food = append(g.food, p)
		g.grid.StampFood([]rules.Vector{p})
		empty--
	}
}

func (g *Game) numEmptyCells() int {
	n := g.fieldSize.X*g.fieldSize.Y - len(g.food)
	for _, p := range g.players {
		if p.Alive() {
			n -= p.snake.Length()
		}
	}
	return n
}

func (g *Game) summaries() []PlayerSummary {
	out := make([]PlayerSummary, len(g.players))
	for i, p := range g.players {
		out[i] = p.Summary()
	}
	return out
}

func (g *Game) aliveCount() int {
	n := 0
	for _, p := range g.players {
		if p.Alive() {
			n++
		}
	}
	return n
}
