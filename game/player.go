package game

import "github.com/snakezio/snakez/rules"

// Player wraps one agent's snake with its score and inbound direction
// intents. A nil snake means the player is dead; death is terminal and
// every consumer checks Alive before touching the snake.
type Player struct {
	snake      *rules.Snake
	score      int
	intents    <-chan rules.Direction
	deathCause string
}

// Alive reports whether the player still has a snake in play.
func (p *Player) Alive() bool {
	return p.snake != nil
}

// Score returns the player's score. Scores never decrease.
func (p *Player) Score() int {
	return p.score
}

// Snake returns the live snake, or nil for a dead player.
func (p *Player) Snake() *rules.Snake {
	return p.snake
}

// DeathCause returns why the player died, or "" while alive.
func (p *Player) DeathCause() string {
	return p.deathCause
}

// Summary reduces the player to its published form.
func (p *Player) Summary() PlayerSummary {
	return PlayerSummary{
		Score: p.score,
		Alive: p.Alive(),
	}
}

// drainIntents empties the intent queue without blocking, applying
// each direction in arrival order so later intents in the same tick
// win. Dead players' intents are consumed and dropped. A closed or
// absent source reads as no new input.
func (p *Player) drainIntents() {
	if p.intents == nil {
		return
	}
	for {
		select {
		case d, ok := <-p.intents:
			if !ok {
				p.intents = nil
				return
			}
			if p.snake != nil {
				p.snake.TrySetLookDirection(d)
			}
		default:
			return
		}
	}
}

func (p *Player) kill(cause string) {
	p.snake = nil
	p.deathCause = cause
}
