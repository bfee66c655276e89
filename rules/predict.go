package rules

// Action is the per-agent decision for one step.
type Action int

const (
	// ActionHold keeps the snake where it is this step.
	ActionHold Action = iota
	// ActionMove advances the snake one cell.
	ActionMove
	// ActionDie removes the snake from play.
	ActionDie
)

func (a Action) String() string {
	switch a {
	case ActionHold:
		return "hold"
	case ActionMove:
		return "move"
	case ActionDie:
		return "die"
	}
	return "unknown"
}

// Prediction pairs an action with the death cause when the action is
// ActionDie.
type Prediction struct {
	Action Action
	Cause  string
}

// PredictActions decides one action per roster slot using only the
// state passed in, so the outcome is independent of iteration order
// and no agent ever sees another agent's already-applied move. The
// snakes slice is indexed by slot; a nil entry is a dead player and
// always predicts Hold.
func PredictActions(fieldSize Vector, snakes []*Snake) []Prediction {
	candidates := make([]Vector, len(snakes))
	for i, s := range snakes {
		if s == nil {
			continue
		}
		candidates[i] = s.Head().Add(s.Facing().Unit())
	}

	predictions := make([]Prediction, len(snakes))
	for i, s := range snakes {
		if s == nil {
			predictions[i] = Prediction{Action: ActionHold}
			continue
		}
		predictions[i] = predictOne(fieldSize, snakes, candidates, i)
	}
	return predictions
}

func predictOne(fieldSize Vector, snakes []*Snake, candidates []Vector, idx int) Prediction {
	next := candidates[idx]
	if outOfBounds(next, fieldSize) {
		return Prediction{Action: ActionDie, Cause: DeathCauseWallCollision}
	}

	for j, other := range snakes {
		if other == nil {
			continue
		}
		body := other.Body()
		// The last cell is skipped: tails vacate during the same step.
		for k := 0; k < len(body)-1; k++ {
			if body[k] != next {
				continue
			}
			cause := DeathCauseSnakeCollision
			if j == idx {
				cause = DeathCauseSelfCollision
			}
			return Prediction{Action: ActionDie, Cause: cause}
		}
	}

	// Pairwise candidate-head comparison: every snake aiming at a
	// contested cell holds, nobody dies.
	for j, other := range snakes {
		if other == nil || j == idx {
			continue
		}
		if candidates[j] == next {
			return Prediction{Action: ActionHold}
		}
	}

	return Prediction{Action: ActionMove}
}

func outOfBounds(p, fieldSize Vector) bool {
	return p.X < 0 || p.X >= fieldSize.X || p.Y < 0 || p.Y >= fieldSize.Y
}
