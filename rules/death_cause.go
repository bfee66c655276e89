package rules

const (
	// DeathCauseWallCollision is when a snake runs off the field.
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeCollision is when a snake runs into another snake's body.
	DeathCauseSnakeCollision = "snake-collision"
	// DeathCauseSelfCollision is when a snake runs into its own body.
	DeathCauseSelfCollision = "self-collision"
)
