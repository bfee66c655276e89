package rules

import "fmt"

// Snake is a single agent's body, facing and pending growth. The body
// is ordered head-first and always holds at least two cells, so the
// head and tail are distinct cells for collision purposes.
type Snake struct {
	body        []Vector
	look        Direction
	growCounter int
}

// NewSnake builds a snake whose head is at head and whose body lays
// length cells behind it along the reverse of facing. Panics if length
// is below 2; the collision rules assume head and tail never share a
// cell slot.
func NewSnake(head Vector, facing Direction, length int) *Snake {
	if length < 2 {
		panic(fmt.Sprintf("rules: snake length %d, minimum is 2", length))
	}
	unit := facing.Unit()
	body := make([]Vector, length)
	for i := range body {
		body[i] = head.Sub(unit.Scale(i))
	}
	return &Snake{
		body: body,
		look: facing,
	}
}

// Head returns the first body cell.
func (s *Snake) Head() Vector {
	return s.body[0]
}

// Tail returns the last body cell.
func (s *Snake) Tail() Vector {
	return s.body[len(s.body)-1]
}

// Body returns the body cells, head first. The slice is owned by the
// snake and must not be mutated by the caller.
func (s *Snake) Body() []Vector {
	return s.body
}

// Facing returns the direction the snake will move on its next step.
func (s *Snake) Facing() Direction {
	return s.look
}

// Length returns the number of body cells.
func (s *Snake) Length() int {
	return len(s.body)
}

// PendingGrowth returns the number of growth credits left to consume.
func (s *Snake) PendingGrowth() int {
	return s.growCounter
}

// TrySetLookDirection updates the facing unless the request would turn
// the snake directly back into its own neck, in which case the prior
// facing is kept. It reports whether the resulting facing equals the
// request, so callers can detect a rejected turn. Panics if the stored
// body is not contiguous.
func (s *Snake) TrySetLookDirection(requested Direction) bool {
	backward := s.body[1].Sub(s.body[0])
	if backward.manhattan() != 1 {
		panic(fmt.Sprintf("rules: snake body is not contiguous, head %v neck %v", s.body[0], s.body[1]))
	}
	if requested.Unit() != backward {
		s.look = requested
	}
	return s.look == requested
}

// MoveForward advances the snake one cell in its look direction. A
// pending growth credit is consumed instead of dropping the tail, so
// the snake grows by one cell; otherwise the length is unchanged.
func (s *Snake) MoveForward() {
	newHead := s.body[0].Add(s.look.Unit())
	s.body = append([]Vector{newHead}, s.body...)
	if s.growCounter > 0 {
		s.growCounter--
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// Eat adds amount growth credits. Growth is deferred: it manifests
// over the next amount calls to MoveForward.
func (s *Snake) Eat(amount int) {
	s.growCounter += amount
}
