package rules

import "fmt"

// Vector is an integer position or offset on the field.
type Vector struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the sum of the two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of the two vectors.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns the vector pointing the opposite way.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Scale returns the vector multiplied by k.
func (v Vector) Scale(k int) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

func (v Vector) manhattan() int {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}

// Direction is one of the four cardinal directions a snake can face.
type Direction int

const (
	// PlusX faces along the positive X axis.
	PlusX Direction = iota
	// MinusX faces along the negative X axis.
	MinusX
	// PlusY faces along the positive Y axis.
	PlusY
	// MinusY faces along the negative Y axis.
	MinusY
)

// Unit returns the unit vector for the direction.
func (d Direction) Unit() Vector {
	switch d {
	case PlusX:
		return Vector{X: 1}
	case MinusX:
		return Vector{X: -1}
	case PlusY:
		return Vector{Y: 1}
	case MinusY:
		return Vector{Y: -1}
	}
	panic(fmt.Sprintf("rules: unknown direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case PlusX:
		return "+x"
	case MinusX:
		return "-x"
	case PlusY:
		return "+y"
	case MinusY:
		return "-y"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}
