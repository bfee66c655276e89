package rules

import "fmt"

// BodyPart tags which segment of a snake occupies a cell.
type BodyPart int

const (
	// PartHead is the first body cell.
	PartHead BodyPart = iota
	// PartBody is any cell between head and tail.
	PartBody
	// PartTail is the last body cell.
	PartTail
)

// CellKind enumerates what occupies a grid cell.
type CellKind int

const (
	// CellEmpty marks an unoccupied cell.
	CellEmpty CellKind = iota
	// CellSnake marks a cell covered by a snake body segment.
	CellSnake
	// CellFood marks a cell holding one food item.
	CellFood
)

// Cell is the contents of one grid position. Player and Part are only
// meaningful when Kind is CellSnake.
type Cell struct {
	Kind   CellKind `json:"kind"`
	Player int      `json:"player,omitempty"`
	Part   BodyPart `json:"part,omitempty"`
}

// Grid is a derived, read-only snapshot of field occupancy. It is
// rebuilt from live agent state after every step and is stale the
// moment any agent state changes.
type Grid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []Cell `json:"cells"`
}

// NewGrid allocates an empty grid sized to the field.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell {
	return g.Cells[y*g.Width+x]
}

func (g *Grid) set(p Vector, c Cell) {
	g.Cells[p.Y*g.Width+p.X] = c
}

// StampFood marks each food position on the grid.
func (g *Grid) StampFood(food []Vector) {
	for _, f := range food {
		g.set(f, Cell{Kind: CellFood})
	}
}

// StampSnake marks each body cell of one snake, tagging the first cell
// as head, the last as tail and the rest as body.
func (g *Grid) StampSnake(player int, body []Vector) {
	for i, b := range body {
		part := PartBody
		switch i {
		case 0:
			part = PartHead
		case len(body) - 1:
			part = PartTail
		}
		g.set(b, Cell{Kind: CellSnake, Player: player, Part: part})
	}
}

// NthEmptyCell returns the nth empty cell counting in x-major order.
// The caller guarantees at least n+1 empty cells exist; running out is
// an unrecoverable accounting bug, not a user error.
func (g *Grid) NthEmptyCell(n int) Vector {
	seen := 0
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if g.At(x, y).Kind != CellEmpty {
				continue
			}
			if seen == n {
				return Vector{X: x, Y: y}
			}
			seen++
		}
	}
	panic(fmt.Sprintf("rules: no empty cell %d, grid has only %d", n, seen))
}
