// Package maze generates wall/open mazes and computes shortest routes through them.
// It has no dependencies on the platform or rendering layers: randomness is
// injected, and nothing here logs or touches the terminal.
package maze

import (
	"fmt"
	"strings"
)

// Cell is a grid coordinate. X increases to the right, Y increases downward.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Add returns a new Cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// State is the content of a single grid cell.
type State uint8

const (
	Wall State = iota // zero value, so a fresh grid is solid
	Open
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Wall:
		return "wall"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Rune characters used by Rows, String and ParseGrid.
const (
	WallRune = '#'
	OpenRune = '.'
)

// Grid is a rectangular maze stored in row-major order: index = y*W + x.
// Generated grids are not changed afterwards; a Session holds its own copy.
type Grid struct {
	W     int
	H     int
	Cells []State
}

// NewGrid creates a grid of the given size with every cell set to Wall.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]State, w*h),
	}
}

// ParseGrid builds a grid from rows of WallRune/OpenRune characters.
// All rows must have the same length.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrInvalidDimensions, y, len(row), w)
		}
		for x, ch := range row {
			switch ch {
			case WallRune:
			case OpenRune:
				g.Set(C(x, y), Open)
			default:
				return nil, fmt.Errorf("maze: unexpected character %q at %s", ch, C(x, y))
			}
		}
	}
	return g, nil
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the cell is within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the state of the cell. Out-of-bounds cells read as Wall.
func (g *Grid) At(c Cell) State {
	if !g.InBounds(c) {
		return Wall
	}
	return g.Cells[g.index(c)]
}

// IsOpen reports whether the cell is in bounds and passable.
func (g *Grid) IsOpen(c Cell) bool {
	return g.At(c) == Open
}

// Set changes the state of a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Cell, s State) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = s
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]State, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, s := range g.Cells {
		if s != other.Cells[i] {
			return false
		}
	}
	return true
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	count := 0
	for _, s := range g.Cells {
		if s == Open {
			count++
		}
	}
	return count
}

// Rows returns one string per row using WallRune and OpenRune.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		sb.Reset()
		sb.Grow(g.W)
		for x := 0; x < g.W; x++ {
			if g.IsOpen(C(x, y)) {
				sb.WriteRune(OpenRune)
			} else {
				sb.WriteRune(WallRune)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the grid as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
