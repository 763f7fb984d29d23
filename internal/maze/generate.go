package maze

import (
	"errors"
	"fmt"
)

// MinDimension is the smallest accepted width or height.
const MinDimension = 3

var (
	ErrInvalidDimensions = errors.New("maze: invalid dimensions")
	ErrInvalidEndpoint   = errors.New("maze: start or goal outside the maze interior")
	ErrNilRandom         = errors.New("maze: nil random source")
)

// Random is the source of randomness used by the generator.
// *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform integer in [0, n). n is always > 0.
	Intn(n int) int
}

// choose picks a uniform index among n items.
func choose(rng Random, n int) int {
	return rng.Intn(n)
}

// between returns a uniform integer in the inclusive range [lo, hi].
func between(rng Random, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// carveSteps are the lattice moves tried from each cell, in order.
var carveSteps = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Params configures maze generation.
type Params struct {
	Width         int
	Height        int
	Start         Cell
	Goal          Cell
	ExtraPassages int // Random interior cells forced open after carving
}

// DefaultParams returns the standard layout for a maze of the given size:
// start in the top-left interior corner, goal in the bottom-right one, and
// width*height/10 extra passages.
func DefaultParams(width, height int) Params {
	return Params{
		Width:         width,
		Height:        height,
		Start:         C(1, 1),
		Goal:          C(width-2, height-2),
		ExtraPassages: width * height / 10,
	}
}

// Validate checks the parameters without generating anything.
func (p Params) Validate() error {
	if p.Width < MinDimension || p.Height < MinDimension {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidDimensions, p.Width, p.Height, MinDimension, MinDimension)
	}
	if !p.interior(p.Start) || !p.interior(p.Goal) {
		return fmt.Errorf("%w: start %s goal %s", ErrInvalidEndpoint, p.Start, p.Goal)
	}
	if p.ExtraPassages < 0 {
		return fmt.Errorf("maze: negative extra passages %d", p.ExtraPassages)
	}
	return nil
}

func (p Params) interior(c Cell) bool {
	return c.X >= 1 && c.X <= p.Width-2 && c.Y >= 1 && c.Y <= p.Height-2
}

// IsOddLattice reports whether both dimensions are odd. With odd dimensions the
// default start and goal sit on the same carving lattice, so the carved tree
// always reaches the goal. With an even dimension the goal is off-lattice and is
// only connected when an extra passage happens to link it.
func IsOddLattice(width, height int) bool {
	return width%2 == 1 && height%2 == 1
}

// Generate carves a maze with randomized depth-first backtracking, forces the
// goal open, then opens p.ExtraPassages random interior cells to create loops.
// The result depends only on p and the sequence produced by rng.
func Generate(p Params, rng Random) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRandom
	}

	g := NewGrid(p.Width, p.Height)
	carve(g, p.Start, rng)
	g.Set(p.Goal, Open)

	for range p.ExtraPassages {
		x := between(rng, 1, p.Width-2)
		y := between(rng, 1, p.Height-2)
		g.Set(C(x, y), Open)
	}

	return g, nil
}

// GenerateDefault is Generate with DefaultParams.
func GenerateDefault(width, height int, rng Random) (*Grid, error) {
	return Generate(DefaultParams(width, height), rng)
}

// carve runs the iterative backtracker from start.
func carve(g *Grid, start Cell, rng Random) {
	g.Set(start, Open)
	stack := []Cell{start}
	candidates := make([]Cell, 0, len(carveSteps))

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, step := range carveSteps {
			next := current.Add(step[0], step[1])
			if g.InBounds(next) && g.At(next) == Wall {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[choose(rng, len(candidates))]
		g.Set(next, Open)
		g.Set(C((current.X+next.X)/2, (current.Y+next.Y)/2), Open)
		stack = append(stack, next)
	}
}
