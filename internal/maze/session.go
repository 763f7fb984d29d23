package maze

// Session walks a precomputed path one cell at a time.
// It is owned by a single driver and must not be advanced concurrently.
type Session struct {
	grid      *Grid
	start     Cell
	goal      Cell
	position  Cell
	remaining []Cell
	pathLen   int
	steps     int
}

// NewSession creates a session positioned at start. The grid and path are
// copied, so later changes to either by the caller do not reach the session.
func NewSession(g *Grid, start, goal Cell, path []Cell) *Session {
	remaining := make([]Cell, len(path))
	copy(remaining, path)
	return &Session{
		grid:      g.Clone(),
		start:     start,
		goal:      goal,
		position:  start,
		remaining: remaining,
		pathLen:   len(path),
	}
}

// Solve builds the automaton for g and returns a session on its shortest path.
func Solve(g *Grid, start, goal Cell) *Session {
	return NewSession(g, start, goal, Build(g, start, goal).ShortestPath())
}

// Advance moves to the next cell of the remaining path.
// Returns false (and changes nothing) once the path is exhausted.
func (s *Session) Advance() bool {
	if len(s.remaining) == 0 {
		return false
	}
	s.position = s.remaining[0]
	s.remaining = s.remaining[1:]
	s.steps++
	return true
}

// GoalReached reports whether the current position is the goal.
func (s *Session) GoalReached() bool {
	return s.position == s.goal
}

// Exhausted reports whether there are no moves left.
func (s *Session) Exhausted() bool {
	return len(s.remaining) == 0
}

// Grid returns a copy of the maze being walked.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// Size returns the width and height of the maze.
func (s *Session) Size() (w, h int) {
	return s.grid.W, s.grid.H
}

// IsOpen reports whether c is an open cell of the maze.
func (s *Session) IsOpen(c Cell) bool {
	return s.grid.IsOpen(c)
}

// Start returns the start cell.
func (s *Session) Start() Cell {
	return s.start
}

// Goal returns the goal cell.
func (s *Session) Goal() Cell {
	return s.goal
}

// Position returns the current cell.
func (s *Session) Position() Cell {
	return s.position
}

// Remaining returns a copy of the cells still to be walked.
func (s *Session) Remaining() []Cell {
	out := make([]Cell, len(s.remaining))
	copy(out, s.remaining)
	return out
}

// PathLen returns the length of the path the session started with.
func (s *Session) PathLen() int {
	return s.pathLen
}

// Steps returns the number of successful Advance calls.
func (s *Session) Steps() int {
	return s.steps
}
