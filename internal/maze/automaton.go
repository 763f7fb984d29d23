package maze

// moveSteps are the transitions examined from each node: right, left, down, up.
var moveSteps = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Automaton is the traversal graph over the open cells of a grid.
// Nodes are indexed densely; edges never change after Build.
type Automaton struct {
	start Cell
	goal  Cell
	nodes []Cell       // node index -> cell
	index map[Cell]int // cell -> node index
	edges [][]int      // node index -> neighbour node indices

	solved bool
	path   []Cell
}

// Build creates one node per open cell and a directed transition to each
// in-bounds open axis neighbour.
func Build(g *Grid, start, goal Cell) *Automaton {
	a := &Automaton{
		start: start,
		goal:  goal,
		index: make(map[Cell]int),
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.IsOpen(c) {
				a.index[c] = len(a.nodes)
				a.nodes = append(a.nodes, c)
			}
		}
	}

	a.edges = make([][]int, len(a.nodes))
	for i, c := range a.nodes {
		for _, step := range moveSteps {
			if j, ok := a.index[c.Add(step[0], step[1])]; ok {
				a.edges[i] = append(a.edges[i], j)
			}
		}
	}

	return a
}

// Start returns the start cell.
func (a *Automaton) Start() Cell {
	return a.start
}

// Goal returns the goal cell.
func (a *Automaton) Goal() Cell {
	return a.goal
}

// NodeCount returns the number of open cells in the graph.
func (a *Automaton) NodeCount() int {
	return len(a.nodes)
}

// EdgeCount returns the number of directed transitions.
func (a *Automaton) EdgeCount() int {
	n := 0
	for _, e := range a.edges {
		n += len(e)
	}
	return n
}

// Reachable reports whether c is a node of the graph (an open cell).
func (a *Automaton) Reachable(c Cell) bool {
	_, ok := a.index[c]
	return ok
}

// Neighbors returns the transition targets of c in build order.
// Returns nil if c is not an open cell.
func (a *Automaton) Neighbors(c Cell) []Cell {
	i, ok := a.index[c]
	if !ok {
		return nil
	}
	out := make([]Cell, len(a.edges[i]))
	for k, j := range a.edges[i] {
		out[k] = a.nodes[j]
	}
	return out
}

// ShortestPath returns the minimum-hop route from start to goal, excluding
// start and including goal. An empty slice means there is nothing to walk:
// either start == goal, or the goal cannot be reached. The result is computed
// once; each call returns a fresh copy.
func (a *Automaton) ShortestPath() []Cell {
	if !a.solved {
		a.path = a.search()
		a.solved = true
	}
	out := make([]Cell, len(a.path))
	copy(out, a.path)
	return out
}

// Distance returns the hop count of the shortest path, 0 when start == goal,
// or -1 when the goal is unreachable.
func (a *Automaton) Distance() int {
	path := a.ShortestPath()
	if len(path) > 0 {
		return len(path)
	}
	if a.start == a.goal && a.Reachable(a.start) {
		return 0
	}
	return -1
}

// search is a breadth-first search that marks nodes visited when they are
// enqueued and records each node's predecessor on first discovery.
func (a *Automaton) search() []Cell {
	src, ok := a.index[a.start]
	if !ok {
		return nil
	}
	dst, ok := a.index[a.goal]
	if !ok || src == dst {
		return nil
	}

	parent := make([]int, len(a.nodes))
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, len(a.nodes))
	visited[src] = true

	queue := make([]int, 0, len(a.nodes))
	queue = append(queue, src)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == dst {
			return a.reconstruct(parent, src, dst)
		}
		for _, next := range a.edges[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	return nil
}

// reconstruct walks the predecessor chain back from dst and reverses it.
func (a *Automaton) reconstruct(parent []int, src, dst int) []Cell {
	var path []Cell
	for n := dst; n != src; n = parent[n] {
		path = append(path, a.nodes[n])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
