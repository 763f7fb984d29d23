package maze

import (
	"testing"
)

func mustParse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	return g
}

// bfsDistance is an independent level-by-level BFS over the grid itself.
func bfsDistance(g *Grid, start, goal Cell) int {
	if !g.IsOpen(start) || !g.IsOpen(goal) {
		return -1
	}
	dist := map[Cell]int{start: 0}
	frontier := []Cell{start}
	for len(frontier) > 0 {
		var next []Cell
		for _, c := range frontier {
			if c == goal {
				return dist[c]
			}
			for _, n := range []Cell{c.Add(0, -1), c.Add(0, 1), c.Add(-1, 0), c.Add(1, 0)} {
				if _, seen := dist[n]; seen || !g.IsOpen(n) {
					continue
				}
				dist[n] = dist[c] + 1
				next = append(next, n)
			}
		}
		frontier = next
	}
	return -1
}

func checkPathValid(t *testing.T, g *Grid, start, goal Cell, path []Cell) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("expected non-empty path")
	}
	if path[len(path)-1] != goal {
		t.Errorf("path ends at %s, expected goal %s", path[len(path)-1], goal)
	}
	prev := start
	for i, c := range path {
		if !g.IsOpen(c) {
			t.Errorf("path[%d] = %s is not open", i, c)
		}
		if prev.Manhattan(c) != 1 {
			t.Errorf("path[%d] = %s is not adjacent to %s", i, c, prev)
		}
		prev = c
	}
}

func TestShortestPathLoop(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#.....#",
		"#.###.#",
		"#.....#",
		"#######",
	)
	a := Build(g, C(1, 1), C(5, 3))

	path := a.ShortestPath()
	checkPathValid(t, g, C(1, 1), C(5, 3), path)

	// Both routes are 6 hops; rightward transitions are examined first, so the
	// top corridor is discovered first.
	expected := []Cell{C(2, 1), C(3, 1), C(4, 1), C(5, 1), C(5, 2), C(5, 3)}
	if len(path) != len(expected) {
		t.Fatalf("path = %v, expected %v", path, expected)
	}
	for i := range expected {
		if path[i] != expected[i] {
			t.Errorf("path[%d] = %s, expected %s", i, path[i], expected[i])
		}
	}
	if a.Distance() != 6 {
		t.Errorf("Distance() = %d, expected 6", a.Distance())
	}
}

func TestShortestPathPrefersShortcut(t *testing.T) {
	g := mustParse(t,
		"#########",
		"#.......#",
		"#.#####.#",
		"#.#...#.#",
		"#.#.#.#.#",
		"#...#...#",
		"#########",
	)
	start, goal := C(1, 1), C(7, 5)
	a := Build(g, start, goal)
	path := a.ShortestPath()
	checkPathValid(t, g, start, goal, path)

	if want := bfsDistance(g, start, goal); len(path) != want {
		t.Errorf("len(path) = %d, expected %d", len(path), want)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#..#..#",
		"#######",
	)
	a := Build(g, C(1, 1), C(5, 1))

	if path := a.ShortestPath(); len(path) != 0 {
		t.Errorf("expected empty path, got %v", path)
	}
	if a.Distance() != -1 {
		t.Errorf("Distance() = %d, expected -1", a.Distance())
	}
}

func TestShortestPathDegenerateEndpoints(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#...#",
		"#####",
	)

	tests := []struct {
		name        string
		start, goal Cell
		distance    int
	}{
		{"start equals goal", C(2, 1), C(2, 1), 0},
		{"goal on wall", C(1, 1), C(2, 0), -1},
		{"start on wall", C(0, 0), C(3, 1), -1},
		{"goal out of bounds", C(1, 1), C(9, 9), -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Build(g, tc.start, tc.goal)
			if path := a.ShortestPath(); len(path) != 0 {
				t.Errorf("expected empty path, got %v", path)
			}
			if a.Distance() != tc.distance {
				t.Errorf("Distance() = %d, expected %d", a.Distance(), tc.distance)
			}
		})
	}
}

func TestShortestPathIdempotent(t *testing.T) {
	g, err := GenerateDefault(21, 15, newRand(5))
	if err != nil {
		t.Fatalf("GenerateDefault failed: %v", err)
	}
	a := Build(g, C(1, 1), C(19, 13))

	first := a.ShortestPath()
	if len(first) == 0 {
		t.Fatal("expected a path")
	}
	first[0] = C(-1, -1) // mutating the returned copy must not leak back

	second := a.ShortestPath()
	third := a.ShortestPath()
	if second[0] == C(-1, -1) {
		t.Error("ShortestPath should return a copy")
	}
	if len(second) != len(third) {
		t.Fatalf("lengths differ: %d vs %d", len(second), len(third))
	}
	for i := range second {
		if second[i] != third[i] {
			t.Errorf("path[%d] differs: %s vs %s", i, second[i], third[i])
		}
	}
}

func TestShortestPathMatchesIndependentBFS(t *testing.T) {
	sizes := [][2]int{{5, 5}, {20, 15}, {21, 15}, {33, 17}, {8, 8}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 40; seed++ {
			p := DefaultParams(size[0], size[1])
			g, err := Generate(p, newRand(seed))
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			a := Build(g, p.Start, p.Goal)
			path := a.ShortestPath()
			want := bfsDistance(g, p.Start, p.Goal)

			if want == -1 {
				if len(path) != 0 {
					t.Errorf("%dx%d seed %d: expected no path, got %d cells", size[0], size[1], seed, len(path))
				}
				continue
			}
			if len(path) != want {
				t.Errorf("%dx%d seed %d: len(path) = %d, BFS distance = %d", size[0], size[1], seed, len(path), want)
				continue
			}
			checkPathValid(t, g, p.Start, p.Goal, path)
		}
	}
}

func TestFiveByFiveExample(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, err := GenerateDefault(5, 5, newRand(seed))
		if err != nil {
			t.Fatalf("GenerateDefault failed: %v", err)
		}
		start, goal := C(1, 1), C(3, 3)
		if !g.IsOpen(start) || !g.IsOpen(goal) {
			t.Fatalf("seed %d: start/goal not open:\n%s", seed, g)
		}

		path := Build(g, start, goal).ShortestPath()
		checkPathValid(t, g, start, goal, path)
		if len(path) < start.Manhattan(goal) {
			t.Errorf("seed %d: path shorter than Manhattan bound", seed)
		}
		if want := bfsDistance(g, start, goal); len(path) != want {
			t.Errorf("seed %d: len(path) = %d, expected %d", seed, len(path), want)
		}
	}
}

func TestAutomatonTransitions(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#..##",
		"#.#.#",
		"#####",
	)
	a := Build(g, C(1, 1), C(3, 2))

	if a.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, expected 4", a.NodeCount())
	}
	// (1,1)<->(2,1) and (1,1)<->(1,2); (3,2) is isolated.
	if a.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, expected 4", a.EdgeCount())
	}

	n := a.Neighbors(C(1, 1))
	if len(n) != 2 || n[0] != C(2, 1) || n[1] != C(1, 2) {
		t.Errorf("Neighbors((1,1)) = %v, expected [(2,1) (1,2)] (right before down)", n)
	}
	if len(a.Neighbors(C(3, 2))) != 0 {
		t.Error("isolated cell should have no transitions")
	}
	if a.Neighbors(C(0, 0)) != nil {
		t.Error("wall cell should have nil transitions")
	}
	if !a.Reachable(C(3, 2)) || a.Reachable(C(2, 2)) {
		t.Error("Reachable should report open cells only")
	}
}
