package labyrinth

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-labyrinth/internal/config"
	"github.com/vovakirdan/tui-labyrinth/internal/core"
	"github.com/vovakirdan/tui-labyrinth/internal/maze"
	"github.com/vovakirdan/tui-labyrinth/internal/registry"
)

func testConfig(moveEvery int) config.LabyrinthConfig {
	cfg := config.DefaultLabyrinthConfig()
	cfg.Pacing.MoveEveryTicks = moveEvery
	cfg.Display.ShowPath = false
	cfg.Display.ShowVisited = true
	return cfg
}

func newGame(t *testing.T, g *Game, moveEvery int, seed int64) *Game {
	t.Helper()
	g.WithConfig(testConfig(moveEvery))
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	if g.Session() == nil {
		t.Fatal("expected a maze after Reset")
	}
	return g
}

func step(g *Game, n int) core.StepResult {
	var res core.StepResult
	input := core.NewInputFrame()
	for range n {
		res = g.Step(input)
	}
	return res
}

func press(g *Game, a core.Action) core.StepResult {
	input := core.NewInputFrame()
	input.Set(a)
	return g.Step(input)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"labyrinth", "labyrinth_endless"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, New(), 2, 12345)
	g2 := newGame(t, New(), 2, 12345)

	input := core.NewInputFrame()
	for i := range 200 {
		input.Clear()
		if i == 30 {
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if !g1.Session().Grid().Equal(g2.Session().Grid()) {
		t.Error("same seed produced different mazes")
	}
}

func TestResetBuildsSolvableMaze(t *testing.T) {
	g := newGame(t, New(), 12, 7)
	snap := g.Snapshot()

	if snap.Width != 21 || snap.Height != 15 {
		t.Errorf("maze size = %dx%d, expected 21x15", snap.Width, snap.Height)
	}
	if snap.PathLen == 0 {
		t.Error("expected a non-empty path on an odd maze")
	}
	if snap.PosX != 1 || snap.PosY != 1 {
		t.Errorf("walker at (%d,%d), expected (1,1)", snap.PosX, snap.PosY)
	}
	if snap.State != StateWalking {
		t.Errorf("State = %s, expected %s", snap.State, StateWalking)
	}
	if g.Seed() != 7 {
		t.Errorf("Seed() = %d, expected 7", g.Seed())
	}
}

func TestMazeClampedToScreen(t *testing.T) {
	g := New().WithConfig(testConfig(1))
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 30, ScreenH: 12})

	snap := g.Snapshot()
	if snap.Width != 15 || snap.Height != 9 {
		t.Errorf("maze size = %dx%d, expected 15x9", snap.Width, snap.Height)
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New().WithConfig(testConfig(1))
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 8, ScreenH: 6})

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}
	step(g, 10) // must not panic without a session

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}
}

func TestAdvanceCadence(t *testing.T) {
	g := newGame(t, New(), 3, 42)

	if res := step(g, 2); res.Moved || g.Session().Steps() != 0 {
		t.Fatalf("walker moved before the interval elapsed")
	}
	if res := step(g, 1); !res.Moved || g.Session().Steps() != 1 {
		t.Fatalf("walker should move on the third tick, steps = %d", g.Session().Steps())
	}
	step(g, 3)
	if g.Session().Steps() != 2 {
		t.Errorf("Steps() = %d, expected 2", g.Session().Steps())
	}
}

func TestClassicReachesGoal(t *testing.T) {
	g := newGame(t, New(), 1, 99)
	pathLen := g.Session().PathLen()

	step(g, pathLen)

	state := g.State()
	if !state.GameOver {
		t.Fatal("game should be over once the goal is reached")
	}
	if state.Score != pathLen {
		t.Errorf("Score = %d, expected path length %d", state.Score, pathLen)
	}
	if g.Message() != goalMessage {
		t.Errorf("Message() = %q, expected %q", g.Message(), goalMessage)
	}
	if g.Session().Position() != g.Session().Goal() {
		t.Error("walker should stand on the goal")
	}

	runs := g.DrainRuns()
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if !r.Solved || r.Steps != pathLen || r.PathLen != pathLen || r.Seed != 99 || r.GameID != "labyrinth" {
		t.Errorf("unexpected run record: %+v", r)
	}
	if r.Ticks != pathLen {
		t.Errorf("Ticks = %d, expected %d", r.Ticks, pathLen)
	}
	if len(g.DrainRuns()) != 0 {
		t.Error("DrainRuns should forget returned runs")
	}

	before := g.Snapshot()
	step(g, 20)
	after := g.Snapshot()
	if after.Steps != before.Steps || after.Score != before.Score {
		t.Error("game over should freeze the walker")
	}
}

func TestPauseStopsWalker(t *testing.T) {
	g := newGame(t, New(), 1, 5)

	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	steps := g.Session().Steps()
	step(g, 10)
	if g.Session().Steps() != steps {
		t.Error("walker moved while paused")
	}

	press(g, core.ActionPause)
	step(g, 3)
	if g.Session().Steps() <= steps {
		t.Error("walker should resume after unpausing")
	}
}

func TestRestart(t *testing.T) {
	g := newGame(t, New(), 1, 3)

	// Ignored while walking.
	step(g, 2)
	press(g, core.ActionRestart)
	if g.Session().Steps() != 3 {
		t.Fatalf("restart should be ignored before game over, steps = %d", g.Session().Steps())
	}

	step(g, g.Session().PathLen())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	press(g, core.ActionRestart)
	if g.State().GameOver {
		t.Error("restart should start a new maze")
	}
	if g.Session().Steps() != 0 || g.State().Score != 0 {
		t.Error("restart should rewind the walker and score")
	}
}

func TestNoPathEndsGame(t *testing.T) {
	g := newGame(t, New(), 1, 1)
	g.DrainRuns()

	grid, err := maze.ParseGrid([]string{
		"#######",
		"#..#..#",
		"#######",
	})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	g.startSession(grid, maze.C(1, 1), maze.C(5, 1))

	if !g.State().GameOver || g.Snapshot().State != StateNoPath {
		t.Fatalf("State = %s, expected %s", g.Snapshot().State, StateNoPath)
	}
	if g.Message() != noPathMessage {
		t.Errorf("Message() = %q, expected %q", g.Message(), noPathMessage)
	}
	runs := g.DrainRuns()
	if len(runs) != 1 || runs[0].Solved {
		t.Errorf("expected one unsolved run, got %+v", runs)
	}

	step(g, 10)
	if g.Session().Position() != maze.C(1, 1) {
		t.Error("walker must not move without a path")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), noPathMessage) {
		t.Error("expected no-path overlay")
	}
}

func TestEndlessProgression(t *testing.T) {
	g := newGame(t, NewEndless(), 1, 77)
	first := g.Snapshot()

	step(g, first.PathLen)

	snap := g.Snapshot()
	if snap.State != StateSolved {
		t.Fatalf("State = %s, expected %s", snap.State, StateSolved)
	}
	if g.State().GameOver {
		t.Fatal("endless mode should not end at the goal")
	}
	if snap.Solved != 1 || g.MazesSolved() != 1 {
		t.Errorf("Solved = %d, expected 1", snap.Solved)
	}
	if want := pointsPerMaze + first.PathLen; snap.Score != want {
		t.Errorf("Score = %d, expected %d", snap.Score, want)
	}

	step(g, bannerTicks)

	next := g.Snapshot()
	if next.State != StateWalking {
		t.Fatalf("State = %s, expected %s after the banner", next.State, StateWalking)
	}
	if next.Seed == first.Seed {
		t.Error("next maze should use a new seed")
	}
	// One solved maze of ten grows width by 2 and height by 1 (rounded to odd).
	if next.Width != 23 || next.Height != 17 {
		t.Errorf("next maze = %dx%d, expected 23x17", next.Width, next.Height)
	}
	if next.Steps != 0 || next.PosX != 1 || next.PosY != 1 {
		t.Error("walker should start the next maze at (1,1)")
	}

	runs := g.DrainRuns()
	if len(runs) != 1 || runs[0].GameID != "labyrinth_endless" || !runs[0].Solved {
		t.Errorf("unexpected runs: %+v", runs)
	}
}

func TestResizeKeepsEndlessProgress(t *testing.T) {
	g := newGame(t, NewEndless(), 1, 77)
	step(g, g.Snapshot().PathLen+bannerTicks)
	g.DrainRuns()

	step(g, 3)
	before := g.Snapshot()
	if before.Solved != 1 || before.Steps != 3 {
		t.Fatalf("unexpected state before resize: %+v", before)
	}

	g.Resize(100, 30)

	after := g.Snapshot()
	if after.Solved != 1 || after.Score != before.Score {
		t.Errorf("resize lost progress: solved %d score %d, expected %d and %d",
			after.Solved, after.Score, before.Solved, before.Score)
	}
	if after.Seed != before.Seed || after.Width != before.Width {
		t.Errorf("resize should rebuild the same maze, got seed %d width %d", after.Seed, after.Width)
	}
	if after.Steps != 0 || after.State != StateWalking {
		t.Errorf("walker should restart the maze, got %+v", after)
	}

	runs := g.DrainRuns()
	if len(runs) != 1 || runs[0].Solved || runs[0].Steps != 3 || runs[0].Seed != before.Seed {
		t.Errorf("expected one abandoned run of 3 steps, got %+v", runs)
	}

	g.Resize(100, 30)
	if runs := g.DrainRuns(); len(runs) != 0 {
		t.Errorf("resizing an untouched maze should not record a run, got %+v", runs)
	}
}

func TestResizeAfterGameOverKeepsResult(t *testing.T) {
	g := newGame(t, New(), 1, 5)
	step(g, g.Snapshot().PathLen)
	if !g.State().GameOver {
		t.Fatal("classic game should end at the goal")
	}
	score := g.State().Score

	g.Resize(120, 40)
	if !g.State().GameOver || g.State().Score != score {
		t.Error("resize after game over should keep the result")
	}
}

func TestSpeedControl(t *testing.T) {
	g := newGame(t, New(), 12, 8)

	press(g, core.ActionUp)
	if got := g.Snapshot().MoveEveryTicks; got != 11 {
		t.Errorf("after Up MoveEveryTicks = %d, expected 11", got)
	}
	press(g, core.ActionDown)
	press(g, core.ActionDown)
	if got := g.Snapshot().MoveEveryTicks; got != 13 {
		t.Errorf("after Down MoveEveryTicks = %d, expected 13", got)
	}

	fast := newGame(t, New(), 1, 8)
	press(fast, core.ActionUp)
	if got := fast.Snapshot().MoveEveryTicks; got != 1 {
		t.Errorf("MoveEveryTicks = %d, expected the minimum of 1", got)
	}
}

func TestTogglePath(t *testing.T) {
	g := newGame(t, New(), 60, 21)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if strings.Contains(screen.String(), "·") {
		t.Error("path dots should be hidden by default")
	}

	press(g, core.ActionTogglePath)
	if !g.Snapshot().ShowPath {
		t.Fatal("expected path overlay to be enabled")
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "·") {
		t.Error("expected path dots after toggling")
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, New(), 60, 7)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Labyrinth", "21x15", "Seed 7", "Steps 0/"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	out := screen.String()
	for _, want := range []string{"██", "()", "[]"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// Walker at (1,1) is drawn red, two columns per cell.
	x := g.offsetX + 1*cellColumns
	y := g.offsetY + 1
	if cell := screen.GetCell(x, y); cell.Rune != '(' || cell.Color != core.ColorRed {
		t.Errorf("walker cell = %+v, expected red '('", cell)
	}
	goal := g.Session().Goal()
	if cell := screen.GetCell(g.offsetX+goal.X*cellColumns, g.offsetY+goal.Y); cell.Color != core.ColorGreen {
		t.Errorf("goal cell = %+v, expected green", cell)
	}
}
