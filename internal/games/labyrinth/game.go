// Package labyrinth implements the maze runner game: a seeded maze is carved,
// solved with a shortest-path search and walked one cell per interval.
package labyrinth

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-labyrinth/internal/config"
	"github.com/vovakirdan/tui-labyrinth/internal/core"
	"github.com/vovakirdan/tui-labyrinth/internal/maze"
	"github.com/vovakirdan/tui-labyrinth/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // One maze, game over at the goal
	ModeEndless Mode = "endless" // A new, larger maze after every goal
)

const (
	hudHeight      = 2
	bannerTicks    = 90 // ~1.5 seconds at 60 FPS
	minMazeSize    = 5
	pointsPerMaze  = 10
	cellColumns    = 2 // Each maze cell is drawn two characters wide
	goalMessage    = "Shortest path found!"
	noPathMessage  = "No path exists"
	restartMessage = "Press R for a new maze"
)

// Package-level settings applied on Reset, set from CLI flags.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	sizeW, sizeH     int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetMazeSize overrides the configured maze size. Zero keeps the config value.
func SetMazeSize(w, h int) {
	sizeW, sizeH = w, h
}

// Game implements the labyrinth game.
type Game struct {
	mode       Mode
	cfg        config.LabyrinthConfig
	fixedCfg   bool
	difficulty *config.DifficultyManager

	rng        *rand.Rand
	tick       uint64
	mazeTicks  int
	score      int
	solved     int
	hops       int // Cells walked across all mazes of this run
	speedDelta int // Manual speed change from Up/Down

	moveEveryTicks int
	moveTicker     int

	// Current maze
	seed    int64
	width   int
	height  int
	session *maze.Session
	trail   map[maze.Cell]bool

	// Layout
	screenW int
	screenH int
	offsetX int
	offsetY int

	showPath    bool
	showVisited bool

	gameOver     bool
	noPath       bool
	paused       bool
	tooSmall     bool
	banner       bool
	bannerTicker int

	runs []core.RunRecord
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// WithConfig makes Reset use cfg instead of loading the config files.
func (g *Game) WithConfig(cfg config.LabyrinthConfig) *Game {
	cfg.Normalize()
	g.cfg = cfg
	g.fixedCfg = true
	return g
}

func init() {
	registry.Register("labyrinth", func() registry.Game {
		return New()
	})
	registry.Register("labyrinth_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "labyrinth_endless"
	}
	return "labyrinth"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Labyrinth (Endless)"
	}
	return "Labyrinth"
}

// Reset loads configuration and generates the first maze from cfg.Seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.fixedCfg {
		g.cfg = loadConfig()
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.solved = 0
	g.hops = 0
	g.speedDelta = 0
	g.gameOver = false
	g.noPath = false
	g.paused = false
	g.banner = false
	g.bannerTicker = 0
	g.runs = nil
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.showPath = g.cfg.Display.ShowPath
	g.showVisited = g.cfg.Display.ShowVisited

	g.loadMaze(rc.Seed)
}

// Resize fits the current maze to a new screen size. The run keeps its score,
// solved count and pacing; an unfinished maze the walker already entered is
// recorded as abandoned and rebuilt from its seed.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	if g.gameOver || g.banner {
		return
	}
	if g.session != nil && g.session.Steps() > 0 {
		g.recordRun(false)
	}
	g.loadMaze(g.seed)
}

// loadConfig reads the YAML config and applies CLI overrides.
func loadConfig() config.LabyrinthConfig {
	cfg, err := config.LoadLabyrinth(configPath)
	if err != nil {
		cfg = config.DefaultLabyrinthConfig()
	}
	if difficultyPreset != "" {
		config.ApplyLabyrinthPreset(&cfg, difficultyPreset)
	}
	if sizeW > 0 {
		cfg.Maze.Width = sizeW
	}
	if sizeH > 0 {
		cfg.Maze.Height = sizeH
	}
	cfg.Normalize()
	return cfg
}

// loadMaze generates, solves and lays out a maze for the given seed.
func (g *Game) loadMaze(seed int64) {
	g.seed = seed
	g.mazeTicks = 0
	g.moveTicker = 0
	g.noPath = false

	baseW, baseH := g.cfg.Maze.Width, g.cfg.Maze.Height
	baseMove := g.cfg.Pacing.MoveEveryTicks
	if g.mode == ModeEndless {
		baseW, baseH = g.difficulty.MazeSize(baseW, baseH, g.solved)
		baseMove = g.difficulty.MoveEveryTicks(baseMove, g.solved)
	}
	g.moveEveryTicks = g.pacing(baseMove)

	// Fit the maze to the screen below the HUD.
	maxW := oddFloor(g.screenW / cellColumns)
	maxH := oddFloor(g.screenH - hudHeight)
	g.width = min(baseW, maxW)
	g.height = min(baseH, maxH)
	if g.width < minMazeSize || g.height < minMazeSize {
		g.tooSmall = true
		g.session = nil
		return
	}
	g.tooSmall = false

	g.offsetX = (g.screenW - g.width*cellColumns) / 2
	g.offsetY = hudHeight + (g.screenH-hudHeight-g.height)/2

	p := maze.DefaultParams(g.width, g.height)
	p.ExtraPassages = g.cfg.Maze.ExtraPassages(g.width, g.height)
	grid, err := maze.Generate(p, rand.New(rand.NewSource(seed)))
	if err != nil {
		g.tooSmall = true
		g.session = nil
		return
	}

	g.startSession(grid, p.Start, p.Goal)
}

// startSession solves grid and places the walker on start. A goal that cannot
// be reached ends the game immediately.
func (g *Game) startSession(grid *maze.Grid, start, goal maze.Cell) {
	g.session = maze.Solve(grid, start, goal)
	g.trail = map[maze.Cell]bool{start: true}

	if g.session.PathLen() == 0 && !g.session.GoalReached() {
		g.noPath = true
		g.gameOver = true
		g.recordRun(false)
	}
}

// pacing applies the manual speed change within configured limits.
func (g *Game) pacing(base int) int {
	return core.Clamp(base+g.speedDelta, g.cfg.Pacing.MinMoveEveryTicks, g.cfg.Pacing.MaxMoveEveryTicks)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if input.Has(core.ActionTogglePath) {
		g.showPath = !g.showPath
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.banner {
		g.bannerTicker++
		if g.bannerTicker >= bannerTicks {
			g.banner = false
			g.loadMaze(g.rng.Int63())
		}
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	g.mazeTicks++

	moved := false
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		moved = g.advance()
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// processInput handles speed changes. Up walks faster, Down slower.
func (g *Game) processInput(input core.InputFrame) {
	delta := 0
	switch {
	case input.Has(core.ActionUp):
		delta = -1
	case input.Has(core.ActionDown):
		delta = 1
	}
	if delta == 0 {
		return
	}
	next := core.Clamp(g.moveEveryTicks+delta, g.cfg.Pacing.MinMoveEveryTicks, g.cfg.Pacing.MaxMoveEveryTicks)
	g.speedDelta += next - g.moveEveryTicks
	g.moveEveryTicks = next
}

// advance moves the walker one cell and handles reaching the goal.
func (g *Game) advance() bool {
	if !g.session.Advance() {
		return false
	}
	g.hops++
	g.trail[g.session.Position()] = true
	g.updateScore()

	if g.session.GoalReached() {
		g.onGoal()
	}
	return true
}

func (g *Game) updateScore() {
	if g.mode == ModeEndless {
		g.score = g.solved*pointsPerMaze + g.hops
		return
	}
	g.score = g.session.Steps()
}

// onGoal ends a classic game or queues the next endless maze.
func (g *Game) onGoal() {
	g.recordRun(true)
	if g.mode == ModeClassic {
		g.gameOver = true
		return
	}
	g.solved++
	g.updateScore()
	g.banner = true
	g.bannerTicker = 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Session returns the walker session of the current maze, or nil when none fits.
func (g *Game) Session() *maze.Session {
	return g.session
}

// Seed returns the seed of the current maze.
func (g *Game) Seed() int64 {
	return g.seed
}

// MazesSolved returns the number of goals reached in this run.
func (g *Game) MazesSolved() int {
	return g.solved
}

// Message returns the status text shown when the game stops.
func (g *Game) Message() string {
	switch {
	case g.noPath:
		return noPathMessage
	case g.gameOver:
		return goalMessage
	default:
		return ""
	}
}

// oddFloor rounds n down to an odd number.
func oddFloor(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// DebugState returns a one-line description of the game state.
func (g *Game) DebugState() string {
	if g.session == nil {
		return fmt.Sprintf("tick %d: no maze (screen %dx%d)", g.tick, g.screenW, g.screenH)
	}
	return fmt.Sprintf("tick %d: maze %dx%d seed %d at %s, %d/%d steps, score %d",
		g.tick, g.width, g.height, g.seed, g.session.Position(),
		g.session.Steps(), g.session.PathLen(), g.score)
}
