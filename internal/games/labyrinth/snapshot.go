package labyrinth

// GameStateType represents the current game state.
type GameStateType string

const (
	StateWalking     GameStateType = "walking"
	StateSolved      GameStateType = "solved" // Endless banner between mazes
	StateGameOver    GameStateType = "game_over"
	StateNoPath      GameStateType = "no_path"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Mode           string
	Seed           int64
	Width          int
	Height         int
	Score          int
	Solved         int
	PathLen        int
	Steps          int
	PosX           int
	PosY           int
	MoveEveryTicks int
	ShowPath       bool
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateWalking
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.noPath:
		state = StateNoPath
	case g.gameOver:
		state = StateGameOver
	case g.banner:
		state = StateSolved
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:           g.tick,
		Mode:           string(g.mode),
		Seed:           g.seed,
		Width:          g.width,
		Height:         g.height,
		Score:          g.score,
		Solved:         g.solved,
		MoveEveryTicks: g.moveEveryTicks,
		ShowPath:       g.showPath,
		State:          state,
	}
	if g.session != nil {
		pos := g.session.Position()
		snap.PosX, snap.PosY = pos.X, pos.Y
		snap.PathLen = g.session.PathLen()
		snap.Steps = g.session.Steps()
	}
	return snap
}
