package labyrinth

import "github.com/vovakirdan/tui-labyrinth/internal/core"

var _ core.RunReporter = (*Game)(nil)

func (g *Game) recordRun(solved bool) {
	r := core.RunRecord{
		GameID: g.ID(),
		Seed:   g.seed,
		Width:  g.width,
		Height: g.height,
		Ticks:  g.mazeTicks,
		Solved: solved,
	}
	if g.session != nil {
		r.PathLen = g.session.PathLen()
		r.Steps = g.session.Steps()
	}
	g.runs = append(g.runs, r)
}

// DrainRuns returns the runs finished since the last call and forgets them.
func (g *Game) DrainRuns() []core.RunRecord {
	runs := g.runs
	g.runs = nil
	return runs
}
