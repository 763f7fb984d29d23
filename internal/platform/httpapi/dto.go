package httpapi

import (
	"time"

	"github.com/vovakirdan/tui-labyrinth/internal/maze"
	"github.com/vovakirdan/tui-labyrinth/internal/storage"
)

const (
	// maxDimension bounds generated and solved mazes.
	maxDimension = 201
	// maxExtraPassages is maxDimension squared, one punch per cell of the largest maze.
	maxExtraPassages = maxDimension * maxDimension
)

// Point is a cell coordinate on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPoint(c maze.Cell) Point {
	return Point{X: c.X, Y: c.Y}
}

func (p Point) cell() maze.Cell {
	return maze.C(p.X, p.Y)
}

func toPoints(cells []maze.Cell) []Point {
	out := make([]Point, len(cells))
	for i, c := range cells {
		out[i] = toPoint(c)
	}
	return out
}

// MazeQuery holds the query parameters of GET /mazes. Unset fields take defaults.
type MazeQuery struct {
	Width  *int   `form:"width" binding:"omitempty,min=3,max=201"`
	Height *int   `form:"height" binding:"omitempty,min=3,max=201"`
	Seed   *int64 `form:"seed"`
	Extra  *int   `form:"extra" binding:"omitempty,min=0,max=40401"`
}

// MazeResponse is a generated maze together with its shortest route.
type MazeResponse struct {
	ID       string   `json:"id"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Seed     int64    `json:"seed"`
	Start    Point    `json:"start"`
	Goal     Point    `json:"goal"`
	Rows     []string `json:"rows"`
	Path     []Point  `json:"path"`
	Distance int      `json:"distance"`
}

// SolveRequest is a maze in '#'/'.' rows plus the endpoints to connect.
type SolveRequest struct {
	Rows  []string `json:"rows" binding:"required,min=1"`
	Start *Point   `json:"start" binding:"required"`
	Goal  *Point   `json:"goal" binding:"required"`
}

// SolveResponse is the shortest route for a SolveRequest. Distance is -1 when
// the goal cannot be reached.
type SolveResponse struct {
	Path      []Point `json:"path"`
	Distance  int     `json:"distance"`
	Reachable bool    `json:"reachable"`
}

// RunsQuery holds the query parameters of GET /runs.
type RunsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

// RunResponse is one stored run.
type RunResponse struct {
	ID        string    `json:"id"`
	GameID    string    `json:"game_id"`
	Seed      int64     `json:"seed"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	PathLen   int       `json:"path_len"`
	Steps     int       `json:"steps"`
	Ticks     int       `json:"ticks"`
	Solved    bool      `json:"solved"`
	CreatedAt time.Time `json:"created_at"`
}

func toRunResponse(r storage.Run) RunResponse {
	return RunResponse{
		ID:        r.ID,
		GameID:    r.GameID,
		Seed:      r.Seed,
		Width:     r.Width,
		Height:    r.Height,
		PathLen:   r.PathLen,
		Steps:     r.Steps,
		Ticks:     r.Ticks,
		Solved:    r.Solved,
		CreatedAt: r.CreatedAt,
	}
}
