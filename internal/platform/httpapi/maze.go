package httpapi

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-labyrinth/internal/maze"
)

const (
	defaultWidth  = 21
	defaultHeight = 15
)

// MazeController generates and solves mazes.
type MazeController struct {
	now func() time.Time
}

// NewMazeController creates a MazeController. Requests without a seed are
// seeded from the current time.
func NewMazeController() *MazeController {
	return &MazeController{now: time.Now}
}

// RegisterPublic registers public routes.
func (c *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes", c.generate)
	route.POST("/solve", c.solve)
}

// generate handles GET /mazes.
func (c *MazeController) generate(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	width, height := defaultWidth, defaultHeight
	if query.Width != nil {
		width = *query.Width
	}
	if query.Height != nil {
		height = *query.Height
	}
	seed := c.now().UnixNano()
	if query.Seed != nil {
		seed = *query.Seed
	}

	p := maze.DefaultParams(width, height)
	if query.Extra != nil {
		p.ExtraPassages = *query.Extra
	}
	grid, err := maze.Generate(p, rand.New(rand.NewSource(seed)))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := maze.Build(grid, p.Start, p.Goal)
	ctx.JSON(http.StatusOK, MazeResponse{
		ID:       uuid.NewString(),
		Width:    width,
		Height:   height,
		Seed:     seed,
		Start:    toPoint(p.Start),
		Goal:     toPoint(p.Goal),
		Rows:     grid.Rows(),
		Path:     toPoints(a.ShortestPath()),
		Distance: a.Distance(),
	})
}

// solve handles POST /solve.
func (c *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !withinLimits(request.Rows) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "maze too large"})
		return
	}
	grid, err := maze.ParseGrid(request.Rows)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := maze.Build(grid, request.Start.cell(), request.Goal.cell())
	distance := a.Distance()
	ctx.JSON(http.StatusOK, SolveResponse{
		Path:      toPoints(a.ShortestPath()),
		Distance:  distance,
		Reachable: distance >= 0,
	})
}

// withinLimits reports whether rows fit in a maxDimension square.
func withinLimits(rows []string) bool {
	if len(rows) > maxDimension {
		return false
	}
	for _, row := range rows {
		if len(row) > maxDimension {
			return false
		}
	}
	return true
}
