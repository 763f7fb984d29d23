package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-labyrinth/internal/storage"
)

// RunsController exposes the run history. A nil store answers 503.
type RunsController struct {
	store *storage.Store
}

// NewRunsController creates a RunsController backed by store.
func NewRunsController(store *storage.Store) *RunsController {
	return &RunsController{store: store}
}

// RegisterPublic registers public routes.
func (c *RunsController) RegisterPublic(route *gin.RouterGroup) {
	runs := route.Group("/runs")
	{
		runs.GET("", c.list)
		runs.GET("/:id", c.get)
	}
}

func (c *RunsController) available(ctx *gin.Context) bool {
	if c.store == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history is not available"})
		return false
	}
	return true
}

// list handles GET /runs.
func (c *RunsController) list(ctx *gin.Context) {
	if !c.available(ctx) {
		return
	}

	var query RunsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runs, err := c.store.RecentRuns(query.Limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]RunResponse, len(runs))
	for i, r := range runs {
		response[i] = toRunResponse(r)
	}
	ctx.JSON(http.StatusOK, response)
}

// get handles GET /runs/:id.
func (c *RunsController) get(ctx *gin.Context) {
	if !c.available(ctx) {
		return
	}

	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}

	run, err := c.store.RunByID(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toRunResponse(run))
}
