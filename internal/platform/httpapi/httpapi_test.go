package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-labyrinth/internal/maze"
	"github.com/vovakirdan/tui-labyrinth/internal/storage"
)

func newTestHandler(store *storage.Store) http.Handler {
	r := NewRouter(Config{
		BaseURL: "/api",
		Mode:    gin.TestMode,
		Logger:  log.New(io.Discard),
		Controllers: []Controller{
			NewMazeController(),
			NewRunsController(store),
		},
	})
	return r.Handler()
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestHandler(nil), http.MethodGet, "/api/v1/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGenerateMaze(t *testing.T) {
	h := newTestHandler(nil)

	rec := do(t, h, http.MethodGet, "/api/v1/mazes?width=21&height=15&seed=42", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[MazeResponse](t, rec)

	assert.Equal(t, 21, resp.Width)
	assert.Equal(t, 15, resp.Height)
	assert.Equal(t, int64(42), resp.Seed)
	assert.Equal(t, Point{X: 1, Y: 1}, resp.Start)
	assert.Equal(t, Point{X: 19, Y: 13}, resp.Goal)
	assert.NotEmpty(t, resp.ID)
	require.Len(t, resp.Rows, 15)

	// The same seed regenerates the same grid and route.
	want, err := maze.GenerateDefault(21, 15, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, want.Rows(), resp.Rows)

	a := maze.Build(want, maze.C(1, 1), maze.C(19, 13))
	assert.Equal(t, a.Distance(), resp.Distance)
	assert.Len(t, resp.Path, resp.Distance)
	if assert.NotEmpty(t, resp.Path) {
		assert.Equal(t, resp.Goal, resp.Path[len(resp.Path)-1])
	}

	again := decode[MazeResponse](t, do(t, h, http.MethodGet, "/api/v1/mazes?width=21&height=15&seed=42", nil))
	assert.Equal(t, resp.Rows, again.Rows)
	assert.NotEqual(t, resp.ID, again.ID)
}

func TestGenerateMazeDefaults(t *testing.T) {
	rec := do(t, newTestHandler(nil), http.MethodGet, "/api/v1/mazes?seed=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[MazeResponse](t, rec)
	assert.Equal(t, defaultWidth, resp.Width)
	assert.Equal(t, defaultHeight, resp.Height)
}

func TestGenerateMazeWithoutExtraPassages(t *testing.T) {
	rec := do(t, newTestHandler(nil), http.MethodGet, "/api/v1/mazes?width=15&height=11&seed=3&extra=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[MazeResponse](t, rec)

	grid, err := maze.ParseGrid(resp.Rows)
	require.NoError(t, err)
	// A perfect maze over a 7x5 lattice opens 2*35-1 cells.
	assert.Equal(t, 69, grid.OpenCount())
}

func TestGenerateMazeInvalidDimensions(t *testing.T) {
	h := newTestHandler(nil)
	for _, target := range []string{
		"/api/v1/mazes?width=2&height=9",
		"/api/v1/mazes?width=0",
		"/api/v1/mazes?height=-4",
		"/api/v1/mazes?width=500",
		"/api/v1/mazes?width=abc",
		"/api/v1/mazes?extra=-1",
	} {
		rec := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "error", target)
	}
}

func TestGenerateMazeExtraPassagesBounded(t *testing.T) {
	h := newTestHandler(nil)

	rec := do(t, h, http.MethodGet, "/api/v1/mazes?width=3&height=3&seed=1&extra="+strconv.Itoa(maxExtraPassages), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, extra := range []string{strconv.Itoa(maxExtraPassages + 1), "100000000", "9000000000000000000", "9e18"} {
		rec := do(t, h, http.MethodGet, "/api/v1/mazes?width=3&height=3&seed=1&extra="+extra, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, extra)
	}
}

func TestSolveRejectsOversizedMaze(t *testing.T) {
	h := newTestHandler(nil)
	wall := strings.Repeat("#", 5)

	tall := make([]string, maxDimension+1)
	for i := range tall {
		tall[i] = wall
	}
	wide := []string{wall, "#" + strings.Repeat(".", maxDimension) + "#", wall}

	for name, rows := range map[string][]string{"too many rows": tall, "row too long": wide} {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/solve", SolveRequest{
				Rows:  rows,
				Start: &Point{X: 1, Y: 1},
				Goal:  &Point{X: 1, Y: 1},
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "maze too large")
		})
	}

	square := make([]string, maxDimension)
	for i := range square {
		square[i] = strings.Repeat("#", maxDimension)
	}
	rec := do(t, h, http.MethodPost, "/api/v1/solve", SolveRequest{
		Rows:  square,
		Start: &Point{X: 1, Y: 1},
		Goal:  &Point{X: 1, Y: 1},
	})
	assert.Equal(t, http.StatusOK, rec.Code, "a maxDimension square is accepted")
}

func TestSolve(t *testing.T) {
	h := newTestHandler(nil)
	rows := []string{
		"#######",
		"#.....#",
		"#.###.#",
		"#.....#",
		"#######",
	}

	rec := do(t, h, http.MethodPost, "/api/v1/solve", SolveRequest{
		Rows:  rows,
		Start: &Point{X: 1, Y: 1},
		Goal:  &Point{X: 5, Y: 3},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[SolveResponse](t, rec)

	assert.True(t, resp.Reachable)
	assert.Equal(t, 6, resp.Distance)
	assert.Equal(t, []Point{{2, 1}, {3, 1}, {4, 1}, {5, 1}, {5, 2}, {5, 3}}, resp.Path)
}

func TestSolveUnreachable(t *testing.T) {
	rec := do(t, newTestHandler(nil), http.MethodPost, "/api/v1/solve", SolveRequest{
		Rows:  []string{"#######", "#..#..#", "#######"},
		Start: &Point{X: 1, Y: 1},
		Goal:  &Point{X: 5, Y: 1},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[SolveResponse](t, rec)

	assert.False(t, resp.Reachable)
	assert.Equal(t, -1, resp.Distance)
	assert.NotNil(t, resp.Path)
	assert.Empty(t, resp.Path)
}

func TestSolveBadRequests(t *testing.T) {
	h := newTestHandler(nil)
	tests := []struct {
		name string
		body any
	}{
		{"missing rows", map[string]any{"start": Point{1, 1}, "goal": Point{1, 1}}},
		{"missing goal", map[string]any{"rows": []string{"###", "#.#", "###"}, "start": Point{1, 1}}},
		{"ragged rows", SolveRequest{Rows: []string{"###", "#."}, Start: &Point{1, 1}, Goal: &Point{1, 1}}},
		{"unknown rune", SolveRequest{Rows: []string{"#x#"}, Start: &Point{1, 0}, Goal: &Point{1, 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/solve", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestRunsWithoutStore(t *testing.T) {
	h := newTestHandler(nil)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodGet, "/api/v1/runs", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		do(t, h, http.MethodGet, "/api/v1/runs/2b1d3c1e-8d8f-4f4e-9d55-6a0e4c1c7f10", nil).Code)
}

func TestRuns(t *testing.T) {
	store := openTestStore(t)
	firstID, err := store.SaveRun(storage.Run{GameID: "labyrinth", Seed: 1, Width: 21, Height: 15, PathLen: 40, Steps: 40, Solved: true})
	require.NoError(t, err)
	secondID, err := store.SaveRun(storage.Run{GameID: "labyrinth_endless", Seed: 2, Width: 23, Height: 17})
	require.NoError(t, err)

	h := newTestHandler(store)

	rec := do(t, h, http.MethodGet, "/api/v1/runs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[[]RunResponse](t, rec)
	require.Len(t, all, 2)
	assert.Equal(t, secondID, all[0].ID)
	assert.Equal(t, firstID, all[1].ID)

	rec = do(t, h, http.MethodGet, "/api/v1/runs?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	limited := decode[[]RunResponse](t, rec)
	require.Len(t, limited, 1)
	assert.Equal(t, secondID, limited[0].ID)

	rec = do(t, h, http.MethodGet, "/api/v1/runs/"+firstID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	one := decode[RunResponse](t, rec)
	assert.Equal(t, "labyrinth", one.GameID)
	assert.True(t, one.Solved)
	assert.Equal(t, 40, one.PathLen)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/v1/runs?limit=0x", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/v1/runs/not-a-uuid", nil).Code)
	assert.Equal(t, http.StatusNotFound,
		do(t, h, http.MethodGet, "/api/v1/runs/2b1d3c1e-8d8f-4f4e-9d55-6a0e4c1c7f10", nil).Code)
}

func TestRequestLoggerWritesLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewRouter(Config{BaseURL: "/api", Mode: gin.TestMode, Logger: log.New(&buf)})
	rec := do(t, r.Handler(), http.MethodGet, "/api/v1/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "/api/v1/healthz")
	assert.Contains(t, buf.String(), "status=200")
}
