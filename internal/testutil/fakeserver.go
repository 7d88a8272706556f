package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// RecordedUpdate is one POST the fake board received.
type RecordedUpdate struct {
	At        models.Coord
	Fields    map[string]bool // keys present in the JSON body
	Update    models.CellUpdate
	RequestID string
}

// FakeBoard is an in-process board service for tests.
type FakeBoard struct {
	Server *httptest.Server

	mu          sync.Mutex
	board       models.Board
	rowMajor    bool
	fetchStatus int
	updStatus   int
	fetches     int
	updates     []RecordedUpdate
}

// NewFakeBoard starts a fake service holding b. It is closed with the test.
func NewFakeBoard(t testing.TB, b models.Board) *FakeBoard {
	t.Helper()
	f := &FakeBoard{board: b.Clone()}
	e := echo.New()
	e.HideBanner = true
	e.GET("/", f.handleFetch)
	e.POST("/:col/:row", f.handleUpdate)
	f.Server = httptest.NewServer(e)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeBoard) URL() string { return f.Server.URL }

// ServeRowMajor makes GET return the board as [row][column].
func (f *FakeBoard) ServeRowMajor(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rowMajor = on
}

// FailFetch makes GET answer with code; zero restores normal behaviour.
func (f *FakeBoard) FailFetch(code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchStatus = code
}

// FailUpdate makes POST answer with code; zero restores normal behaviour.
func (f *FakeBoard) FailUpdate(code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updStatus = code
}

func (f *FakeBoard) Board() models.Board {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.board.Clone()
}

func (f *FakeBoard) Fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *FakeBoard) Updates() []RecordedUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedUpdate, len(f.updates))
	copy(out, f.updates)
	return out
}

func (f *FakeBoard) handleFetch(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchStatus != 0 {
		return c.NoContent(f.fetchStatus)
	}
	out := f.board
	if f.rowMajor {
		t, err := models.Transpose(f.board)
		if err != nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		out = t
	}
	return c.JSON(http.StatusOK, out)
}

func (f *FakeBoard) handleUpdate(c echo.Context) error {
	col, err := strconv.Atoi(c.Param("col"))
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	var raw map[string]any
	var upd models.CellUpdate
	if err := sonic.ConfigStd.Unmarshal(body, &raw); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := sonic.ConfigStd.Unmarshal(body, &upd); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	fields := make(map[string]bool, len(raw))
	for k := range raw {
		fields[k] = true
	}
	at := models.Coord{Col: col, Row: row}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, RecordedUpdate{
		At:        at,
		Fields:    fields,
		Update:    upd,
		RequestID: c.Request().Header.Get("X-Request-ID"),
	})
	if f.updStatus != 0 {
		return c.NoContent(f.updStatus)
	}
	cell, ok := f.board.Cell(at)
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	f.board[col][row] = upd.Apply(cell)
	return c.NoContent(http.StatusOK)
}
