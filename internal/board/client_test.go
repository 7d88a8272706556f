package board

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/destboard/internal/config"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/akyairhashvil/destboard/internal/testutil"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestClient(t *testing.T, url string, mutate func(*config.Client)) (*Client, *bytes.Buffer) {
	t.Helper()
	cfg := config.Defaults()
	cfg.BaseURL = url
	cfg.Timeout = 2 * time.Second
	if mutate != nil {
		mutate(&cfg)
	}
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)
	c, err := New(cfg, WithLogger(logger))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c, &buf
}

func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return exporter
}

func TestFetchReturnsBoardVerbatim(t *testing.T) {
	want := testutil.SampleBoard()
	fake := testutil.NewFakeBoard(t, want)
	c, _ := newTestClient(t, fake.URL(), nil)

	got, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fetch() = %+v, want %+v", got, want)
	}
}

func TestFetchTransposesRowMajorBoards(t *testing.T) {
	want := testutil.SampleBoard()
	fake := testutil.NewFakeBoard(t, want)
	fake.ServeRowMajor(true)
	c, _ := newTestClient(t, fake.URL(), func(cfg *config.Client) {
		cfg.Orientation = config.OrientationRows
	})

	got, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fetch() = %+v, want %+v", got, want)
	}
}

func TestFetchEmptyBoard(t *testing.T) {
	fake := testutil.NewFakeBoard(t, models.Board{})
	c, _ := newTestClient(t, fake.URL(), func(cfg *config.Client) {
		cfg.Orientation = config.OrientationRows
	})
	got, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("Fetch() = %#v, want empty non-nil board", got)
	}
}

func TestFetchFailureWrapsKindAndLogs(t *testing.T) {
	fake := testutil.NewFakeBoard(t, testutil.SampleBoard())
	fake.FailFetch(http.StatusServiceUnavailable)
	c, logs := newTestClient(t, fake.URL(), nil)

	_, err := c.Fetch(context.Background())
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected StatusError 503, got %v", err)
	}
	if !strings.Contains(logs.String(), "board fetch failed") {
		t.Fatalf("expected diagnostic log entry, got %q", logs.String())
	}
}

func TestFetchRetriesReads(t *testing.T) {
	fake := testutil.NewFakeBoard(t, testutil.SampleBoard())
	fake.FailFetch(http.StatusBadGateway)
	c, _ := newTestClient(t, fake.URL(), func(cfg *config.Client) {
		cfg.Retries = 2
		cfg.RetryBackoff = time.Millisecond
	})

	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatalf("expected fetch to fail")
	}
	if got := fake.Fetches(); got != 3 {
		t.Fatalf("fetches = %d, want 3", got)
	}
}

func TestFetchNoRetryByDefault(t *testing.T) {
	fake := testutil.NewFakeBoard(t, testutil.SampleBoard())
	fake.FailFetch(http.StatusBadGateway)
	c, _ := newTestClient(t, fake.URL(), nil)

	_, _ = c.Fetch(context.Background())
	if got := fake.Fetches(); got != 1 {
		t.Fatalf("fetches = %d, want 1", got)
	}
}

func TestFetchUnreachableServer(t *testing.T) {
	c, _ := newTestClient(t, "http://127.0.0.1:1", nil)
	if _, err := c.Fetch(context.Background()); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestUpdateTogglePresenceBody(t *testing.T) {
	b := testutil.NewBoard().Column(testutil.NewCell("A").WithStatus("out")).Build()
	fake := testutil.NewFakeBoard(t, b)
	c, _ := newTestClient(t, fake.URL(), nil)

	u, err := TogglePresence(b, models.Coord{})
	if err != nil {
		t.Fatalf("TogglePresence failed: %v", err)
	}
	if err := c.Update(context.Background(), models.Coord{}, u); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	updates := fake.Updates()
	if len(updates) != 1 {
		t.Fatalf("expected one update, got %d", len(updates))
	}
	got := updates[0]
	if got.At != (models.Coord{}) {
		t.Fatalf("posted to %v, want /0/0", got.At)
	}
	if !reflect.DeepEqual(got.Fields, map[string]bool{"present": true}) {
		t.Fatalf("body fields = %v, want only present", got.Fields)
	}
	if got.RequestID == "" {
		t.Fatalf("expected X-Request-ID header")
	}
	if cell := fake.Board()[0][0]; !cell.Present || cell.Status != "out" {
		t.Fatalf("server cell = %+v", cell)
	}
}

func TestUpdateStatusBodyUsesColumnThenRow(t *testing.T) {
	b := testutil.NewBoard().
		Column(testutil.NewCell("A"), testutil.NewCell("B")).
		Column(testutil.NewCell("C"), testutil.NewCell("D")).
		Build()
	fake := testutil.NewFakeBoard(t, b)
	c, _ := newTestClient(t, fake.URL(), nil)

	at := models.Coord{Col: 1, Row: 0}
	if err := c.Update(context.Background(), at, StatusUpdate("lunch")); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got := fake.Updates()[0]
	if got.At != at || !reflect.DeepEqual(got.Fields, map[string]bool{"status": true}) {
		t.Fatalf("unexpected update %+v", got)
	}
	if fake.Board()[1][0].Status != "lunch" {
		t.Fatalf("server did not apply status")
	}
}

func TestUpdateFailure(t *testing.T) {
	fake := testutil.NewFakeBoard(t, testutil.SampleBoard())
	fake.FailUpdate(http.StatusInternalServerError)
	c, _ := newTestClient(t, fake.URL(), func(cfg *config.Client) { cfg.Retries = 3 })

	err := c.Update(context.Background(), models.Coord{Col: 1, Row: 2}, StatusUpdate("x"))
	if !errors.Is(err, ErrUpdateFailed) {
		t.Fatalf("expected ErrUpdateFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "update cell 1/2") {
		t.Fatalf("unexpected error text %q", err)
	}
	if got := len(fake.Updates()); got != 1 {
		t.Fatalf("updates must not be retried, got %d attempts", got)
	}
}

func TestUpdateAndReload(t *testing.T) {
	fake := testutil.NewFakeBoard(t, testutil.SampleBoard())
	c, _ := newTestClient(t, fake.URL(), nil)

	b, err := UpdateAndReload(context.Background(), c, models.Coord{Col: 0, Row: 1}, StatusUpdate("back"))
	if err != nil {
		t.Fatalf("UpdateAndReload failed: %v", err)
	}
	if b[0][1].Status != "back" {
		t.Fatalf("reloaded board = %+v", b)
	}
	if fake.Fetches() != 1 {
		t.Fatalf("expected one reload, got %d", fake.Fetches())
	}
}

func TestSpansRecorded(t *testing.T) {
	exporter := setupTestTracer(t)
	fake := testutil.NewFakeBoard(t, testutil.SampleBoard())
	c, _ := newTestClient(t, fake.URL(), nil)

	if _, err := c.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	fake.FailUpdate(http.StatusConflict)
	_ = c.Update(context.Background(), models.Coord{}, StatusUpdate("x"))

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name != "board.Fetch" || spans[0].Status.Code == codes.Error {
		t.Fatalf("unexpected fetch span %+v", spans[0])
	}
	if spans[1].Name != "board.Update" || spans[1].Status.Code != codes.Error {
		t.Fatalf("expected failed update span, got %+v", spans[1])
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.BaseURL = "not a url"
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}
