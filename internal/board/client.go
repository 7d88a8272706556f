package board

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akyairhashvil/destboard/internal/config"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName      = "github.com/akyairhashvil/destboard/internal/board"
	headerRequestID = "X-Request-ID"
)

// Client is the HTTP implementation of Service. It is safe for concurrent use.
type Client struct {
	baseURL     string
	http        *http.Client
	retries     int
	backoff     time.Duration
	orientation string
	log         log.FieldLogger
}

// Option customises a Client.
type Option func(*Client)

// WithLogger sets the diagnostic logger.
func WithLogger(l log.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client from validated settings.
func New(cfg config.Client, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		http:        &http.Client{Timeout: cfg.Timeout},
		retries:     cfg.Retries,
		backoff:     cfg.RetryBackoff,
		orientation: cfg.Orientation,
		log:         log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch reads the whole board. Only reads are retried.
func (c *Client) Fetch(ctx context.Context) (models.Board, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "board.Fetch")
	defer span.End()

	var (
		b   models.Board
		err error
	)
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			if err = sleepCtx(ctx, c.backoff); err != nil {
				break
			}
			c.log.WithField("attempt", attempt).Debug("retrying board fetch")
		}
		b, err = c.fetchOnce(ctx, span)
		if err == nil || ctx.Err() != nil {
			break
		}
	}
	if err == nil && c.orientation == config.OrientationRows {
		b, err = models.Transpose(b)
	}
	if err != nil {
		recordErr(span, err)
		c.log.WithError(err).Error("board fetch failed")
		return nil, wrapFetchErr(err)
	}
	span.SetAttributes(attribute.Int("board.columns", b.Columns()), attribute.Int("board.rows", b.Rows()))
	return b, nil
}

func (c *Client) fetchOnce(ctx context.Context, span trace.Span) (models.Board, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.do(req, span)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var b models.Board
	if len(bytes.TrimSpace(data)) > 0 {
		if err := sonic.ConfigStd.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decode board: %w", err)
		}
	}
	if b == nil {
		b = models.Board{}
	}
	return b, nil
}

// Update posts a partial update for the cell at the given position. Unset
// fields are omitted from the body.
func (c *Client) Update(ctx context.Context, at models.Coord, u models.CellUpdate) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "board.Update", trace.WithAttributes(
		attribute.Int("cell.col", at.Col),
		attribute.Int("cell.row", at.Row),
	))
	defer span.End()

	err := c.updateOnce(ctx, at, u, span)
	if err != nil {
		recordErr(span, err)
		c.log.WithFields(log.Fields{"col": at.Col, "row": at.Row}).WithError(err).Error("cell update failed")
		return wrapUpdateErr(at, err)
	}
	return nil
}

func (c *Client) updateOnce(ctx context.Context, at models.Coord, u models.CellUpdate, span trace.Span) error {
	body, err := sonic.ConfigStd.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}
	url := fmt.Sprintf("%s/%d/%d", c.baseURL, at.Col, at.Row)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req, span)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// do sends req with a fresh request id and turns non-2xx answers into a
// StatusError. The caller owns the body on success.
func (c *Client) do(req *http.Request, span trace.Span) (*http.Response, error) {
	id := uuid.NewString()
	req.Header.Set(headerRequestID, id)
	entry := c.log.WithFields(log.Fields{
		"request_id": id,
		"method":     req.Method,
		"url":        req.URL.String(),
	})
	span.SetAttributes(attribute.String("http.request_id", id))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		entry.WithError(err).Warn("board request failed")
		return nil, err
	}
	entry = entry.WithFields(log.Fields{"status": resp.StatusCode, "elapsed": time.Since(start)})
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		entry.Warn("board request rejected")
		return nil, &StatusError{Code: resp.StatusCode}
	}
	entry.Debug("board request done")
	return resp, nil
}

func recordErr(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
