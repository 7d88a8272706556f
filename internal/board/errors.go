package board

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/akyairhashvil/destboard/internal/models"
)

var (
	ErrFetchFailed  = errors.New("failed to fetch board")
	ErrUpdateFailed = errors.New("failed to update cell")
	ErrNoSuchCell   = errors.New("no such cell")
)

// OpError describes a failed board operation. It matches both its kind
// (ErrFetchFailed or ErrUpdateFailed) and the underlying error.
type OpError struct {
	Op   string
	Cell *models.Coord
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cell != nil {
		return fmt.Sprintf("%s cell %d/%d: %v", e.Op, e.Cell.Col, e.Cell.Row, e.Err)
	}
	return fmt.Sprintf("%s board: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() []error { return []error{e.Kind, e.Err} }

// StatusError is returned when the server answers outside the 2xx range.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

func wrapFetchErr(err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: "fetch", Kind: ErrFetchFailed, Err: err}
}

func wrapUpdateErr(at models.Coord, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: "update", Cell: &at, Kind: ErrUpdateFailed, Err: err}
}
