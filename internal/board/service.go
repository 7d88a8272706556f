// Package board talks to the remote destination board service and holds the
// client-side rules for presence toggling and status editing.
package board

import (
	"context"

	"github.com/akyairhashvil/destboard/internal/models"
)

// Service is the remote board as the views see it.
//
//go:generate mockgen -source=service.go -destination=../mocks/mock_service.go -package=mocks
type Service interface {
	// Fetch reads the whole board.
	Fetch(ctx context.Context) (models.Board, error)
	// Update applies a partial update to the cell at the given position.
	Update(ctx context.Context, at models.Coord, u models.CellUpdate) error
}

var _ Service = (*Client)(nil)

// UpdateAndReload sends u and, once the server accepts it, re-reads the
// board. The board is nil when the update itself failed.
func UpdateAndReload(ctx context.Context, svc Service, at models.Coord, u models.CellUpdate) (models.Board, error) {
	if err := svc.Update(ctx, at, u); err != nil {
		return nil, err
	}
	return svc.Fetch(ctx)
}
