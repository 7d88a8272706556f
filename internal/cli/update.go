package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/destboard/internal/board"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/spf13/cobra"
)

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle COL ROW",
		Short: "Flip the presence flag of one cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseCoord(args[0], args[1])
			if err != nil {
				return err
			}
			svc, err := app.service()
			if err != nil {
				return err
			}
			current, err := svc.Fetch(cmd.Context())
			if err != nil {
				return userError(err)
			}
			u, err := board.TogglePresence(current, at)
			if errors.Is(err, board.ErrNoSuchCell) {
				return fmt.Errorf("no cell at column %d, row %d", at.Col, at.Row)
			}
			return app.applyAndPrint(cmd, svc, at, u)
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status COL ROW TEXT...",
		Short: "Set the destination text of one cell",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseCoord(args[0], args[1])
			if err != nil {
				return err
			}
			svc, err := app.service()
			if err != nil {
				return err
			}
			u := board.StatusUpdate(strings.Join(args[2:], " "))
			return app.applyAndPrint(cmd, svc, at, u)
		},
	}
}

func (app *App) applyAndPrint(cmd *cobra.Command, svc board.Service, at models.Coord, u models.CellUpdate) error {
	b, err := board.UpdateAndReload(cmd.Context(), svc, at, u)
	if err != nil {
		return userError(err)
	}
	return app.printBoard(cmd.OutOrStdout(), b, time.Now())
}
