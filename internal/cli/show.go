package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/akyairhashvil/destboard/internal/tui"
	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.service()
			if err != nil {
				return err
			}
			b, err := svc.Fetch(cmd.Context())
			if err != nil {
				return userError(err)
			}
			return app.printBoard(cmd.OutOrStdout(), b, time.Now())
		},
	}
	cmd.Flags().BoolVar(&app.JSON, "json", false, "Print the board as JSON ([column][row])")
	return cmd
}

func (app *App) printBoard(w io.Writer, b models.Board, refreshed time.Time) error {
	if app.JSON {
		data, err := sonic.ConfigStd.MarshalIndent(b, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	width, tty := terminalWidth(w)
	if app.NoColor || !tty {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	_, err := io.WriteString(w, tui.RenderBoard(b, refreshed, width, app.Config.Theme))
	return err
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, true
	}
	return width, true
}
