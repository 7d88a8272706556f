package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/destboard/internal/config"
	"github.com/akyairhashvil/destboard/internal/report"
	"github.com/akyairhashvil/destboard/internal/util"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [PATH]",
		Short: "Write the board to a PDF file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.service()
			if err != nil {
				return err
			}
			b, err := svc.Fetch(cmd.Context())
			if err != nil {
				return userError(err)
			}
			now := time.Now()
			path := filepath.Join(util.ReportsDir(config.AppName), fmt.Sprintf("%s-%s.pdf", config.AppName, now.Format("20060102-150405")))
			if len(args) == 1 {
				path = args[0]
			}
			if err := report.SaveBoardPDF(path, b, config.Title, now); err != nil {
				return fmt.Errorf("export board: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
