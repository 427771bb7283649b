package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/preview"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

func newGalleryCmd(app *AppContext, root *rootFlags) *cobra.Command {
	var dark bool

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the components interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dark") {
				dark = app.Config.Preview.Dark
			}
			log := app.Logger.Command("gallery")

			ctx := app.RenderContext()
			ctx = ctx.WithTheme(ctx.Active(root.forced()))
			r := preview.NewRenderer(preview.NewTranslator(dark), previewWidth(0, app.Config.Preview.Width))

			log.Info("launching gallery")
			p := tea.NewProgram(tui.NewModel(r, ctx), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				log.Error(err, "gallery execution failed")
				return fmt.Errorf("failed to run gallery: %w", err)
			}
			log.Info("gallery closed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Assume a dark terminal background")

	return cmd
}
