package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/preview"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

const fallbackWidth = 48

type previewOptions struct {
	Width    int
	Dark     bool
	Menu     bool
	Progress float64
	All      bool
}

func newPreviewCmd(app *AppContext, root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the sample components in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dark") {
				opts.Dark = app.Config.Preview.Dark
			}
			return runPreview(cmd, app, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Block width (defaults to the config or terminal width)")
	cmd.Flags().BoolVar(&opts.Dark, "dark", false, "Assume a dark terminal background")
	cmd.Flags().BoolVar(&opts.Menu, "menu", false, "Show menu rows instead of settings rows")
	cmd.Flags().Float64Var(&opts.Progress, "progress", preview.DefaultSampleOptions().Progress, "Sample progress between 0 and 1")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Draw every theme side by side")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, root *rootFlags, opts previewOptions) error {
	width := previewWidth(opts.Width, app.Config.Preview.Width)
	samples := preview.DefaultSampleOptions()
	samples.Menu = opts.Menu
	samples.Progress = opts.Progress
	if opts.Menu {
		samples.ActiveIndex = 0
	}

	ctx := app.RenderContext()
	if !opts.All {
		r := preview.NewRenderer(preview.NewTranslator(opts.Dark), width)
		ctx = ctx.WithTheme(ctx.Active(root.forced()))
		out, err := r.Samples(samples, ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}

	themes := theme.All()
	columnWidth := (width - len(themes) + 1) / len(themes)
	r := preview.NewRenderer(preview.NewTranslator(opts.Dark), columnWidth)
	columns := make([]string, 0, len(themes)*2)
	for i, t := range themes {
		out, err := r.Samples(samples, ctx.WithTheme(t))
		if err != nil {
			return err
		}
		if i > 0 {
			columns = append(columns, " ")
		}
		heading := lipgloss.NewStyle().Bold(true).Render(t.String())
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, heading, "", out))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	return err
}

// previewWidth picks the flag width, then the configured width, then the
// width of the attached terminal.
func previewWidth(flag, configured int) int {
	switch {
	case flag > 0:
		return flag
	case configured > 0:
		return configured
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return fallbackWidth
}
