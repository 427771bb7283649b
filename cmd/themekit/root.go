package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

type rootFlags struct {
	configPath string
	verbose    bool
	theme      string
	ios        bool
	material   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "themekit resolves and previews theme-scoped component classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := newAppContext(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *loaded
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Default theme (ios or material)")
	cmd.PersistentFlags().BoolVar(&flags.ios, "ios", false, "Force the ios theme")
	cmd.PersistentFlags().BoolVar(&flags.material, "material", false, "Force the material theme")

	cmd.AddCommand(newResolveCmd(app, flags))
	cmd.AddCommand(newRenderCmd(app, flags))
	cmd.AddCommand(newPreviewCmd(app, flags))
	cmd.AddCommand(newGalleryCmd(app, flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) forced() theme.Flags {
	return theme.Flags{IOS: f.ios, Material: f.material}
}
