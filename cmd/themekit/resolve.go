package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

type resolveOptions struct {
	File      string
	Variant   string
	ClassName string
	Output    string
}

func newResolveCmd(app *AppContext, root *rootFlags) *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a descriptor tree into class strings",
		Long: `Resolve loads a style descriptor tree from YAML and prints the classes of
every structural key for the active theme.

A string value is used as is. A mapping is a branch: "common" (or "initial")
always applies, "ios" and "material" apply under their theme and any other key
names a variant.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Output != "yaml" && opts.Output != "json" {
				return fmt.Errorf("unsupported output format %q", opts.Output)
			}
			return runResolve(cmd, app, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to the descriptor tree")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Print only the given variant of every key")
	cmd.Flags().StringVar(&opts.ClassName, "class-name", "", "Classes appended to the root key")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "yaml", "Output format (yaml or json)")
	cmd.MarkFlagRequired("file") //nolint:errcheck

	return cmd
}

func runResolve(cmd *cobra.Command, app *AppContext, root *rootFlags, opts resolveOptions) error {
	log := app.Logger.Command("resolve").WithFields(map[string]any{"file": opts.File})

	tree, err := style.LoadTree(opts.File)
	if err != nil {
		log.Error(err, "failed to load descriptor tree")
		return err
	}

	active := theme.Active(root.forced(), log)
	set, err := style.ResolveConcurrent(cmd.Context(), tree, active, opts.ClassName)
	if err != nil {
		log.Error(err, "failed to resolve descriptor tree")
		return err
	}
	log.Theme(active.String()).Resolved(set.Len())

	var out any = set.Export()
	if opts.Variant != "" {
		flat := make(map[string]string, set.Len())
		for _, key := range set.Keys() {
			flat[key] = set.Variant(key, style.Variant(opts.Variant))
		}
		out = flat
	}

	return writeResolved(cmd.OutOrStdout(), opts.Output, out)
}

func writeResolved(w io.Writer, format string, value any) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return err
	}
	return enc.Close()
}
