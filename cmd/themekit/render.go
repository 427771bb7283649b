package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/components"
)

type listItemOptions struct {
	Title      string
	Subtitle   string
	Text       string
	After      string
	Media      string
	Header     string
	Footer     string
	Href       string
	Target     string
	Strong     string
	ClassName  string
	Menu       bool
	MenuActive bool
	Divider    bool
	GroupTitle bool
	Label      bool
	Link       bool
	NoChevron  bool
}

type progressbarOptions struct {
	Progress  float64
	ClassName string
}

func newRenderCmd(app *AppContext, root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the markup of a component",
	}

	cmd.AddCommand(newRenderListItemCmd(app, root))
	cmd.AddCommand(newRenderProgressbarCmd(app, root))

	return cmd
}

func newRenderListItemCmd(app *AppContext, root *rootFlags) *cobra.Command {
	opts := listItemOptions{}

	cmd := &cobra.Command{
		Use:   "list-item",
		Short: "Render a list item",
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := opts.props(cmd)
			if err != nil {
				return err
			}
			props.Flags = root.forced()
			return writeMarkup(cmd, app, "list-item", components.NewListItem(props))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Title, "title", "", "Item title")
	f.StringVar(&opts.Subtitle, "subtitle", "", "Item subtitle")
	f.StringVar(&opts.Text, "text", "", "Item body text")
	f.StringVar(&opts.After, "after", "", "Content shown after the title")
	f.StringVar(&opts.Media, "media", "", "Media content")
	f.StringVar(&opts.Header, "header", "", "Header text")
	f.StringVar(&opts.Footer, "footer", "", "Footer text")
	f.StringVar(&opts.Href, "href", "", "Link target; makes the item a link")
	f.StringVar(&opts.Target, "target", "", "Link target window")
	f.StringVar(&opts.Strong, "strong", "auto", "Title strength (auto, on or off)")
	f.StringVar(&opts.ClassName, "class-name", "", "Classes appended to the root element")
	f.BoolVar(&opts.Menu, "menu", false, "Render as a menu list item")
	f.BoolVar(&opts.MenuActive, "menu-active", false, "Mark the menu list item active")
	f.BoolVar(&opts.Divider, "divider", false, "Render as a divider")
	f.BoolVar(&opts.GroupTitle, "group-title", false, "Render as a group title")
	f.BoolVar(&opts.Label, "label", false, "Render the content as a label")
	f.BoolVar(&opts.Link, "link", false, "Render as a link without href")
	f.BoolVar(&opts.NoChevron, "no-chevron", false, "Hide the link chevron")

	return cmd
}

func (o listItemOptions) props(cmd *cobra.Command) (components.ListItemProps, error) {
	strength, err := parseStrength(o.Strong)
	if err != nil {
		return components.ListItemProps{}, err
	}

	props := components.ListItemProps{
		Title:              o.Title,
		Subtitle:           o.Subtitle,
		Text:               o.Text,
		After:              o.After,
		Media:              o.Media,
		Header:             o.Header,
		Footer:             o.Footer,
		Target:             o.Target,
		ClassName:          o.ClassName,
		MenuListItem:       o.Menu,
		MenuListItemActive: o.MenuActive,
		Divider:            o.Divider,
		GroupTitle:         o.GroupTitle,
		Label:              o.Label,
		Link:               o.Link,
		HideChevron:        o.NoChevron,
		StrongTitle:        strength,
	}
	if cmd.Flags().Changed("href") {
		href := o.Href
		props.Href = &href
	}
	return props, nil
}

func parseStrength(value string) (components.TitleStrength, error) {
	switch value {
	case "", "auto":
		return components.StrongTitleAuto, nil
	case "on":
		return components.StrongTitleOn, nil
	case "off":
		return components.StrongTitleOff, nil
	default:
		return components.StrongTitleAuto, fmt.Errorf("invalid title strength %q: expected auto, on or off", value)
	}
}

func newRenderProgressbarCmd(app *AppContext, root *rootFlags) *cobra.Command {
	opts := progressbarOptions{}

	cmd := &cobra.Command{
		Use:   "progressbar",
		Short: "Render a progress bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			bar := components.NewProgressbar(components.ProgressbarProps{
				Progress:  opts.Progress,
				ClassName: opts.ClassName,
				Flags:     root.forced(),
			})
			return writeMarkup(cmd, app, "progressbar", bar)
		},
	}

	cmd.Flags().Float64Var(&opts.Progress, "progress", 0, "Completed fraction between 0 and 1")
	cmd.Flags().StringVar(&opts.ClassName, "class-name", "", "Classes appended to the root element")

	return cmd
}

func writeMarkup(cmd *cobra.Command, app *AppContext, component string, r components.Renderer) error {
	markup, err := components.HTML(r, app.RenderContext())
	if err != nil {
		app.Logger.Command("render").Component(component).Error(err, "render failed")
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
	return err
}
