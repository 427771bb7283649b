package components

import (
	"math"
	"strconv"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/themekit/internal/classes"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// ProgressbarProps configures a Progressbar.
type ProgressbarProps struct {
	// Tag is the root tag, "span" when empty.
	Tag       string
	ClassName string
	Colors    style.Colors
	Attrs     map[string]string

	// Progress is the completed fraction in [0, 1].
	Progress float64

	Children []*html.Node
	Flags    theme.Flags
}

// Progressbar renders a determinate progress indicator.
type Progressbar struct {
	props ProgressbarProps
}

// NewProgressbar creates a progress bar with the given props.
func NewProgressbar(props ProgressbarProps) *Progressbar {
	return &Progressbar{props: props}
}

// WithProgress sets the completed fraction.
func (pb *Progressbar) WithProgress(progress float64) *Progressbar {
	pb.props.Progress = progress
	return pb
}

// WithClassName appends caller classes to the root element.
func (pb *Progressbar) WithClassName(className string) *Progressbar {
	pb.props.ClassName = className
	return pb
}

// WithFlags forces a theme for this bar.
func (pb *Progressbar) WithFlags(flags theme.Flags) *Progressbar {
	pb.props.Flags = flags
	return pb
}

// Progress returns the completed fraction clamped to [0, 1].
func (pb *Progressbar) Progress() float64 {
	value := pb.props.Progress
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// Tree builds the style descriptor tree of the bar.
func (pb *Progressbar) Tree() style.Tree {
	colors := style.MergeColors(style.Colors{"bg": "bg-primary"}, pb.props.Colors)

	return style.Tree{
		"base": style.Branch{
			Initial: "block bg-opacity-30 overflow-hidden",
			Themes: style.ByTheme{
				theme.IOS:      style.Class("bg-black h-0.5 rounded"),
				theme.Material: style.Class(classes.Join(colors["bg"], "h-1")),
			},
		},
		"inner": style.Branch{
			Initial: classes.Join("block", colors["bg"], "duration-200 w-full h-full"),
		},
	}
}

// Classes resolves the bar's class set for ctx.
func (pb *Progressbar) Classes(ctx RenderContext) (style.ClassSet, error) {
	return ctx.resolve("progressbar", pb.Tree(), ctx.Active(pb.props.Flags), pb.props.ClassName)
}

// Render builds the bar markup.
func (pb *Progressbar) Render(ctx RenderContext) (*html.Node, error) {
	c, err := pb.Classes(ctx)
	if err != nil {
		return nil, err
	}

	tag := pb.props.Tag
	if tag == "" {
		tag = "span"
	}

	offset := math.Round((100-pb.Progress()*100)*1000) / 1000
	root := element(tag, c.Get("base"), sortedAttrs(pb.props.Attrs)...)
	inner := element("span", c.Get("inner"), html.Attribute{
		Key: "style",
		Val: "transform: translateX(-" + strconv.FormatFloat(offset, 'f', -1, 64) + "%)",
	})
	appendChildren(root, inner)
	appendCopies(root, pb.props.Children...)
	return root, nil
}

// HTML renders the bar to markup.
func (pb *Progressbar) HTML(ctx RenderContext) (string, error) {
	return HTML(pb, ctx)
}
