package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/components"
)

const (
	defaultWidth = 48
	chevronGlyph = "›"
)

// Renderer draws components in the terminal from their resolved classes.
type Renderer struct {
	tr    Translator
	width int
}

// NewRenderer creates a renderer drawing blocks of the given width.
func NewRenderer(tr Translator, width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{tr: tr, width: width}
}

// Width returns the block width.
func (r *Renderer) Width() int {
	return r.width
}

// ListItem renders one list item.
func (r *Renderer) ListItem(item *components.ListItem, ctx components.RenderContext) (string, error) {
	c, err := item.Classes(ctx)
	if err != nil {
		return "", err
	}
	p := item.Props()

	if p.Divider || p.GroupTitle {
		divider := r.tr.Style(c.Get("divider"))
		return divider.Width(r.width - divider.GetHorizontalMargins()).Render(p.Title), nil
	}

	contentStyle := r.tr.Style(c.Variant("itemContent", item.ContentVariant()))
	innerStyle := r.tr.Style(c.Get("inner"))

	mediaBlock := ""
	if p.Media != "" {
		mediaBlock = r.tr.Style(c.Get("media")).Render(p.Media)
	}

	innerWidth := r.width -
		contentStyle.GetHorizontalFrameSize() -
		lipgloss.Width(mediaBlock) -
		innerStyle.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	if p.Header != "" {
		lines = append(lines, r.tr.Style(c.Get("header")).Render(p.Header))
	}
	if p.Title != "" || p.After != "" {
		left := ""
		if p.Title != "" {
			left = r.tr.Style(c.Variant("title", item.TitleVariant())).Render(p.Title)
		}
		var right []string
		if p.After != "" {
			right = append(right, r.tr.Style(c.Get("after")).Render(p.After))
		}
		if item.ShowsChevron() {
			right = append(right, r.tr.Style(c.Get("chevron")).Render(chevronGlyph))
		}
		lines = append(lines, spread(left, lipgloss.JoinHorizontal(lipgloss.Center, right...), innerWidth))
	}
	if p.Subtitle != "" {
		lines = append(lines, r.tr.Style(c.Get("subtitle")).Render(p.Subtitle))
	}
	if p.Text != "" {
		textStyle := r.tr.Style(c.Get("text"))
		lines = append(lines, textStyle.Width(innerWidth).Render(p.Text))
	}
	if p.Footer != "" {
		lines = append(lines, r.tr.Style(c.Get("footer")).Render(p.Footer))
	}

	inner := innerStyle.
		Width(innerWidth + innerStyle.GetHorizontalPadding()).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	content := contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, mediaBlock, inner))
	return r.tr.Style(c.Get("base")).Render(content), nil
}

// List renders items stacked vertically.
func (r *Renderer) List(items []*components.ListItem, ctx components.RenderContext) (string, error) {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		block, err := r.ListItem(item, ctx)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...), nil
}

// Progressbar renders a progress bar using the bar's resolved colours.
func (r *Renderer) Progressbar(bar *components.Progressbar, ctx components.RenderContext) (string, error) {
	c, err := bar.Classes(ctx)
	if err != nil {
		return "", err
	}

	fill, ok := r.tr.Background(c.Get("inner"))
	if !ok {
		fill = r.tr.defaultForeground()
	}
	opts := []progress.Option{
		progress.WithSolidFill(string(fill)),
		progress.WithoutPercentage(),
		progress.WithWidth(r.width),
	}
	model := progress.New(opts...)
	if track, ok := r.tr.Background(c.Get("base")); ok {
		model.EmptyColor = string(track)
	}
	return model.ViewAs(bar.Progress()), nil
}

func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
