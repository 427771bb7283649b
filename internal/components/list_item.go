package components

import (
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/themekit/internal/classes"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// TitleStrength controls whether a list item title uses the strong variant.
type TitleStrength int

const (
	// StrongTitleAuto makes the title strong when it has a subtitle or text.
	StrongTitleAuto TitleStrength = iota
	StrongTitleOn
	StrongTitleOff
)

// Variants selected by ListItem.
const (
	VariantLink         style.Variant = "link"
	VariantStrong       style.Variant = "strong"
	VariantMenuListItem style.Variant = "menuListItem"
)

// ListItemProps configures a ListItem.
type ListItemProps struct {
	// Component is the root tag, "li" when empty.
	Component string
	Colors    style.Colors
	ClassName string
	Attrs     map[string]string

	MediaClassName     string
	InnerClassName     string
	ContentClassName   string
	TitleWrapClassName string

	Title    string
	Subtitle string
	Text     string
	After    string
	Media    string
	Header   string
	Footer   string

	InnerChildren   []*html.Node
	ContentChildren []*html.Node
	Children        []*html.Node

	MenuListItem       bool
	MenuListItemActive bool

	Divider    bool
	GroupTitle bool

	StrongTitle TitleStrength

	Label bool

	HideChevron bool
	ChevronIcon *html.Node
	// Href is nil when the item has no href; an empty string is still a link.
	Href          *string
	Target        string
	Link          bool
	LinkComponent string
	LinkAttrs     map[string]string

	Flags theme.Flags
}

// ListItem renders a single row of a list, a menu entry or a divider.
type ListItem struct {
	props ListItemProps
}

// NewListItem creates a list item with the given props.
func NewListItem(props ListItemProps) *ListItem {
	return &ListItem{props: props}
}

// WithTitle sets the item title.
func (li *ListItem) WithTitle(title string) *ListItem {
	li.props.Title = title
	return li
}

// WithSubtitle sets the item subtitle.
func (li *ListItem) WithSubtitle(subtitle string) *ListItem {
	li.props.Subtitle = subtitle
	return li
}

// WithText sets the item body text.
func (li *ListItem) WithText(text string) *ListItem {
	li.props.Text = text
	return li
}

// WithHref turns the item into a link to href.
func (li *ListItem) WithHref(href string) *ListItem {
	li.props.Href = &href
	return li
}

// WithClassName appends caller classes to the root element.
func (li *ListItem) WithClassName(className string) *ListItem {
	li.props.ClassName = className
	return li
}

// WithFlags forces a theme for this item.
func (li *ListItem) WithFlags(flags theme.Flags) *ListItem {
	li.props.Flags = flags
	return li
}

// Props returns a copy of the item configuration.
func (li *ListItem) Props() ListItemProps {
	return li.props
}

func defaultListItemColors() style.Colors {
	return style.Colors{
		"text":             "text-black dark:text-white",
		"menuListItemText": "text-primary dark:text-white",
		"menuListItemBg":   "bg-primary",
	}
}

// IsLink reports whether the item content renders as a link: it has an
// href, is a menu row or is marked as a link.
func (li *ListItem) IsLink() bool {
	return li.props.Href != nil || li.props.MenuListItem || li.props.Link
}

// ContentVariant reports which itemContent variant the item selects.
func (li *ListItem) ContentVariant() style.Variant {
	if li.IsLink() || li.props.Label {
		return VariantLink
	}
	return style.DefaultVariant
}

// ShowsChevron reports whether the title row ends with a chevron.
func (li *ListItem) ShowsChevron() bool {
	return li.IsLink() && !li.props.HideChevron && !li.props.MenuListItem
}

// NeedsTouchRipple reports whether the item content wants the ripple effect
// under the given theme: only Material links and labels do.
func (li *ListItem) NeedsTouchRipple(active theme.Theme) bool {
	return active == theme.Material && (li.props.Label || li.IsLink())
}

// Tree builds the style descriptor tree of the item for the given theme.
func (li *ListItem) Tree(active theme.Theme) style.Tree {
	p := li.props
	colors := style.MergeColors(defaultListItemColors(), p.Colors)

	menuActive := p.MenuListItem && p.MenuListItemActive
	textColor := classes.IfElse(menuActive, colors["menuListItemText"], colors["text"])
	ripple := li.NeedsTouchRipple(active)
	muted := classes.Join(textColor, "text-opacity-55 dark:text-opacity-55")

	return style.Tree{
		"base": style.Class(classes.If(p.MenuListItem, classes.Join(textColor, "py-1"))),
		"itemContent": style.Branch{
			Common: classes.Join(
				classes.IfElse(p.MenuListItem, "pl-2 mx-2 rounded-lg", "pl-4"),
				"flex items-center",
				p.ContentClassName,
			),
			Variants: style.ByVariant{
				VariantLink: style.Class(classes.Join(
					"duration-300 active:duration-0 active:hairline-transparent cursor-pointer select-none",
					classes.If(ripple, "relative overflow-hidden dark:touch-ripple-white z-10"),
					classes.IfElse(menuActive,
						"bg-primary bg-opacity-15 dark:bg-primary",
						"active:bg-black active:bg-opacity-10 dark-active:bg-white dark-active:bg-opacity-10",
					),
				)),
			},
		},
		"media": style.Themed(
			classes.Join("mr-4 flex-shrink-0", p.MediaClassName),
			"py-2",
			"py-3 min-w-10",
		),
		"inner": style.Themed(
			classes.Join("pr-4 w-full relative", classes.If(!p.MenuListItem, "hairline-b"), p.InnerClassName),
			"py-2.5",
			"py-3",
		),
		"titleWrap": style.Class(classes.Join("flex justify-between items-center", p.TitleWrapClassName)),
		"title": style.Branch{
			Common: "flex-shrink",
			Variants: style.ByVariant{
				VariantMenuListItem: style.Branch{Common: "text-sm font-medium"},
				VariantStrong:       style.Themed("", "font-semibold", "font-medium"),
			},
		},
		"after":    style.Class(classes.Join(muted, "flex-shrink-0 ml-auto pl-1 flex items-center space-x-1")),
		"chevron":  style.Class("opacity-20 flex-shrink-0 ml-3"),
		"subtitle": style.Class("text-sm"),
		"text":     style.Class(classes.Join("text-sm", muted, "line-clamp-2")),
		"header":   style.Class("text-xs mb-0.5"),
		"footer":   style.Class(classes.Join("text-xs", muted, "mt-0.5")),
		"divider": style.Themed(
			classes.Join(
				"bg-list-divider-light dark:bg-list-divider-dark text-black dark:text-white text-opacity-55 dark:text-opacity-55 px-4 py-1 flex items-center z-10",
				classes.IfElse(p.Divider, "relative", "sticky top-0"),
			),
			"h-8 hairline-t -m-0.5",
			"h-12",
		),
	}
}

// TitleVariant reports which title variant the item selects.
func (li *ListItem) TitleVariant() style.Variant {
	p := li.props
	autoStrong := p.StrongTitle == StrongTitleAuto && p.Title != "" && (p.Subtitle != "" || p.Text != "")
	switch {
	case p.MenuListItem:
		return VariantMenuListItem
	case p.StrongTitle == StrongTitleOn || autoStrong:
		return VariantStrong
	default:
		return style.DefaultVariant
	}
}

// Classes resolves the item's class set for ctx.
func (li *ListItem) Classes(ctx RenderContext) (style.ClassSet, error) {
	active := ctx.Active(li.props.Flags)
	return ctx.resolve("list-item", li.Tree(active), active, li.props.ClassName)
}

// Render builds the item markup.
func (li *ListItem) Render(ctx RenderContext) (*html.Node, error) {
	p := li.props
	active := ctx.Active(p.Flags)
	c, err := ctx.resolve("list-item", li.Tree(active), active, p.ClassName)
	if err != nil {
		return nil, err
	}

	tag := p.Component
	if tag == "" {
		tag = "li"
	}

	if p.Divider || p.GroupTitle {
		root := element(tag, classes.Join(c.Get("divider"), p.ClassName))
		if p.Title != "" {
			appendChildren(root, textNode(p.Title))
		}
		appendCopies(root, p.Children...)
		return root, nil
	}

	contentTag := "div"
	var contentAttrs []html.Attribute
	switch {
	case li.IsLink():
		contentTag = p.LinkComponent
		if contentTag == "" {
			contentTag = "a"
		}
		if p.Href != nil {
			contentAttrs = append(contentAttrs, html.Attribute{Key: "href", Val: *p.Href})
		}
		if p.Target != "" {
			contentAttrs = append(contentAttrs, html.Attribute{Key: "target", Val: p.Target})
		}
		contentAttrs = append(contentAttrs, sortedAttrs(p.LinkAttrs)...)
	case p.Label:
		contentTag = "label"
	}

	root := element(tag, c.Get("base"), sortedAttrs(p.Attrs)...)
	content := element(contentTag, c.Variant("itemContent", li.ContentVariant()), contentAttrs...)
	if ctx.Ripple != nil {
		ctx.Ripple.BindRipple(content, li.NeedsTouchRipple(active))
	}

	if p.Media != "" {
		media := element("div", c.Get("media"))
		appendChildren(media, textNode(p.Media))
		appendChildren(content, media)
	}

	inner := element("div", c.Get("inner"))
	if p.Header != "" {
		appendChildren(inner, textDiv(c.Get("header"), p.Header))
	}
	if p.Title != "" || p.After != "" {
		wrap := element("div", c.Get("titleWrap"))
		if p.Title != "" {
			appendChildren(wrap, textDiv(c.Variant("title", li.TitleVariant()), p.Title))
		}
		if p.After != "" {
			appendChildren(wrap, textDiv(c.Get("after"), p.After))
		}
		if li.ShowsChevron() {
			if p.ChevronIcon != nil {
				appendCopies(wrap, p.ChevronIcon)
			} else {
				appendChildren(wrap, chevronIcon(c.Get("chevron")))
			}
		}
		appendChildren(inner, wrap)
	}
	if p.Subtitle != "" {
		appendChildren(inner, textDiv(c.Get("subtitle"), p.Subtitle))
	}
	if p.Text != "" {
		appendChildren(inner, textDiv(c.Get("text"), p.Text))
	}
	if p.Footer != "" {
		appendChildren(inner, textDiv(c.Get("footer"), p.Footer))
	}
	appendCopies(inner, p.InnerChildren...)

	appendChildren(content, inner)
	appendCopies(content, p.ContentChildren...)
	appendChildren(root, content)
	appendCopies(root, p.Children...)
	return root, nil
}

func textDiv(class, value string) *html.Node {
	div := element("div", class)
	appendChildren(div, textNode(value))
	return div
}

func chevronIcon(class string) *html.Node {
	svg := element("svg", class,
		html.Attribute{Key: "width", Val: "8"},
		html.Attribute{Key: "height", Val: "14"},
		html.Attribute{Key: "viewBox", Val: "0 0 12 20"},
		html.Attribute{Key: "fill", Val: "currentcolor"},
	)
	path := element("path", "", html.Attribute{Key: "d", Val: "M0 2L2 0l10 10L2 20l-2-2 8-8z"})
	appendChildren(svg, path)
	return svg
}

// HTML renders the item to markup.
func (li *ListItem) HTML(ctx RenderContext) (string, error) {
	return HTML(li, ctx)
}
