package components

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	kiterrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

type recordingRipple struct {
	calls []bool
	tags  []string
}

func (r *recordingRipple) BindRipple(target *html.Node, enabled bool) {
	r.calls = append(r.calls, enabled)
	r.tags = append(r.tags, target.Data)
}

func render(t *testing.T, r Renderer, ctx RenderContext) *goquery.Document {
	t.Helper()

	markup, err := HTML(r, ctx)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func classOf(doc *goquery.Document, selector string) string {
	return doc.Find(selector).First().AttrOr("class", "")
}

func iosContext() RenderContext {
	return RenderContext{Theme: theme.IOS}
}

func materialContext() RenderContext {
	return RenderContext{Theme: theme.Material}
}

func TestListItemPlainRow(t *testing.T) {
	t.Parallel()

	item := NewListItem(ListItemProps{Title: "Wi-Fi", After: "Home", Media: "icon"})
	doc := render(t, item, iosContext())

	root := doc.Find("li")
	require.Equal(t, 1, root.Length())
	_, hasClass := root.Attr("class")
	assert.False(t, hasClass, "a plain row has no root classes")

	assert.Equal(t, "pl-4 flex items-center", classOf(doc, "li > div"))
	assert.Equal(t, "mr-4 flex-shrink-0 py-2", classOf(doc, "li > div > div"))
	assert.Equal(t, "pr-4 w-full relative hairline-b py-2.5", doc.Find("li > div > div").Eq(1).AttrOr("class", ""))
	assert.Equal(t, "flex justify-between items-center", classOf(doc, "li > div > div > div"))

	title := doc.Find("li > div > div > div > div").First()
	assert.Equal(t, "Wi-Fi", title.Text())
	assert.Equal(t, "flex-shrink", title.AttrOr("class", ""))

	assert.Equal(t, 0, doc.Find("svg").Length(), "no chevron without a link")
}

func TestListItemStrongTitleSelection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		props    ListItemProps
		ctx      RenderContext
		expected string
	}{
		{
			name:     "auto strong with subtitle under material",
			props:    ListItemProps{Title: "Inbox", Subtitle: "3 unread"},
			ctx:      materialContext(),
			expected: "flex-shrink font-medium",
		},
		{
			name:     "auto strong with text under ios",
			props:    ListItemProps{Title: "Inbox", Text: "Latest message"},
			ctx:      iosContext(),
			expected: "flex-shrink font-semibold",
		},
		{
			name:     "forced strong without subtitle",
			props:    ListItemProps{Title: "Inbox", StrongTitle: StrongTitleOn},
			ctx:      iosContext(),
			expected: "flex-shrink font-semibold",
		},
		{
			name:     "strong disabled",
			props:    ListItemProps{Title: "Inbox", Subtitle: "3 unread", StrongTitle: StrongTitleOff},
			ctx:      iosContext(),
			expected: "flex-shrink",
		},
		{
			name:     "menu row wins over strong",
			props:    ListItemProps{Title: "Inbox", Subtitle: "3 unread", MenuListItem: true},
			ctx:      materialContext(),
			expected: "flex-shrink text-sm font-medium",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := render(t, NewListItem(tc.props), tc.ctx)
			title := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
				return s.Children().Length() == 0 && s.Text() == "Inbox"
			})
			require.Equal(t, 1, title.Length())
			assert.Equal(t, tc.expected, title.AttrOr("class", ""))
		})
	}
}

func TestListItemLinkUnderMaterialNeedsRipple(t *testing.T) {
	t.Parallel()

	ripple := &recordingRipple{}
	item := NewListItem(ListItemProps{Title: "Settings"}).WithHref("/settings")
	doc := render(t, item, materialContext().WithRipple(ripple))

	link := doc.Find("li > a")
	require.Equal(t, 1, link.Length())
	assert.Equal(t, "/settings", link.AttrOr("href", ""))
	assert.Equal(t,
		"pl-4 flex items-center duration-300 active:duration-0 active:hairline-transparent cursor-pointer select-none relative overflow-hidden dark:touch-ripple-white z-10 active:bg-black active:bg-opacity-10 dark-active:bg-white dark-active:bg-opacity-10",
		link.AttrOr("class", ""),
	)
	assert.Equal(t, "opacity-20 flex-shrink-0 ml-3", doc.Find("svg").AttrOr("class", ""))

	assert.Equal(t, []bool{true}, ripple.calls)
	assert.Equal(t, []string{"a"}, ripple.tags)
}

func TestListItemLinkUnderIOSHasNoRipple(t *testing.T) {
	t.Parallel()

	ripple := &recordingRipple{}
	item := NewListItem(ListItemProps{Title: "Settings", Target: "_blank", LinkAttrs: map[string]string{"rel": "noopener"}}).WithHref("")
	doc := render(t, item, iosContext().WithRipple(ripple))

	link := doc.Find("li > a")
	href, ok := link.Attr("href")
	assert.True(t, ok, "an empty href still renders a link")
	assert.Equal(t, "", href)
	assert.Equal(t, "_blank", link.AttrOr("target", ""))
	assert.Equal(t, "noopener", link.AttrOr("rel", ""))
	assert.NotContains(t, link.AttrOr("class", ""), "touch-ripple")
	assert.Equal(t, []bool{false}, ripple.calls)

	assert.False(t, item.NeedsTouchRipple(theme.IOS))
	assert.True(t, item.NeedsTouchRipple(theme.Material))
}

func TestListItemLabel(t *testing.T) {
	t.Parallel()

	doc := render(t, NewListItem(ListItemProps{Title: "Remember me", Label: true}), materialContext())

	label := doc.Find("li > label")
	require.Equal(t, 1, label.Length())
	assert.Contains(t, label.AttrOr("class", ""), "cursor-pointer select-none relative overflow-hidden")
	assert.Equal(t, 0, doc.Find("svg").Length(), "labels never show a chevron")
}

func TestListItemActiveMenuRow(t *testing.T) {
	t.Parallel()

	item := NewListItem(ListItemProps{
		Title:              "Dashboard",
		MenuListItem:       true,
		MenuListItemActive: true,
		ClassName:          "mt-2",
	})
	doc := render(t, item, iosContext())

	assert.Equal(t, "text-primary dark:text-white py-1 mt-2", classOf(doc, "li"))
	assert.Equal(t,
		"pl-2 mx-2 rounded-lg flex items-center duration-300 active:duration-0 active:hairline-transparent cursor-pointer select-none bg-primary bg-opacity-15 dark:bg-primary",
		classOf(doc, "li > a"),
	)
	assert.Equal(t, "pr-4 w-full relative py-2.5", classOf(doc, "li > a > div"))
	assert.Equal(t, 0, doc.Find("svg").Length(), "menu rows never show a chevron")
}

func TestListItemDividerAndGroupTitle(t *testing.T) {
	t.Parallel()

	divider := NewListItem(ListItemProps{Title: "Section", Divider: true, ClassName: "extra"})
	doc := render(t, divider, iosContext())
	root := doc.Find("li")
	assert.Equal(t, "Section", root.Text())
	assert.Equal(t,
		"bg-list-divider-light dark:bg-list-divider-dark text-black dark:text-white text-opacity-55 dark:text-opacity-55 px-4 py-1 flex items-center z-10 relative h-8 hairline-t -m-0.5 extra",
		root.AttrOr("class", ""),
	)
	assert.Equal(t, 0, root.Children().Length())

	group := NewListItem(ListItemProps{Title: "A", GroupTitle: true, Component: "div"})
	doc = render(t, group, materialContext())
	assert.True(t, strings.HasSuffix(classOf(doc, "body > div"), "z-10 sticky top-0 h-12"))
}

func TestListItemFlagsOverrideContextTheme(t *testing.T) {
	t.Parallel()

	item := NewListItem(ListItemProps{Title: "x", Media: "m"}).WithFlags(theme.Flags{Material: true})
	doc := render(t, item, iosContext())
	assert.Equal(t, "mr-4 flex-shrink-0 py-3 min-w-10", classOf(doc, "li > div > div"))
}

func TestListItemColorOverrides(t *testing.T) {
	t.Parallel()

	item := NewListItem(ListItemProps{
		Title:  "Storage",
		After:  "12 GB",
		Footer: "Updated",
		Colors: map[string]string{"text": "text-gray-900"},
	})
	doc := render(t, item, iosContext())

	after := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool { return s.Text() == "12 GB" })
	assert.Equal(t, "text-gray-900 text-opacity-55 dark:text-opacity-55 flex-shrink-0 ml-auto pl-1 flex items-center space-x-1", after.AttrOr("class", ""))

	footer := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool { return s.Text() == "Updated" })
	assert.Equal(t, "text-xs text-gray-900 text-opacity-55 dark:text-opacity-55 mt-0.5", footer.AttrOr("class", ""))
}

func TestListItemChildrenAndAttrs(t *testing.T) {
	t.Parallel()

	child := element("span", "badge")
	item := NewListItem(ListItemProps{
		Title:    "x",
		Attrs:    map[string]string{"data-id": "7", "class": "ignored"},
		Children: []*html.Node{child},
	})
	doc := render(t, item, iosContext())

	assert.Equal(t, "7", doc.Find("li").AttrOr("data-id", ""))
	assert.Equal(t, 1, doc.Find("li > span.badge").Length())
	_, hasClass := doc.Find("li").Attr("class")
	assert.False(t, hasClass)
}

func TestListItemUnknownThemeFails(t *testing.T) {
	t.Parallel()

	_, err := NewListItem(ListItemProps{Title: "x"}).Render(RenderContext{})
	var themeErr *kiterrors.UnknownThemeError
	require.ErrorAs(t, err, &themeErr)

	_, err = HTML(NewListItem(ListItemProps{Title: "x"}), RenderContext{Theme: "windows"})
	require.ErrorAs(t, err, &themeErr)
	assert.Equal(t, "windows", themeErr.Theme)
}

func TestListItemClassesExposeResolvedSet(t *testing.T) {
	t.Parallel()

	set, err := NewListItem(ListItemProps{}).Classes(materialContext())
	require.NoError(t, err)
	assert.Equal(t, "pr-4 w-full relative hairline-b py-3", set.Get("inner"))
	assert.Equal(t, "flex-shrink font-medium", set.Variant("title", VariantStrong))
	assert.Contains(t, set.Keys(), "divider")
}

func TestListItemIsLink(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		item    *ListItem
		link    bool
		chevron bool
	}{
		{name: "plain", item: NewListItem(ListItemProps{Title: "x"})},
		{name: "empty href", item: NewListItem(ListItemProps{Title: "x"}).WithHref(""), link: true, chevron: true},
		{name: "link flag", item: NewListItem(ListItemProps{Title: "x", Link: true}), link: true, chevron: true},
		{name: "hidden chevron", item: NewListItem(ListItemProps{Title: "x", Link: true, HideChevron: true}), link: true},
		{name: "menu row", item: NewListItem(ListItemProps{Title: "x", MenuListItem: true}), link: true},
		{name: "label", item: NewListItem(ListItemProps{Title: "x", Label: true})},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.link, tc.item.IsLink())
			assert.Equal(t, tc.chevron, tc.item.ShowsChevron())
			if tc.link || tc.item.Props().Label {
				assert.Equal(t, VariantLink, tc.item.ContentVariant())
			} else {
				assert.Equal(t, style.DefaultVariant, tc.item.ContentVariant())
			}
		})
	}
}

func TestListItemRendersTwiceWithCallerNodes(t *testing.T) {
	t.Parallel()

	badge := element("span", "badge")
	appendChildren(badge, textNode("3"))
	icon := element("i", "custom-chevron")
	item := NewListItem(ListItemProps{
		Title:         "Mail",
		Link:          true,
		ChevronIcon:   icon,
		Children:      []*html.Node{badge},
		InnerChildren: []*html.Node{element("em", "note")},
	})

	first, err := item.Render(iosContext())
	require.NoError(t, err)
	second, err := item.Render(iosContext())
	require.NoError(t, err)

	for _, node := range []*html.Node{first, second} {
		doc := goquery.NewDocumentFromNode(node)
		assert.Equal(t, "3", doc.Find("span.badge").Text())
		assert.Equal(t, 1, doc.Find("i.custom-chevron").Length())
		assert.Equal(t, 1, doc.Find("em.note").Length())
	}

	assert.Nil(t, badge.Parent, "caller nodes are never attached")
	assert.Nil(t, icon.Parent)
	assert.Equal(t, "3", badge.FirstChild.Data)
}
