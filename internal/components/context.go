package components

import (
	"bytes"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// RippleBinder attaches the touch-ripple effect to an interactive element.
// The effect itself lives outside the kit; components only report whether
// an element needs it.
type RippleBinder interface {
	BindRipple(target *html.Node, enabled bool)
}

// RenderContext carries the injected theme and collaborators for one render.
type RenderContext struct {
	Theme  theme.Theme
	Logger *logger.Logger
	Ripple RippleBinder
}

// DefaultContext returns a context using the process-wide default theme.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:  theme.Default(),
		Logger: logger.Nop(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(t theme.Theme) RenderContext {
	r.Theme = t
	return r
}

// WithLogger returns a new context logging to log.
func (r RenderContext) WithLogger(log *logger.Logger) RenderContext {
	r.Logger = log
	return r
}

// WithRipple returns a new context binding ripple effects through binder.
func (r RenderContext) WithRipple(binder RippleBinder) RenderContext {
	r.Ripple = binder
	return r
}

// Active returns the theme a component forcing flags renders with.
func (r RenderContext) Active(flags theme.Flags) theme.Theme {
	return theme.Select(flags, r.Theme, r.Logger)
}

func (r RenderContext) resolve(component string, tree style.Tree, active theme.Theme, override string) (style.ClassSet, error) {
	log := r.Logger.Component(component)
	set, err := style.Resolve(tree, active, override)
	if err != nil {
		log.Error(err, "class resolution failed")
		return style.ClassSet{}, err
	}
	log.Theme(active.String()).Resolved(set.Len())
	return set, nil
}

// Renderer is implemented by every component.
type Renderer interface {
	Render(ctx RenderContext) (*html.Node, error)
}

// HTML renders a component to markup.
func HTML(r Renderer, ctx RenderContext) (string, error) {
	node, err := r.Render(ctx)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func element(tag, class string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	n.Attr = append(n.Attr, attrs...)
	return n
}

func textNode(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}

func appendChildren(parent *html.Node, children ...*html.Node) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.Parent != nil {
			child.Parent.RemoveChild(child)
		}
		parent.AppendChild(child)
	}
}

// appendCopies appends deep copies of caller supplied nodes so the caller's
// nodes stay untouched and a component can render any number of times.
func appendCopies(parent *html.Node, nodes ...*html.Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		parent.AppendChild(cloneNode(n))
	}
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}

func sortedAttrs(values map[string]string) []html.Attribute {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		if key == "class" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	attrs := make([]html.Attribute, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, html.Attribute{Key: key, Val: values[key]})
	}
	return attrs
}
