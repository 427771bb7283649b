// Package preview approximates resolved utility classes with lipgloss styles
// so a component can be inspected in a terminal under either theme.
//
// Only the handful of utilities the kit emits are understood: colours and
// their opacities, font weight, padding, margins, hairlines and line clamps.
// Interaction states (active:, dark-active:) never apply in a static preview;
// dark: classes apply when the translator targets a dark terminal.
package preview

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/themekit/internal/classes"
)

// Translator converts class strings into lipgloss styles.
type Translator struct {
	Palette Palette
	Dark    bool
}

// NewTranslator returns a translator for a light or dark terminal.
func NewTranslator(dark bool) Translator {
	palette := DefaultPalette()
	if dark {
		palette = DarkPalette()
	}
	return Translator{Palette: palette, Dark: dark}
}

type box struct {
	top, right, bottom, left int
}

type computed struct {
	bg          lipgloss.Color
	hasBg       bool
	bgOpacity   float64
	fg          lipgloss.Color
	hasFg       bool
	textOpacity float64
	opacity     float64
	bold        bool
	padding     box
	margin      box
	borderTop   bool
	borderBot   bool
	maxHeight   int
}

func (tr Translator) compute(class string) computed {
	c := computed{bgOpacity: 1, textOpacity: 1, opacity: 1}
	for _, token := range classes.Tokens(class) {
		utility, ok := tr.applies(token)
		if !ok {
			continue
		}
		tr.apply(&c, utility)
	}
	return c
}

// applies strips a state prefix and reports whether the utility is active
// in a static preview.
func (tr Translator) applies(token string) (string, bool) {
	idx := strings.IndexByte(token, ':')
	if idx < 0 {
		return token, true
	}
	if token[:idx] == "dark" && tr.Dark {
		return token[idx+1:], true
	}
	return "", false
}

func (tr Translator) apply(c *computed, utility string) {
	switch utility {
	case "font-medium", "font-semibold", "font-bold":
		c.bold = true
		return
	case "font-normal", "font-light":
		c.bold = false
		return
	case "hairline-b":
		c.borderBot = true
		return
	case "hairline-t":
		c.borderTop = true
		return
	}

	name, value, ok := cutUtility(utility)
	if !ok {
		return
	}

	switch name {
	case "bg":
		if strings.HasPrefix(value, "opacity-") {
			c.bgOpacity = percent(strings.TrimPrefix(value, "opacity-"), c.bgOpacity)
			return
		}
		if color, ok := tr.Palette.Lookup(value); ok {
			c.bg, c.hasBg = color, true
		}
	case "text":
		if strings.HasPrefix(value, "opacity-") {
			c.textOpacity = percent(strings.TrimPrefix(value, "opacity-"), c.textOpacity)
			return
		}
		if color, ok := tr.Palette.Lookup(value); ok {
			c.fg, c.hasFg = color, true
		}
	case "opacity":
		c.opacity = percent(value, c.opacity)
	case "line-clamp":
		if n, err := strconv.Atoi(value); err == nil {
			c.maxHeight = n
		}
	case "p", "px", "py", "pl", "pr", "pt", "pb":
		applySpacing(&c.padding, name[1:], value)
	case "m", "mx", "my", "ml", "mr", "mt", "mb":
		applySpacing(&c.margin, name[1:], value)
	}
}

// cutUtility splits "pl-4" into ("pl", "4") and "bg-red-500" into
// ("bg", "red-500").
func cutUtility(utility string) (string, string, bool) {
	if strings.HasPrefix(utility, "line-clamp-") {
		return "line-clamp", strings.TrimPrefix(utility, "line-clamp-"), true
	}
	name, value, ok := strings.Cut(utility, "-")
	if !ok || name == "" || value == "" {
		return "", "", false
	}
	return name, value, true
}

func percent(value string, fallback float64) float64 {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 || n > 100 {
		return fallback
	}
	return n / 100
}

// applySpacing maps Tailwind's quarter-rem scale onto terminal cells: two
// units per column and four per row.
func applySpacing(b *box, side, value string) {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return
	}
	cols := int(math.Floor(n / 2))
	rows := int(math.Floor(n / 4))
	switch side {
	case "":
		b.top, b.bottom, b.left, b.right = rows, rows, cols, cols
	case "x":
		b.left, b.right = cols, cols
	case "y":
		b.top, b.bottom = rows, rows
	case "l":
		b.left = cols
	case "r":
		b.right = cols
	case "t":
		b.top = rows
	case "b":
		b.bottom = rows
	}
}

func (tr Translator) defaultForeground() lipgloss.Color {
	if tr.Dark {
		return lipgloss.Color("#ffffff")
	}
	return lipgloss.Color("#000000")
}

// blend mixes color over the palette surface at the given opacity.
func (tr Translator) blend(color lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 || color == "" {
		return color
	}
	fg, err := colorful.Hex(string(color))
	if err != nil {
		return color
	}
	surface, err := colorful.Hex(string(tr.Palette.Surface))
	if err != nil {
		return color
	}
	return lipgloss.Color(surface.BlendRgb(fg, opacity).Clamped().Hex())
}

// Background returns the effective background colour of class.
func (tr Translator) Background(class string) (lipgloss.Color, bool) {
	c := tr.compute(class)
	if !c.hasBg {
		return "", false
	}
	return tr.blend(c.bg, c.bgOpacity*c.opacity), true
}

// Style translates class into a lipgloss style.
func (tr Translator) Style(class string) lipgloss.Style {
	c := tr.compute(class)

	style := lipgloss.NewStyle()
	if c.hasBg {
		style = style.Background(tr.blend(c.bg, c.bgOpacity*c.opacity))
	}
	if c.hasFg || c.textOpacity < 1 || c.opacity < 1 {
		fg := c.fg
		if !c.hasFg {
			fg = tr.defaultForeground()
		}
		style = style.Foreground(tr.blend(fg, c.textOpacity*c.opacity))
	}
	if c.bold {
		style = style.Bold(true)
	}
	style = style.
		Padding(c.padding.top, c.padding.right, c.padding.bottom, c.padding.left).
		Margin(c.margin.top, c.margin.right, c.margin.bottom, c.margin.left)
	if c.borderTop || c.borderBot {
		style = style.
			Border(lipgloss.NormalBorder(), c.borderTop, false, c.borderBot, false).
			BorderForeground(tr.blend(tr.defaultForeground(), 0.2))
	}
	if c.maxHeight > 0 {
		style = style.MaxHeight(c.maxHeight)
	}
	return style
}
