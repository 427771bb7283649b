package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades is a Tailwind-style scale from shade 50 to shade 900.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a scale ordered from lightest to darkest.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at a Tailwind shade number (50, 100 ... 900).
func (ps PaletteShades) Color(shade int) (lipgloss.Color, bool) {
	index := shade / 100
	if shade == 50 {
		index = 0
	} else if shade%100 != 0 || index < 1 || index >= paletteShadeCount {
		return "", false
	}
	color := ps.colors[index]
	return color, color != ""
}

// Palette maps Tailwind colour names used by the kit to terminal colours.
type Palette struct {
	Named    map[string]lipgloss.Color
	Families map[string]PaletteShades
	// Surface is the assumed terminal background used to blend opacities.
	Surface lipgloss.Color
}

// Lookup resolves a colour token such as "primary", "black" or "red-500".
func (p Palette) Lookup(token string) (lipgloss.Color, bool) {
	if color, ok := p.Named[token]; ok {
		return color, true
	}
	idx := strings.LastIndexByte(token, '-')
	if idx <= 0 {
		return "", false
	}
	shades, ok := p.Families[token[:idx]]
	if !ok {
		return "", false
	}
	shade, err := strconv.Atoi(token[idx+1:])
	if err != nil {
		return "", false
	}
	return shades.Color(shade)
}

// DefaultPalette returns the palette for a light terminal.
func DefaultPalette() Palette {
	return Palette{
		Named: map[string]lipgloss.Color{
			"primary":            lipgloss.Color("#007aff"),
			"black":              lipgloss.Color("#000000"),
			"white":              lipgloss.Color("#ffffff"),
			"transparent":        lipgloss.Color(""),
			"list-divider-light": lipgloss.Color("#f4f4f7"),
			"list-divider-dark":  lipgloss.Color("#232323"),
		},
		Families: map[string]PaletteShades{
			"slate": NewPaletteShades(
				"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
				"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
			),
			"gray": NewPaletteShades(
				"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af",
				"#6b7280", "#4b5563", "#374151", "#1f2937", "#111827",
			),
			"blue": NewPaletteShades(
				"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
				"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
			),
			"green": NewPaletteShades(
				"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
				"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
			),
			"red": NewPaletteShades(
				"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
				"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
			),
			"yellow": NewPaletteShades(
				"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
				"#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12",
			),
			"purple": NewPaletteShades(
				"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc",
				"#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87",
			),
			"cyan": NewPaletteShades(
				"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee",
				"#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63",
			),
		},
		Surface: lipgloss.Color("#ffffff"),
	}
}

// DarkPalette returns the palette for a dark terminal.
func DarkPalette() Palette {
	p := DefaultPalette()
	p.Surface = lipgloss.Color("#000000")
	return p
}
