// Package style resolves theme-scoped style descriptors into class strings.
//
// A descriptor is either a terminal Class or a Branch. A Branch contributes,
// in this order: its common classes, the sub-descriptor for the active theme,
// and the sub-descriptor for the variant the caller selected. The order is
// load-bearing: the stylesheet applies last-declared-wins, so theme and
// variant classes must follow the common ones.
package style

import (
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Descriptor describes how one structural part's classes vary by theme and
// variant. A nil Descriptor is absent and resolves to "".
type Descriptor interface {
	isDescriptor()
}

// Class is a terminal descriptor returned unchanged.
type Class string

func (Class) isDescriptor() {}

// Variant names an alternative sub-style chosen explicitly by a component.
type Variant string

// DefaultVariant selects no variant subtree.
const DefaultVariant Variant = ""

// ByTheme maps a theme to its sub-descriptor.
type ByTheme map[theme.Theme]Descriptor

// ByVariant maps a variant to its sub-descriptor.
type ByVariant map[Variant]Descriptor

// Branch is a descriptor whose output depends on the active theme and the
// selected variant. Initial is a legacy alias of Common, used only when
// Common is empty.
type Branch struct {
	Common   string
	Initial  string
	Themes   ByTheme
	Variants ByVariant
}

func (Branch) isDescriptor() {}

func (b Branch) common() string {
	if b.Common != "" {
		return b.Common
	}
	return b.Initial
}

// Themed is shorthand for a branch with one terminal class per theme.
func Themed(common, ios, material string) Branch {
	themes := ByTheme{}
	if ios != "" {
		themes[theme.IOS] = Class(ios)
	}
	if material != "" {
		themes[theme.Material] = Class(material)
	}
	return Branch{Common: common, Themes: themes}
}

// Tree maps structural keys (base, media, inner, ...) to descriptors. A tree
// is built per render and not modified afterwards.
type Tree map[string]Descriptor

// RootKey is the structural key that receives caller overrides.
const RootKey = "base"

// variants collects every variant name declared anywhere below d.
func variants(d Descriptor, into map[Variant]struct{}) {
	var b Branch
	switch node := d.(type) {
	case Branch:
		b = node
	case *Branch:
		if node == nil {
			return
		}
		b = *node
	default:
		return
	}
	for name, sub := range b.Variants {
		into[name] = struct{}{}
		variants(sub, into)
	}
	for _, sub := range b.Themes {
		variants(sub, into)
	}
}
