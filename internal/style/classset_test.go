package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func TestWithOverrideAppendsToEveryVariantOfKey(t *testing.T) {
	t.Parallel()

	tree := Tree{
		"base":  Branch{Common: "py-1", Variants: ByVariant{"menu": Class("rounded-lg")}},
		"inner": Class("pr-4"),
	}
	set, err := Resolve(tree, theme.Material, "")
	require.NoError(t, err)

	merged := set.WithOverride("base", "mt-2")
	assert.Equal(t, "py-1 mt-2", merged.Get("base"))
	assert.Equal(t, "py-1 rounded-lg mt-2", merged.Variant("base", "menu"))
	assert.Equal(t, "pr-4", merged.Get("inner"))

	assert.Equal(t, "py-1", set.Get("base"), "the original set is not modified")
}

func TestWithOverrideEmptyIsNoop(t *testing.T) {
	t.Parallel()

	set, err := Resolve(Tree{"base": Class("block")}, theme.IOS, "")
	require.NoError(t, err)
	assert.Equal(t, "block", set.WithOverride("base", "").Get("base"))
}

func TestExport(t *testing.T) {
	t.Parallel()

	tree := Tree{
		"base":  Class("block"),
		"title": Branch{Common: "flex-shrink", Variants: ByVariant{"strong": Class("font-semibold")}},
	}
	set, err := Resolve(tree, theme.IOS, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"base": "block",
		"title": map[string]string{
			"default": "flex-shrink",
			"strong":  "flex-shrink font-semibold",
		},
	}, set.Export())
}

func TestExportKeepsDefaultOverVariantNamedDefault(t *testing.T) {
	t.Parallel()

	tree := Tree{"title": Branch{Common: "x", Variants: ByVariant{"default": Class("y")}}}
	set, err := Resolve(tree, theme.IOS, "")
	require.NoError(t, err)

	assert.Equal(t, "x", set.Get("title"))
	assert.Equal(t, map[string]any{"title": map[string]string{ExportDefaultKey: "x"}}, set.Export())
}

func TestMergeColors(t *testing.T) {
	t.Parallel()

	defaults := Colors{"bg": "bg-primary", "text": "text-black"}
	merged := MergeColors(defaults, Colors{"bg": "bg-red-500", "text": "", "extra": "text-white"})

	assert.Equal(t, Colors{"bg": "bg-red-500", "text": "", "extra": "text-white"}, merged)
	assert.Equal(t, "bg-primary", defaults["bg"], "defaults are not modified")
	assert.Equal(t, defaults, MergeColors(defaults, nil))
}
