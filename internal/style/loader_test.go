package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	kiterrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

const listItemYAML = `
base: ""
media:
  common: mr-4 flex-shrink-0
  ios: py-2
  material: py-3 min-w-10
titleWrap: flex justify-between items-center
title:
  common: flex-shrink
  menuListItem:
    common: text-sm font-medium
  strong:
    ios: font-semibold
    material: font-medium
progress:
  initial: block
`

func TestParseTree(t *testing.T) {
	t.Parallel()

	tree, err := ParseTree("list.yaml", []byte(listItemYAML))
	require.NoError(t, err)
	require.Len(t, tree, 5)

	assert.Equal(t, Class(""), tree["base"])
	assert.Equal(t, Class("flex justify-between items-center"), tree["titleWrap"])

	media, ok := tree["media"].(Branch)
	require.True(t, ok)
	assert.Equal(t, "mr-4 flex-shrink-0", media.Common)
	assert.Equal(t, Class("py-2"), media.Themes[theme.IOS])
	assert.Empty(t, media.Variants)

	title, ok := tree["title"].(Branch)
	require.True(t, ok)
	assert.Contains(t, title.Variants, Variant("strong"))
	assert.Contains(t, title.Variants, Variant("menuListItem"))

	progress, ok := tree["progress"].(Branch)
	require.True(t, ok)
	assert.Equal(t, "block", progress.Initial)

	set, err := Resolve(tree, theme.Material, "")
	require.NoError(t, err)
	assert.Equal(t, "mr-4 flex-shrink-0 py-3 min-w-10", set.Get("media"))
	assert.Equal(t, "flex-shrink font-medium", set.Variant("title", "strong"))
	assert.Equal(t, "flex-shrink text-sm font-medium", set.Variant("title", "menuListItem"))
}

func TestParseTreeErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		line int
	}{
		{name: "empty", data: "", line: 0},
		{name: "not a mapping", data: "- a\n- b\n", line: 1},
		{name: "sequence descriptor", data: "base:\n  - a\n", line: 2},
		{name: "common not a string", data: "base:\n  common:\n    a: b\n", line: 3},
		{name: "duplicate key", data: "base: a\nbase: b\n", line: 2},
		{name: "invalid yaml", data: "base: [\n", line: 0},
		{name: "reserved variant name", data: "title:\n  common: x\n  default: y\n", line: 3},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseTree("tree.yaml", []byte(tc.data))
			var parseErr *kiterrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "tree.yaml", parseErr.Path)
			if tc.line > 0 {
				assert.Equal(t, tc.line, parseErr.Line)
			}
		})
	}
}

func TestLoadTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base:\n  common: block\n  ios: h-0.5\n  material: h-1\n"), 0o600))

	tree, err := LoadTree(path)
	require.NoError(t, err)

	set, err := Resolve(tree, theme.IOS, "")
	require.NoError(t, err)
	assert.Equal(t, "block h-0.5", set.Get("base"))

	_, err = LoadTree(filepath.Join(dir, "missing.yaml"))
	var parseErr *kiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
