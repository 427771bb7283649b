package components

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func TestProgressbarIOS(t *testing.T) {
	t.Parallel()

	doc := render(t, NewProgressbar(ProgressbarProps{Progress: 0.25}), iosContext())

	assert.Equal(t, "block bg-opacity-30 overflow-hidden bg-black h-0.5 rounded", classOf(doc, "body > span"))
	inner := doc.Find("body > span > span")
	assert.Equal(t, "block bg-primary duration-200 w-full h-full", inner.AttrOr("class", ""))
	assert.Equal(t, "transform: translateX(-75%)", inner.AttrOr("style", ""))
}

func TestProgressbarMaterialWithColorsAndOverride(t *testing.T) {
	t.Parallel()

	bar := NewProgressbar(ProgressbarProps{
		Tag:    "div",
		Colors: style.Colors{"bg": "bg-red-500"},
	}).WithClassName("mt-2").WithProgress(0.3)
	doc := render(t, bar, materialContext())

	assert.Equal(t, "block bg-opacity-30 overflow-hidden bg-red-500 h-1 mt-2", classOf(doc, "body > div"))
	inner := doc.Find("body > div > span")
	assert.Equal(t, "block bg-red-500 duration-200 w-full h-full", inner.AttrOr("class", ""), "override only reaches the root")
	assert.Equal(t, "transform: translateX(-70%)", inner.AttrOr("style", ""))
}

func TestProgressbarEmptyColorClearsDefault(t *testing.T) {
	t.Parallel()

	bar := NewProgressbar(ProgressbarProps{Colors: style.Colors{"bg": ""}})
	doc := render(t, bar, materialContext())

	assert.Equal(t, "block bg-opacity-30 overflow-hidden h-1", classOf(doc, "body > span"))
	assert.Equal(t, "block duration-200 w-full h-full", doc.Find("body > span > span").AttrOr("class", ""))
}

func TestProgressbarClampsProgress(t *testing.T) {
	t.Parallel()

	cases := map[float64]float64{-1: 0, 0: 0, 0.5: 0.5, 2: 1}
	for input, want := range cases {
		assert.Equal(t, want, NewProgressbar(ProgressbarProps{Progress: input}).Progress())
	}

	doc := render(t, NewProgressbar(ProgressbarProps{Progress: 2}), iosContext())
	assert.Equal(t, "transform: translateX(-0%)", doc.Find("span > span").AttrOr("style", ""))
}

func TestProgressbarFlags(t *testing.T) {
	t.Parallel()

	set, err := NewProgressbar(ProgressbarProps{}).WithFlags(theme.Flags{IOS: true}).Classes(materialContext())
	require.NoError(t, err)
	assert.Equal(t, "block bg-opacity-30 overflow-hidden bg-black h-0.5 rounded", set.Get("base"))
}

func TestDefaultContextUsesProcessDefault(t *testing.T) {
	ctx := DefaultContext()
	assert.Equal(t, theme.Default(), ctx.Theme)
	assert.NotNil(t, ctx.Logger)

	ctx = ctx.WithTheme(theme.IOS).WithLogger(nil)
	assert.Equal(t, theme.IOS, ctx.Theme)
	assert.Nil(t, ctx.Logger)
}

func TestRenderLogsScopedResolution(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	ctx := materialContext().WithLogger(log)
	_, err = NewProgressbar(ProgressbarProps{}).WithFlags(theme.Flags{IOS: true}).Render(ctx)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "classes resolved", entry["message"])
	assert.Equal(t, "progressbar", entry[logger.FieldComponent])
	assert.Equal(t, "ios", entry[logger.FieldTheme])
}
