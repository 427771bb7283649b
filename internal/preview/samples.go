package preview

import (
	"github.com/alexisbeaulieu97/themekit/internal/components"
)

// SampleOptions controls the sample components shown by the preview and the
// gallery.
type SampleOptions struct {
	Menu        bool
	ActiveIndex int
	Strong      components.TitleStrength
	Progress    float64
}

// DefaultSampleOptions returns the options used by the preview command.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{ActiveIndex: -1, Progress: 0.4}
}

// SampleItems builds a settings-style list covering the list item variants.
func SampleItems(opts SampleOptions) []*components.ListItem {
	if opts.Menu {
		labels := []string{"Inbox", "Drafts", "Archive"}
		items := make([]*components.ListItem, 0, len(labels))
		for i, label := range labels {
			items = append(items, components.NewListItem(components.ListItemProps{
				Title:              label,
				MenuListItem:       true,
				MenuListItemActive: i == opts.ActiveIndex,
			}))
		}
		return items
	}

	return []*components.ListItem{
		components.NewListItem(components.ListItemProps{
			Title:      "Network",
			GroupTitle: true,
		}),
		components.NewListItem(components.ListItemProps{
			Title:       "Wi-Fi",
			After:       "Home",
			Media:       "◉",
			StrongTitle: opts.Strong,
		}).WithHref("#wifi"),
		components.NewListItem(components.ListItemProps{
			Title:       "Bluetooth",
			Subtitle:    "2 devices",
			Text:        "Headphones and keyboard are connected.",
			Media:       "◈",
			StrongTitle: opts.Strong,
		}),
		components.NewListItem(components.ListItemProps{
			Header:      "Account",
			Title:       "Notifications",
			Footer:      "Muted until tomorrow",
			Label:       true,
			StrongTitle: opts.Strong,
		}),
	}
}

// SampleProgressbar builds the bar shown under the sample list.
func SampleProgressbar(opts SampleOptions) *components.Progressbar {
	return components.NewProgressbar(components.ProgressbarProps{Progress: opts.Progress})
}

// Samples renders the sample list followed by the sample bar.
func (r *Renderer) Samples(opts SampleOptions, ctx components.RenderContext) (string, error) {
	list, err := r.List(SampleItems(opts), ctx)
	if err != nil {
		return "", err
	}
	bar, err := r.Progressbar(SampleProgressbar(opts), ctx)
	if err != nil {
		return "", err
	}
	return list + "\n\n" + bar, nil
}
