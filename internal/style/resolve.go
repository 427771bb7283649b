package style

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/themekit/internal/classes"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// ResolveDescriptor flattens d for the active theme and variant. It fails
// with an UnknownThemeError when active is not a supported theme.
func ResolveDescriptor(d Descriptor, active theme.Theme, variant Variant) (string, error) {
	if err := active.Validate(); err != nil {
		return "", err
	}
	return resolve(d, active, variant), nil
}

func resolve(d Descriptor, active theme.Theme, variant Variant) string {
	switch node := d.(type) {
	case nil:
		return ""
	case Class:
		return string(node)
	case Branch:
		themed := ""
		if sub, ok := node.Themes[active]; ok {
			themed = resolve(sub, active, variant)
		}
		selected := ""
		if variant != DefaultVariant {
			if sub, ok := node.Variants[variant]; ok {
				selected = resolve(sub, active, variant)
			}
		}
		return classes.Join(node.common(), themed, selected)
	case *Branch:
		if node == nil {
			return ""
		}
		return resolve(*node, active, variant)
	default:
		return ""
	}
}

func resolveEntry(d Descriptor, active theme.Theme) Entry {
	entry := Entry{Default: resolve(d, active, DefaultVariant)}

	names := map[Variant]struct{}{}
	variants(d, names)
	if len(names) == 0 {
		return entry
	}
	entry.Variants = make(map[Variant]string, len(names))
	for name := range names {
		entry.Variants[name] = resolve(d, active, name)
	}
	return entry
}

// Resolve flattens every key of tree for the active theme and appends
// override to the RootKey entry. Nothing is returned on an unknown theme.
func Resolve(tree Tree, active theme.Theme, override string) (ClassSet, error) {
	if err := active.Validate(); err != nil {
		return ClassSet{}, err
	}

	entries := make(map[string]Entry, len(tree))
	for key, d := range tree {
		entries[key] = resolveEntry(d, active)
	}
	set := ClassSet{entries: entries}
	if override == "" {
		return set, nil
	}
	return set.WithOverride(RootKey, override), nil
}

// ResolveConcurrent is Resolve with every key resolved on its own goroutine.
// Keys share no state, so the result equals Resolve's.
func ResolveConcurrent(ctx context.Context, tree Tree, active theme.Theme, override string) (ClassSet, error) {
	if err := active.Validate(); err != nil {
		return ClassSet{}, err
	}

	keys := make([]string, 0, len(tree))
	for key := range tree {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	resolved := make([]Entry, len(keys))
	group, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resolved[i] = resolveEntry(tree[key], active)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return ClassSet{}, err
	}

	entries := make(map[string]Entry, len(keys))
	for i, key := range keys {
		entries[key] = resolved[i]
	}
	set := ClassSet{entries: entries}
	if override == "" {
		return set, nil
	}
	return set.WithOverride(RootKey, override), nil
}
