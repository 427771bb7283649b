package style

import (
	"sort"

	"github.com/alexisbeaulieu97/themekit/internal/classes"
)

// Entry is the resolved output of one structural key: the default string
// plus one string per declared variant.
type Entry struct {
	Default  string
	Variants map[Variant]string
}

// ClassSet is the resolved output of one Tree.
type ClassSet struct {
	entries map[string]Entry
}

// Get returns the default classes for key.
func (s ClassSet) Get(key string) string {
	return s.entries[key].Default
}

// Variant returns the classes of key for variant, falling back to the
// default when the key declares no such variant.
func (s ClassSet) Variant(key string, variant Variant) string {
	entry := s.entries[key]
	if variant == DefaultVariant {
		return entry.Default
	}
	if value, ok := entry.Variants[variant]; ok {
		return value
	}
	return entry.Default
}

// Entry returns the full entry for key.
func (s ClassSet) Entry(key string) (Entry, bool) {
	entry, ok := s.entries[key]
	return entry, ok
}

// Keys returns the structural keys in sorted order.
func (s ClassSet) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of structural keys.
func (s ClassSet) Len() int {
	return len(s.entries)
}

// WithOverride returns a copy of s where className is appended after the
// default and every variant of key. Other keys are shared unchanged.
func (s ClassSet) WithOverride(key, className string) ClassSet {
	entries := make(map[string]Entry, len(s.entries))
	for k, entry := range s.entries {
		entries[k] = entry
	}

	entry := entries[key]
	merged := Entry{Default: classes.Join(entry.Default, className)}
	if len(entry.Variants) > 0 {
		merged.Variants = make(map[Variant]string, len(entry.Variants))
		for name, value := range entry.Variants {
			merged.Variants[name] = classes.Join(value, className)
		}
	}
	entries[key] = merged
	return ClassSet{entries: entries}
}

// ExportDefaultKey holds the default string of a key with variants in Export.
// A variant of that name cannot be exported.
const ExportDefaultKey = "default"

// Export returns a plain representation for encoding: keys without variants
// map to their string, keys with variants map to {"default": ..., variant: ...}.
func (s ClassSet) Export() map[string]any {
	out := make(map[string]any, len(s.entries))
	for key, entry := range s.entries {
		if len(entry.Variants) == 0 {
			out[key] = entry.Default
			continue
		}
		nested := make(map[string]string, len(entry.Variants)+1)
		for name, value := range entry.Variants {
			nested[string(name)] = value
		}
		nested[ExportDefaultKey] = entry.Default
		out[key] = nested
	}
	return out
}
