package style

// Colors maps semantic colour tokens (bg, text, ...) to class strings.
type Colors map[string]string

// MergeColors returns defaults overlaid with overrides. A present override
// wins even when empty.
func MergeColors(defaults, overrides Colors) Colors {
	merged := make(Colors, len(defaults)+len(overrides))
	for token, class := range defaults {
		merged[token] = class
	}
	for token, class := range overrides {
		merged[token] = class
	}
	return merged
}
