package config

// Merge applies project-wide defaults to a window list.
//
// Windows without a start script inherit defaults.Start; explicit values are
// never overwritten. Order is preserved since it determines the window index
// in the session. The input slice is not modified.
//
// Parameters:
//   - defaults: Project-wide defaults, may be nil
//   - windows: Declared windows in layout order
//
// Returns:
//   - []WindowSpec: A new slice with defaults applied
func Merge(defaults *LayoutDefaults, windows []WindowSpec) []WindowSpec {
	merged := make([]WindowSpec, len(windows))
	copy(merged, windows)
	if defaults == nil || defaults.Start == "" {
		return merged
	}
	for i := range merged {
		if merged[i].Start == "" {
			merged[i].Start = defaults.Start
		}
	}
	return merged
}
