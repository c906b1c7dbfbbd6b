package capture

// Default lists the hooks to try on this platform, best first.
func Default() []Hook {
	return []Hook{NewEvdevHook(), NewGoHook()}
}
