package config

// Layout constants.
const (
	// MinColumnWidth is the narrowest a list column may render.
	MinColumnWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetTitleWidth is the preferred width for item titles.
	TargetTitleWidth = 40

	// IntensityBarWidth is the width of the intensity gauge in the mood log.
	IntensityBarWidth = 18
)

// Display limits.
const (
	// MaxVisibleRows limits list rows shown before scrolling.
	MaxVisibleRows = 15

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
