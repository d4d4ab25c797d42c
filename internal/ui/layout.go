package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which panels stack vertically.
	LayoutCompactWidth = 80
)

const (
	minPanelWidth    = 24
	progressBarWidth = 30
)
