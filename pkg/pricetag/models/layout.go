package models

// LayoutConfig is a backend-specific snapshot of the template geometry,
// copied at the point of apply. All values are millimeters.
type LayoutConfig struct {
	// TagWidthMM is the tag width.
	TagWidthMM float64
	// TagHeightMM is the tag height.
	TagHeightMM float64
	// MarginLeftMM is the left page margin.
	MarginLeftMM float64
	// MarginRightMM is the right page margin.
	MarginRightMM float64
	// MarginTopMM is the top page margin.
	MarginTopMM float64
	// MarginBottomMM is the bottom page margin.
	MarginBottomMM float64
	// SpacingHMM is the horizontal spacing between tags.
	SpacingHMM float64
	// SpacingVMM is the vertical spacing between tags.
	SpacingVMM float64
}

// GridPlacement locates one tag instance within the output coordinate
// system. Computed fresh for every tag; never persisted.
type GridPlacement struct {
	// Page is the zero-based page index.
	Page int
	// Row is the zero-based tag row within the page.
	Row int
	// Col is the zero-based tag column within the page.
	Col int
	// StartRow is the 1-based starting row in the backend's native grid.
	StartRow int
	// StartCol is the 1-based starting column in the backend's native grid.
	StartCol int
	// RowSpan is the number of native rows the tag occupies.
	RowSpan int
	// ColSpan is the number of native columns the tag occupies.
	ColSpan int
}
