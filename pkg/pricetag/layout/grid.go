package layout

import (
	"math"

	"github.com/kvels/pricetag-go/pkg/pricetag/models"
)

// Bands describes backend-specific page reservations applied on top of
// the template margins. The spreadsheet backend reserves fixed header and
// footer bands for the native page chrome; the word-processor backend
// paginates by content flow and uses zero bands.
type Bands struct {
	// EdgeMinMM is the minimum effective left/right margin.
	EdgeMinMM float64
	// HeaderMM is added to the effective top margin.
	HeaderMM float64
	// FooterMM is added to the effective bottom margin.
	FooterMM float64
	// TopBlankMM is subtracted from the usable height.
	TopBlankMM float64
}

// Grid is the computed tag grid for one page geometry.
type Grid struct {
	// Columns is the number of tag columns per page, at least 1.
	Columns int
	// Rows is the number of tag rows per page, at least 1.
	Rows int
	// AvailWidthMM is the usable width after margins and bands.
	AvailWidthMM float64
	// AvailHeightMM is the usable height after margins and bands.
	AvailHeightMM float64

	cfg models.LayoutConfig
}

// Fit computes how many tag columns and rows fit on the page.
// columns = floor((availWidth + hSpacing) / (tagWidth + hSpacing)),
// minimum 1; rows analogously for the height.
func Fit(cfg models.LayoutConfig, pageWidthMM, pageHeightMM float64, bands Bands) Grid {
	left := math.Max(cfg.MarginLeftMM, bands.EdgeMinMM)
	right := math.Max(cfg.MarginRightMM, bands.EdgeMinMM)
	top := cfg.MarginTopMM + bands.HeaderMM
	bottom := cfg.MarginBottomMM + bands.FooterMM

	availW := pageWidthMM - left - right
	availH := pageHeightMM - top - bottom - bands.TopBlankMM

	return Grid{
		Columns:       fit(availW, cfg.TagWidthMM, cfg.SpacingHMM),
		Rows:          fit(availH, cfg.TagHeightMM, cfg.SpacingVMM),
		AvailWidthMM:  availW,
		AvailHeightMM: availH,
		cfg:           cfg,
	}
}

func fit(avail, size, spacing float64) int {
	if size <= 0 {
		return 1
	}
	n := int(math.Floor((avail + spacing) / (size + spacing)))
	if n < 1 {
		return 1
	}
	return n
}

// PerPage returns the number of tag slots on one page.
func (g Grid) PerPage() int {
	return g.Columns * g.Rows
}

// Place maps a zero-based linear tag index to its page and intra-page
// row and column.
func (g Grid) Place(idx int) (page, row, col int) {
	perPage := g.PerPage()
	page = idx / perPage
	rest := idx % perPage
	return page, rest / g.Columns, rest % g.Columns
}

// Pages returns the number of pages needed for count tag instances.
func (g Grid) Pages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + g.PerPage() - 1) / g.PerPage()
}

// LeftoverHeightMM returns the unused vertical space below the last tag
// row of a full page. Used by the spreadsheet backend to size its
// end-of-page gap row.
func (g Grid) LeftoverHeightMM() float64 {
	used := float64(g.Rows)*g.cfg.TagHeightMM + float64(g.Rows-1)*g.cfg.SpacingVMM
	left := g.AvailHeightMM - used
	if left < 0 {
		return 0
	}
	return left
}

// Scale proportionally rescales base values so that their sum equals
// total. It preserves the relative proportions of the base set for any
// configured overall size.
func Scale(base []float64, total float64) []float64 {
	var sum float64
	for _, v := range base {
		sum += v
	}
	out := make([]float64, len(base))
	if sum <= 0 {
		return out
	}
	for i, v := range base {
		out[i] = v * total / sum
	}
	return out
}

// Flatten expands records by quantity into a flat ordered sequence of tag
// instances. The grid has no concept of quantity, only of this sequence.
func Flatten(records []models.ProductRecord) []*models.ProductRecord {
	var tags []*models.ProductRecord
	for i := range records {
		r := &records[i]
		for k := 0; k < r.Quantity; k++ {
			tags = append(tags, r)
		}
	}
	return tags
}
