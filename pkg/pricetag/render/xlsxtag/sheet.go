package xlsxtag

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/kvels/pricetag-go/pkg/pricetag/layout"
)

// a4PaperSize is the xlsx paper size code for A4.
const a4PaperSize = 9

// mmToColWidth converts millimeters to the xlsx column width unit
// (widths of the default font digit): pixels at 96 DPI, then the usual
// (px-5)/7 approximation.
func mmToColWidth(mm float64) float64 {
	px := mm * 96.0 / layout.MMPerInch
	w := (px - 5) / 7
	if w < 0.5 {
		return 0.5
	}
	return w
}

// setupPage applies the page size and the effective print margins. The
// left/right margins are clamped to the minimum printable edge; the top
// and bottom margins absorb the header and footer bands.
func (r *Renderer) setupPage() error {
	size := a4PaperSize
	orientation := "portrait"
	if err := r.f.SetPageLayout(SheetName, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}); err != nil {
		return err
	}

	left := layout.MMToInches(math.Max(r.cfg.MarginLeftMM, edgeMinMarginMM))
	right := layout.MMToInches(math.Max(r.cfg.MarginRightMM, edgeMinMarginMM))
	top := layout.MMToInches(r.cfg.MarginTopMM + headerBandMM)
	bottom := layout.MMToInches(r.cfg.MarginBottomMM + footerBandMM)
	header := layout.MMToInches(headerBandMM)
	footer := layout.MMToInches(footerBandMM)

	return r.f.SetPageMargins(SheetName, &excelize.PageLayoutMarginsOptions{
		Left:   &left,
		Right:  &right,
		Top:    &top,
		Bottom: &bottom,
		Header: &header,
		Footer: &footer,
	})
}

// setColumnWidths sizes the four content columns of every tag column
// block by proportional scaling, with a spacer column between blocks.
func (r *Renderer) setColumnWidths() error {
	widths := layout.Scale(baseColWidthsMM, r.cfg.TagWidthMM)
	for col := 0; col < r.grid.Columns; col++ {
		start := col*blockCols + 1
		for i, w := range widths {
			if err := r.setColWidth(start+i, mmToColWidth(w)); err != nil {
				return err
			}
		}
		if col < r.grid.Columns-1 {
			if err := r.setColWidth(start+tagCols, mmToColWidth(r.cfg.SpacingHMM)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) setColWidth(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return r.f.SetColWidth(SheetName, name, name, width)
}

// setRowHeights sizes the eleven content rows of every tag row by
// proportional scaling, and the inter-tag spacer rows by the configured
// vertical spacing. The final spacer row of each page is sized by
// finishPages instead.
func (r *Renderer) setRowHeights(pages int) error {
	heights := layout.Scale(baseRowHeightsPt, layout.MMToPoints(r.cfg.TagHeightMM))
	spacerPt := layout.MMToPoints(r.cfg.SpacingVMM)

	for p := 0; p < pages; p++ {
		for tr := 0; tr < r.grid.Rows; tr++ {
			start := p*r.pageRows() + tr*blockRows + 1
			for i, h := range heights {
				if err := r.f.SetRowHeight(SheetName, start+i, h); err != nil {
					return err
				}
			}
			if tr < r.grid.Rows-1 {
				if err := r.f.SetRowHeight(SheetName, start+tagRows, spacerPt); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// finishPages gives the row following each page's tag block an enlarged
// height equal to the leftover vertical space plus a safety pad, so the
// printed page break lands on the physical page boundary, and inserts
// the explicit break between pages.
func (r *Renderer) finishPages(pages int) error {
	gapPt := layout.MMToPoints(r.grid.LeftoverHeightMM()) + gapPadPt
	if gapPt < gapFloorPt {
		gapPt = gapFloorPt
	}

	for p := 0; p < pages; p++ {
		gapRow := (p + 1) * r.pageRows()
		if err := r.f.SetRowHeight(SheetName, gapRow, gapPt); err != nil {
			return err
		}
		if p < pages-1 {
			cell, err := excelize.CoordinatesToCellName(1, gapRow+1)
			if err != nil {
				return err
			}
			if err := r.f.InsertPageBreak(SheetName, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

// setPrintArea marks one print area spanning the full written extent.
func (r *Renderer) setPrintArea(pages int) error {
	lastRow := pages * r.pageRows()
	lastCol := r.grid.Columns*blockCols - 1
	colName, err := excelize.ColumnNumberToName(lastCol)
	if err != nil {
		return err
	}
	return r.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!$A$1:$%s$%d", SheetName, colName, lastRow),
		Scope:    SheetName,
	})
}
