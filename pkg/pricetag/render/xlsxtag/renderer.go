// Package xlsxtag renders price tags into an xlsx worksheet laid out on
// fixed A4 pages.
package xlsxtag

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kvels/pricetag-go/pkg/pricetag/layout"
	"github.com/kvels/pricetag-go/pkg/pricetag/models"
	"github.com/kvels/pricetag-go/pkg/pricetag/render"
)

// SheetName is the single worksheet written per run.
const SheetName = "Ценники"

// Tag footprint in native cells: every tag occupies a fixed 4-column by
// 11-row sub-grid, followed by one spacer column and one spacer row.
const (
	tagCols   = 4
	tagRows   = 11
	blockCols = tagCols + 1
	blockRows = tagRows + 1
)

// Page-band reservations of the spreadsheet backend. The native page
// header/footer bands and the minimum printable edge must be reproduced
// for visual parity with the printed layout.
const (
	edgeMinMarginMM = 5.0
	headerBandMM    = 7.5
	footerBandMM    = 7.5
	topBlankMM      = 2.0
)

// End-of-page gap row sizing: the computed leftover gets a small safety
// pad, with a floor when the leftover is unreasonably small.
const (
	gapPadPt   = 4.0
	gapFloorPt = 6.0
)

// baseRowHeightsPt is the nominal per-row height set. Scaled so their
// sum matches the configured tag height, preserving relative
// proportions of each content row.
var baseRowHeightsPt = []float64{14, 18, 12, 11, 11, 11, 11, 16, 11, 10, 10}

// baseColWidthsMM is the nominal width set of the four tag columns,
// scaled to the configured tag width the same way.
var baseColWidthsMM = []float64{18, 14, 10, 18}

// Renderer writes tags into a fresh workbook. Not safe for concurrent
// use; one renderer per generate call.
type Renderer struct {
	f      *excelize.File
	tpl    *models.TagTemplate
	cfg    models.LayoutConfig
	grid   layout.Grid
	styles map[styleKey]int
}

// New creates a renderer for the template, snapshotting its geometry.
func New(tpl *models.TagTemplate) (*Renderer, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, err
	}

	cfg := tpl.Layout()
	grid := layout.Fit(cfg, layout.PageWidthMM, layout.PageHeightMM, Bands())

	return &Renderer{
		f:      f,
		tpl:    tpl,
		cfg:    cfg,
		grid:   grid,
		styles: make(map[styleKey]int),
	}, nil
}

// Bands returns the page reservations of the spreadsheet backend.
func Bands() layout.Bands {
	return layout.Bands{
		EdgeMinMM:  edgeMinMarginMM,
		HeaderMM:   headerBandMM,
		FooterMM:   footerBandMM,
		TopBlankMM: topBlankMM,
	}
}

// Grid exposes the computed tag grid.
func (r *Renderer) Grid() layout.Grid {
	return r.grid
}

// File exposes the underlying workbook.
func (r *Renderer) File() *excelize.File {
	return r.f
}

// Close releases the underlying workbook.
func (r *Renderer) Close() error {
	return r.f.Close()
}

// Save writes the workbook to disk.
func (r *Renderer) Save(path string) error {
	return r.f.SaveAs(path)
}

// Render expands the records by quantity, places every tag instance on
// the grid, and writes the full document structure: tag cells, row and
// column geometry, end-of-page gaps, page breaks, and the print area.
func (r *Renderer) Render(records []models.ProductRecord) error {
	tags := layout.Flatten(records)
	if len(tags) == 0 {
		return nil
	}

	if err := r.setupPage(); err != nil {
		return err
	}
	if err := r.setColumnWidths(); err != nil {
		return err
	}

	for i, rec := range tags {
		pl := r.placement(i)
		c := render.BuildContent(rec, r.tpl)
		if err := r.writeTag(pl, c); err != nil {
			return err
		}
	}

	pages := r.grid.Pages(len(tags))
	if err := r.setRowHeights(pages); err != nil {
		return err
	}
	if err := r.finishPages(pages); err != nil {
		return err
	}
	return r.setPrintArea(pages)
}

// pageRows is the native row extent of one page block, spacer rows
// included.
func (r *Renderer) pageRows() int {
	return r.grid.Rows * blockRows
}

// placement maps a zero-based linear tag index to its native grid
// position.
func (r *Renderer) placement(idx int) models.GridPlacement {
	page, row, col := r.grid.Place(idx)
	return models.GridPlacement{
		Page:     page,
		Row:      row,
		Col:      col,
		StartRow: page*r.pageRows() + row*blockRows + 1,
		StartCol: col*blockCols + 1,
		RowSpan:  tagRows,
		ColSpan:  tagCols,
	}
}

// writeTag writes the fourteen semantic fields of one tag into its
// 4x11 footprint.
func (r *Renderer) writeTag(pl models.GridPlacement, c render.Content) error {
	row, col := pl.StartRow, pl.StartCol

	// Row 0: company header, thin box with emphasized left/right/top.
	if err := r.putMerged(row, col, models.FieldHeader, c.Header, edgeLeft|edgeRight|edgeTop, true); err != nil {
		return err
	}
	// Rows 1-4: brand, category, country, place across the full width.
	if err := r.putMerged(row+1, col, models.FieldBrand, c.Brand, edgeLeft|edgeRight, false); err != nil {
		return err
	}
	if err := r.putMerged(row+2, col, models.FieldCategory, c.Category, edgeLeft|edgeRight, false); err != nil {
		return err
	}
	if err := r.putMerged(row+3, col, models.FieldCountry, c.Country, edgeLeft|edgeRight, false); err != nil {
		return err
	}
	if err := r.putMerged(row+4, col, models.FieldPlace, c.Place, edgeLeft|edgeRight, false); err != nil {
		return err
	}
	// Rows 5-6: material and article label/value splits.
	if err := r.putSplit(row+5, col, models.FieldMaterialLabel, c.MaterialLabel, models.FieldMaterialValue, c.Material, false); err != nil {
		return err
	}
	if err := r.putSplit(row+6, col, models.FieldArticleLabel, c.ArticleLabel, models.FieldArticleValue, c.Article, false); err != nil {
		return err
	}
	// Row 7: price, with the discount treatment when it applies.
	if err := r.putPriceRow(row+7, col, c); err != nil {
		return err
	}
	// Row 8: supplier, top border separating it from the price.
	if err := r.putSplit(row+8, col, models.FieldSupplierLabel, c.SupplierLabel, models.FieldSupplierValue, c.Supplier, true); err != nil {
		return err
	}
	// Rows 9-10: the two address lines; line 2 closes the border box.
	if err := r.putMerged(row+9, col, models.FieldAddressLine1, c.Address1, edgeLeft|edgeRight, false); err != nil {
		return err
	}
	return r.putMerged(row+10, col, models.FieldAddressLine2, c.Address2, edgeLeft|edgeRight|edgeBottom, false)
}

// putMerged writes one full-width row: merge across the footprint, style
// each cell with its share of the outer edges, then set the text.
func (r *Renderer) putMerged(row, startCol int, f models.Field, text string, edges uint8, thinBox bool) error {
	if err := r.mergeRow(row, startCol, tagCols); err != nil {
		return err
	}
	indent, rest := render.SplitIndent(text)
	for i := 0; i < tagCols; i++ {
		k := styleKey{field: f, edges: cellEdges(edges, i, tagCols), thinBox: thinBox}
		if i == 0 {
			k.indent = indent
		}
		if err := r.applyStyle(row, startCol+i, k); err != nil {
			return err
		}
	}
	return r.setText(row, startCol, f, indent, rest)
}

// putSplit writes a label/value row: a narrow label cell in the first
// column and the value merged across the rest.
func (r *Renderer) putSplit(row, startCol int, lf models.Field, label string, vf models.Field, value string, thinTop bool) error {
	if err := r.mergeRow(row, startCol+1, tagCols-1); err != nil {
		return err
	}
	if err := r.applyStyle(row, startCol, styleKey{field: lf, edges: edgeLeft, thinTop: thinTop}); err != nil {
		return err
	}
	for i := 1; i < tagCols; i++ {
		k := styleKey{field: vf, thinTop: thinTop}
		if i == tagCols-1 {
			k.edges = edgeRight
		}
		if err := r.applyStyle(row, startCol+i, k); err != nil {
			return err
		}
	}
	if err := r.setText(row, startCol, lf, 0, label); err != nil {
		return err
	}
	indent, rest := render.SplitIndent(value)
	return r.setText(row, startCol+1, vf, indent, rest)
}

// putPriceRow writes the price row. Without a discount the label cell
// carries the fixed caption with no indent; with a discount it carries
// the old price struck through with the diagonal-slash decoration.
func (r *Renderer) putPriceRow(row, startCol int, c render.Content) error {
	if err := r.mergeRow(row, startCol+1, tagCols-1); err != nil {
		return err
	}

	labelKey := styleKey{field: models.FieldPriceLabel, edges: edgeLeft}
	labelText := c.PriceLabel
	if c.Discount {
		labelKey.strike = true
		labelKey.diagonal = true
		labelText = c.CrossedPrice
	}
	if err := r.applyStyle(row, startCol, labelKey); err != nil {
		return err
	}

	for i := 1; i < tagCols; i++ {
		k := styleKey{field: models.FieldPriceValue}
		if i == tagCols-1 {
			k.edges = edgeRight
		}
		if err := r.applyStyle(row, startCol+i, k); err != nil {
			return err
		}
	}

	if err := r.setText(row, startCol, models.FieldPriceLabel, 0, labelText); err != nil {
		return err
	}
	return r.setText(row, startCol+1, models.FieldPriceValue, 0, c.PriceValue)
}

func (r *Renderer) mergeRow(row, startCol, span int) error {
	start, err := excelize.CoordinatesToCellName(startCol, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(startCol+span-1, row)
	if err != nil {
		return err
	}
	return r.f.MergeCell(SheetName, start, end)
}

func (r *Renderer) applyStyle(row, col int, k styleKey) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	id, err := r.styleID(k)
	if err != nil {
		return err
	}
	return r.f.SetCellStyle(SheetName, cell, cell, id)
}

// setText writes cell text. Leading spaces are rendered as a
// background-colored filler run ahead of the real text so the visual
// indentation survives the merge and alignment handling.
func (r *Renderer) setText(row, col int, f models.Field, indent int, text string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	st := r.tpl.StyleFor(f)
	if indent > 0 {
		runs := []excelize.RichTextRun{
			{
				Text: strings.Repeat(" ", indent),
				Font: &excelize.Font{Family: st.FontFamily, Size: float64(st.SizePt), Color: "FFFFFF"},
			},
			{
				Text: text,
				Font: &excelize.Font{
					Family: st.FontFamily,
					Size:   float64(st.SizePt),
					Bold:   st.Bold,
					Italic: st.Italic,
					Strike: st.Strike,
				},
			},
		}
		return r.f.SetCellRichText(SheetName, cell, runs)
	}
	return r.f.SetCellStr(SheetName, cell, text)
}

// cellEdges narrows a row-level edge mask to one cell of the span: left
// only on the first cell, right only on the last, top/bottom on all.
func cellEdges(edges uint8, i, span int) uint8 {
	e := edges & (edgeTop | edgeBottom)
	if i == 0 {
		e |= edges & edgeLeft
	}
	if i == span-1 {
		e |= edges & edgeRight
	}
	return e
}
