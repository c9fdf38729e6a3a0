// Package docxtag renders price tags into a docx document as
// fixed-layout tables, computing all dimensions in twips.
package docxtag

import (
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/ofc/sharedTypes"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/kvels/pricetag-go/pkg/pricetag/layout"
	"github.com/kvels/pricetag-go/pkg/pricetag/models"
	"github.com/kvels/pricetag-go/pkg/pricetag/render"
)

// Renderer builds the docx document. The format paginates by content
// flow, so no header/footer band reservations apply and no explicit
// page-gap handling is needed; only per-tag cell dimensions matter.
type Renderer struct {
	doc  *document.Document
	tpl  *models.TagTemplate
	cfg  models.LayoutConfig
	grid layout.Grid

	// lineTwips holds the scaled per-line heights of the eleven tag
	// lines, proportional to the configured tag height.
	lineTwips []int
}

// baseLineHeightsPt mirrors the spreadsheet backend's nominal row set so
// both outputs keep the same relative line proportions.
var baseLineHeightsPt = []float64{14, 18, 12, 11, 11, 11, 11, 16, 11, 10, 10}

// New creates a renderer for the template, snapshotting its geometry.
func New(tpl *models.TagTemplate) *Renderer {
	cfg := tpl.Layout()
	grid := layout.Fit(cfg, layout.PageWidthMM, layout.PageHeightMM, layout.Bands{})

	heights := layout.Scale(baseLineHeightsPt, layout.MMToPoints(cfg.TagHeightMM))
	lineTwips := make([]int, len(heights))
	for i, h := range heights {
		lineTwips[i] = int(h * 20) // 20 twips per point
	}

	return &Renderer{
		doc:       document.New(),
		tpl:       tpl,
		cfg:       cfg,
		grid:      grid,
		lineTwips: lineTwips,
	}
}

// Grid exposes the computed tag grid.
func (r *Renderer) Grid() layout.Grid {
	return r.grid
}

// Document exposes the underlying document.
func (r *Renderer) Document() *document.Document {
	return r.doc
}

// Save writes the document to disk.
func (r *Renderer) Save(path string) error {
	return r.doc.SaveToFile(path)
}

// Render expands the records by quantity and writes one fixed-layout
// table per tag row, with spacer cells carrying the horizontal spacing
// and a small spacer paragraph carrying the vertical spacing.
func (r *Renderer) Render(records []models.ProductRecord) error {
	tags := layout.Flatten(records)
	if len(tags) == 0 {
		return nil
	}

	r.setupPage()

	bandCount := (len(tags) + r.grid.Columns - 1) / r.grid.Columns
	for band := 0; band < bandCount; band++ {
		table := r.newBandTable()
		row := table.AddRow()
		row.Properties().SetHeight(
			measurement.Distance(layout.MMToTwips(r.cfg.TagHeightMM))*measurement.Twips,
			wml.ST_HeightRuleExact,
		)
		for col := 0; col < r.grid.Columns; col++ {
			idx := band*r.grid.Columns + col
			if col > 0 {
				r.addSpacerCell(row)
			}
			if idx < len(tags) {
				r.writeTagCell(row, render.BuildContent(tags[idx], r.tpl))
			} else {
				r.addBlankCell(row)
			}
		}
		r.addBandSpacer()
	}
	return nil
}

// setupPage applies A4 page geometry and the template margins. The
// section type has no page-size setter in this unioffice line; the size
// goes through the raw property.
func (r *Renderer) setupPage() {
	sect := r.doc.BodySection()

	w := uint64(layout.MMToTwips(layout.PageWidthMM))
	h := uint64(layout.MMToTwips(layout.PageHeightMM))
	pgSz := wml.NewCT_PageSz()
	pgSz.WAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: &w}
	pgSz.HAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: &h}
	pgSz.OrientAttr = wml.ST_PageOrientationPortrait
	sect.X().PgSz = pgSz

	sect.SetPageMargins(
		measurement.Distance(r.cfg.MarginTopMM)*measurement.Millimeter,
		measurement.Distance(r.cfg.MarginRightMM)*measurement.Millimeter,
		measurement.Distance(r.cfg.MarginBottomMM)*measurement.Millimeter,
		measurement.Distance(r.cfg.MarginLeftMM)*measurement.Millimeter,
		0, 0, 0,
	)
}

// newBandTable creates the fixed-layout table holding one row of tags.
func (r *Renderer) newBandTable() document.Table {
	table := r.doc.AddTable()
	cols := r.grid.Columns
	totalMM := float64(cols)*r.cfg.TagWidthMM + float64(cols-1)*r.cfg.SpacingHMM
	table.Properties().SetWidth(measurement.Distance(layout.MMToTwips(totalMM)) * measurement.Twips)

	// Fixed layout keeps the twips cell widths authoritative.
	tblPr := table.Properties().X()
	tblPr.TblLayout = wml.NewCT_TblLayoutType()
	tblPr.TblLayout.TypeAttr = wml.ST_TblLayoutTypeFixed
	return table
}

// writeTagCell writes the eleven tag lines into one bordered cell.
func (r *Renderer) writeTagCell(row document.Row, c render.Content) {
	cell := row.AddCell()
	cell.Properties().SetWidth(measurement.Distance(layout.MMToTwips(r.cfg.TagWidthMM)) * measurement.Twips)
	cell.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 1*measurement.Point)

	r.addLine(cell, 0, models.FieldHeader, c.Header)
	r.addLine(cell, 1, models.FieldBrand, c.Brand)
	r.addLine(cell, 2, models.FieldCategory, c.Category)
	r.addLine(cell, 3, models.FieldCountry, c.Country)
	r.addLine(cell, 4, models.FieldPlace, c.Place)
	r.addSplitLine(cell, 5, models.FieldMaterialLabel, c.MaterialLabel, models.FieldMaterialValue, c.Material)
	r.addSplitLine(cell, 6, models.FieldArticleLabel, c.ArticleLabel, models.FieldArticleValue, c.Article)
	r.addPriceLine(cell, 7, c)
	r.addSplitLine(cell, 8, models.FieldSupplierLabel, c.SupplierLabel, models.FieldSupplierValue, c.Supplier)
	r.addLine(cell, 9, models.FieldAddressLine1, c.Address1)
	r.addLine(cell, 10, models.FieldAddressLine2, c.Address2)
}

// addLine writes one single-style tag line.
func (r *Renderer) addLine(cell document.Cell, line int, f models.Field, text string) {
	para := r.newLine(cell, line, r.tpl.StyleFor(f).Align)
	if text == "" {
		return
	}
	r.addRun(para, r.tpl.StyleFor(f), text, false)
}

// addSplitLine writes a label/value line as two runs separated by one
// space, each carrying its own field style.
func (r *Renderer) addSplitLine(cell document.Cell, line int, lf models.Field, label string, vf models.Field, value string) {
	para := r.newLine(cell, line, r.tpl.StyleFor(lf).Align)
	if label != "" {
		r.addRun(para, r.tpl.StyleFor(lf), label, false)
	}
	if value != "" {
		r.addRun(para, r.tpl.StyleFor(vf), " "+value, false)
	}
}

// addPriceLine writes the price line with the same discount branching as
// the spreadsheet backend: struck-through old price ahead of the new
// value, or the plain caption ahead of the price.
func (r *Renderer) addPriceLine(cell document.Cell, line int, c render.Content) {
	para := r.newLine(cell, line, r.tpl.StyleFor(models.FieldPriceLabel).Align)
	if c.Discount {
		r.addRun(para, r.tpl.StyleFor(models.FieldPriceLabel), c.CrossedPrice, true)
	} else if c.PriceLabel != "" {
		r.addRun(para, r.tpl.StyleFor(models.FieldPriceLabel), c.PriceLabel, false)
	}
	r.addRun(para, r.tpl.StyleFor(models.FieldPriceValue), " "+c.PriceValue, false)
}

// newLine starts one tag line paragraph with exact line height and no
// inter-paragraph spacing.
func (r *Renderer) newLine(cell document.Cell, line int, align models.Alignment) document.Paragraph {
	para := cell.AddParagraph()
	para.Properties().SetAlignment(justification(align))
	spacing := para.Properties().Spacing()
	spacing.SetBefore(0)
	spacing.SetAfter(0)
	if line >= 0 && line < len(r.lineTwips) {
		spacing.SetLineSpacing(measurement.Distance(r.lineTwips[line])*measurement.Twips, wml.ST_LineSpacingRuleExact)
	}
	return para
}

// addRun appends one styled text run.
func (r *Renderer) addRun(para document.Paragraph, st models.TextStyle, text string, strike bool) {
	run := para.AddRun()
	run.AddText(text)
	rp := run.Properties()
	rp.SetFontFamily(st.FontFamily)
	rp.SetSize(measurement.Distance(st.SizePt) * measurement.Point)
	if st.Bold {
		rp.SetBold(true)
	}
	if st.Italic {
		rp.SetItalic(true)
	}
	if st.Strike || strike {
		// RunProperties has no strike setter in this unioffice line;
		// toggle the raw property.
		rp.X().Strike = wml.NewCT_OnOff()
	}
}

// addSpacerCell writes the unbordered cell carrying the horizontal
// spacing between neighboring tags.
func (r *Renderer) addSpacerCell(row document.Row) {
	cell := row.AddCell()
	cell.Properties().SetWidth(measurement.Distance(layout.MMToTwips(r.cfg.SpacingHMM)) * measurement.Twips)
	cell.AddParagraph()
}

// addBlankCell fills an unused slot of a partially populated band.
func (r *Renderer) addBlankCell(row document.Row) {
	cell := row.AddCell()
	cell.Properties().SetWidth(measurement.Distance(layout.MMToTwips(r.cfg.TagWidthMM)) * measurement.Twips)
	cell.AddParagraph()
}

// addBandSpacer writes the small paragraph carrying the vertical spacing
// between tag rows.
func (r *Renderer) addBandSpacer() {
	para := r.doc.AddParagraph()
	spacing := para.Properties().Spacing()
	spacing.SetBefore(0)
	spacing.SetAfter(0)
	spacing.SetLineSpacing(measurement.Distance(layout.MMToTwips(r.cfg.SpacingVMM))*measurement.Twips, wml.ST_LineSpacingRuleExact)
}

// justification maps a template alignment to the docx enum.
func justification(a models.Alignment) wml.ST_Jc {
	switch a {
	case models.AlignCenter:
		return wml.ST_JcCenter
	case models.AlignRight:
		return wml.ST_JcRight
	default:
		return wml.ST_JcLeft
	}
}
