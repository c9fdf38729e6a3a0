package xlsxtag

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/kvels/pricetag-go/pkg/pricetag/models"
)

func testRecord() models.ProductRecord {
	return models.ProductRecord{
		Brand:    "Nike",
		Price:    decimal.NewFromInt(1200),
		Quantity: 1,
		Category: "Обувь",
		Gender:   "жен",
		Country:  "Вьетнам",
		Material: "кожа",
		Article:  "NK-100",
		Supplier: "ООО Ромашка",
		Address:  "Москва, Тверская 1",
	}
}

func mustRender(t *testing.T, records []models.ProductRecord) *Renderer {
	t.Helper()
	r, err := New(models.DefaultTemplate())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	if err := r.Render(records); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return r
}

func cellValue(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(SheetName, cell)
	if err != nil {
		t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
	}
	return v
}

func TestRenderTagContent(t *testing.T) {
	r := mustRender(t, []models.ProductRecord{testRecord()})
	f := r.File()

	// One expected cell per tag line: header, brand, category with the
	// gender suffix, country, material and article splits, the plain
	// price caption and value, supplier split, and address.
	tests := []struct {
		cell     string
		expected string
	}{
		{"A1", "ООО «Торговый дом»"},
		{"A2", "Nike"},
		{"A3", "Обувь жен"},
		{"A4", "Страна: Вьетнам"},
		{"A6", "Материал:"},
		{"B6", "кожа"},
		{"A7", "Артикул:"},
		{"B7", "NK-100"},
		{"A8", "Цена:"},
		{"B8", "1200 ="},
		{"A9", "Поставщик:"},
		{"B9", "ООО Ромашка"},
		{"A10", "Москва, Тверская 1"},
	}
	for _, tt := range tests {
		if got := cellValue(t, f, tt.cell); got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}

func TestRenderDiscountBranch(t *testing.T) {
	rec := testRecord()
	rec.Price = decimal.NewFromInt(1500)
	rec.Price2 = decimal.NewFromInt(1200)

	r := mustRender(t, []models.ProductRecord{rec})
	f := r.File()

	// Discount: the label cell carries the crossed-out old price, the
	// value cell the discounted price.
	if got := cellValue(t, f, "A8"); got != "1500" {
		t.Errorf("A8 = %q, expected %q", got, "1500")
	}
	if got := cellValue(t, f, "B8"); got != "1200 =" {
		t.Errorf("B8 = %q, expected %q", got, "1200 =")
	}
}

func TestRenderMergedRanges(t *testing.T) {
	r := mustRender(t, []models.ProductRecord{testRecord()})

	merges, err := r.File().GetMergeCells(SheetName)
	if err != nil {
		t.Fatalf("GetMergeCells failed: %v", err)
	}

	expected := map[string]bool{
		"A1:D1":   false, // header across the footprint
		"A2:D2":   false, // brand
		"B6:D6":   false, // material value
		"B8:D8":   false, // price value
		"A11:D11": false, // address line 2
	}
	for _, m := range merges {
		ref := m.GetStartAxis() + ":" + m.GetEndAxis()
		if _, ok := expected[ref]; ok {
			expected[ref] = true
		}
	}
	for ref, seen := range expected {
		if !seen {
			t.Errorf("expected merged range %s", ref)
		}
	}
}

func TestRenderQuantityExpansion(t *testing.T) {
	rec := testRecord()
	rec.Quantity = 2

	r := mustRender(t, []models.ProductRecord{rec})
	f := r.File()

	// Second instance lands in the next tag column block (5 columns
	// over: 4 content plus 1 spacer).
	if got := cellValue(t, f, "F2"); got != "Nike" {
		t.Errorf("F2 = %q, expected second tag instance", got)
	}
}

func TestRenderLeadingSpacesIndent(t *testing.T) {
	rec := testRecord()
	rec.Brand = "  Nike"

	r := mustRender(t, []models.ProductRecord{rec})

	// The filler run plus text run reproduce the full string.
	if got := cellValue(t, r.File(), "A2"); got != "  Nike" {
		t.Errorf("A2 = %q, expected leading spaces preserved", got)
	}
}

func TestRenderSaveAndReopen(t *testing.T) {
	r := mustRender(t, []models.ProductRecord{testRecord()})

	path := filepath.Join(t.TempDir(), "tags.xlsx")
	if err := r.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()

	if got := cellValue(t, f, "A2"); got != "Nike" {
		t.Errorf("reopened A2 = %q, expected %q", got, "Nike")
	}

	// The print area spans the written extent.
	found := false
	for _, dn := range f.GetDefinedName() {
		if dn.Name == "_xlnm.Print_Area" {
			found = true
		}
	}
	if !found {
		t.Error("expected a print area defined name")
	}
}

func TestGridUsesBands(t *testing.T) {
	r := mustRender(t, []models.ProductRecord{testRecord()})
	g := r.Grid()

	if g.Columns < 1 || g.Rows < 1 {
		t.Fatalf("grid = %dx%d", g.Columns, g.Rows)
	}

	// The band reservations shrink the usable height, so the sheet
	// backend can never fit more rows than the unbanded geometry.
	if g.AvailHeightMM >= 297 {
		t.Errorf("avail height = %f, expected reservations applied", g.AvailHeightMM)
	}
}
