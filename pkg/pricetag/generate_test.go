package pricetag

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/unidoc/unioffice/document"
	"github.com/xuri/excelize/v2"

	"github.com/kvels/pricetag-go/pkg/pricetag/render/xlsxtag"
)

// writeInputWorkbook builds a minimal inventory workbook in dir and
// returns its path.
func writeInputWorkbook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows := [][]interface{}{
		{"Прайс-лист"},
		{"Поставщик", "Адрес", "Фирма", "Товар", "Страна", "Цена", "Цена 2", "Количество"},
		{"ООО Ромашка", "Москва, Тверская 1", "Nike", "Кроссовки", "Вьетнам", "1200", "", "2"},
		{"", "", "Adidas", "Кеды", "Китай", "1500", "1200", "1"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(dir, "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	in := writeInputWorkbook(t, t.TempDir())

	records, err := Parse(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, expected 2", len(records))
	}

	first := records[0]
	if first.Brand != "Nike" || first.Quantity != 2 || first.Country != "Вьетнам" {
		t.Errorf("unexpected first record: %+v", first)
	}

	// Supplier and address stick down across rows that leave them blank.
	second := records[1]
	if second.Supplier != "ООО Ромашка" || second.Address != "Москва, Тверская 1" {
		t.Errorf("fill-down lost: %+v", second)
	}
	if !second.HasDiscount() {
		t.Error("expected discount on the second record")
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "absent.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("got %v, expected ErrFileNotFound", err)
	}

	var se *StageError
	if !errors.As(err, &se) || se.Stage != "open" {
		t.Errorf("got %v, expected an open stage error", err)
	}
}

func TestRunXLSX(t *testing.T) {
	dir := t.TempDir()
	in := writeInputWorkbook(t, dir)
	out := filepath.Join(dir, "tags.xlsx")

	if err := Run(in, out, DefaultOptions()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()

	// Three tag instances: Nike twice, then Adidas.
	for _, tt := range []struct {
		cell     string
		expected string
	}{
		{"A2", "Nike"},
		{"F2", "Nike"},
		{"K2", "Adidas"},
		// Plain price, then the discounted tag's crossed old price and
		// its new value.
		{"B8", "1200 ="},
		{"K8", "1500"},
		{"L8", "1200 ="},
	} {
		got, err := f.GetCellValue(xlsxtag.SheetName, tt.cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}

func TestRunDOCX(t *testing.T) {
	dir := t.TempDir()
	in := writeInputWorkbook(t, dir)
	out := filepath.Join(dir, "tags.docx")

	opts := DefaultOptions()
	opts.Format = FormatDOCX
	if err := Run(in, out, opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	doc, err := document.Open(out)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(doc.Tables()) == 0 {
		t.Error("output document has no tag tables")
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = "pdf"

	err := Generate(nil, filepath.Join(t.TempDir(), "out.pdf"), opts)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got %v, expected ErrUnknownFormat", err)
	}
}
