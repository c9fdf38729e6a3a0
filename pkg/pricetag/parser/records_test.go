package parser

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// testRows builds a minimal sheet: supplier, address, brand, price,
// quantity columns with the header on row 1.
func testRows(data ...[]string) [][]string {
	rows := [][]string{{"Поставщик", "Адрес", "Фирма", "Цена", "Количество", "Цена 2"}}
	return append(rows, data...)
}

func mustResolve(t *testing.T, rows [][]string) ColumnMapping {
	t.Helper()
	m, err := ResolveColumns(rows)
	if err != nil {
		t.Fatalf("ResolveColumns failed: %v", err)
	}
	return m
}

func TestExtractRecords(t *testing.T) {
	rows := testRows(
		[]string{"ООО Ромашка", "Москва, Тверская 1", "Nike", "1 200,50", "2"},
		[]string{"", "", "Adidas", "990", ""},
	)

	records, err := ExtractRecords(rows, mustResolve(t, rows))
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	r := records[0]
	if r.Brand != "Nike" {
		t.Errorf("brand = %q", r.Brand)
	}
	if !r.Price.Equal(decimal.RequireFromString("1200.5")) {
		t.Errorf("price = %s", r.Price)
	}
	if r.Quantity != 2 {
		t.Errorf("quantity = %d", r.Quantity)
	}

	// Second row has no quantity: defaults to 1.
	if records[1].Quantity != 1 {
		t.Errorf("default quantity = %d, expected 1", records[1].Quantity)
	}
}

func TestExtractRecordsFillDown(t *testing.T) {
	rows := testRows(
		[]string{"ООО Ромашка", "Москва", "Nike", "100", ""},
		[]string{"", "", "Adidas", "200", ""},
		[]string{"", "", "Puma", "300", ""},
		[]string{"ИП Иванов", "Казань", "Reebok", "400", ""},
		[]string{"", "", "Asics", "500", ""},
	)

	records, err := ExtractRecords(rows, mustResolve(t, rows))
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}

	expected := []struct{ supplier, address string }{
		{"ООО Ромашка", "Москва"},
		{"ООО Ромашка", "Москва"},
		{"ООО Ромашка", "Москва"},
		{"ИП Иванов", "Казань"},
		{"ИП Иванов", "Казань"},
	}
	for i, e := range expected {
		if records[i].Supplier != e.supplier || records[i].Address != e.address {
			t.Errorf("row %d: supplier/address = %q/%q, expected %q/%q",
				i, records[i].Supplier, records[i].Address, e.supplier, e.address)
		}
	}
}

func TestExtractRecordsSkipsBlankRowsInFillDown(t *testing.T) {
	// A fully blank brand/price row is skipped entirely: its supplier
	// cell must not update the carried value.
	rows := testRows(
		[]string{"ООО Ромашка", "Москва", "Nike", "100", ""},
		[]string{"ИП Другой", "Омск", "", "", ""},
		[]string{"", "", "Adidas", "200", ""},
	)

	records, err := ExtractRecords(rows, mustResolve(t, rows))
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Supplier != "ООО Ромашка" {
		t.Errorf("supplier = %q, expected carried %q", records[1].Supplier, "ООО Ромашка")
	}
}

func TestExtractRecordsTrailingNoise(t *testing.T) {
	rows := testRows(
		[]string{"ООО Ромашка", "Москва", "Nike", "100", ""},
		[]string{"", "", "", "", ""},
		[]string{"", "итого", "", "", ""},
	)

	records, err := ExtractRecords(rows, mustResolve(t, rows))
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestExtractRecordsValidation(t *testing.T) {
	rows := testRows(
		[]string{"", "", "", "100", ""},         // no brand: dropped
		[]string{"", "", "NoPrice", "руб.", ""}, // digitless price: dropped
		[]string{"", "", "Ok", "50", ""},
	)

	records, err := ExtractRecords(rows, mustResolve(t, rows))
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	if len(records) != 1 || records[0].Brand != "Ok" {
		t.Errorf("expected only the valid record, got %d", len(records))
	}
}

func TestExtractRecordsSecondaryPrice(t *testing.T) {
	rows := testRows(
		[]string{"", "", "Nike", "1000", "", "800"},
		[]string{"", "", "Adidas", "1000", "", "нет"},
	)

	records, err := ExtractRecords(rows, mustResolve(t, rows))
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	if !records[0].Price2.Equal(decimal.NewFromInt(800)) {
		t.Errorf("price2 = %s, expected 800", records[0].Price2)
	}
	if !records[1].Price2.IsZero() {
		t.Errorf("price2 = %s, expected unset", records[1].Price2)
	}
}

func TestExtractRecordsAllInvalid(t *testing.T) {
	rows := testRows(
		[]string{"", "", "", "0", ""},
	)

	_, err := ExtractRecords(rows, mustResolve(t, rows))
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("expected ErrNoRecords, got %v", err)
	}
}

func TestExtractRecordsKeepsLeadingSpaces(t *testing.T) {
	rows := testRows(
		[]string{"", "", "  Nike", "100", ""},
	)

	records, err := ExtractRecords(rows, mustResolve(t, rows))
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	if records[0].Brand != "  Nike" {
		t.Errorf("brand = %q, expected leading spaces preserved", records[0].Brand)
	}
}
