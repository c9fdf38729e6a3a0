package parser

import (
	"errors"
	"strings"

	"github.com/kvels/pricetag-go/pkg/pricetag/models"
)

// ErrNoRecords indicates extraction produced no valid product rows.
var ErrNoRecords = errors.New("no valid product rows")

// ExtractRecords walks the data rows below the header using the resolved
// column mapping and produces the ordered list of product records.
// Per-row defects are silent skips; the extraction fails only when no row
// validates.
func ExtractRecords(rows [][]string, m ColumnMapping) ([]models.ProductRecord, error) {
	first := m.HeaderRow // 0-based index of the first data row
	last := maxDataRow(rows, m)

	var (
		records     []models.ProductRecord
		curSupplier string
		curAddress  string
	)

	for rowIdx := first; rowIdx <= last; rowIdx++ {
		// Leading spaces carry indentation intent and are preserved on
		// display fields; only trailing whitespace is dropped.
		brand := rawCellAt(rows, rowIdx, m.Col(RoleBrand))
		priceText := cellAt(rows, rowIdx, m.Col(RolePrice))

		// A row with neither value readable is skipped entirely; it does
		// not participate in the supplier/address carry-forward.
		if strings.TrimSpace(brand) == "" && priceText == "" {
			continue
		}

		if v := cellAt(rows, rowIdx, m.Col(RoleSupplier)); v != "" {
			curSupplier = v
		}
		if v := cellAt(rows, rowIdx, m.Col(RoleAddress)); v != "" {
			curAddress = v
		}

		rec := models.ProductRecord{
			Brand:    brand,
			Quantity: 1,
			Supplier: curSupplier,
			Address:  curAddress,
			Category: rawCellAt(rows, rowIdx, m.Col(RoleCategory)),
			Gender:   cellAt(rows, rowIdx, m.Col(RoleGender)),
			Country:  cellAt(rows, rowIdx, m.Col(RoleCountry)),
			Place:    cellAt(rows, rowIdx, m.Col(RolePlace)),
			Material: cellAt(rows, rowIdx, m.Col(RoleMaterial)),
			Size:     cellAt(rows, rowIdx, m.Col(RoleSize)),
			Article:  cellAt(rows, rowIdx, m.Col(RoleArticle)),
			Extra1:   cellAt(rows, rowIdx, m.Col(RoleExtra)),
		}

		if price, ok := ParsePrice(priceText); ok {
			rec.Price = price
		}
		if qty, ok := ParseQuantity(cellAt(rows, rowIdx, m.Col(RoleQuantity))); ok {
			rec.Quantity = qty
		}
		if p2, ok := ParsePrice(cellAt(rows, rowIdx, m.Col(RolePrice2))); ok && p2.IsPositive() {
			rec.Price2 = p2
		}

		if rec.Valid() {
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// maxDataRow returns the 0-based index of the last row where the brand or
// price column holds a non-empty trimmed value. Rows beyond it are
// trailing formatting noise and are ignored.
func maxDataRow(rows [][]string, m ColumnMapping) int {
	for rowIdx := len(rows) - 1; rowIdx >= 0; rowIdx-- {
		if cellAt(rows, rowIdx, m.Col(RoleBrand)) != "" ||
			cellAt(rows, rowIdx, m.Col(RolePrice)) != "" {
			return rowIdx
		}
	}
	return -1
}

// cellAt reads the trimmed cell at a 0-based row and 1-based column,
// tolerating short rows and unresolved columns.
func cellAt(rows [][]string, rowIdx, col int) string {
	if col == Unresolved || rowIdx < 0 || rowIdx >= len(rows) {
		return ""
	}
	row := rows[rowIdx]
	if col-1 < 0 || col-1 >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col-1])
}

// rawCellAt reads a cell keeping its leading spaces, trimming only the
// right side.
func rawCellAt(rows [][]string, rowIdx, col int) string {
	if col == Unresolved || rowIdx < 0 || rowIdx >= len(rows) {
		return ""
	}
	row := rows[rowIdx]
	if col-1 < 0 || col-1 >= len(row) {
		return ""
	}
	s := strings.TrimRight(row[col-1], " \t")
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
