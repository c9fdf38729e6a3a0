package parser

import (
	"errors"
	"fmt"
)

// Role identifies one semantic column of the source spreadsheet.
type Role int

const (
	// RoleSupplier is the supplier name column.
	RoleSupplier Role = iota
	// RoleAddress is the supplier address column.
	RoleAddress
	// RoleBrand is the brand/firm column. Mandatory.
	RoleBrand
	// RoleCategory is the product category column.
	RoleCategory
	// RoleExtra is the free-text additional data column.
	RoleExtra
	// RoleGender is the gender qualifier column.
	RoleGender
	// RoleCountry is the brand country column.
	RoleCountry
	// RolePlace is the manufacturing place column.
	RolePlace
	// RoleMaterial is the material column.
	RoleMaterial
	// RoleSize is the size column.
	RoleSize
	// RoleArticle is the article code column.
	RoleArticle
	// RolePrice is the unit price column. Mandatory.
	RolePrice
	// RolePrice2 is the secondary (discounted) price column.
	RolePrice2
	// RoleQuantity is the quantity column.
	RoleQuantity

	// RoleCount is the number of known roles.
	RoleCount
)

// Unresolved marks a role with no located column.
const Unresolved = -1

// ErrMissingHeaders indicates the mandatory brand or price header could
// not be located anywhere in the scanned range.
var ErrMissingHeaders = errors.New("mandatory headers not found")

// headerVocabulary maps normalized header text to its role. Matching is
// exact equality after normalization, not substring or edit distance.
var headerVocabulary = map[string]Role{
	"поставщик":          RoleSupplier,
	"адрес":              RoleAddress,
	"адрес поставщика":   RoleAddress,
	"фирма":              RoleBrand,
	"бренд":              RoleBrand,
	"товар":              RoleCategory,
	"наименование":       RoleCategory,
	"данные":             RoleExtra,
	"доп. данные":        RoleExtra,
	"пол":                RoleGender,
	"страна":             RoleCountry,
	"страна бренда":      RoleCountry,
	"место производства": RolePlace,
	"изготовитель":       RolePlace,
	"материал":           RoleMaterial,
	"состав":             RoleMaterial,
	"размер":             RoleSize,
	"артикул":            RoleArticle,
	"цена":               RolePrice,
	"цена 2":             RolePrice2,
	"новая цена":         RolePrice2,
	"цена со скидкой":    RolePrice2,
	"количество":         RoleQuantity,
	"кол-во":             RoleQuantity,
}

// ColumnMapping binds each role to a 1-based column index within one
// parsed spreadsheet. Built once per file, discarded after extraction.
type ColumnMapping struct {
	// Cols holds the 1-based column index per role, or Unresolved.
	Cols [RoleCount]int
	// HeaderRow is the 1-based row where the brand header was found.
	// Data rows start below it.
	HeaderRow int
}

// Col returns the 1-based column bound to the role, or Unresolved.
func (m *ColumnMapping) Col(r Role) int {
	if r < 0 || r >= RoleCount {
		return Unresolved
	}
	return m.Cols[r]
}

// ResolveColumns scans the full cell range row-major and binds each role
// to the first cell whose normalized text matches the vocabulary. Later
// matches for an already-bound slot are ignored. It fails with no partial
// mapping when the brand or price column remains unresolved.
func ResolveColumns(rows [][]string) (ColumnMapping, error) {
	var m ColumnMapping
	for i := range m.Cols {
		m.Cols[i] = Unresolved
	}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			role, ok := headerVocabulary[NormalizeHeader(cell)]
			if !ok || m.Cols[role] != Unresolved {
				continue
			}
			m.Cols[role] = colIdx + 1
			if role == RoleBrand {
				m.HeaderRow = rowIdx + 1
			}
		}
	}

	if m.Cols[RoleBrand] == Unresolved || m.Cols[RolePrice] == Unresolved {
		missing := ""
		if m.Cols[RoleBrand] == Unresolved {
			missing = "brand"
		}
		if m.Cols[RolePrice] == Unresolved {
			if missing != "" {
				missing += ", "
			}
			missing += "price"
		}
		return ColumnMapping{}, fmt.Errorf("%w: %s", ErrMissingHeaders, missing)
	}

	return m, nil
}
