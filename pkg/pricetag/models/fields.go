// Package models defines data structures for price tag generation.
package models

// Field identifies one stylable slot of the tag layout.
type Field int

const (
	// FieldHeader is the company header line at the top of the tag.
	FieldHeader Field = iota
	// FieldBrand is the brand name line.
	FieldBrand
	// FieldCategory is the category line (with gender/size suffix when short).
	FieldCategory
	// FieldCountry is the brand-country line (label plus value).
	FieldCountry
	// FieldPlace is the manufacturing-place line (label plus value).
	FieldPlace
	// FieldMaterialLabel is the narrow material label cell.
	FieldMaterialLabel
	// FieldMaterialValue is the material value cell.
	FieldMaterialValue
	// FieldArticleLabel is the narrow article label cell.
	FieldArticleLabel
	// FieldArticleValue is the article value cell.
	FieldArticleValue
	// FieldPriceLabel is the price label cell (or the crossed-out old price).
	FieldPriceLabel
	// FieldPriceValue is the price value cell.
	FieldPriceValue
	// FieldSupplierLabel is the supplier label cell.
	FieldSupplierLabel
	// FieldSupplierValue is the supplier value cell.
	FieldSupplierValue
	// FieldAddressLine1 is the first address line.
	FieldAddressLine1
	// FieldAddressLine2 is the second address line.
	FieldAddressLine2

	// FieldCount is the number of known fields.
	FieldCount
)

// fieldKeys holds the stable persistence key for each field.
var fieldKeys = [FieldCount]string{
	FieldHeader:        "header",
	FieldBrand:         "brand",
	FieldCategory:      "category",
	FieldCountry:       "country",
	FieldPlace:         "place",
	FieldMaterialLabel: "material_label",
	FieldMaterialValue: "material_value",
	FieldArticleLabel:  "article_label",
	FieldArticleValue:  "article_value",
	FieldPriceLabel:    "price_label",
	FieldPriceValue:    "price_value",
	FieldSupplierLabel: "supplier_label",
	FieldSupplierValue: "supplier_value",
	FieldAddressLine1:  "address_line1",
	FieldAddressLine2:  "address_line2",
}

// Key returns the stable persistence key for the field.
func (f Field) Key() string {
	if f < 0 || f >= FieldCount {
		return ""
	}
	return fieldKeys[f]
}

// FieldByKey resolves a persistence key back to its Field.
func FieldByKey(key string) (Field, bool) {
	for f, k := range fieldKeys {
		if k == key {
			return Field(f), true
		}
	}
	return 0, false
}

// AllFields returns every known field in layout order.
func AllFields() []Field {
	fields := make([]Field, FieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}
