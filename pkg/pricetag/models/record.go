package models

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// shortCategoryRunes is the category length limit (in runes) below which
// the gender and size suffixes are appended.
const shortCategoryRunes = 12

// ProductRecord is one distinct product line read from the spreadsheet.
// Records are immutable once accepted; renderers only read them.
type ProductRecord struct {
	// Brand is the brand or firm name. Required.
	Brand string
	// Price is the unit price. Required, must be positive.
	Price decimal.Decimal
	// Quantity is the number of tags to print for this record.
	Quantity int
	// Supplier is the supplier name (fill-down semantics).
	Supplier string
	// Address is the supplier address (fill-down semantics).
	Address string
	// Category is the product category.
	Category string
	// Gender is the gender qualifier appended to short categories.
	Gender string
	// Country is the brand country.
	Country string
	// Place is the manufacturing place.
	Place string
	// Material is the material composition.
	Material string
	// Size is the product size.
	Size string
	// Article is the article code.
	Article string
	// Price2 is the secondary (discounted) price, zero when absent.
	Price2 decimal.Decimal
	// Extra1 is free-text additional data read from the workbook.
	Extra1 string
	// Extra2 is free-text additional data reserved for template use.
	Extra2 string
}

// Valid reports whether the record passes acceptance rules: non-empty
// brand, positive price, positive quantity.
func (r *ProductRecord) Valid() bool {
	return r.Brand != "" && r.Price.IsPositive() && r.Quantity > 0
}

// HasDiscount reports whether the secondary price is a real discount:
// positive and strictly below the primary price.
func (r *ProductRecord) HasDiscount() bool {
	return r.Price2.IsPositive() && r.Price2.LessThan(r.Price)
}

// DiscountPrice returns the price to sell at: the secondary price when the
// discount holds, otherwise the primary price.
func (r *ProductRecord) DiscountPrice() decimal.Decimal {
	if r.HasDiscount() {
		return r.Price2
	}
	return r.Price
}

// OriginalPrice returns the pre-discount price when the discount holds,
// otherwise the primary price.
func (r *ProductRecord) OriginalPrice() decimal.Decimal {
	return r.Price
}

// FormattedCategory returns the category with the gender qualifier
// appended only when the base category is short and gender is set.
// Size is appended only when gender was appended and size is set.
func (r *ProductRecord) FormattedCategory() string {
	if r.Category == "" || r.Gender == "" || utf8.RuneCountInString(r.Category) > shortCategoryRunes {
		return r.Category
	}
	s := r.Category + " " + r.Gender
	if r.Size != "" {
		s += " " + r.Size
	}
	return s
}
