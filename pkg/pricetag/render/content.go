package render

import (
	"github.com/kvels/pricetag-go/pkg/pricetag/models"
)

// Content is the fully resolved text of one tag, shared by both backends.
// Building it in one place is what keeps the two outputs consistent:
// same labels, same discount branching, same address wrap.
type Content struct {
	// Header is the company header line.
	Header string
	// Brand is the brand line, leading indentation preserved.
	Brand string
	// Category is the formatted category line.
	Category string
	// Country is the complete brand-country line (label plus value).
	Country string
	// Place is the complete manufacturing-place line.
	Place string
	// MaterialLabel and Material are the material label/value split.
	MaterialLabel string
	Material      string
	// ArticleLabel and Article are the article label/value split.
	ArticleLabel string
	Article      string
	// Discount reports whether the discount price branch applies.
	Discount bool
	// PriceLabel is the price caption; empty on the discount branch.
	PriceLabel string
	// CrossedPrice is the old price shown struck through; empty unless
	// the discount branch applies.
	CrossedPrice string
	// PriceValue is the selling price followed by " =".
	PriceValue string
	// SupplierLabel and Supplier are the supplier label/value split.
	SupplierLabel string
	Supplier      string
	// Address1 and Address2 are the two wrapped address lines.
	Address1 string
	Address2 string
}

// BuildContent resolves one record against the template into the final
// tag text.
func BuildContent(r *models.ProductRecord, t *models.TagTemplate) Content {
	c := Content{
		Header:   t.TextFor(models.FieldHeader),
		Brand:    r.Brand,
		Category: r.FormattedCategory(),
		Material: r.Material,
		Article:  r.Article,
		Supplier: r.Supplier,
	}

	c.Country = labeledLine(t, models.FieldCountry, r.Country)
	c.Place = labeledLine(t, models.FieldPlace, r.Place)
	c.MaterialLabel = labelFor(t, models.FieldMaterialLabel)
	c.ArticleLabel = labelFor(t, models.FieldArticleLabel)
	c.SupplierLabel = labelFor(t, models.FieldSupplierLabel)

	if r.HasDiscount() {
		c.Discount = true
		c.CrossedPrice = FormatPrice(r.OriginalPrice())
		c.PriceValue = PriceValue(r.DiscountPrice())
	} else {
		c.PriceLabel = labelFor(t, models.FieldPriceLabel)
		c.PriceValue = PriceValue(r.Price)
	}

	c.Address1, c.Address2 = WrapTwoLines(r.Address)
	return c
}

// labelFor resolves the caption of a labeled field through the override
// rule.
func labelFor(t *models.TagTemplate, f models.Field) string {
	override, _ := t.OverrideText(f)
	return Label(override, models.DefaultText(f))
}

// labeledLine joins a resolved caption and a record value with a space,
// omitting the space when the value is empty.
func labeledLine(t *models.TagTemplate, f models.Field, value string) string {
	label := labelFor(t, f)
	if value == "" {
		return label
	}
	return label + " " + value
}
