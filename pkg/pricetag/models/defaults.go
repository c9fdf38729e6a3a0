package models

// defaultFont is the font family used for every built-in style.
const defaultFont = "Arial"

// defaultStyles holds the built-in style for each field. The template's
// style map is sparse; any field without an override resolves here.
var defaultStyles = [FieldCount]TextStyle{
	FieldHeader:        {FontFamily: defaultFont, SizePt: 8, Bold: true, Align: AlignCenter},
	FieldBrand:         {FontFamily: defaultFont, SizePt: 12, Bold: true, Align: AlignCenter},
	FieldCategory:      {FontFamily: defaultFont, SizePt: 8, Align: AlignCenter},
	FieldCountry:       {FontFamily: defaultFont, SizePt: 7, Align: AlignLeft},
	FieldPlace:         {FontFamily: defaultFont, SizePt: 7, Align: AlignLeft},
	FieldMaterialLabel: {FontFamily: defaultFont, SizePt: 7, Align: AlignLeft},
	FieldMaterialValue: {FontFamily: defaultFont, SizePt: 7, Align: AlignLeft},
	FieldArticleLabel:  {FontFamily: defaultFont, SizePt: 7, Align: AlignLeft},
	FieldArticleValue:  {FontFamily: defaultFont, SizePt: 7, Align: AlignLeft},
	FieldPriceLabel:    {FontFamily: defaultFont, SizePt: 10, Bold: true, Align: AlignLeft},
	FieldPriceValue:    {FontFamily: defaultFont, SizePt: 12, Bold: true, Align: AlignRight},
	FieldSupplierLabel: {FontFamily: defaultFont, SizePt: 6, Align: AlignLeft},
	FieldSupplierValue: {FontFamily: defaultFont, SizePt: 6, Align: AlignLeft},
	FieldAddressLine1:  {FontFamily: defaultFont, SizePt: 6, Align: AlignLeft},
	FieldAddressLine2:  {FontFamily: defaultFont, SizePt: 6, Align: AlignLeft},
}

// defaultTexts holds the built-in literal text for each field. Empty
// entries are record-driven fields with no fixed caption.
var defaultTexts = [FieldCount]string{
	FieldHeader:        "ООО «Торговый дом»",
	FieldCountry:       "Страна:",
	FieldPlace:         "Изготовитель:",
	FieldMaterialLabel: "Материал:",
	FieldArticleLabel:  "Артикул:",
	FieldPriceLabel:    "Цена:",
	FieldSupplierLabel: "Поставщик:",
}

// DefaultStyle returns the built-in style for a field.
func DefaultStyle(f Field) TextStyle {
	if f < 0 || f >= FieldCount {
		return TextStyle{FontFamily: defaultFont, SizePt: 8, Align: AlignLeft}
	}
	return defaultStyles[f]
}

// DefaultText returns the built-in literal text for a field.
func DefaultText(f Field) string {
	if f < 0 || f >= FieldCount {
		return ""
	}
	return defaultTexts[f]
}
