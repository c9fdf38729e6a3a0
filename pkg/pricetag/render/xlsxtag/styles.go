package xlsxtag

import (
	"github.com/xuri/excelize/v2"

	"github.com/kvels/pricetag-go/pkg/pricetag/models"
)

// Edge flags for the outer-boundary border decoration. Only the outer
// boundary of the whole tag footprint receives the emphasized border,
// not every internal merged-cell edge.
const (
	edgeLeft = 1 << iota
	edgeRight
	edgeTop
	edgeBottom
)

// Border style codes used with excelize.
const (
	borderThin  = 1
	borderThick = 2
)

// maxIndentLevel caps the numeric cell indent derived from leading
// spaces.
const maxIndentLevel = 15

// styleKey identifies one cached cell style variant.
type styleKey struct {
	field    models.Field
	edges    uint8
	thinBox  bool
	thinTop  bool
	indent   int
	strike   bool
	diagonal bool
}

// styleID returns the excelize style id for the key, creating and
// caching it on first use.
func (r *Renderer) styleID(k styleKey) (int, error) {
	if id, ok := r.styles[k]; ok {
		return id, nil
	}

	st := r.tpl.StyleFor(k.field)

	var borders []excelize.Border
	add := func(edge uint8, kind string) {
		style := 0
		switch {
		case k.edges&edge != 0:
			style = borderThick
		case k.thinBox, k.thinTop && kind == "top":
			style = borderThin
		}
		if style != 0 {
			borders = append(borders, excelize.Border{Type: kind, Color: "000000", Style: style})
		}
	}
	add(edgeLeft, "left")
	add(edgeRight, "right")
	add(edgeTop, "top")
	add(edgeBottom, "bottom")
	if k.diagonal {
		borders = append(borders, excelize.Border{Type: "diagonalUp", Color: "000000", Style: borderThick})
	}

	indent := k.indent
	if indent > maxIndentLevel {
		indent = maxIndentLevel
	}
	if st.Align != models.AlignLeft {
		// A numeric indent only makes sense combined with left alignment.
		indent = 0
	}

	id, err := r.f.NewStyle(&excelize.Style{
		Border: borders,
		Font: &excelize.Font{
			Family: st.FontFamily,
			Size:   float64(st.SizePt),
			Bold:   st.Bold,
			Italic: st.Italic,
			Strike: st.Strike || k.strike,
		},
		Alignment: &excelize.Alignment{
			Horizontal: horizontalName(st.Align),
			Vertical:   "center",
			Indent:     indent,
		},
	})
	if err != nil {
		return 0, err
	}
	r.styles[k] = id
	return id, nil
}

func horizontalName(a models.Alignment) string {
	switch a {
	case models.AlignCenter:
		return "center"
	case models.AlignRight:
		return "right"
	default:
		return "left"
	}
}
