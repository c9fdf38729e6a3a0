package models

import "encoding/json"

// TagTemplate is the persisted visual configuration: tag geometry plus
// sparse per-field style and text overrides. A single instance lives for
// the session and is shared by reference into both renderer backends.
type TagTemplate struct {
	// WidthMM is the tag width in millimeters.
	WidthMM float64
	// HeightMM is the tag height in millimeters.
	HeightMM float64
	// MarginLeftMM is the left page margin in millimeters.
	MarginLeftMM float64
	// MarginRightMM is the right page margin in millimeters.
	MarginRightMM float64
	// MarginTopMM is the top page margin in millimeters.
	MarginTopMM float64
	// MarginBottomMM is the bottom page margin in millimeters.
	MarginBottomMM float64
	// SpacingHMM is the horizontal spacing between tags in millimeters.
	SpacingHMM float64
	// SpacingVMM is the vertical spacing between tags in millimeters.
	SpacingVMM float64

	// Styles holds per-field style overrides. Sparse by design; absence
	// of a key is not an error.
	Styles map[Field]TextStyle
	// Texts holds per-field literal text overrides. Sparse by design.
	Texts map[Field]string
}

// DefaultTemplate returns a template with built-in geometry and no
// overrides.
func DefaultTemplate() *TagTemplate {
	return &TagTemplate{
		WidthMM:        60,
		HeightMM:       47.6,
		MarginLeftMM:   5,
		MarginRightMM:  5,
		MarginTopMM:    10,
		MarginBottomMM: 10,
		SpacingHMM:     3,
		SpacingVMM:     3,
		Styles:         make(map[Field]TextStyle),
		Texts:          make(map[Field]string),
	}
}

// StyleFor resolves the effective style for a field: the override when
// present, otherwise the built-in default.
func (t *TagTemplate) StyleFor(f Field) TextStyle {
	if s, ok := t.Styles[f]; ok {
		return s
	}
	return DefaultStyle(f)
}

// TextFor resolves the effective literal text for a field: the override
// when present, otherwise the built-in default.
func (t *TagTemplate) TextFor(f Field) string {
	if s, ok := t.Texts[f]; ok {
		return s
	}
	return DefaultText(f)
}

// OverrideText returns the literal text override for a field, if any.
func (t *TagTemplate) OverrideText(f Field) (string, bool) {
	s, ok := t.Texts[f]
	return s, ok
}

// Layout returns a backend-independent snapshot of the geometry fields.
// The snapshot is not authoritative; it must be recomputed whenever the
// template changes.
func (t *TagTemplate) Layout() LayoutConfig {
	return LayoutConfig{
		TagWidthMM:     t.WidthMM,
		TagHeightMM:    t.HeightMM,
		MarginLeftMM:   t.MarginLeftMM,
		MarginRightMM:  t.MarginRightMM,
		MarginTopMM:    t.MarginTopMM,
		MarginBottomMM: t.MarginBottomMM,
		SpacingHMM:     t.SpacingHMM,
		SpacingVMM:     t.SpacingVMM,
	}
}

// templateJSON is the wire form of TagTemplate. Style and text maps are
// keyed by the stable field-name strings.
type templateJSON struct {
	WidthMM        float64              `json:"width_mm"`
	HeightMM       float64              `json:"height_mm"`
	MarginLeftMM   float64              `json:"margin_left_mm"`
	MarginRightMM  float64              `json:"margin_right_mm"`
	MarginTopMM    float64              `json:"margin_top_mm"`
	MarginBottomMM float64              `json:"margin_bottom_mm"`
	SpacingHMM     float64              `json:"spacing_h_mm"`
	SpacingVMM     float64              `json:"spacing_v_mm"`
	Styles         map[string]TextStyle `json:"styles,omitempty"`
	Texts          map[string]string    `json:"texts,omitempty"`
}

// MarshalJSON serializes the template with field enums as stable keys.
func (t *TagTemplate) MarshalJSON() ([]byte, error) {
	w := templateJSON{
		WidthMM:        t.WidthMM,
		HeightMM:       t.HeightMM,
		MarginLeftMM:   t.MarginLeftMM,
		MarginRightMM:  t.MarginRightMM,
		MarginTopMM:    t.MarginTopMM,
		MarginBottomMM: t.MarginBottomMM,
		SpacingHMM:     t.SpacingHMM,
		SpacingVMM:     t.SpacingVMM,
	}
	if len(t.Styles) > 0 {
		w.Styles = make(map[string]TextStyle, len(t.Styles))
		for f, s := range t.Styles {
			w.Styles[f.Key()] = s
		}
	}
	if len(t.Texts) > 0 {
		w.Texts = make(map[string]string, len(t.Texts))
		for f, s := range t.Texts {
			w.Texts[f.Key()] = s
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON restores the template, silently dropping unknown field
// keys so newer files load in older builds.
func (t *TagTemplate) UnmarshalJSON(data []byte) error {
	var w templateJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.WidthMM = w.WidthMM
	t.HeightMM = w.HeightMM
	t.MarginLeftMM = w.MarginLeftMM
	t.MarginRightMM = w.MarginRightMM
	t.MarginTopMM = w.MarginTopMM
	t.MarginBottomMM = w.MarginBottomMM
	t.SpacingHMM = w.SpacingHMM
	t.SpacingVMM = w.SpacingVMM
	t.Styles = make(map[Field]TextStyle)
	t.Texts = make(map[Field]string)
	for key, s := range w.Styles {
		if f, ok := FieldByKey(key); ok {
			t.Styles[f] = s
		}
	}
	for key, s := range w.Texts {
		if f, ok := FieldByKey(key); ok {
			t.Texts[f] = s
		}
	}
	return nil
}
