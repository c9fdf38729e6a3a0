package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Alignment is the horizontal text alignment of a tag field.
type Alignment int

const (
	// AlignLeft aligns text to the left cell edge.
	AlignLeft Alignment = iota
	// AlignCenter centers text within the cell.
	AlignCenter
	// AlignRight aligns text to the right cell edge.
	AlignRight
)

var alignmentNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the serialized alignment name.
func (a Alignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return "left"
}

// MarshalJSON serializes the alignment as its string name.
func (a Alignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a string name or a legacy integer code.
func (a *Alignment) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		for v, n := range alignmentNames {
			if strings.EqualFold(name, n) {
				*a = v
				return nil
			}
		}
		return fmt.Errorf("unknown alignment %q", name)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid alignment value %s", s)
	}
	if n < int(AlignLeft) || n > int(AlignRight) {
		return fmt.Errorf("alignment code %d out of range", n)
	}
	*a = Alignment(n)
	return nil
}

// TextStyle describes the text formatting of one tag field.
type TextStyle struct {
	// FontFamily is the font family name.
	FontFamily string `json:"font"`
	// SizePt is the font size in points.
	SizePt int `json:"size"`
	// Bold renders the text bold.
	Bold bool `json:"bold,omitempty"`
	// Italic renders the text italic.
	Italic bool `json:"italic,omitempty"`
	// Strike renders the text struck through.
	Strike bool `json:"strike,omitempty"`
	// Align is the horizontal alignment.
	Align Alignment `json:"align"`
}
