// Package layout computes the printable tag grid shared by both output
// backends.
package layout

// A4 page dimensions in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// Unit conversion constants.
const (
	MMPerInch     = 25.4
	PointsPerInch = 72.0
	TwipsPerInch  = 1440.0
)

// MMToPoints converts millimeters to typographic points.
func MMToPoints(mm float64) float64 {
	return mm * PointsPerInch / MMPerInch
}

// MMToTwips converts millimeters to twips (1/1440 inch), rounded to the
// nearest whole twip.
func MMToTwips(mm float64) int {
	return int(mm*TwipsPerInch/MMPerInch + 0.5)
}

// MMToInches converts millimeters to inches.
func MMToInches(mm float64) float64 {
	return mm / MMPerInch
}
