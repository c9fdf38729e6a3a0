// Package pricetag turns an inventory workbook into printable price tag
// documents.
package pricetag

import (
	"go.uber.org/zap"

	"github.com/kvels/pricetag-go/pkg/pricetag/models"
)

// Format selects the output document format.
type Format string

const (
	// FormatXLSX emits an xlsx worksheet with explicit page layout.
	FormatXLSX Format = "xlsx"
	// FormatDOCX emits a docx document that paginates by content flow.
	FormatDOCX Format = "docx"
)

// Options configures parsing and generation.
type Options struct {
	// Format is the output format. Defaults to FormatXLSX.
	Format Format
	// Template is the tag template. Nil means built-in defaults.
	Template *models.TagTemplate
	// Logger receives progress and row-skip diagnostics. Nil disables
	// logging.
	Logger *zap.Logger
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{Format: FormatXLSX}
}

func (o Options) template() *models.TagTemplate {
	if o.Template != nil {
		return o.Template
	}
	return models.DefaultTemplate()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
