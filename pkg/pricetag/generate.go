package pricetag

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kvels/pricetag-go/pkg/pricetag/layout"
	"github.com/kvels/pricetag-go/pkg/pricetag/models"
	"github.com/kvels/pricetag-go/pkg/pricetag/render/docxtag"
	"github.com/kvels/pricetag-go/pkg/pricetag/render/xlsxtag"
)

// Generate lays the records out as price tags and writes the output
// document to outPath in the configured format. The whole operation runs
// on the calling goroutine; no partial file guarantee is made when the
// final save fails.
func Generate(records []models.ProductRecord, outPath string, opts Options) error {
	log := opts.logger()
	tpl := opts.template()

	switch opts.Format {
	case FormatXLSX, "":
		r, err := xlsxtag.New(tpl)
		if err != nil {
			return stageErr("render", err)
		}
		defer r.Close()
		if err := r.Render(records); err != nil {
			return stageErr("render", err)
		}
		logGrid(log, outPath, r.Grid(), records)
		if err := r.Save(outPath); err != nil {
			return stageErr("save", err)
		}
	case FormatDOCX:
		r := docxtag.New(tpl)
		if err := r.Render(records); err != nil {
			return stageErr("render", err)
		}
		logGrid(log, outPath, r.Grid(), records)
		if err := r.Save(outPath); err != nil {
			return stageErr("save", err)
		}
	default:
		return stageErr("render", fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format))
	}
	return nil
}

// Run parses the workbook and generates the output document in one call.
func Run(inPath, outPath string, opts Options) error {
	records, err := Parse(inPath, opts)
	if err != nil {
		return err
	}
	return Generate(records, outPath, opts)
}

func logGrid(log *zap.Logger, outPath string, g layout.Grid, records []models.ProductRecord) {
	tags := len(layout.Flatten(records))
	log.Info("document generated",
		zap.String("file", outPath),
		zap.Int("tags", tags),
		zap.Int("columns", g.Columns),
		zap.Int("rows", g.Rows),
		zap.Int("pages", g.Pages(tags)))
}
