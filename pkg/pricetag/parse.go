package pricetag

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kvels/pricetag-go/pkg/pricetag/models"
	"github.com/kvels/pricetag-go/pkg/pricetag/parser"
)

// Parse reads the first sheet of an xlsx workbook, locates the expected
// columns, and extracts the normalized product records.
func Parse(path string, opts Options) ([]models.ProductRecord, error) {
	log := opts.logger()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, stageErr("open", fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, stageErr("open", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, stageErr("open", errors.New("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, stageErr("open", err)
	}

	mapping, err := parser.ResolveColumns(rows)
	if err != nil {
		return nil, stageErr("resolve", err)
	}
	log.Debug("columns resolved",
		zap.Int("header_row", mapping.HeaderRow),
		zap.Int("brand_col", mapping.Col(parser.RoleBrand)),
		zap.Int("price_col", mapping.Col(parser.RolePrice)))

	records, err := parser.ExtractRecords(rows, mapping)
	if err != nil {
		return nil, stageErr("extract", err)
	}
	log.Info("records extracted",
		zap.String("file", path),
		zap.Int("records", len(records)))
	return records, nil
}
