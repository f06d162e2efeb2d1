// Package parser loads spreadsheets into records.
package parser

import (
	"errors"

	"github.com/go-logr/logr"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/models"
	"github.com/xuri/excelize/v2"
)

// Option configures Load.
type Option func(*loader)

type loader struct {
	logger logr.Logger
}

// WithLogger sets the logger used to report ignored rows.
func WithLogger(logger logr.Logger) Option {
	return func(l *loader) {
		l.logger = logger
	}
}

// Load reads every sheet of the workbook at path into a SheetTable.
// Any failure is returned as a *LoadError.
func Load(path string, opts ...Option) (models.SheetTable, error) {
	l := &loader{logger: logr.Discard()}
	for _, opt := range opts {
		opt(l)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	table := make(models.SheetTable)
	for _, sheetName := range f.GetSheetList() {
		records, err := ExtractRecords(f, sheetName, l.logger)
		if err != nil {
			loadErr := &LoadError{Path: path, Sheet: sheetName, Err: err}
			var re *rowError
			if errors.As(err, &re) {
				loadErr.Row = re.row
				loadErr.Err = re.err
			}
			return nil, loadErr
		}
		table[sheetName] = records
		l.logger.V(1).Info("Loaded sheet", "sheet", sheetName, "records", len(records))
	}

	return table, nil
}
