package parser

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/models"
	"github.com/xuri/excelize/v2"
)

// IgnoreColumn is the header label that enables row filtering. Rows are
// kept only when their value in this column is "no" (any case).
const IgnoreColumn = "##IGNORE##"

// ExtractRecords reads a sheet into records keyed by the labels of its first row.
// Numeric cells are normalized with normalizeValue and rows marked in
// IgnoreColumn are dropped.
func ExtractRecords(f *excelize.File, sheetName string, logger logr.Logger) ([]models.Record, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	records := []models.Record{}
	if len(rows) == 0 {
		return records, nil
	}

	labels := headerLabels(rows[0])
	doIgnore := false
	for _, label := range labels {
		if label == IgnoreColumn {
			doIgnore = true
			break
		}
	}

	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2 // 1-based, after the header
		cells, err := fitRow(row, len(labels))
		if err != nil {
			return nil, &rowError{row: rowNum, err: err}
		}

		record := make(models.Record, len(labels))
		for colIdx, label := range labels {
			record[label] = normalizeValue(cells[colIdx])
		}

		if doIgnore && strings.ToLower(record[IgnoreColumn]) != "no" {
			logger.V(1).Info("Ignoring row", "sheet", sheetName, "row", rowNum)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// rowError carries the failing row number up to Load, which knows the path.
type rowError struct {
	row int
	err error
}

func (e *rowError) Error() string { return e.err.Error() }
func (e *rowError) Unwrap() error { return e.err }

// normalizeValue converts numeric cell values to the string form of their
// truncated integer so that port identifiers stored as floats ("11.0") do
// not leak a decimal part. Anything else is returned unchanged.
func normalizeValue(s string) string {
	trimmed := strings.TrimSpace(s)
	if strings.ContainsAny(trimmed, "xX") {
		return s
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	i, _ := big.NewFloat(math.Trunc(f)).Int(nil)
	return i.String()
}
