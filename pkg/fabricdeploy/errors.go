package fabricdeploy

import "errors"

// ErrSheetNotFound indicates the workbook has no port mapping sheet.
var ErrSheetNotFound = errors.New("sheet not found")
