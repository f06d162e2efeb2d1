package models

// SheetTable maps sheet name to the records of that sheet in row order.
type SheetTable map[string][]Record

// Sheet returns the records of the named sheet and whether the sheet exists.
func (t SheetTable) Sheet(name string) ([]Record, bool) {
	records, ok := t[name]
	return records, ok
}
