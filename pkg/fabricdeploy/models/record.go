// Package models defines the data structures shared by the loader, the
// interface builder and the fabric sinks.
package models

// Record is a single spreadsheet row keyed by the column labels of the
// sheet's first row.
type Record map[string]string

// Get returns the value stored under column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r[column]
}

// Lookup returns the value stored under column and whether the column exists.
func (r Record) Lookup(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}
