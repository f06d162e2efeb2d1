package parser

// headerLabels returns the column labels of a header row. Trailing empty
// cells are not part of the table.
func headerLabels(header []string) []string {
	width := len(header)
	for width > 0 && header[width-1] == "" {
		width--
	}
	labels := make([]string, width)
	copy(labels, header[:width])
	return labels
}

// fitRow aligns a data row to the header width. xlsx stores no trailing
// blank cells, so short rows are padded with empty values. A value past
// the last header column makes the table ragged.
func fitRow(row []string, width int) ([]string, error) {
	if len(row) > width {
		for _, cell := range row[width:] {
			if cell != "" {
				return nil, ErrRaggedRow
			}
		}
		return row[:width], nil
	}

	cells := make([]string, width)
	copy(cells, row)
	return cells, nil
}
