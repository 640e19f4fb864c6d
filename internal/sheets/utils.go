package sheets

import "strings"

// sheetNameFromRange extracts the tab name from an A1 range such as
// "'Elo Ratings'!A2:H". A range without a tab name returns "".
func sheetNameFromRange(range_ string) string {
	i := strings.LastIndex(range_, "!")
	if i == -1 {
		return ""
	}
	name := range_[:i]
	if len(name) >= 2 && name[0] == '\'' && name[len(name)-1] == '\'' {
		name = strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}
	return name
}

// rowCell returns the cell at index i, or an empty cell when the row is short.
// The Sheets API trims trailing empty cells from each row.
func rowCell(row []interface{}, i int) Cell {
	if i < len(row) {
		return NewCell(row[i])
	}
	return NewCell(nil)
}
