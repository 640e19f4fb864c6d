package elo

import (
	"time"

	"wrestler_elo/internal/app"
)

// Leaf column identifiers
const (
	ColumnName            = "name"
	ColumnBrand           = "brand"
	ColumnCurrentEloValue = "currentEloValue"
	ColumnCurrentEloDate  = "currentEloDate"
	ColumnMaxEloValue     = "maxEloValue"
	ColumnMaxEloDate      = "maxEloDate"
	ColumnMinEloValue     = "minEloValue"
	ColumnMinEloDate      = "minEloDate"
)

// Column is a leaf column: a header, a cell accessor and a sort comparator
type Column struct {
	ID       string
	Header   string
	Accessor func(app.WrestlerStat) string
	Compare  func(a, b string) int
}

// ColumnGroup is a top-level header spanning one or more leaf columns.
// An empty Header groups ungrouped leading columns under a blank cell.
type ColumnGroup struct {
	Header  string
	Columns []Column
}

// ColumnModel is the ordered two-level column hierarchy of the table
type ColumnModel struct {
	Groups []ColumnGroup
}

// HeaderGroup is the rendered top header cell
type HeaderGroup struct {
	Header string `json:"header"`
	Span   int    `json:"span"`
}

// NewColumnModel builds the wrestler Elo columns, formatting dates in loc
func NewColumnModel(loc *time.Location) ColumnModel {
	if loc == nil {
		loc = time.Local
	}

	snapshotGroup := func(header, valueID, dateID string, pick func(app.WrestlerStat) *app.EloSnapshot) ColumnGroup {
		return ColumnGroup{
			Header: header,
			Columns: []Column{
				{
					ID:       valueID,
					Header:   "Value",
					Accessor: func(s app.WrestlerStat) string { return eloValue(pick(s)) },
					Compare:  CompareFloatStrings,
				},
				{
					ID:       dateID,
					Header:   "Date",
					Accessor: func(s app.WrestlerStat) string { return eloDate(pick(s), loc) },
					Compare:  CompareDateStrings,
				},
			},
		}
	}

	return ColumnModel{
		Groups: []ColumnGroup{
			{
				Columns: []Column{
					{ID: ColumnName, Header: "Name", Accessor: func(s app.WrestlerStat) string { return s.Name }, Compare: CompareStrings},
					{ID: ColumnBrand, Header: "Brand", Accessor: func(s app.WrestlerStat) string { return s.Brand }, Compare: CompareStrings},
				},
			},
			snapshotGroup("Current Elo", ColumnCurrentEloValue, ColumnCurrentEloDate, func(s app.WrestlerStat) *app.EloSnapshot { return s.CurrentElo }),
			snapshotGroup("Maximum Elo", ColumnMaxEloValue, ColumnMaxEloDate, func(s app.WrestlerStat) *app.EloSnapshot { return s.MaxElo }),
			snapshotGroup("Minimum Elo", ColumnMinEloValue, ColumnMinEloDate, func(s app.WrestlerStat) *app.EloSnapshot { return s.MinElo }),
		},
	}
}

// Leaves returns the leaf columns in display order
func (m ColumnModel) Leaves() []Column {
	var leaves []Column
	for _, group := range m.Groups {
		leaves = append(leaves, group.Columns...)
	}
	return leaves
}

// Leaf looks up a leaf column and its display index by ID
func (m ColumnModel) Leaf(id string) (Column, int, bool) {
	for i, column := range m.Leaves() {
		if column.ID == id {
			return column, i, true
		}
	}
	return Column{}, -1, false
}

// HeaderGroups returns the top header row
func (m ColumnModel) HeaderGroups() []HeaderGroup {
	groups := make([]HeaderGroup, 0, len(m.Groups))
	for _, group := range m.Groups {
		groups = append(groups, HeaderGroup{Header: group.Header, Span: len(group.Columns)})
	}
	return groups
}

// FormatRow evaluates every leaf accessor for a stat
func (m ColumnModel) FormatRow(stat app.WrestlerStat) TableRow {
	leaves := m.Leaves()
	cells := make([]string, len(leaves))
	for i, column := range leaves {
		cells[i] = column.Accessor(stat)
	}
	return TableRow{Stat: stat, Cells: cells}
}
