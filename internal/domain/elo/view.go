package elo

import (
	"slices"

	"wrestler_elo/internal/app"
)

// Placeholder texts shown when the table has no rows
const (
	LoadingText = "Loading..."
	NoDataFound = "No data found"
)

// ViewState is the locally owned state of the Elo table view.
// Every transition returns a new value; the receiver is never modified.
type ViewState struct {
	SelectedBrands []BrandOption
	NameFilter     string
	Sorted         []SortSpec
	Page           int
	PageSize       int
}

// InitialViewState selects every brand with an empty name filter, default sort, first page
func InitialViewState() ViewState {
	return ViewState{
		SelectedBrands: BrandOptions(),
		NameFilter:     "",
		Sorted:         DefaultSort(),
		Page:           0,
		PageSize:       DefaultPageSize,
	}
}

// OnNameInput replaces the name filter verbatim
func (s ViewState) OnNameInput(text string) ViewState {
	s.NameFilter = text
	return s
}

// OnBrandSelectionChange replaces the brand selection with the full new set
func (s ViewState) OnBrandSelectionChange(options []BrandOption) ViewState {
	s.SelectedBrands = slices.Clone(options)
	if s.SelectedBrands == nil {
		s.SelectedBrands = []BrandOption{}
	}
	return s
}

// OnSortToggle applies a header click, see ToggleSort
func (s ViewState) OnSortToggle(columnID string, multi bool) ViewState {
	s.Sorted = ToggleSort(s.Sorted, columnID, multi)
	return s
}

// OnPageChange moves to a page; Render clamps it into range
func (s ViewState) OnPageChange(page int) ViewState {
	if page < 0 {
		page = 0
	}
	s.Page = page
	return s
}

// OnPageSizeChange switches page size, keeping the first visible row on screen.
// Sizes outside PageSizeOptions are ignored.
func (s ViewState) OnPageSizeChange(size int) ViewState {
	if !ValidPageSize(size) {
		return s
	}
	s.Page = RepageForSize(s.Page, s.PageSize, size)
	s.PageSize = size
	return s
}

// TableRow is one formatted row; Cells follow the leaf column order
type TableRow struct {
	Stat  app.WrestlerStat `json:"-"`
	Cells []string         `json:"cells"`
}

// LeafHeader is the rendered lower header cell
type LeafHeader struct {
	ID     string `json:"id"`
	Header string `json:"header"`
	Sorted string `json:"sorted,omitempty"`
}

// TableView is everything a surface needs to draw the table
type TableView struct {
	HeaderGroups []HeaderGroup `json:"headerGroups"`
	Columns      []LeafHeader  `json:"columns"`
	Rows         []TableRow    `json:"rows"`
	TotalRows    int           `json:"totalRows"`
	Page         int           `json:"page"`
	PageCount    int           `json:"pageCount"`
	PageSize     int           `json:"pageSize"`
	Sorted       []SortSpec    `json:"sorted"`
	Loading      bool          `json:"loading"`
	NoDataText   string        `json:"noDataText,omitempty"`
}

// NoDataText returns the placeholder for an empty table
func NoDataText(loading bool) string {
	if loading {
		return LoadingText
	}
	return NoDataFound
}

// Render derives the table from a fetch result and the view state.
// While the fetch is pending no rows are shown, whatever data the result carries.
// Pure function: No I/O, deterministic output from input
func Render(model ColumnModel, result app.QueryResult, state ViewState) TableView {
	loading := result.Loading()

	var data []app.WrestlerStat
	if !loading {
		data = result.Rows()
	}

	filtered := FilterStats(data, state.SelectedBrands, state.NameFilter)

	rows := make([]TableRow, len(filtered))
	for i, stat := range filtered {
		rows[i] = model.FormatRow(stat)
	}
	rows = SortRows(rows, state.Sorted, model)

	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pageCount := PageCount(len(rows), pageSize)
	page := ClampPage(state.Page, pageCount)

	leaves := model.Leaves()
	headers := make([]LeafHeader, len(leaves))
	for i, column := range leaves {
		headers[i] = LeafHeader{
			ID:     column.ID,
			Header: column.Header,
			Sorted: SortDirection(state.Sorted, column.ID),
		}
	}

	view := TableView{
		HeaderGroups: model.HeaderGroups(),
		Columns:      headers,
		Rows:         PageRows(rows, page, pageSize),
		TotalRows:    len(rows),
		Page:         page,
		PageCount:    pageCount,
		PageSize:     pageSize,
		Sorted:       slices.Clone(state.Sorted),
		Loading:      loading,
	}
	if len(rows) == 0 {
		view.NoDataText = NoDataText(loading)
	}
	return view
}
