package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"wrestler_elo/internal/domain/elo"
)

// parseViewState builds a view state from query parameters:
//
//	name      substring filter, used verbatim
//	brand     repeatable and/or comma separated; absent selects every brand,
//	          present but blank selects none
//	sort      e.g. "-currentEloValue,name"; absent uses the default sort
//	page      zero based page index
//	pageSize  one of elo.PageSizeOptions
func parseViewState(query url.Values, columns elo.ColumnModel) (elo.ViewState, error) {
	state := elo.InitialViewState().OnNameInput(query.Get("name"))

	if values, ok := query["brand"]; ok {
		var brands []string
		for _, value := range values {
			brands = append(brands, strings.Split(value, ",")...)
		}
		selected, err := elo.ParseBrands(brands)
		if err != nil {
			return elo.ViewState{}, err
		}
		state = state.OnBrandSelectionChange(selected)
	}

	if _, ok := query["sort"]; ok {
		sorted, err := elo.ParseSort(columns, query.Get("sort"))
		if err != nil {
			return elo.ViewState{}, err
		}
		state.Sorted = sorted
	}

	if value := query.Get("pageSize"); value != "" {
		size, err := strconv.Atoi(value)
		if err != nil || !elo.ValidPageSize(size) {
			return elo.ViewState{}, fmt.Errorf("invalid pageSize %q (expected one of %v)", value, elo.PageSizeOptions)
		}
		state = state.OnPageSizeChange(size)
	}

	if value := query.Get("page"); value != "" {
		page, err := strconv.Atoi(value)
		if err != nil || page < 0 {
			return elo.ViewState{}, fmt.Errorf("invalid page %q", value)
		}
		state = state.OnPageChange(page)
	}

	return state, nil
}
