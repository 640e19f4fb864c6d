package elo

import (
	"fmt"
	"slices"
	"strings"
)

// SortSpec orders rows by one leaf column
type SortSpec struct {
	ID   string `json:"id"`
	Desc bool   `json:"desc"`
}

// DefaultSort orders by current Elo, highest first
func DefaultSort() []SortSpec {
	return []SortSpec{{ID: ColumnCurrentEloValue, Desc: true}}
}

// ValidateSort checks that every spec names a leaf column
func ValidateSort(model ColumnModel, specs []SortSpec) error {
	for _, spec := range specs {
		if _, _, ok := model.Leaf(spec.ID); !ok {
			return fmt.Errorf("unknown sort column %q", spec.ID)
		}
	}
	return nil
}

// SortRows returns a new slice ordered by specs, first spec most significant.
// Each spec uses its column's comparator, negated when Desc; ties keep input order.
// Specs naming unknown columns are ignored.
// Pure function: Does not modify input slice, returns new sorted slice
func SortRows(rows []TableRow, specs []SortSpec, model ColumnModel) []TableRow {
	sorted := make([]TableRow, len(rows))
	copy(sorted, rows)

	type sortKey struct {
		index   int
		compare func(a, b string) int
		desc    bool
	}

	var keys []sortKey
	for _, spec := range specs {
		column, index, ok := model.Leaf(spec.ID)
		if !ok {
			continue
		}
		keys = append(keys, sortKey{index: index, compare: column.Compare, desc: spec.Desc})
	}
	if len(keys) == 0 {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b TableRow) int {
		for _, key := range keys {
			result := key.compare(a.Cells[key.index], b.Cells[key.index])
			if key.desc {
				result = -result
			}
			if result != 0 {
				return result
			}
		}
		return 0
	})

	return sorted
}

// ToggleSort applies a header click to the current sort.
// A plain click on the only sorted column flips it, otherwise it replaces the
// sort with that column ascending. A multi click flips the column in place or
// appends it ascending.
// Pure function: returns a new slice
func ToggleSort(specs []SortSpec, id string, multi bool) []SortSpec {
	existing := slices.IndexFunc(specs, func(s SortSpec) bool { return s.ID == id })

	if !multi {
		if len(specs) == 1 && existing == 0 {
			return []SortSpec{{ID: id, Desc: !specs[0].Desc}}
		}
		return []SortSpec{{ID: id}}
	}

	next := slices.Clone(specs)
	if existing >= 0 {
		next[existing].Desc = !next[existing].Desc
		return next
	}
	return append(next, SortSpec{ID: id})
}

// SortDirection reports how a column is sorted: "asc", "desc" or ""
func SortDirection(specs []SortSpec, id string) string {
	for _, spec := range specs {
		if spec.ID == id {
			if spec.Desc {
				return "desc"
			}
			return "asc"
		}
	}
	return ""
}

// ParseSort reads a comma separated sort list such as "-currentEloValue,name".
// A leading "-" sorts that column descending. An empty string yields an empty sort.
func ParseSort(model ColumnModel, value string) ([]SortSpec, error) {
	specs := []SortSpec{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		spec := SortSpec{ID: part}
		if id, ok := strings.CutPrefix(part, "-"); ok {
			spec = SortSpec{ID: id, Desc: true}
		}
		if slices.ContainsFunc(specs, func(s SortSpec) bool { return s.ID == spec.ID }) {
			return nil, fmt.Errorf("sort column %q listed twice", spec.ID)
		}
		specs = append(specs, spec)
	}
	if err := ValidateSort(model, specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// FormatSort is the inverse of ParseSort
func FormatSort(specs []SortSpec) string {
	parts := make([]string, len(specs))
	for i, spec := range specs {
		if spec.Desc {
			parts[i] = "-" + spec.ID
		} else {
			parts[i] = spec.ID
		}
	}
	return strings.Join(parts, ",")
}
