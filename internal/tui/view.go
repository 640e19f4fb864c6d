package tui

import (
	"fmt"
	"strconv"
	"strings"

	"wrestler_elo/internal/domain/elo"

	"github.com/charmbracelet/lipgloss"
)

const columnSeparator = " │ "

// value columns hold numbers and are right aligned
var valueColumns = map[string]bool{
	elo.ColumnCurrentEloValue: true,
	elo.ColumnMaxEloValue:     true,
	elo.ColumnMinEloValue:     true,
}

// View renders the screen (required by Bubbletea)
func (m Model) View() string {
	view := m.view()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Current Wrestler Elo"))
	b.WriteString("\n\n")
	b.WriteString(m.renderNameFilter())
	b.WriteString("\n")
	b.WriteString(m.renderBrandSelect())
	b.WriteString("\n\n")

	selected := -1
	if m.focus == focusTable {
		selected = m.columnCursor
	}
	b.WriteString(renderTable(view, selected))
	b.WriteString("\n")
	b.WriteString(renderFooter(view))
	if !m.result.FetchedAt.IsZero() {
		b.WriteString(footerStyle.Render("  ·  updated " + m.result.FetchedAt.Format("15:04:05")))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) renderNameFilter() string {
	label := labelStyle
	if m.focus == focusName {
		label = focusedLabelStyle
	}
	return label.Render("Name   ") + m.nameInput.View()
}

// renderBrandSelect shows every option whether selected or not
func (m Model) renderBrandSelect() string {
	label := labelStyle
	if m.focus == focusBrands {
		label = focusedLabelStyle
	}

	parts := make([]string, 0, len(elo.BrandOptions()))
	for i, option := range elo.BrandOptions() {
		style := brandUnselectedStyle
		box := "[ ]"
		if elo.ContainsBrand(m.state.SelectedBrands, option.Value) {
			style = brandSelectedStyle
			box = "[x]"
		}
		item := style.Render(box + " " + option.Label)
		if m.focus == focusBrands && i == m.brandCursor {
			item = brandCursorStyle.Render(item)
		}
		parts = append(parts, item)
	}
	return label.Render("Brands ") + strings.Join(parts, "  ")
}

// RenderTableView renders a table frame without any interactive widgets,
// for printing to a terminal or a pipe.
func RenderTableView(view elo.TableView) string {
	return renderTable(view, -1) + "\n" + renderFooter(view)
}

// renderTable draws the grouped header, the leaf header with sort markers,
// and either the page rows or the placeholder row. selected is the
// highlighted leaf column, or -1.
func renderTable(view elo.TableView, selected int) string {
	headers := make([]string, len(view.Columns))
	widths := make([]int, len(view.Columns))
	for i, column := range view.Columns {
		headers[i] = column.Header + sortMarker(view.Sorted, column.ID)
		widths[i] = lipgloss.Width(headers[i])
	}
	for _, row := range view.Rows {
		for i, cell := range row.Cells {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	sep := separatorStyle.Render(columnSeparator)
	sepWidth := lipgloss.Width(columnSeparator)
	totalWidth := 0
	for i, w := range widths {
		totalWidth += w
		if i > 0 {
			totalWidth += sepWidth
		}
	}

	var lines []string

	// Grouped header row
	groups := make([]string, 0, len(view.HeaderGroups))
	start := 0
	for _, group := range view.HeaderGroups {
		w := 0
		for j := start; j < start+group.Span && j < len(widths); j++ {
			w += widths[j]
			if j > start {
				w += sepWidth
			}
		}
		groups = append(groups, groupHeaderStyle.Width(w).Align(lipgloss.Center).Render(group.Header))
		start += group.Span
	}
	lines = append(lines, strings.Join(groups, sep))

	// Leaf header row
	cells := make([]string, len(headers))
	for i, header := range headers {
		style := leafHeaderStyle
		if i == selected {
			style = selectedHeaderStyle
		}
		cells[i] = style.Width(widths[i]).Render(header)
	}
	lines = append(lines, strings.Join(cells, sep))
	lines = append(lines, separatorStyle.Render(strings.Repeat("─", totalWidth)))

	if view.NoDataText != "" {
		lines = append(lines, placeholderStyle.Width(totalWidth).Align(lipgloss.Center).Render(view.NoDataText))
		return strings.Join(lines, "\n")
	}

	for _, row := range view.Rows {
		cells := make([]string, len(widths))
		for i := range widths {
			var cell string
			if i < len(row.Cells) {
				cell = row.Cells[i]
			}
			style := cellStyle.Width(widths[i])
			if valueColumns[view.Columns[i].ID] {
				style = style.Align(lipgloss.Right)
			}
			cells[i] = style.Render(cell)
		}
		lines = append(lines, strings.Join(cells, sep))
	}
	return strings.Join(lines, "\n")
}

// sortMarker returns the arrow for a sorted column, numbered when several
// columns take part in the sort
func sortMarker(specs []elo.SortSpec, id string) string {
	for i, spec := range specs {
		if spec.ID != id {
			continue
		}
		arrow := " ▲"
		if spec.Desc {
			arrow = " ▼"
		}
		if len(specs) > 1 {
			arrow += strconv.Itoa(i + 1)
		}
		return arrow
	}
	return ""
}

func renderFooter(view elo.TableView) string {
	return footerStyle.Render(fmt.Sprintf("Page %d of %d  ·  %d rows  ·  %d per page",
		view.Page+1, view.PageCount, view.TotalRows, view.PageSize))
}
