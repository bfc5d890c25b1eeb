// Package render draws the console grids: client-side global filter,
// column sort and pagination over already-fetched rows, plus CSV
// export of the visible view.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one grid column. Numeric columns sort by value
// instead of lexically.
type Column struct {
	Key     string
	Title   string
	Numeric bool
}

// Grid is an in-memory tabular view.
type Grid struct {
	Columns []Column
	Rows    [][]string
}

// NewGrid builds a grid from columns and rows. Rows shorter than the
// column set are padded with empty cells.
func NewGrid(columns []Column, rows [][]string) *Grid {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) < len(columns) {
			p := make([]string, len(columns))
			copy(p, row)
			row = p
		}
		padded[i] = row
	}
	return &Grid{Columns: columns, Rows: padded}
}

// Filter keeps rows where any cell contains the query,
// case-insensitively. An empty query keeps everything.
func (g *Grid) Filter(query string) *Grid {
	if strings.TrimSpace(query) == "" {
		return g
	}
	needle := strings.ToLower(query)
	var rows [][]string
	for _, row := range g.Rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				rows = append(rows, row)
				break
			}
		}
	}
	return &Grid{Columns: g.Columns, Rows: rows}
}

// Sort orders rows by the named column. Unknown keys leave the grid
// untouched. The sort is stable so equal rows keep fetch order.
func (g *Grid) Sort(key string, desc bool) *Grid {
	idx := -1
	numeric := false
	for i, col := range g.Columns {
		if strings.EqualFold(col.Key, key) {
			idx = i
			numeric = col.Numeric
			break
		}
	}
	if idx < 0 {
		return g
	}

	rows := make([][]string, len(g.Rows))
	copy(rows, g.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][idx], rows[j][idx]
		var less bool
		if numeric {
			na, _ := strconv.ParseFloat(a, 64)
			nb, _ := strconv.ParseFloat(b, 64)
			less = na < nb
		} else {
			less = strings.ToLower(a) < strings.ToLower(b)
		}
		if desc {
			return !less && a != b
		}
		return less
	})
	return &Grid{Columns: g.Columns, Rows: rows}
}

// Paginate returns the requested 1-based page and the page count.
func (g *Grid) Paginate(page, size int) (*Grid, int) {
	if size <= 0 {
		size = 10
	}
	pages := (len(g.Rows) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if end > len(g.Rows) {
		end = len(g.Rows)
	}
	return &Grid{Columns: g.Columns, Rows: g.Rows[start:end]}, pages
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// View renders the grid as a bordered text table.
func (g *Grid) View() string {
	widths := make([]int, len(g.Columns))
	for i, col := range g.Columns {
		widths[i] = lipgloss.Width(col.Title)
	}
	for _, row := range g.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	for i, col := range g.Columns {
		sb.WriteString(headerStyle.Width(widths[i]).Render(col.Title))
		if i < len(g.Columns)-1 {
			sb.WriteString(mutedStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	total := len(g.Columns) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	if len(g.Rows) == 0 {
		sb.WriteString(mutedStyle.Render("No Data"))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, row := range g.Rows {
		for i := range g.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(cellStyle.Width(widths[i]).Render(cell))
			if i < len(g.Columns)-1 {
				sb.WriteString(mutedStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// PageFooter renders the "page x of y" line.
func PageFooter(page, pages, total int) string {
	return mutedStyle.Render(fmt.Sprintf("page %d of %d (%d rows)", page, pages, total))
}
