package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Table renders aligned columns, truncating the last column to fit the terminal.
type Table struct {
	// Headers contains the column header names.
	Headers []string

	// Rows contains all data rows.
	Rows [][]string

	// MaxWidth caps the total rendered width. Zero means the terminal width,
	// or no cap when stdout is not a terminal.
	MaxWidth int
}

// colGap separates columns.
const colGap = "  "

// NewTable creates a new table with the specified headers.
//
// Parameters:
//   - headers: Column header names
//
// Returns:
//   - *Table: A new table instance
func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a data row to the table.
//
// Parameters:
//   - values: Cell values for the row, may contain ANSI styling
func (t *Table) AddRow(values ...string) {
	t.Rows = append(t.Rows, values)
}

// columnWidths computes the display width of each column.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range t.Rows {
		for i, val := range row {
			if i < len(widths) {
				if w := lipgloss.Width(val); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	limit := t.MaxWidth
	if limit == 0 {
		limit = terminalWidth()
	}
	if limit > 0 && len(widths) > 0 {
		fixed := len(colGap) * (len(widths) - 1)
		for _, w := range widths[:len(widths)-1] {
			fixed += w
		}
		last := len(widths) - 1
		if room := limit - fixed; room < widths[last] {
			widths[last] = max(room, 4)
		}
	}
	return widths
}

// Render writes the table to the ui output writer.
func (t *Table) Render() {
	t.RenderTo(Stdout())
}

// RenderTo writes the table to w.
//
// Parameters:
//   - w: Destination writer
func (t *Table) RenderTo(w io.Writer) {
	if len(t.Headers) == 0 {
		return
	}
	widths := t.columnWidths()

	var headerCells []string
	for i, header := range t.Headers {
		headerCells = append(headerCells, TableHeaderStyle.Render(padRight(header, widths[i])))
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(headerCells, colGap), " "))

	total := len(colGap) * (len(widths) - 1)
	for _, width := range widths {
		total += width
	}
	_, _ = fmt.Fprintln(w, DimStyle.Render(strings.Repeat("─", total)))

	for _, row := range t.Rows {
		var cells []string
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			val = truncateWithEllipsis(val, widths[i])
			cells = append(cells, TableCellStyle.Render(padRight(val, widths[i])))
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, colGap), " "))
	}
}

// truncateWithEllipsis truncates a plain string to width display columns.
// Styled strings are returned unchanged.
func truncateWithEllipsis(s string, width int) string {
	if lipgloss.Width(s) <= width || strings.Contains(s, "\x1b[") {
		return s
	}
	runes := []rune(s)
	if width >= len(runes) {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// terminalWidth returns stdout's width, or 0 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
