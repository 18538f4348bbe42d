package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RowState selects the style a table row renders with.
type RowState int

const (
	RowNormal RowState = iota
	// RowSelected is the cursor row.
	RowSelected
	// RowPending marks an optimistic placeholder: dimmed, not selectable.
	RowPending
)

// Row is one rendered table line.
type Row struct {
	Cells []string
	State RowState
}

// Table renders entity listings with a cursor and optimistic rows.
type Table struct {
	Title   string
	Headers []string
	Rows    []Row
}

func NewTable(title string, headers ...string) *Table {
	return &Table{Title: title, Headers: headers}
}

func (t *Table) AddRow(state RowState, cells ...string) {
	t.Rows = append(t.Rows, Row{Cells: cells, State: state})
}

// View renders the table with the provided styles.
func (t *Table) View(styles Styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	// Column widths from headers and every row.
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row.Cells {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	total := len(t.Headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", total)) + "\n")

	for _, row := range t.Rows {
		rowStyle := styles.Body.Padding(0, 1)
		switch row.State {
		case RowSelected:
			rowStyle = styles.Selected.Padding(0, 1)
		case RowPending:
			rowStyle = styles.PendingRow.Padding(0, 1)
		}
		for i, cell := range row.Cells {
			if i < len(widths) {
				sb.WriteString(rowStyle.Width(widths[i]).Render(cell))
				if i < len(row.Cells)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
