package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm is the modal shown when a navigation or delete needs an
// explicit yes/no. Only one confirm is ever visible at a time.
type Confirm struct {
	Question string
	YesLabel string
	NoLabel  string
}

func NewConfirm(question string) Confirm {
	return Confirm{
		Question: question,
		YesLabel: "[y] yes",
		NoLabel:  "[n] no",
	}
}

// View renders the modal centered in the given width.
func (c Confirm) View(styles Styles, width int) string {
	var sb strings.Builder
	sb.WriteString(styles.Warning.Render(c.Question))
	sb.WriteString("\n\n")
	sb.WriteString(styles.Bold.Render(c.YesLabel))
	sb.WriteString("   ")
	sb.WriteString(styles.Muted.Render(c.NoLabel))

	box := styles.Modal.Render(sb.String())
	if width <= lipgloss.Width(box) {
		return box
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
