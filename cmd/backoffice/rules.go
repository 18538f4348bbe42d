package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"backoffice/cmd/backoffice/ui"
	"backoffice/internal/api"
	"backoffice/internal/guard"
	"backoffice/internal/optimistic"
	"backoffice/internal/rest"
)

type offerDetail struct {
	offer api.Offer
}

// ruleEditorTarget is the guard target parked when the user backs out
// of a dirty inline edit, as opposed to leaving the page.
const ruleEditorTarget = "rule-editor"

// rulesEditor is the nested CRUD screen for one offer's rules. The
// rule list is an optimistic store: rows change before the server
// answers and roll back when it refuses.
type rulesEditor struct {
	offer   api.Offer
	mutator *optimistic.Mutator[api.OfferRule, *rest.Form]
	guard   *guard.Guard

	cursor int

	// Inline editor state. editIndex is -1 while creating.
	editing      bool
	editIndex    int
	seatsInput   textinput.Model
	descInput    textinput.Model
	seatsFocused bool
	initialSeats string
	initialDesc  string
}

func newRulesEditor(detail offerDetail, client *rest.Client, g *guard.Guard, log *zap.Logger) rulesEditor {
	list := optimistic.NewList[api.OfferRule]()
	list.Set(detail.offer.OfferRules)

	mutator := optimistic.NewMutator[api.OfferRule, *rest.Form](
		list, client.OfferRules(detail.offer.ID), log)
	// The dirty bit lifts only once the server confirmed the write.
	mutator.OnSettle(g.MarkSaved)

	seats := textinput.New()
	seats.Placeholder = "seats"
	seats.CharLimit = 6
	seats.Width = 8

	desc := textinput.New()
	desc.Placeholder = "description"
	desc.CharLimit = 120
	desc.Width = 40

	return rulesEditor{
		offer:      detail.offer,
		mutator:    mutator,
		guard:      g,
		editIndex:  -1,
		seatsInput: seats,
		descInput:  desc,
	}
}

func (ed *rulesEditor) openEditor(index int) {
	ed.editing = true
	ed.editIndex = index
	ed.seatsFocused = true
	if index >= 0 {
		if rule, err := ed.mutator.List().At(index); err == nil {
			ed.seatsInput.SetValue(strconv.Itoa(rule.NbSeats))
			ed.descInput.SetValue(rule.Description)
		}
	} else {
		ed.seatsInput.SetValue("")
		ed.descInput.SetValue("")
	}
	ed.initialSeats = ed.seatsInput.Value()
	ed.initialDesc = ed.descInput.Value()
	ed.seatsInput.Focus()
	ed.descInput.Blur()
}

func (ed *rulesEditor) closeEditor() {
	ed.editing = false
	ed.editIndex = -1
	ed.seatsInput.Blur()
	ed.descInput.Blur()
}

// markDirtyIfChanged arms the guard on the first real divergence.
func (ed *rulesEditor) markDirtyIfChanged() {
	if ed.seatsInput.Value() != ed.initialSeats || ed.descInput.Value() != ed.initialDesc {
		ed.guard.MarkDirty()
	}
}

func (ed *rulesEditor) View(styles ui.Styles) string {
	title := fmt.Sprintf("Offer rules — %s", ed.offer.URI)
	table := ui.NewTable(title, "DESCRIPTION", "SEATS", "AVAILABLE", "STATE", "START", "END")
	for i, entry := range ed.mutator.List().Entries() {
		switch entry.State {
		case optimistic.Pending:
			table.AddRow(ui.RowPending, ruleRow(entry.Value)...)
		default:
			state := ui.RowNormal
			if i == ed.cursor && !ed.editing {
				state = ui.RowSelected
			}
			table.AddRow(state, ruleRow(entry.Value)...)
		}
	}
	out := table.View(styles)

	if ed.editing {
		verb := "edit rule"
		if ed.editIndex < 0 {
			verb = "new rule"
		}
		out += "\n" + styles.Bold.Render(verb) + "  " +
			ed.descInput.View() + "  " + ed.seatsInput.View() +
			styles.Help.Render("  (tab to switch, enter to save)")
	}
	return out
}

// handleDetailKey routes keys while the nested editor is open.
func (m dashboardModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.detail

	if ed.editing {
		switch msg.Type {
		case tea.KeyEsc:
			// Abandoning an edit is a navigation in miniature.
			if m.guard.Intercept(ruleEditorTarget) {
				m.confirmKind = confirmNavigation
				return m, nil
			}
			ed.closeEditor()
			return m, nil
		case tea.KeyTab:
			ed.seatsFocused = !ed.seatsFocused
			if ed.seatsFocused {
				ed.seatsInput.Focus()
				ed.descInput.Blur()
			} else {
				ed.descInput.Focus()
				ed.seatsInput.Blur()
			}
			return m, nil
		case tea.KeyEnter:
			return m.saveRule()
		}
		var cmd tea.Cmd
		if ed.seatsFocused {
			ed.seatsInput, cmd = ed.seatsInput.Update(msg)
		} else {
			ed.descInput, cmd = ed.descInput.Update(msg)
		}
		ed.markDirtyIfChanged()
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.detail = nil
		return m, nil

	case "up", "k":
		if ed.cursor > 0 {
			ed.cursor--
		}
		return m, nil

	case "down", "j":
		if ed.cursor < ed.mutator.List().Len()-1 {
			ed.cursor++
		}
		return m, nil

	case "n":
		if !m.loading {
			ed.openEditor(-1)
		}
		return m, nil

	case "e":
		if m.loading {
			return m, nil
		}
		if rule, err := ed.mutator.List().At(ed.cursor); err == nil && rule.CanEdit {
			ed.openEditor(ed.cursor)
		} else {
			m.status = m.styles.Warning.Render("this rule cannot be edited")
		}
		return m, nil

	case "d":
		if m.loading {
			return m, nil
		}
		if rule, err := ed.mutator.List().At(ed.cursor); err == nil && rule.CanEdit {
			m.confirmKind = confirmDelete
		} else {
			m.status = m.styles.Warning.Render("this rule cannot be deleted")
		}
		return m, nil

	case "q", "ctrl+c":
		m.cancelPage()
		m.form.Stop()
		return m, tea.Quit
	}
	return m, nil
}

// saveRule dispatches the optimistic create or update.
func (m dashboardModel) saveRule() (tea.Model, tea.Cmd) {
	ed := m.detail
	seats, err := strconv.Atoi(ed.seatsInput.Value())
	if err != nil || seats < 0 {
		// Client-side validation never reaches the network layer.
		m.status = m.styles.Error.Render("seats must be a non-negative number")
		return m, nil
	}
	desc := ed.descInput.Value()

	payload := rest.NewForm().
		SetInt("nb_seats", seats).
		Set("description", desc)

	ctx := m.pageCtx
	mutator := ed.mutator
	m.loading = true

	if ed.editIndex < 0 {
		// Placeholder mirrors the submitted values; derived fields get
		// their defaults until the server answers.
		placeholder := api.OfferRule{
			Description:      desc,
			NbSeats:          seats,
			NbAvailableSeats: seats,
			IsActive:         true,
			CanEdit:          false,
		}
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			_, err := mutator.Create(ctx, payload, placeholder)
			return ruleMutatedMsg{err}
		})
	}

	index := ed.editIndex
	original, aerr := mutator.List().At(index)
	if aerr != nil {
		return m, func() tea.Msg { return errorMsg{aerr} }
	}
	optimisticRule := original.WithSeats(seats)
	optimisticRule.Description = desc
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		_, err := mutator.Update(ctx, index, optimisticRule, payload)
		return ruleMutatedMsg{err}
	})
}

// deleteSelectedRule runs after the confirm modal was accepted.
func (m dashboardModel) deleteSelectedRule() (tea.Model, tea.Cmd) {
	ed := m.detail
	index := ed.cursor
	ctx := m.pageCtx
	mutator := ed.mutator
	m.loading = true
	if ed.cursor >= mutator.List().Len()-1 && ed.cursor > 0 {
		ed.cursor--
	}
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return ruleMutatedMsg{mutator.Delete(ctx, index)}
	})
}
