package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"backoffice/cmd/backoffice/ui"
	"backoffice/internal/config"
	"backoffice/internal/filter"
	"backoffice/internal/guard"
	"backoffice/internal/rest"
)

// Messages for tea updates
type (
	// queryChangedMsg arrives when the debounced filter form settles.
	queryChangedMsg struct{ values url.Values }
	resultsMsg      struct{ listing listing }
	offerOpenedMsg  struct{ detail offerDetail }
	ruleMutatedMsg  struct{ err error }
	errorMsg        struct{ err error }
)

// dashboardModel is the root model. It owns the page navigation, the
// filter form, the guard, and the currently open nested editor.
type dashboardModel struct {
	cfg    *config.Config
	client *rest.Client
	styles ui.Styles
	log    *zap.Logger

	filterInput textinput.Model
	form        *filter.Form
	spinner     spinner.Model
	guard       *guard.Guard

	active    page
	loading   bool
	status    string
	width     int
	height    int
	cursor    int
	current   listing
	lastQuery url.Values

	// detail, when non-nil, replaces the listing with the offer's
	// nested rule editor.
	detail *rulesEditor

	// confirm distinguishes the two modal flavors sharing y/n keys.
	confirmKind confirmKind

	// pageCtx scopes in-flight requests to the visible page; switching
	// pages cancels them so a stale response never lands.
	pageCtx    context.Context
	cancelPage context.CancelFunc
}

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmNavigation
	confirmDelete
)

func newDashboard(cfg *config.Config, client *rest.Client, form *filter.Form, log *zap.Logger) dashboardModel {
	styles := ui.DefaultStyles()
	if cfg.UI.Theme == "light" {
		styles = ui.NewStyles(ui.LightTheme())
	}

	ti := textinput.New()
	ti.Placeholder = "filter (Enter to apply now, Esc to clear)"
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.PromptStyle = styles.Prompt

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Prompt

	ctx, cancel := context.WithCancel(context.Background())

	return dashboardModel{
		cfg:         cfg,
		client:      client,
		styles:      styles,
		log:         log,
		filterInput: ti,
		form:        form,
		spinner:     sp,
		guard:       guard.New(),
		active:      pageOrganizations,
		loading:     true,
		pageCtx:     ctx,
		cancelPage:  cancel,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetch(m.active, nil),
	)
}

// fetch loads one listing in the background.
func (m dashboardModel) fetch(p page, query url.Values) tea.Cmd {
	ctx := m.pageCtx
	client := m.client
	return func() tea.Msg {
		l, err := fetchListing(ctx, client, p, query)
		if err != nil {
			return errorMsg{err}
		}
		return resultsMsg{l}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filterInput.Width = msg.Width - 4
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case queryChangedMsg:
		m.lastQuery = msg.values
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.fetch(m.active, msg.values))

	case resultsMsg:
		if msg.listing.page != m.active {
			// Answer for a page we already left.
			return m, nil
		}
		m.loading = false
		m.current = msg.listing
		if m.cursor >= len(m.current.rows) {
			m.cursor = 0
		}
		return m, nil

	case offerOpenedMsg:
		m.loading = false
		ed := newRulesEditor(msg.detail, m.client, m.guard, m.log)
		m.detail = &ed
		return m, nil

	case ruleMutatedMsg:
		m.loading = false
		if msg.err != nil {
			// The mutator already rolled the list back; the editor
			// stays open so the user can retry or bail out.
			m.status = m.styles.Error.Render(describeError(msg.err))
		} else {
			m.status = m.styles.Success.Render("saved")
			if m.detail != nil {
				// Close only on confirmation, never optimistically.
				m.detail.closeEditor()
			}
		}
		return m, nil

	case errorMsg:
		m.loading = false
		m.status = m.styles.Error.Render(describeError(msg.err))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.filterInput.Focused() {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal first: it swallows every key until answered.
	if m.confirmKind != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// The nested editor handles its own keys while open.
	if m.detail != nil {
		return m.handleDetailKey(msg)
	}

	if m.filterInput.Focused() {
		switch msg.Type {
		case tea.KeyEnter:
			// Explicit submit path, no debounce.
			m.form.Set("query", m.filterInput.Value())
			m.form.Submit()
			m.filterInput.Blur()
			return m, nil
		case tea.KeyEsc:
			m.filterInput.SetValue("")
			m.filterInput.Blur()
			m.form.Reset()
			return m, nil
		default:
			before := m.filterInput.Value()
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			// Only an actual edit feeds the debounce timer; cursor
			// movement must not re-arm it with the same query.
			if v := m.filterInput.Value(); v != before {
				m.form.Set("query", v)
			}
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.cancelPage()
		m.form.Stop()
		return m, tea.Quit

	case "/":
		m.filterInput.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.current.rows)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.active == pageOffers && m.cursor < len(m.current.ids) {
			return m.openOffer(m.current.ids[m.cursor])
		}
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetch(m.active, m.lastQuery))

	case "s":
		// Persist the filter snapshot; restoring it reproduces the
		// same filtered listing.
		encoded := m.form.Encode()
		if encoded == "" {
			m.status = m.styles.Warning.Render("nothing to save, no filters set")
			return m, nil
		}
		name := strings.ToLower(pageTitles[m.active])
		m.cfg.SaveView(name, encoded)
		if err := m.cfg.Save(configPath); err != nil {
			m.status = m.styles.Error.Render(describeError(err))
		} else {
			m.status = m.styles.Success.Render("view saved: " + name)
		}
		return m, nil

	case "v":
		name := strings.ToLower(pageTitles[m.active])
		saved, ok := m.cfg.Views[name]
		if !ok {
			m.status = m.styles.Warning.Render("no saved view for " + pageTitles[m.active])
			return m, nil
		}
		values, err := url.ParseQuery(saved)
		if err != nil {
			m.status = m.styles.Error.Render(describeError(err))
			return m, nil
		}
		m.form.Restore(values)
		m.filterInput.SetValue(values.Get("query"))
		m.lastQuery = values
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetch(m.active, values))

	case "1", "2", "3", "4", "5", "6", "7", "8":
		idx, _ := strconv.Atoi(msg.String())
		return m.navigate(pageOrder[idx-1])
	}
	return m, nil
}

// navigate switches pages through the guard.
func (m dashboardModel) navigate(target page) (tea.Model, tea.Cmd) {
	if m.guard.Intercept(pageTitles[target]) {
		m.confirmKind = confirmNavigation
		return m, nil
	}
	return m.switchTo(target)
}

func (m dashboardModel) switchTo(target page) (tea.Model, tea.Cmd) {
	m.cancelPage()
	m.pageCtx, m.cancelPage = context.WithCancel(context.Background())
	m.active = target
	m.detail = nil
	m.cursor = 0
	m.status = ""
	m.loading = true
	m.filterInput.SetValue("")
	// Clear the filters silently; the direct fetch below is the only
	// request a page switch issues.
	m.form.Restore(url.Values{})
	return m, tea.Batch(m.spinner.Tick, m.fetch(target, nil))
}

func (m dashboardModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		kind := m.confirmKind
		m.confirmKind = confirmNone
		if kind == confirmNavigation {
			target, ok := m.guard.Accept()
			if !ok {
				return m, nil
			}
			for _, p := range pageOrder {
				if pageTitles[p] == target {
					return m.switchTo(p)
				}
			}
			if target == ruleEditorTarget && m.detail != nil {
				m.detail.closeEditor()
			}
			return m, nil
		}
		if kind == confirmDelete && m.detail != nil {
			return m.deleteSelectedRule()
		}
		return m, nil

	case "n", "N", "esc":
		m.confirmKind = confirmNone
		m.guard.Decline()
		return m, nil
	}
	return m, nil
}

func (m dashboardModel) openOffer(id string) (tea.Model, tea.Cmd) {
	m.loading = true
	ctx := m.pageCtx
	client := m.client
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		offer, err := client.Offers().Get(ctx, id, nil)
		if err != nil {
			return errorMsg{err}
		}
		return offerOpenedMsg{offerDetail{offer: offer}}
	})
}

func (m dashboardModel) View() string {
	var out string

	out += m.renderTabs() + "\n"
	out += m.filterInput.View() + "\n\n"

	switch {
	case m.detail != nil:
		out += m.detail.View(m.styles)
	case m.loading:
		out += m.spinner.View() + " loading " + pageTitles[m.active] + "...\n"
	default:
		out += m.renderListing()
	}

	if m.status != "" {
		out += "\n" + m.status
	}
	out += "\n" + m.renderHelp()

	if m.confirmKind != confirmNone {
		question := "Discard unsaved changes?"
		if m.confirmKind == confirmDelete {
			question = "Delete this rule?"
		}
		out += "\n" + ui.NewConfirm(question).View(m.styles, m.width)
	}
	return out
}

func (m dashboardModel) renderTabs() string {
	var out string
	for i, p := range pageOrder {
		label := fmt.Sprintf("%d:%s", i+1, pageTitles[p])
		if p == m.active {
			out += m.styles.ActiveTab.Render(label)
		} else {
			out += m.styles.Tab.Render(label)
		}
	}
	return out
}

func (m dashboardModel) renderListing() string {
	title := fmt.Sprintf("%s (%d)", pageTitles[m.active], m.current.count)
	table := ui.NewTable(title, m.current.headers...)
	for i, row := range m.current.rows {
		state := ui.RowNormal
		if i == m.cursor {
			state = ui.RowSelected
		}
		table.AddRow(state, row...)
	}
	return table.View(m.styles)
}

func (m dashboardModel) renderHelp() string {
	if m.detail != nil {
		return m.styles.Help.Render("n new · e edit · d delete · +/- seats · enter save · esc back")
	}
	return m.styles.Help.Render("1-8 pages · / filter · enter open · s/v save/load view · r reload · q quit")
}

// describeError keeps field-validation detail visible in the status
// line; everything else collapses to the message.
func describeError(err error) string {
	return err.Error()
}

// runDashboard builds the model, the debounced filter form, and the
// program, then blocks until quit.
func runDashboard(cfg *config.Config, client *rest.Client, log *zap.Logger) error {
	delay := time.Duration(cfg.UI.DebounceMs) * time.Millisecond

	// The form emits into the running program; the pointer is bound
	// after construction because each needs the other.
	var prog *tea.Program
	form := filter.New(delay, func(values url.Values) {
		if prog != nil {
			prog.Send(queryChangedMsg{values})
		}
	})

	m := newDashboard(cfg, client, form, log)
	prog = tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	form.Stop()
	return err
}
