package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trade-search/internal/grid"
	"trade-search/internal/search"
	"trade-search/internal/store"
	"trade-search/internal/types"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusGrid
)

const (
	// gridHeaderY is the screen line of the trades header: title, tabs, the
	// six-line form panel and the toolbar come first.
	gridHeaderY = 9
	// formLines is the number of field lines in the form panel.
	formLines = 3
	// footerLines are the status and help lines under the grid.
	footerLines = 2
)

// Model is the root bubbletea model of the dashboard.
type Model struct {
	ctx    context.Context
	cfg    *store.Config
	keys   keyMap
	styles Styles
	help   help.Model

	page   *search.Page
	inputs map[search.Field]*textinput.Model
	field  int

	trades  *gridView[types.TradeRow]
	overlay *overlayView

	focus     focusArea
	status    string
	statusErr bool

	width, height int
}

func New(ctx context.Context, cfg *store.Config, page *search.Page, trades grid.Grid[types.TradeRow]) Model {
	if cfg == nil {
		cfg = store.Default()
	}
	keys := DefaultKeyMap()
	styles := DefaultStyles()

	inputs := make(map[search.Field]*textinput.Model)
	for _, f := range []search.Field{search.FieldTradeID, search.FieldCounterparty, search.FieldWCISID} {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "Enter " + f.Label()
		ti.CharLimit = 64
		ti.Width = 32
		ti.SetValue(page.Value(f))
		inputs[f] = &ti
	}

	m := Model{
		ctx:    ctx,
		cfg:    cfg,
		keys:   keys,
		styles: styles,
		help:   help.New(),
		page:   page,
		inputs: inputs,
		trades: newGridView(trades, keys, styles, cfg.Grid.PixelsPerCell),
		width:  160,
		height: 48,
	}
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.MouseMsg:
		if m.overlay != nil {
			_, cmd := m.overlay.Update(m.ctx, msg)
			return m, cmd
		}
		return m, m.trades.Update(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if in, ok := m.focusedInput(); ok {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		closed, cmd := m.overlay.Update(m.ctx, msg)
		if closed {
			m.overlay = nil
			m.setStatus("", false)
		}
		return m, cmd
	}

	if m.focus == focusGrid && m.trades.Capturing() {
		return m, m.trades.Update(msg)
	}

	if key.Matches(msg, m.keys.SwitchFocus) {
		if m.focus == focusForm {
			return m, m.setFocus(focusGrid)
		}
		return m, m.setFocus(focusForm)
	}
	if key.Matches(msg, m.keys.SwitchTab) {
		if m.page.Tab() == types.TabTradeID {
			return m, m.switchTab(types.TabCounterparty)
		}
		return m, m.switchTab(types.TabTradeID)
	}

	if m.focus == focusGrid {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.TradeIDTab):
			return m, m.switchTab(types.TabTradeID)
		case key.Matches(msg, m.keys.CptyTab):
			return m, m.switchTab(types.TabCounterparty)
		}
		return m, m.trades.Update(msg)
	}
	return m, m.handleFormKey(msg)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	f := m.currentField()
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return nil
	case key.Matches(msg, m.keys.Reset):
		m.page.Reset()
		m.syncInputs()
		m.setStatus("Form cleared", false)
		return nil
	case msg.Type == tea.KeyUp:
		return m.moveField(-1)
	case msg.Type == tea.KeyDown:
		return m.moveField(1)
	case f == search.FieldSourceSystem:
		switch {
		case key.Matches(msg, m.keys.TradeIDTab):
			return m.switchTab(types.TabTradeID)
		case key.Matches(msg, m.keys.CptyTab):
			return m.switchTab(types.TabCounterparty)
		case key.Matches(msg, m.keys.Left):
			m.page.CycleSourceSystem(-1)
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Toggle):
			m.page.CycleSourceSystem(1)
		}
		return nil
	}

	in := m.inputs[f]
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	_ = m.page.SetValue(f, in.Value())
	return cmd
}

func (m *Model) submit() {
	ov, err := m.page.Submit(m.ctx)
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		if m.page.Tab() == types.TabCounterparty {
			m.setStatus("Enter a counterparty or WCIS ID to search", true)
		} else {
			m.setStatus("Enter a trade ID to search", true)
		}
		return
	case err != nil:
		m.setStatus(err.Error(), true)
		return
	}
	m.overlay = newOverlayView(ov, m.keys, m.styles, m.cfg.Grid.PixelsPerCell)
	m.overlay.SetSize(m.width, m.height)
	m.setStatus("", false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m *Model) currentField() search.Field {
	fields := search.TabFields(m.page.Tab())
	m.field = min(max(m.field, 0), len(fields)-1)
	return fields[m.field]
}

func (m *Model) focusedInput() (*textinput.Model, bool) {
	if m.focus != focusForm || m.overlay != nil {
		return nil, false
	}
	in, ok := m.inputs[m.currentField()]
	return in, ok
}

func (m *Model) moveField(step int) tea.Cmd {
	if in, ok := m.focusedInput(); ok {
		in.Blur()
	}
	m.field += step
	m.currentField()
	if in, ok := m.focusedInput(); ok {
		return in.Focus()
	}
	return nil
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	if in, ok := m.focusedInput(); ok {
		in.Blur()
	}
	m.focus = f
	if in, ok := m.focusedInput(); ok {
		return in.Focus()
	}
	return nil
}

func (m *Model) switchTab(tab types.SearchTab) tea.Cmd {
	if in, ok := m.focusedInput(); ok {
		in.Blur()
	}
	m.page.SetTab(tab)
	m.field = 0
	m.setStatus("", false)
	return nil
}

// syncInputs copies the page's field values back into the text inputs.
func (m *Model) syncInputs() {
	for f, in := range m.inputs {
		in.SetValue(m.page.Value(f))
	}
}

func (m *Model) sidebarWidth() int {
	if m.cfg.UI.SidebarWidth == 0 {
		return 0
	}
	return m.cfg.UI.SidebarWidth + 1
}

func (m *Model) layout() {
	x := m.sidebarWidth()
	m.trades.SetBounds(x, gridHeaderY, m.width-x, m.height-gridHeaderY-footerLines)
	if m.overlay != nil {
		m.overlay.SetSize(m.width, m.height)
	}
	m.help.Width = max(0, m.width-x)
}

func (m Model) View() string {
	if m.overlay != nil {
		return m.overlay.View() + "\n" + m.help.View(m.keys)
	}

	content := strings.Join([]string{
		m.styles.Title.Render("Trade Search"),
		m.tabsView(),
		m.formView(),
		m.trades.Toolbar("Trades"),
		m.trades.View(),
		m.statusView(),
		m.help.View(m.keys),
	}, "\n")

	sw := m.cfg.UI.SidebarWidth
	if sw == 0 {
		return content
	}
	sidebar := m.styles.Sidebar.
		Width(sw).
		Height(lipgloss.Height(content)).
		Render(m.sidebarView())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
}

func (m Model) sidebarView() string {
	return strings.Join([]string{
		m.styles.Muted.Render(" MENU"),
		m.styles.SidebarActive.Render("Trade Search"),
	}, "\n")
}

func (m Model) tabsView() string {
	tabs := []struct {
		tab   types.SearchTab
		label string
	}{
		{types.TabTradeID, "1 Trade ID"},
		{types.TabCounterparty, "2 Counterparty"},
	}
	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := m.styles.Tab
		if m.page.Tab() == t.tab {
			style = m.styles.ActiveTab
		}
		rendered = append(rendered, style.Render(t.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) formView() string {
	fields := search.TabFields(m.page.Tab())
	lines := make([]string, 0, formLines+1)
	for i, f := range fields {
		marker := "  "
		if m.focus == focusForm && i == m.field {
			marker = m.styles.Badge.Render("▸ ")
		}
		var value string
		if f == search.FieldSourceSystem {
			sys := m.page.SourceSystem()
			if sys == "" {
				sys = m.styles.Muted.Render("Select…")
			}
			value = "‹ " + sys + " ›"
		} else {
			value = m.inputs[f].View()
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", marker, m.styles.Label.Render(fmt.Sprintf("%-14s", f.Label())), value))
	}
	for len(lines) < formLines {
		lines = append(lines, "")
	}
	lines = append(lines, m.styles.Badge.Render("[ Search ]")+"  "+m.styles.Muted.Render("[ Reset ]")+
		m.styles.Muted.Render("   enter search · ctrl+r reset"))

	panel := m.styles.Panel
	if m.focus == focusForm {
		panel = m.styles.FocusedPanel
	}
	return panel.Render(strings.Join(lines, "\n"))
}

func (m Model) statusView() string {
	if m.statusErr {
		return m.styles.Error.Render(m.status)
	}
	return m.styles.Muted.Render(m.status)
}
