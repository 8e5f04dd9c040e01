package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ForceQuit   key.Binding
	Quit        key.Binding
	SwitchFocus key.Binding
	SwitchTab   key.Binding
	TradeIDTab  key.Binding
	CptyTab     key.Binding
	Help        key.Binding
	Close       key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Submit key.Binding
	Reset  key.Binding

	Sort            key.Binding
	Filter          key.Binding
	ClearFilter     key.Binding
	ClearAllFilters key.Binding
	Columns         key.Binding
	SelectAll       key.Binding
	ClearAll        key.Binding
	Toggle          key.Binding
	Narrow          key.Binding
	Widen           key.Binding
	Detail          key.Binding
	NextPage        key.Binding
	PrevPage        key.Binding
	RowsPerPage     key.Binding

	Price     key.Binding
	SACCR     key.Binding
	EditNotes key.Binding
}

func DefaultKeyMap() keyMap {
	return keyMap{
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "form/grid")),
		SwitchTab:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "search tab")),
		TradeIDTab:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "trade id tab")),
		CptyTab:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "counterparty tab")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),

		Sort:            key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Filter:          key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		ClearFilter:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filter")),
		ClearAllFilters: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all filters")),
		Columns:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "columns")),
		SelectAll:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		ClearAll:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "clear all")),
		Toggle:          key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Narrow:          key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "narrow")),
		Widen:           key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "widen")),
		Detail:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		NextPage:        key.NewBinding(key.WithKeys("pgdown", "n"), key.WithHelp("n", "next page")),
		PrevPage:        key.NewBinding(key.WithKeys("pgup", "p"), key.WithHelp("p", "prev page")),
		RowsPerPage:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rows/page")),

		Price:     key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "price")),
		SACCR:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "SACCR")),
		EditNotes: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "notes")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.Sort, k.Filter, k.Columns, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchFocus, k.SwitchTab, k.TradeIDTab, k.CptyTab, k.Submit, k.Reset},
		{k.Up, k.Down, k.Left, k.Right, k.NextPage, k.PrevPage},
		{k.Sort, k.Filter, k.ClearFilter, k.ClearAllFilters, k.Columns},
		{k.Narrow, k.Widen, k.Toggle, k.Detail, k.RowsPerPage},
		{k.Price, k.SACCR, k.EditNotes, k.Close, k.Quit},
	}
}
