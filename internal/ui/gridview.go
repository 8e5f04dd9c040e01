package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"trade-search/internal/format"
	"trade-search/internal/grid"
	"trade-search/internal/types"
)

type popover int

const (
	popoverNone popover = iota
	popoverFilter
	popoverColumns
	popoverDetail
)

// gutterWidth is the row marker drawn before the first column.
const gutterWidth = 4

// minCells keeps a column readable however narrow its pixel width.
const minCells = 3

// gridView renders a grid.Grid and turns keys and mouse events into grid intents.
// Column widths are kept in pixels by the grid; the view draws pxPerCell pixels
// per terminal cell.
type gridView[T any] struct {
	grid      grid.Grid[T]
	keys      keyMap
	styles    Styles
	pxPerCell int

	col      int // focused column, index into VisibleColumns
	firstCol int
	row      int // cursor within the current page
	top      int

	popover   popover
	filter    textinput.Model
	filterCol string
	colCursor int
	detail    viewport.Model

	resize grid.ResizeSession

	// Screen position of the header line, for mouse hit testing.
	originX, originY int
	width, height    int
}

type placedColumn struct {
	col types.Column
	x   int // offset from originX
	w   int
}

func newGridView[T any](g grid.Grid[T], keys keyMap, styles Styles, pxPerCell int) *gridView[T] {
	if pxPerCell <= 0 {
		pxPerCell = 8
	}
	ti := textinput.New()
	ti.Placeholder = "contains…"
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 24
	return &gridView[T]{
		grid:      g,
		keys:      keys,
		styles:    styles,
		pxPerCell: pxPerCell,
		filter:    ti,
		detail:    viewport.New(60, 12),
		width:     120,
		height:    20,
	}
}

// SetBounds places the header line at (x, y) and limits the view to w×h cells.
func (v *gridView[T]) SetBounds(x, y, w, h int) {
	v.originX, v.originY = x, y
	v.width, v.height = max(w, 1), max(h, 1)
	v.detail.Width = max(20, min(80, w-4))
	v.detail.Height = max(4, min(20, h-2))
	v.ensureVisible()
}

// Capturing reports whether a popover owns the keyboard.
func (v *gridView[T]) Capturing() bool { return v.popover != popoverNone }

func (v *gridView[T]) cells(id string) int {
	return max(minCells, v.grid.Width(id)/v.pxPerCell)
}

func (v *gridView[T]) focused() (types.Column, bool) {
	cols := v.grid.VisibleColumns()
	if len(cols) == 0 {
		return types.Column{}, false
	}
	v.col = min(max(v.col, 0), len(cols)-1)
	return cols[v.col], true
}

func (v *gridView[T]) current() (T, bool) {
	rows := v.grid.PageRows()
	if len(rows) == 0 {
		var zero T
		return zero, false
	}
	v.row = min(max(v.row, 0), len(rows)-1)
	return rows[v.row], true
}

// layout places the visible columns starting at firstCol until the width runs out.
func (v *gridView[T]) layout() []placedColumn {
	cols := v.grid.VisibleColumns()
	placed := make([]placedColumn, 0, len(cols))
	x := gutterWidth
	for i := v.firstCol; i < len(cols); i++ {
		w := v.cells(cols[i].ID)
		if len(placed) > 0 && x+w > v.width {
			break
		}
		placed = append(placed, placedColumn{col: cols[i], x: x, w: w})
		x += w + 1
	}
	return placed
}

func (v *gridView[T]) ensureVisible() {
	v.row = min(max(v.row, 0), max(len(v.grid.PageRows())-1, 0))
	rows := max(1, v.height-2)
	if v.row < v.top {
		v.top = v.row
	}
	if v.row >= v.top+rows {
		v.top = v.row - rows + 1
	}

	cols := v.grid.VisibleColumns()
	if len(cols) == 0 {
		v.col, v.firstCol = 0, 0
		return
	}
	v.col = min(max(v.col, 0), len(cols)-1)
	v.firstCol = min(max(v.firstCol, 0), len(cols)-1)
	if v.col < v.firstCol {
		v.firstCol = v.col
	}
	want := cols[v.col].ID
	for v.firstCol < v.col && !slices.ContainsFunc(v.layout(), func(p placedColumn) bool { return p.col.ID == want }) {
		v.firstCol++
	}
}

func (v *gridView[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.MouseMsg:
		v.handleMouse(msg)
	}
	return nil
}

func (v *gridView[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch v.popover {
	case popoverFilter:
		return v.handleFilterKey(msg)
	case popoverColumns:
		v.handleColumnsKey(msg)
		return nil
	case popoverDetail:
		if key.Matches(msg, v.keys.Close) || key.Matches(msg, v.keys.Detail) {
			v.popover = popoverNone
			return nil
		}
		var cmd tea.Cmd
		v.detail, cmd = v.detail.Update(msg)
		return cmd
	}

	col, hasCol := v.focused()
	switch {
	case key.Matches(msg, v.keys.Left):
		v.col--
	case key.Matches(msg, v.keys.Right):
		v.col++
	case key.Matches(msg, v.keys.Up):
		v.row--
	case key.Matches(msg, v.keys.Down):
		v.row++
	case key.Matches(msg, v.keys.NextPage):
		if info := v.grid.Page(); info.HasNext() {
			v.grid.SetPage(info.Page + 1)
			v.row, v.top = 0, 0
		}
	case key.Matches(msg, v.keys.PrevPage):
		if info := v.grid.Page(); info.HasPrev() {
			v.grid.SetPage(info.Page - 1)
			v.row, v.top = 0, 0
		}
	case key.Matches(msg, v.keys.RowsPerPage):
		v.cycleRowsPerPage()
	case key.Matches(msg, v.keys.Columns):
		v.popover = popoverColumns
		v.colCursor = 0
	case key.Matches(msg, v.keys.ClearAllFilters):
		v.grid.ClearAllFilters()
		v.row, v.top = 0, 0
	case key.Matches(msg, v.keys.Toggle):
		if r, ok := v.current(); ok {
			v.grid.ToggleRow(v.grid.Key(r))
		}
	case key.Matches(msg, v.keys.Detail):
		if r, ok := v.current(); ok {
			v.detail.SetContent(v.detailContent(r))
			v.detail.GotoTop()
			v.popover = popoverDetail
		}
	case !hasCol:
	case key.Matches(msg, v.keys.Sort):
		v.grid.SetSort(col.ID)
	case key.Matches(msg, v.keys.Filter):
		if !v.filterable(col) {
			return nil
		}
		v.filterCol = col.ID
		f, _ := v.grid.Filter(col.ID)
		v.filter.SetValue(f.Value)
		v.filter.CursorEnd()
		v.popover = popoverFilter
		return v.filter.Focus()
	case key.Matches(msg, v.keys.ClearFilter):
		v.grid.ClearFilter(col.ID)
		v.row, v.top = 0, 0
	case key.Matches(msg, v.keys.Narrow):
		v.grid.Resize(col.ID, -v.pxPerCell)
	case key.Matches(msg, v.keys.Widen):
		v.grid.Resize(col.ID, v.pxPerCell)
	}
	v.ensureVisible()
	return nil
}

func (v *gridView[T]) filterable(col types.Column) bool {
	return !col.Synthetic
}

func (v *gridView[T]) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Close):
		v.closeFilter()
		return nil
	case msg.Type == tea.KeyEnter:
		v.grid.ApplyFilter(v.filterCol, v.filter.Value())
		v.row, v.top = 0, 0
		v.closeFilter()
		return nil
	}
	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	return cmd
}

func (v *gridView[T]) closeFilter() {
	v.filter.Blur()
	v.filter.SetValue("")
	v.filterCol = ""
	v.popover = popoverNone
}

func (v *gridView[T]) handleColumnsKey(msg tea.KeyMsg) {
	cols := v.grid.Columns()
	switch {
	case key.Matches(msg, v.keys.Close), key.Matches(msg, v.keys.Columns):
		v.popover = popoverNone
	case key.Matches(msg, v.keys.Up):
		v.colCursor = max(0, v.colCursor-1)
	case key.Matches(msg, v.keys.Down):
		v.colCursor = min(len(cols)-1, v.colCursor+1)
	case key.Matches(msg, v.keys.Toggle), msg.Type == tea.KeyEnter:
		if v.colCursor < len(cols) {
			v.grid.ToggleColumn(cols[v.colCursor].ID)
		}
	case key.Matches(msg, v.keys.SelectAll):
		v.grid.SelectAllColumns()
	case key.Matches(msg, v.keys.ClearAll):
		v.grid.ClearAllColumns()
	}
	v.ensureVisible()
}

func (v *gridView[T]) cycleRowsPerPage() {
	opts := grid.RowsPerPageOptions
	i := slices.Index(opts, v.grid.Page().RowsPerPage)
	v.grid.SetRowsPerPage(opts[(i+1)%len(opts)])
	v.row, v.top = 0, 0
}

// handleMouse drives the resize session: a left press on a header border
// begins it, motion moves it and a release anywhere ends it.
func (v *gridView[T]) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != v.originY || v.resize.Active() {
			return
		}
		for i, pc := range v.layout() {
			border := v.originX + pc.x + pc.w
			if msg.X >= border-1 && msg.X <= border {
				v.resize.Begin(v.grid, pc.col.ID, msg.X*v.pxPerCell)
				return
			}
			if msg.X >= v.originX+pc.x && msg.X < border {
				v.col = v.firstCol + i
				return
			}
		}
	case tea.MouseActionMotion:
		v.resize.Move(v.grid, msg.X*v.pxPerCell)
	case tea.MouseActionRelease:
		v.resize.End()
		v.ensureVisible()
	}
}

// Toolbar is the line drawn above the header.
func (v *gridView[T]) Toolbar(title string) string {
	info := v.grid.Page()
	parts := []string{v.styles.Label.Render(fmt.Sprintf("%s (%d)", title, info.TotalRows))}
	if s := v.grid.Sort(); s.Active() {
		parts = append(parts, v.styles.Badge.Render(fmt.Sprintf("sort %s %s", s.ColumnID, s.Direction)))
	}
	if n := len(v.grid.Filters()); n > 0 {
		parts = append(parts, v.styles.Badge.Render(fmt.Sprintf("%d filter(s)", n)))
	}
	if n := len(v.grid.SelectedKeys()); n > 0 {
		parts = append(parts, v.styles.Badge.Render(fmt.Sprintf("%d selected", n)))
	}
	return strings.Join(parts, v.styles.Muted.Render(" · "))
}

func (v *gridView[T]) View() string {
	var b strings.Builder
	placed := v.layout()
	focused, _ := v.focused()

	b.WriteString(strings.Repeat(" ", gutterWidth))
	for i, pc := range placed {
		if i > 0 {
			b.WriteString(v.styles.Muted.Render("│"))
		}
		label := v.headerLabel(pc.col)
		style := v.styles.Header
		if pc.col.ID == focused.ID {
			style = v.styles.HeaderFocused
		}
		b.WriteString(style.Render(fit(label, pc.w, pc.col.Align)))
	}
	b.WriteString(v.styles.Muted.Render("│"))
	b.WriteString("\n")

	rows := v.grid.PageRows()
	if len(v.grid.VisibleColumns()) == 0 {
		b.WriteString(v.styles.Muted.Render("No columns selected. Press c to choose columns."))
		b.WriteString("\n")
	} else if len(rows) == 0 {
		b.WriteString(v.styles.Muted.Render("No rows match the current filters."))
		b.WriteString("\n")
	}

	info := v.grid.Page()
	visible := max(1, v.height-2)
	for i := v.top; i < len(rows) && i < v.top+visible; i++ {
		b.WriteString(v.renderRow(rows[i], info.From+i, placed, i == v.row))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Muted.Render(v.pager(info)))

	switch v.popover {
	case popoverFilter:
		b.WriteString("\n")
		b.WriteString(v.styles.Popover.Render(v.filterView()))
	case popoverColumns:
		b.WriteString("\n")
		b.WriteString(v.styles.Popover.Render(v.columnsView()))
	case popoverDetail:
		b.WriteString("\n")
		b.WriteString(v.styles.Popover.Render(v.detail.View()))
	}
	return b.String()
}

func (v *gridView[T]) headerLabel(col types.Column) string {
	label := col.Label
	if s := v.grid.Sort(); s.ColumnID == col.ID {
		switch s.Direction {
		case types.SortAsc:
			label += " ▲"
		case types.SortDesc:
			label += " ▼"
		}
	}
	if _, ok := v.grid.Filter(col.ID); ok {
		label += " ⚑"
	}
	return label
}

func (v *gridView[T]) renderRow(row T, n int, placed []placedColumn, cursor bool) string {
	selected := v.grid.IsSelected(v.grid.Key(row))

	mark := " "
	if selected {
		mark = "✓"
	}
	cells := make([]string, 0, len(placed))
	for _, pc := range placed {
		var s string
		if pc.col.Synthetic {
			s = "[ ]"
			if selected {
				s = "[x]"
			}
		} else {
			s = v.grid.Cell(row, pc.col.ID)
		}
		cells = append(cells, fit(s, pc.w, pc.col.Align))
	}
	line := fmt.Sprintf("%s%3d", mark, n) + strings.Join(cells, "│") + "│"
	if cursor {
		return v.styles.Cursor.Render(line)
	}
	return line
}

func (v *gridView[T]) pager(info grid.PageInfo) string {
	if info.TotalRows == 0 {
		return fmt.Sprintf("Rows per page: %d · 0 of 0", info.RowsPerPage)
	}
	return fmt.Sprintf("Rows per page: %d · %d–%d of %d · Page %d/%d",
		info.RowsPerPage, info.From, info.To, info.TotalRows, info.Page+1, info.TotalPages)
}

func (v *gridView[T]) filterView() string {
	label := v.filterCol
	for _, c := range v.grid.Columns() {
		if c.ID == v.filterCol {
			label = c.Label
		}
	}
	return fmt.Sprintf("Filter %s\n%s\n%s", label, v.filter.View(),
		v.styles.Muted.Render("enter apply · esc cancel · empty clears"))
}

func (v *gridView[T]) columnsView() string {
	var b strings.Builder
	b.WriteString("Columns\n")
	for i, c := range v.grid.Columns() {
		box := "[ ]"
		if v.grid.IsVisible(c.ID) {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, c.Label)
		if i == v.colCursor {
			line = v.styles.Cursor.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Muted.Render("space toggle · a all · d none · esc close"))
	return b.String()
}

func (v *gridView[T]) detailContent(row T) string {
	fields := v.grid.Detail(row)
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, runewidth.StringWidth(f.Label))
	}
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(v.styles.Label.Render(runewidth.FillRight(f.Label, labelWidth)))
		b.WriteString("  ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// fit truncates or pads s to exactly w cells.
func fit(s string, w int, align types.Align) string {
	if s == "" {
		s = format.Placeholder
	}
	s = runewidth.Truncate(s, w, "…")
	gap := w - runewidth.StringWidth(s)
	switch align {
	case types.AlignRight:
		return strings.Repeat(" ", gap) + s
	case types.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
