package grid

import (
	"cmp"
	"slices"
	"strings"

	"trade-search/internal/columns"
	"trade-search/internal/format"
	"trade-search/internal/types"
)

// Controller is the in-memory Grid implementation. It is not safe for
// concurrent use; the shell drives it from its single update loop.
type Controller[T any] struct {
	reg  *columns.Registry[T]
	rows []T
	keys map[string]bool

	visible  map[string]bool
	sort     types.SortSpec
	filters  []types.FilterEntry
	widths   map[string]int
	minWidth int

	selected    map[string]bool
	page        int
	rowsPerPage int
}

var _ Grid[types.TradeRow] = (*Controller[types.TradeRow])(nil)

// New builds a controller over rows. All columns start visible, unsorted and
// unfiltered, each sized from its label.
func New[T any](reg *columns.Registry[T], rows []T, opts ...Option) *Controller[T] {
	o := options{minWidth: DefaultMinWidth, rowsPerPage: DefaultRowsPerPage}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller[T]{
		reg:         reg,
		rows:        slices.Clone(rows),
		keys:        make(map[string]bool, len(rows)),
		visible:     make(map[string]bool, reg.Len()),
		widths:      make(map[string]int, reg.Len()),
		minWidth:    o.minWidth,
		selected:    make(map[string]bool),
		rowsPerPage: o.rowsPerPage,
	}
	for _, r := range c.rows {
		c.keys[reg.Key(r)] = true
	}
	for _, col := range reg.Columns() {
		c.visible[col.ID] = true
		c.widths[col.ID] = max(o.minWidth, columns.InitialWidth(col.Label))
	}
	return c
}

func (c *Controller[T]) Columns() []types.Column { return c.reg.Columns() }

func (c *Controller[T]) HasColumn(id string) bool { return c.reg.Has(id) }

func (c *Controller[T]) ToggleColumn(id string) {
	if !c.reg.Has(id) {
		return
	}
	c.visible[id] = !c.visible[id]
}

func (c *Controller[T]) SelectAllColumns() {
	for _, id := range c.reg.IDs() {
		c.visible[id] = true
	}
}

func (c *Controller[T]) ClearAllColumns() {
	for _, id := range c.reg.IDs() {
		c.visible[id] = false
	}
}

// VisibleColumns returns the visible subset in registry order.
func (c *Controller[T]) VisibleColumns() []types.Column {
	out := make([]types.Column, 0, len(c.visible))
	for _, col := range c.reg.Columns() {
		if c.visible[col.ID] {
			out = append(out, col)
		}
	}
	return out
}

func (c *Controller[T]) IsVisible(id string) bool { return c.visible[id] }

// SetSort cycles asc -> desc -> none on the same column; a different column
// starts over at asc. Columns without row data cannot be sorted.
func (c *Controller[T]) SetSort(id string) {
	if _, ok := c.reg.Field(id); !ok {
		return
	}
	if c.sort.ColumnID != id {
		c.sort = types.SortSpec{ColumnID: id, Direction: types.SortAsc}
		return
	}
	switch c.sort.Direction {
	case types.SortAsc:
		c.sort.Direction = types.SortDesc
	case types.SortDesc:
		c.sort = types.SortSpec{}
	default:
		c.sort.Direction = types.SortAsc
	}
}

func (c *Controller[T]) Sort() types.SortSpec { return c.sort }

// ApplyFilter trims value; an empty result removes the column's filter,
// anything else replaces it.
func (c *Controller[T]) ApplyFilter(id, value string) {
	if _, ok := c.reg.Field(id); !ok {
		return
	}
	value = strings.TrimSpace(value)
	c.removeFilter(id)
	if value != "" {
		c.filters = append(c.filters, types.FilterEntry{ColumnID: id, Value: value})
	}
	c.page = 0
}

func (c *Controller[T]) ClearFilter(id string) {
	if c.removeFilter(id) {
		c.page = 0
	}
}

func (c *Controller[T]) ClearAllFilters() {
	c.filters = nil
	c.page = 0
}

func (c *Controller[T]) removeFilter(id string) bool {
	n := len(c.filters)
	c.filters = slices.DeleteFunc(c.filters, func(f types.FilterEntry) bool { return f.ColumnID == id })
	return len(c.filters) != n
}

func (c *Controller[T]) Filters() []types.FilterEntry { return slices.Clone(c.filters) }

func (c *Controller[T]) Filter(id string) (types.FilterEntry, bool) {
	for _, f := range c.filters {
		if f.ColumnID == id {
			return f, true
		}
	}
	return types.FilterEntry{}, false
}

// Resize adds delta to the column width, never going below MinWidth.
func (c *Controller[T]) Resize(id string, delta int) {
	w, ok := c.widths[id]
	if !ok {
		return
	}
	c.widths[id] = max(c.minWidth, w+delta)
}

// Width returns 0 for unknown columns.
func (c *Controller[T]) Width(id string) int { return c.widths[id] }

func (c *Controller[T]) Widths() map[string]int {
	out := make(map[string]int, len(c.widths))
	for k, v := range c.widths {
		out[k] = v
	}
	return out
}

func (c *Controller[T]) MinWidth() int { return c.minWidth }

// ProcessedRows filters then sorts. Without an active sort the filtered rows
// keep their input order.
func (c *Controller[T]) ProcessedRows() []T {
	out := make([]T, 0, len(c.rows))
	for _, r := range c.rows {
		if c.matches(r) {
			out = append(out, r)
		}
	}
	if !c.sort.Active() {
		return out
	}
	field, ok := c.reg.Field(c.sort.ColumnID)
	if !ok {
		return out
	}
	compare := comparator(field)
	if c.sort.Direction == types.SortDesc {
		asc := compare
		compare = func(a, b T) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

func (c *Controller[T]) matches(row T) bool {
	for _, f := range c.filters {
		field, ok := c.reg.Field(f.ColumnID)
		if !ok {
			continue
		}
		if !strings.Contains(strings.ToLower(field.String(row)), strings.ToLower(f.Value)) {
			return false
		}
	}
	return true
}

func comparator[T any](field columns.Field[T]) func(a, b T) int {
	if field.Kind() == columns.KindNumber {
		return func(a, b T) int { return cmp.Compare(field.Number(a), field.Number(b)) }
	}
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(field.String(a)), strings.ToLower(field.String(b)))
	}
}

// ToggleRow flips selection of the row with the given key. Keys not present
// in the dataset are ignored.
func (c *Controller[T]) ToggleRow(key string) {
	if !c.keys[key] {
		return
	}
	if c.selected[key] {
		delete(c.selected, key)
		return
	}
	c.selected[key] = true
}

func (c *Controller[T]) IsSelected(key string) bool { return c.selected[key] }

// SelectedKeys returns selected keys in dataset order.
func (c *Controller[T]) SelectedKeys() []string {
	out := make([]string, 0, len(c.selected))
	for _, r := range c.rows {
		if k := c.reg.Key(r); c.selected[k] {
			out = append(out, k)
		}
	}
	return out
}

// SetSelected replaces the selection.
func (c *Controller[T]) SetSelected(keys ...string) {
	c.selected = make(map[string]bool, len(keys))
	for _, k := range keys {
		if c.keys[k] {
			c.selected[k] = true
		}
	}
}

func (c *Controller[T]) Key(row T) string { return c.reg.Key(row) }

// Cell renders one data cell. Synthetic and unknown columns render empty.
func (c *Controller[T]) Cell(row T, id string) string {
	field, ok := c.reg.Field(id)
	if !ok {
		return ""
	}
	return format.Cell(id, field.Value(row))
}

// Detail lists every data column of row with its formatted value.
func (c *Controller[T]) Detail(row T) []DetailField {
	out := make([]DetailField, 0, c.reg.Len())
	for _, col := range c.reg.Columns() {
		if col.Synthetic {
			continue
		}
		v := c.Cell(row, col.ID)
		if v == "" {
			v = format.Placeholder
		}
		out = append(out, DetailField{ColumnID: col.ID, Label: col.Label, Value: v})
	}
	return out
}
