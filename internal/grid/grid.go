// Package grid owns the client-side state of a data grid: visible columns, the
// single active sort, per-column substring filters, column widths, row selection
// and paging. ProcessedRows derives the rendered sequence from that state.
package grid

import "trade-search/internal/types"

// DefaultMinWidth is the floor applied to every resize.
const DefaultMinWidth = 120

// RowsPerPageOptions are the page sizes the pager offers.
var RowsPerPageOptions = []int{10, 25, 50, 100}

const DefaultRowsPerPage = 25

// Grid is the controller surface the shell drives. Every method ignores
// column ids the grid does not know.
type Grid[T any] interface {
	Columns() []types.Column
	HasColumn(id string) bool

	ToggleColumn(id string)
	SelectAllColumns()
	ClearAllColumns()
	VisibleColumns() []types.Column
	IsVisible(id string) bool

	SetSort(id string)
	Sort() types.SortSpec

	ApplyFilter(id, value string)
	ClearFilter(id string)
	ClearAllFilters()
	Filters() []types.FilterEntry
	Filter(id string) (types.FilterEntry, bool)

	Resize(id string, delta int)
	Width(id string) int
	Widths() map[string]int
	MinWidth() int

	ProcessedRows() []T

	ToggleRow(key string)
	IsSelected(key string) bool
	SelectedKeys() []string
	SetSelected(keys ...string)

	SetPage(page int)
	SetRowsPerPage(n int)
	Page() PageInfo
	PageRows() []T

	Key(row T) string
	Cell(row T, id string) string
	Detail(row T) []DetailField
}

// DetailField is one label/value pair of the row detail view.
type DetailField struct {
	ColumnID string
	Label    string
	Value    string
}

type options struct {
	minWidth    int
	rowsPerPage int
}

type Option func(*options)

// WithMinWidth overrides DefaultMinWidth. Non-positive values are ignored.
func WithMinWidth(w int) Option {
	return func(o *options) {
		if w > 0 {
			o.minWidth = w
		}
	}
}

// WithRowsPerPage sets the initial page size if it is one of RowsPerPageOptions.
func WithRowsPerPage(n int) Option {
	return func(o *options) {
		if validRowsPerPage(n) {
			o.rowsPerPage = n
		}
	}
}

func validRowsPerPage(n int) bool {
	for _, o := range RowsPerPageOptions {
		if o == n {
			return true
		}
	}
	return false
}
