package gridobs

import (
	"context"

	"trade-search/internal/grid"
	"trade-search/internal/logger"
	"trade-search/internal/trace"
)

// observableGrid logs every state mutation; reads pass straight through.
type observableGrid[T any] struct {
	grid.Grid[T]
	ctx  context.Context
	name string
}

// Wrap decorates g so that each mutation emits a grid event under its own span.
// name identifies the grid in logs, e.g. "trades" or "results".
func Wrap[T any](ctx context.Context, name string, g grid.Grid[T]) grid.Grid[T] {
	return &observableGrid[T]{Grid: g, ctx: ctx, name: name}
}

func (og *observableGrid[T]) event(action string, mutate func(), fields ...any) {
	ctx, span := trace.StartSpan(og.ctx, "grid."+action)
	defer span.End()

	mutate()
	logger.GridEvent(ctx, og.name, action, fields...)
}

func (og *observableGrid[T]) ToggleColumn(id string) {
	og.event("toggle_column", func() { og.Grid.ToggleColumn(id) },
		"column", id, "visible", !og.Grid.IsVisible(id))
}

func (og *observableGrid[T]) SelectAllColumns() {
	og.event("select_all_columns", og.Grid.SelectAllColumns)
}

func (og *observableGrid[T]) ClearAllColumns() {
	og.event("clear_all_columns", og.Grid.ClearAllColumns)
}

func (og *observableGrid[T]) SetSort(id string) {
	og.event("sort", func() { og.Grid.SetSort(id) },
		"column", id)
}

func (og *observableGrid[T]) ApplyFilter(id, value string) {
	og.event("filter", func() { og.Grid.ApplyFilter(id, value) },
		"column", id, "value", value)
}

func (og *observableGrid[T]) ClearFilter(id string) {
	og.event("clear_filter", func() { og.Grid.ClearFilter(id) },
		"column", id)
}

func (og *observableGrid[T]) ClearAllFilters() {
	og.event("clear_all_filters", og.Grid.ClearAllFilters)
}

func (og *observableGrid[T]) Resize(id string, delta int) {
	og.event("resize", func() { og.Grid.Resize(id, delta) },
		"column", id, "delta", delta)
}

func (og *observableGrid[T]) ToggleRow(key string) {
	og.event("toggle_row", func() { og.Grid.ToggleRow(key) },
		"row", key)
}

func (og *observableGrid[T]) SetRowsPerPage(n int) {
	og.event("rows_per_page", func() { og.Grid.SetRowsPerPage(n) },
		"rows_per_page", n)
}
