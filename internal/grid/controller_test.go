package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-search/internal/columns"
	"trade-search/internal/mockdata"
	"trade-search/internal/types"
)

func newTradeGrid(t *testing.T, n int) (*Controller[types.TradeRow], []types.TradeRow) {
	t.Helper()
	rows := mockdata.NewSeededGenerator(42).GenerateTrades(n)
	require.Len(t, rows, n)
	return New(columns.TradeRegistry(), rows), rows
}

func ids(rows []types.TradeRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	g, rows := newTradeGrid(t, 10)

	assert.Len(t, g.VisibleColumns(), len(columns.TradeColumns()))
	assert.False(t, g.Sort().Active())
	assert.Empty(t, g.Filters())
	assert.Equal(t, ids(rows), ids(g.ProcessedRows()))
	assert.Equal(t, DefaultMinWidth, g.MinWidth())

	// "Pricing Description" is 19 characters: 19*12+80.
	assert.Equal(t, 308, g.Width("pricingDescription"))
	assert.Equal(t, 120, g.Width("cva"))
}

func TestFilterIsMonotoneNarrowing(t *testing.T) {
	g, _ := newTradeGrid(t, 100)

	all := ids(g.ProcessedRows())

	g.ApplyFilter("currency", "usd")
	one := ids(g.ProcessedRows())
	assert.Subset(t, all, one)

	g.ApplyFilter("instrumentType", "sw")
	two := ids(g.ProcessedRows())
	assert.Subset(t, one, two)

	g.ApplyFilter("status", "e")
	three := ids(g.ProcessedRows())
	assert.Subset(t, two, three)
}

func TestFilterSubstringSemantics(t *testing.T) {
	g, rows := newTradeGrid(t, 100)

	g.ApplyFilter("counterparty", "BANK")
	got := g.ProcessedRows()
	require.NotEmpty(t, got)
	for _, r := range got {
		assert.Contains(t, strings.ToLower(r.Counterparty), "bank")
	}

	g.ClearFilter("counterparty")
	assert.Equal(t, ids(rows), ids(g.ProcessedRows()))
}

func TestFilterMatchesNumbersByDecimalForm(t *testing.T) {
	rows := []types.TradeRow{
		{ID: "a", Notional: 1250000},
		{ID: "b", Notional: 990000},
		{ID: "c", Notional: 125},
	}
	g := New(columns.TradeRegistry(), rows)

	g.ApplyFilter("notional", "125")
	assert.Equal(t, []string{"a", "c"}, ids(g.ProcessedRows()))
}

func TestApplyFilterTrimsAndRemovesEmpty(t *testing.T) {
	g, _ := newTradeGrid(t, 20)

	g.ApplyFilter("status", "  Pending  ")
	f, ok := g.Filter("status")
	require.True(t, ok)
	assert.Equal(t, "Pending", f.Value)

	g.ApplyFilter("status", "Failed")
	assert.Len(t, g.Filters(), 1, "a column holds at most one filter")
	f, _ = g.Filter("status")
	assert.Equal(t, "Failed", f.Value)

	g.ApplyFilter("status", "   ")
	_, ok = g.Filter("status")
	assert.False(t, ok)
	assert.Empty(t, g.Filters())
}

func TestSortCycle(t *testing.T) {
	g, _ := newTradeGrid(t, 10)

	want := []types.SortDirection{types.SortAsc, types.SortDesc, types.SortNone, types.SortAsc, types.SortDesc}
	for i, dir := range want {
		g.SetSort("notional")
		assert.Equal(t, dir, g.Sort().Direction, "step %d", i)
	}

	g.SetSort("trader")
	assert.Equal(t, types.SortSpec{ColumnID: "trader", Direction: types.SortAsc}, g.Sort())
}

func TestSortNoneRestoresFilteredOrder(t *testing.T) {
	g, _ := newTradeGrid(t, 60)
	g.ApplyFilter("currency", "U")
	filtered := ids(g.ProcessedRows())

	g.SetSort("counterparty")
	g.SetSort("counterparty")
	g.SetSort("counterparty")

	assert.False(t, g.Sort().Active())
	assert.Equal(t, filtered, ids(g.ProcessedRows()))
}

func TestSortIsNumericAndStable(t *testing.T) {
	rows := []types.TradeRow{
		{ID: "r0", Notional: 900, Book: "b"},
		{ID: "r1", Notional: 10000, Book: "a"},
		{ID: "r2", Notional: 900, Book: "c"},
		{ID: "r3", Notional: 80, Book: "a"},
		{ID: "r4", Notional: 900, Book: "a"},
	}
	g := New(columns.TradeRegistry(), rows)

	g.SetSort("notional")
	assert.Equal(t, []string{"r3", "r0", "r2", "r4", "r1"}, ids(g.ProcessedRows()))

	g.SetSort("notional")
	assert.Equal(t, []string{"r1", "r0", "r2", "r4", "r3"}, ids(g.ProcessedRows()))

	g.SetSort("book")
	assert.Equal(t, []string{"r1", "r3", "r4", "r0", "r2"}, ids(g.ProcessedRows()))
}

func TestSortStringsIgnoreCase(t *testing.T) {
	rows := []types.TradeRow{
		{ID: "1", Trader: "trader b"},
		{ID: "2", Trader: "Trader A"},
		{ID: "3", Trader: "TRADER C"},
	}
	g := New(columns.TradeRegistry(), rows)

	g.SetSort("trader")
	assert.Equal(t, []string{"2", "1", "3"}, ids(g.ProcessedRows()))
}

func TestResizeNeverGoesBelowMinimum(t *testing.T) {
	g, _ := newTradeGrid(t, 1)

	for _, d := range []int{-50, -1000, 30, -7, -99999} {
		g.Resize("status", d)
		assert.GreaterOrEqual(t, g.Width("status"), g.MinWidth())
	}

	g.Resize("status", 45)
	assert.Equal(t, g.MinWidth()+45, g.Width("status"))
}

func TestWithMinWidth(t *testing.T) {
	g := New(columns.TradeRegistry(), nil, WithMinWidth(100))
	assert.Equal(t, 100, g.MinWidth())

	g.Resize("cva", -500)
	assert.Equal(t, 100, g.Width("cva"))
}

func TestToggleColumnIsIdempotentInPairs(t *testing.T) {
	g, _ := newTradeGrid(t, 1)

	g.ToggleColumn("book")
	assert.False(t, g.IsVisible("book"))
	g.ToggleColumn("book")
	assert.True(t, g.IsVisible("book"))

	g.ClearAllColumns()
	assert.Empty(t, g.VisibleColumns())

	g.SelectAllColumns()
	got := make([]string, 0)
	for _, c := range g.VisibleColumns() {
		got = append(got, c.ID)
	}
	assert.Equal(t, columns.TradeRegistry().IDs(), got)
}

func TestUnknownColumnIsNoop(t *testing.T) {
	g, rows := newTradeGrid(t, 20)
	g.ApplyFilter("status", "p")
	g.SetSort("notional")
	before := g.Widths()
	beforeRows := ids(g.ProcessedRows())

	assert.NotPanics(t, func() {
		g.ToggleColumn("nope")
		g.SetSort("nope")
		g.ApplyFilter("nope", "x")
		g.ClearFilter("nope")
		g.Resize("nope", 500)
	})

	assert.Equal(t, before, g.Widths())
	assert.Equal(t, beforeRows, ids(g.ProcessedRows()))
	assert.Equal(t, types.SortSpec{ColumnID: "notional", Direction: types.SortAsc}, g.Sort())
	assert.Len(t, g.VisibleColumns(), len(columns.TradeColumns()))
	assert.Equal(t, 0, g.Width("nope"))
	assert.Len(t, rows, 20)
}

func TestPendingFilterThenNotionalSort(t *testing.T) {
	rows := mockdata.GenerateTrades(50)
	g := New(columns.TradeRegistry(), rows)

	pending := 0
	for _, r := range rows {
		if r.Status == "Pending" {
			pending++
		}
	}

	g.ApplyFilter("status", "Pending")
	assert.Len(t, g.ProcessedRows(), pending)

	g.SetSort("notional")
	got := g.ProcessedRows()
	require.Len(t, got, pending)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Notional, got[i].Notional)
		assert.Equal(t, "Pending", got[i].Status)
	}
}

func TestClearAllFiltersKeepsSort(t *testing.T) {
	g, rows := newTradeGrid(t, 80)
	g.SetSort("cva")
	g.ApplyFilter("currency", "usd")
	g.ApplyFilter("instrumentType", "swap")
	g.ApplyFilter("trader", "trader")

	g.ClearAllFilters()

	assert.Empty(t, g.Filters())
	got := g.ProcessedRows()
	require.Len(t, got, len(rows))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].CVA, got[i].CVA)
	}
}

func TestRowSelection(t *testing.T) {
	g, rows := newTradeGrid(t, 5)

	g.ToggleRow(rows[3].ID)
	g.ToggleRow(rows[1].ID)
	g.ToggleRow("missing")
	assert.Equal(t, []string{rows[1].ID, rows[3].ID}, g.SelectedKeys())

	g.ToggleRow(rows[3].ID)
	assert.False(t, g.IsSelected(rows[3].ID))

	g.SetSelected(rows[0].ID, "missing")
	assert.Equal(t, []string{rows[0].ID}, g.SelectedKeys())
}

func TestCellAndDetail(t *testing.T) {
	row := types.TradeRow{ID: "x", TradeID: "TR-000001", CVA: 12345, ROE: 0.1, Status: "Pending"}
	g := New(columns.TradeRegistry(), []types.TradeRow{row})

	assert.Equal(t, "$12,345", g.Cell(row, "cva"))
	assert.Equal(t, "10.00%", g.Cell(row, "roe"))
	assert.Equal(t, "", g.Cell(row, "nope"))

	detail := g.Detail(row)
	require.Len(t, detail, len(columns.TradeColumns()))
	assert.Equal(t, DetailField{ColumnID: "tradeId", Label: "Trade ID", Value: "TR-000001"}, detail[0])
	for _, d := range detail {
		if d.ColumnID == "counterparty" {
			assert.Equal(t, "—", d.Value)
		}
	}
}

func TestSyntheticColumnHasNoData(t *testing.T) {
	results := mockdata.SearchResults()
	g := New(columns.ResultRegistry(), results)

	g.SetSort(columns.SelectedColumnID)
	assert.False(t, g.Sort().Active())

	g.ApplyFilter(columns.SelectedColumnID, "x")
	assert.Empty(t, g.Filters())

	g.ToggleColumn(columns.SelectedColumnID)
	assert.False(t, g.IsVisible(columns.SelectedColumnID))
	assert.Len(t, g.Detail(results[0]), len(columns.ResultColumns())-1)
}
