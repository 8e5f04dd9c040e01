package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-search/internal/columns"
	"trade-search/internal/export"
	"trade-search/internal/grid"
	"trade-search/internal/mockdata"
	"trade-search/internal/store"
	"trade-search/internal/types"
)

func TestApplyExportFlags(t *testing.T) {
	rows := []types.TradeRow{
		{ID: "1", TradeID: "TR-1", Status: "Pending", Notional: 300},
		{ID: "2", TradeID: "TR-2", Status: "Failed", Notional: 100},
		{ID: "3", TradeID: "TR-3", Status: "Pending", Notional: 200},
	}
	g := grid.New(columns.TradeRegistry(), rows)

	err := applyExportFlags[types.TradeRow](g, []string{"tradeId", "notional"}, []string{"status=pend"}, "notional:desc")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := export.WriteCSV[types.TradeRow](context.Background(), &buf, g)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Trade ID,Notional\nTR-1,300\nTR-3,200\n", buf.String())
}

func TestApplyExportFlagsRejectsBadInput(t *testing.T) {
	cases := map[string]struct {
		cols    []string
		filters []string
		sort    string
	}{
		"unknown column":      {cols: []string{"nope"}},
		"filter without =":    {filters: []string{"status"}},
		"unknown filter":      {filters: []string{"nope=x"}},
		"unknown sort column": {sort: "nope"},
		"bad direction":       {sort: "notional:sideways"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g := grid.New(columns.TradeRegistry(), mockdata.GenerateTrades(3))
			err := applyExportFlags[types.TradeRow](g, tc.cols, tc.filters, tc.sort)
			assert.ErrorIs(t, err, errBadFlag)
		})
	}
}

func TestInitializeTradesUsesConfig(t *testing.T) {
	cfg := store.Default()
	cfg.Grid.MinWidth = 100
	cfg.Grid.RowsPerPage = 10

	g := initializeTrades(context.Background(), cfg, mockdata.NewSeededGenerator(1), 12)
	assert.Len(t, g.ProcessedRows(), 12)
	assert.Equal(t, 100, g.MinWidth())
	assert.Equal(t, 10, g.Page().RowsPerPage)
}

func TestInitializeSearchPageWrapsResults(t *testing.T) {
	page := initializeSearchPage(context.Background(), store.Default())
	page.SetTradeID("TR-000001")

	ov, err := page.Submit(context.Background())
	require.NoError(t, err)
	assert.Len(t, ov.Grid.ProcessedRows(), len(mockdata.SearchResults()))
	assert.Equal(t, store.Default().Grid.MinWidth, ov.Grid.MinWidth())
}
