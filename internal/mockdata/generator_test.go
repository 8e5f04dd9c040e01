package mockdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-search/internal/types"
)

func TestGenerateTradesShape(t *testing.T) {
	rows := NewSeededGenerator(1).GenerateTrades(100)
	require.Len(t, rows, 100)

	seen := map[string]bool{}
	for i, r := range rows {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true

		assert.Equal(t, r.CVA+r.DVA+r.FVA+r.FCA+r.FBA, r.EstimatedCharge)
		assert.GreaterOrEqual(t, r.Notional, 100000.0)
		assert.Less(t, r.ROE, 0.2)
		assert.Less(t, r.CQR, 0.5)
		assert.Contains(t, statuses, r.Status)
		assert.Contains(t, []string{"USD", "EUR", "GBP"}, r.Currency)
		assert.Contains(t, []string{"System A", "System B", "System C"}, r.SourceSystem)
		assert.Len(t, r.TradeDate, len("2023-01-01"))
		assert.NotEmpty(t, r.Counterparty)
		assert.NotEmpty(t, r.InstrumentID)
		if i == 0 {
			assert.Equal(t, "TR-000001", r.TradeID)
			assert.Equal(t, "row-0", r.ID)
		}
	}
}

func TestGenerateTradesSeeded(t *testing.T) {
	a := NewSeededGenerator(9).GenerateTrades(10)
	b := NewSeededGenerator(9).GenerateTrades(10)
	assert.Equal(t, a, b)
}

func TestGenerateTradesEmpty(t *testing.T) {
	assert.Empty(t, GenerateTrades(0))
	assert.Empty(t, GenerateTrades(-5))
}

func TestStaticSearcherIgnoresQuery(t *testing.T) {
	s := NewStaticSearcher()
	a, err := s.Search(context.Background(), types.SearchRequest{Tab: types.TabTradeID, Query: "TR-1"})
	require.NoError(t, err)
	b, err := s.Search(context.Background(), types.SearchRequest{Tab: types.TabCounterparty, Query: "ACME"})
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.Equal(t, a, b)

	a[0].Status = "mutated"
	assert.NotEqual(t, "mutated", SearchResults()[0].Status)
}

func TestStaticSearcherHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStaticSearcher().Search(ctx, types.SearchRequest{Query: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
