package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-search/internal/grid"
	"trade-search/internal/mockdata"
	"trade-search/internal/types"
)

type errSearcher struct{ err error }

func (e errSearcher) Search(context.Context, types.SearchRequest) ([]types.SearchResult, error) {
	return nil, e.err
}

func newPage(opts ...Option) *Page {
	ids := 0
	opts = append([]Option{WithRequestIDs(func() string {
		ids++
		return "req-" + string(rune('0'+ids))
	})}, opts...)
	return NewPage(mockdata.NewStaticSearcher(), opts...)
}

func TestDefaults(t *testing.T) {
	p := newPage()
	assert.Equal(t, types.TabTradeID, p.Tab())
	assert.Equal(t, DefaultSourceSystems, p.SourceSystems())
	assert.False(t, p.Submitted())
	assert.Equal(t, []Field{FieldSourceSystem, FieldTradeID}, TabFields(p.Tab()))
}

func TestSetSourceSystem(t *testing.T) {
	p := newPage()
	require.NoError(t, p.SetSourceSystem("System B"))
	assert.Equal(t, "System B", p.SourceSystem())

	err := p.SetSourceSystem("System Z")
	assert.ErrorIs(t, err, ErrUnknownSourceSystem)
	assert.Equal(t, "System B", p.SourceSystem())

	require.NoError(t, p.SetSourceSystem(""))
	assert.Empty(t, p.SourceSystem())
}

func TestCycleSourceSystem(t *testing.T) {
	p := newPage()
	p.CycleSourceSystem(1)
	assert.Equal(t, "System A", p.SourceSystem())
	p.CycleSourceSystem(-1)
	assert.Equal(t, "", p.SourceSystem())
	p.CycleSourceSystem(-1)
	assert.Equal(t, "System C", p.SourceSystem())
}

func TestResetClearsActiveTabOnly(t *testing.T) {
	p := newPage()
	require.NoError(t, p.SetSourceSystem("System A"))
	p.SetTradeID("TR-000001")

	p.SetTab(types.TabCounterparty)
	require.NoError(t, p.SetSourceSystem("System C"))
	p.SetCounterparty("ACME Corp")
	p.SetWCISID("W-9")

	p.Reset()
	assert.Empty(t, p.Counterparty())
	assert.Empty(t, p.WCISID())
	assert.Empty(t, p.SourceSystem())

	p.SetTab(types.TabTradeID)
	assert.Equal(t, "TR-000001", p.TradeID())
	assert.Equal(t, "System A", p.SourceSystem())
}

func TestSubmitEmptyQuery(t *testing.T) {
	p := newPage()
	p.SetTradeID("   ")

	o, err := p.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Nil(t, o)
	assert.False(t, p.Submitted())
}

func TestSubmitOpensQueryIndependentOverlay(t *testing.T) {
	p := newPage()
	p.SetTradeID(" TR-000042 ")
	first, err := p.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, p.Submitted())
	assert.Equal(t, "Trade ID: TR-000042", first.Title())
	assert.Equal(t, "req-1", first.Request.RequestID)

	p.SetTab(types.TabCounterparty)
	p.SetWCISID("W-1")
	second, err := p.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Counterparty: W-1", second.Title())

	p.SetCounterparty("Global Bank")
	third, err := p.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Counterparty: Global Bank", third.Title())

	assert.Equal(t, mockdata.SearchResults(), first.Grid.ProcessedRows())
	assert.Equal(t, first.Grid.ProcessedRows(), third.Grid.ProcessedRows())
}

func TestSubmitSearcherError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPage(errSearcher{err: boom})
	p.SetTradeID("TR-1")

	_, err := p.Submit(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, p.Submitted())
}

func TestOverlaySelectionAndPricing(t *testing.T) {
	p := newPage(WithGridOptions(grid.WithRowsPerPage(10)))
	p.SetTradeID("TR-1")
	o, err := p.Submit(context.Background())
	require.NoError(t, err)

	var want []string
	for _, r := range mockdata.SearchResults() {
		if r.Selected {
			want = append(want, r.UnderlyingTradeID)
		}
	}
	require.NotEmpty(t, want)
	assert.Equal(t, want, o.Grid.SelectedKeys())
	assert.Equal(t, 10, o.Grid.Page().RowsPerPage)

	o.Grid.ToggleRow(want[0])
	assert.Equal(t, want[1:], o.Price(context.Background()))

	assert.Equal(t, PricingSinglePricing, o.PricingMode)
	o.ToggleSACCR()
	assert.True(t, o.SACCR)
}

func TestOverlayGridWrapper(t *testing.T) {
	wrapped := 0
	p := newPage(WithGridWrapper(func(g grid.Grid[types.SearchResult]) grid.Grid[types.SearchResult] {
		wrapped++
		return g
	}))
	p.SetTradeID("TR-1")
	_, err := p.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, wrapped)
}

func TestFieldValues(t *testing.T) {
	p := newPage()
	require.NoError(t, p.SetValue(FieldTradeID, "TR-7"))
	require.NoError(t, p.SetValue(FieldWCISID, "W-7"))
	assert.Error(t, p.SetValue(FieldSourceSystem, "nope"))

	assert.Equal(t, "TR-7", p.Value(FieldTradeID))
	assert.Equal(t, "W-7", p.Value(FieldWCISID))
	assert.Equal(t, "WCIS ID", FieldWCISID.Label())
}
