package search

import (
	"context"

	"trade-search/internal/columns"
	"trade-search/internal/grid"
	"trade-search/internal/logger"
	"trade-search/internal/types"
)

// PricingSinglePricing is the only pricing mode the overlay offers.
const PricingSinglePricing = "single-pricing"

// Overlay is the results view opened by a submitted search.
type Overlay struct {
	Request types.SearchRequest
	Grid    grid.Grid[types.SearchResult]

	PricingMode string
	Notes       string
	SACCR       bool
}

func newOverlay(req types.SearchRequest, results []types.SearchResult, wrap func(grid.Grid[types.SearchResult]) grid.Grid[types.SearchResult], opts ...grid.Option) *Overlay {
	ctrl := grid.New(columns.ResultRegistry(), results, opts...)

	preselected := make([]string, 0, len(results))
	for _, r := range results {
		if r.Selected {
			preselected = append(preselected, r.UnderlyingTradeID)
		}
	}
	ctrl.SetSelected(preselected...)

	var g grid.Grid[types.SearchResult] = ctrl
	if wrap != nil {
		g = wrap(g)
	}
	return &Overlay{
		Request:     req,
		Grid:        g,
		PricingMode: PricingSinglePricing,
	}
}

// Title names what was searched for, e.g. "Trade ID: TR-000001".
func (o *Overlay) Title() string {
	if o.Request.Tab == types.TabCounterparty {
		return "Counterparty: " + o.Request.Query
	}
	return "Trade ID: " + o.Request.Query
}

// ToggleSACCR flips the SACCR option of the KVA calculation panel.
func (o *Overlay) ToggleSACCR() { o.SACCR = !o.SACCR }

// Price submits the selected rows for pricing. Nothing is priced: the
// request is logged and the selected keys are returned.
func (o *Overlay) Price(ctx context.Context) []string {
	selected := o.Grid.SelectedKeys()
	logger.Info(ctx, "Pricing requested",
		"request_id", o.Request.RequestID,
		"mode", o.PricingMode,
		"saccr", o.SACCR,
		"notes", o.Notes,
		"selected", len(selected),
	)
	return selected
}
