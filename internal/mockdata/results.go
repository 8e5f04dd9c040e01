package mockdata

import (
	"context"

	"trade-search/internal/interfaces"
	"trade-search/internal/types"
)

// staticResults is the fixed set shown by the results overlay for every query.
var staticResults = []types.SearchResult{
	{Selected: true, ProposedAction: "Amend", UnderlyingTradeID: "UT-100231", UnderlyingBook: "Book-12", Status: "Pending", ProductType: "Swap", ExternalSystem: "System A", Description: "Standard"},
	{Selected: true, ProposedAction: "Amend", UnderlyingTradeID: "UT-100232", UnderlyingBook: "Book-12", Status: "Pending", ProductType: "Swap", ExternalSystem: "System A", Description: "Standard"},
	{ProposedAction: "Cancel", UnderlyingTradeID: "UT-100245", UnderlyingBook: "Book-7", Status: "Completed", ProductType: "Option", ExternalSystem: "System B", Description: "Premium"},
	{ProposedAction: "New", UnderlyingTradeID: "UT-100260", UnderlyingBook: "Book-31", Status: "Processing", ProductType: "Swap", ExternalSystem: "System C", Description: "Enhanced"},
	{UnderlyingTradeID: "UT-100271", UnderlyingBook: "Book-31", Status: "On Hold", ProductType: "Option", ExternalSystem: "System A", Description: "Basic"},
	{ProposedAction: "New", UnderlyingTradeID: "UT-100288", UnderlyingBook: "Book-44", Status: "Approved", ProductType: "Swap", ExternalSystem: "System B", Description: "Complex"},
	{ProposedAction: "Amend", UnderlyingTradeID: "UT-100294", UnderlyingBook: "Book-44", Status: "Reviewing", ProductType: "Option", ExternalSystem: "System C", Description: "Legacy"},
	{UnderlyingTradeID: "UT-100302", UnderlyingBook: "Book-58", Status: "Failed", ProductType: "Swap", ExternalSystem: "System A", Description: "Special"},
}

// SearchResults returns a copy of the fixed overlay dataset.
func SearchResults() []types.SearchResult {
	out := make([]types.SearchResult, len(staticResults))
	copy(out, staticResults)
	return out
}

// StaticSearcher answers every request with the fixed results set.
// It stands in for a backend integration that does not exist.
type StaticSearcher struct{}

var _ interfaces.Searcher = StaticSearcher{}

func NewStaticSearcher() StaticSearcher {
	return StaticSearcher{}
}

func (StaticSearcher) Search(ctx context.Context, req types.SearchRequest) ([]types.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SearchResults(), nil
}
