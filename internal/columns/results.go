package columns

import "trade-search/internal/types"

// SelectedColumnID is the synthetic checkbox column of the results overlay.
const SelectedColumnID = "selected"

var resultColumns = []types.Column{
	{ID: SelectedColumnID, Label: "", Align: types.AlignCenter, Synthetic: true},
	{ID: "proposedAction", Label: "Proposed Action", Align: types.AlignLeft},
	{ID: "underlyingTradeID", Label: "Underlying Trade ID", Align: types.AlignLeft},
	{ID: "underlyingBook", Label: "Underlying Book", Align: types.AlignLeft},
	{ID: "status", Label: "Status", Align: types.AlignCenter},
	{ID: "productType", Label: "Product Type", Align: types.AlignLeft},
	{ID: "externalSystem", Label: "External System", Align: types.AlignLeft},
	{ID: "description", Label: "Description", Align: types.AlignLeft},
}

var resultFields = map[string]Field[types.SearchResult]{
	"proposedAction":    Text(func(r types.SearchResult) string { return r.ProposedAction }),
	"underlyingTradeID": Text(func(r types.SearchResult) string { return r.UnderlyingTradeID }),
	"underlyingBook":    Text(func(r types.SearchResult) string { return r.UnderlyingBook }),
	"status":            Text(func(r types.SearchResult) string { return r.Status }),
	"productType":       Text(func(r types.SearchResult) string { return r.ProductType }),
	"externalSystem":    Text(func(r types.SearchResult) string { return r.ExternalSystem }),
	"description":       Text(func(r types.SearchResult) string { return r.Description }),
}

var resultRegistry = MustRegistry(func(r types.SearchResult) string { return r.UnderlyingTradeID }, resultColumns, resultFields)

func ResultColumns() []types.Column { return resultRegistry.Columns() }

func ResultRegistry() *Registry[types.SearchResult] { return resultRegistry }
