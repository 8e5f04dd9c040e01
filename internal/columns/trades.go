package columns

import "trade-search/internal/types"

var tradeColumns = []types.Column{
	{ID: "tradeId", Label: "Trade ID", Align: types.AlignLeft},
	{ID: "counterparty", Label: "Counterparty", Align: types.AlignLeft},
	{ID: "tradeDate", Label: "Trade Date", Align: types.AlignCenter},
	{ID: "effectiveDate", Label: "Effective Date", Align: types.AlignCenter},
	{ID: "instrumentType", Label: "Instrument Type", Align: types.AlignLeft},
	{ID: "instrumentId", Label: "Instrument ID", Align: types.AlignLeft},
	{ID: "notional", Label: "Notional", Align: types.AlignRight},
	{ID: "currency", Label: "Currency", Align: types.AlignCenter},
	{ID: "status", Label: "Status", Align: types.AlignCenter},
	{ID: "trader", Label: "Trader", Align: types.AlignLeft},
	{ID: "book", Label: "Book", Align: types.AlignLeft},
	{ID: "assetClass", Label: "Asset Class", Align: types.AlignLeft},
	{ID: "cva", Label: "CVA", Align: types.AlignRight},
	{ID: "dva", Label: "DVA", Align: types.AlignRight},
	{ID: "fva", Label: "FVA", Align: types.AlignRight},
	{ID: "fca", Label: "FCA", Align: types.AlignRight},
	{ID: "fba", Label: "FBA", Align: types.AlignRight},
	{ID: "estimatedCharge", Label: "Estimated Charge", Align: types.AlignRight},
	{ID: "roe", Label: "ROE", Align: types.AlignRight},
	{ID: "cqr", Label: "CQR", Align: types.AlignRight},
	{ID: "pricingDescription", Label: "Pricing Description", Align: types.AlignLeft},
	{ID: "sourceSystem", Label: "Source System", Align: types.AlignLeft},
}

var tradeFields = map[string]Field[types.TradeRow]{
	"tradeId":            Text(func(r types.TradeRow) string { return r.TradeID }),
	"counterparty":       Text(func(r types.TradeRow) string { return r.Counterparty }),
	"tradeDate":          Text(func(r types.TradeRow) string { return r.TradeDate }),
	"effectiveDate":      Text(func(r types.TradeRow) string { return r.EffectiveDate }),
	"instrumentType":     Text(func(r types.TradeRow) string { return r.InstrumentType }),
	"instrumentId":       Text(func(r types.TradeRow) string { return r.InstrumentID }),
	"notional":           Number(func(r types.TradeRow) float64 { return r.Notional }),
	"currency":           Text(func(r types.TradeRow) string { return r.Currency }),
	"status":             Text(func(r types.TradeRow) string { return r.Status }),
	"trader":             Text(func(r types.TradeRow) string { return r.Trader }),
	"book":               Text(func(r types.TradeRow) string { return r.Book }),
	"assetClass":         Text(func(r types.TradeRow) string { return r.AssetClass }),
	"cva":                Number(func(r types.TradeRow) float64 { return r.CVA }),
	"dva":                Number(func(r types.TradeRow) float64 { return r.DVA }),
	"fva":                Number(func(r types.TradeRow) float64 { return r.FVA }),
	"fca":                Number(func(r types.TradeRow) float64 { return r.FCA }),
	"fba":                Number(func(r types.TradeRow) float64 { return r.FBA }),
	"estimatedCharge":    Number(func(r types.TradeRow) float64 { return r.EstimatedCharge }),
	"roe":                Number(func(r types.TradeRow) float64 { return r.ROE }),
	"cqr":                Number(func(r types.TradeRow) float64 { return r.CQR }),
	"pricingDescription": Text(func(r types.TradeRow) string { return r.PricingDescription }),
	"sourceSystem":       Text(func(r types.TradeRow) string { return r.SourceSystem }),
}

var tradeRegistry = MustRegistry(func(r types.TradeRow) string { return r.ID }, tradeColumns, tradeFields)

// TradeColumns returns the main grid's columns in display order.
func TradeColumns() []types.Column { return tradeRegistry.Columns() }

func TradeRegistry() *Registry[types.TradeRow] { return tradeRegistry }
