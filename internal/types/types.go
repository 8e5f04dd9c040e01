package types

// Align is the horizontal alignment of a column's header and cells.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Column describes one displayable, sortable and filterable field.
// Synthetic columns (the selection checkbox) carry no row data.
type Column struct {
	ID        string `json:"id" yaml:"id"`
	Label     string `json:"label" yaml:"label"`
	Align     Align  `json:"align" yaml:"align"`
	Synthetic bool   `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
}

type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec is the single active sort. ColumnID is empty when Direction is SortNone.
type SortSpec struct {
	ColumnID  string        `json:"column_id,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

func (s SortSpec) Active() bool {
	return s.ColumnID != "" && s.Direction != SortNone
}

// FilterEntry is an active substring constraint on one column.
type FilterEntry struct {
	ColumnID string `json:"column_id"`
	Value    string `json:"value"`
}

type TradeRow struct {
	ID                 string  `json:"id"`
	TradeID            string  `json:"trade_id"`
	Counterparty       string  `json:"counterparty"`
	TradeDate          string  `json:"trade_date"`
	EffectiveDate      string  `json:"effective_date"`
	InstrumentType     string  `json:"instrument_type"`
	InstrumentID       string  `json:"instrument_id"`
	Notional           float64 `json:"notional"`
	Currency           string  `json:"currency"`
	Status             string  `json:"status"`
	Trader             string  `json:"trader"`
	Book               string  `json:"book"`
	AssetClass         string  `json:"asset_class"`
	CVA                float64 `json:"cva"`
	DVA                float64 `json:"dva"`
	FVA                float64 `json:"fva"`
	FCA                float64 `json:"fca"`
	FBA                float64 `json:"fba"`
	EstimatedCharge    float64 `json:"estimated_charge"`
	ROE                float64 `json:"roe"`
	CQR                float64 `json:"cqr"`
	PricingDescription string  `json:"pricing_description"`
	SourceSystem       string  `json:"source_system"`
}

// SearchResult is one row of the search results overlay.
type SearchResult struct {
	Selected          bool   `json:"selected"`
	ProposedAction    string `json:"proposed_action,omitempty"`
	UnderlyingTradeID string `json:"underlying_trade_id"`
	UnderlyingBook    string `json:"underlying_book"`
	Status            string `json:"status"`
	ProductType       string `json:"product_type"`
	ExternalSystem    string `json:"external_system"`
	Description       string `json:"description"`
}

type SearchTab string

const (
	TabTradeID      SearchTab = "tradeId"
	TabCounterparty SearchTab = "counterparty"
)

// SearchRequest is what the search page hands to a Searcher.
type SearchRequest struct {
	RequestID    string    `json:"request_id"`
	Tab          SearchTab `json:"tab"`
	SourceSystem string    `json:"source_system,omitempty"`
	Query        string    `json:"query"`
}
