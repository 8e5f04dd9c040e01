// Package search holds the state of the search page: two tabs of form fields,
// Reset and Submit, and the results overlay a submitted search opens.
package search

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"trade-search/internal/grid"
	"trade-search/internal/interfaces"
	"trade-search/internal/logger"
	"trade-search/internal/types"
)

var (
	ErrEmptyQuery          = errors.New("search query is empty")
	ErrUnknownSourceSystem = errors.New("unknown source system")
)

// DefaultSourceSystems are the options of the source-system selector.
var DefaultSourceSystems = []string{"System A", "System B", "System C"}

type Field int

const (
	FieldSourceSystem Field = iota
	FieldTradeID
	FieldCounterparty
	FieldWCISID
)

// TabFields lists the form fields shown on a tab, in display order.
func TabFields(tab types.SearchTab) []Field {
	if tab == types.TabCounterparty {
		return []Field{FieldSourceSystem, FieldCounterparty, FieldWCISID}
	}
	return []Field{FieldSourceSystem, FieldTradeID}
}

func (f Field) Label() string {
	switch f {
	case FieldSourceSystem:
		return "Source System"
	case FieldTradeID:
		return "Trade ID"
	case FieldCounterparty:
		return "Counterparty"
	case FieldWCISID:
		return "WCIS ID"
	}
	return ""
}

type tradeIDForm struct {
	sourceSystem string
	tradeID      string
}

type counterpartyForm struct {
	sourceSystem string
	counterparty string
	wcisID       string
}

// Page is the search form. Each tab keeps its own field values.
type Page struct {
	searcher      interfaces.Searcher
	sourceSystems []string
	gridOpts      []grid.Option
	wrapGrid      func(grid.Grid[types.SearchResult]) grid.Grid[types.SearchResult]
	newRequestID  func() string

	tab          types.SearchTab
	tradeID      tradeIDForm
	counterparty counterpartyForm
	submitted    bool
}

type Option func(*Page)

func WithSourceSystems(systems []string) Option {
	return func(p *Page) {
		if len(systems) > 0 {
			p.sourceSystems = slices.Clone(systems)
		}
	}
}

// WithGridOptions passes options to the overlay's results grid.
func WithGridOptions(opts ...grid.Option) Option {
	return func(p *Page) { p.gridOpts = append(p.gridOpts, opts...) }
}

// WithGridWrapper decorates every overlay grid, e.g. with gridobs.Wrap.
func WithGridWrapper(wrap func(grid.Grid[types.SearchResult]) grid.Grid[types.SearchResult]) Option {
	return func(p *Page) { p.wrapGrid = wrap }
}

func WithRequestIDs(next func() string) Option {
	return func(p *Page) { p.newRequestID = next }
}

func NewPage(searcher interfaces.Searcher, opts ...Option) *Page {
	p := &Page{
		searcher:      searcher,
		sourceSystems: slices.Clone(DefaultSourceSystems),
		newRequestID:  uuid.NewString,
		tab:           types.TabTradeID,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Page) Tab() types.SearchTab { return p.tab }

// SetTab switches the active tab. Field values of both tabs are kept.
func (p *Page) SetTab(tab types.SearchTab) {
	if tab == types.TabTradeID || tab == types.TabCounterparty {
		p.tab = tab
	}
}

func (p *Page) SourceSystems() []string { return slices.Clone(p.sourceSystems) }

// SetSourceSystem sets the active tab's source system. The empty string
// clears the selection.
func (p *Page) SetSourceSystem(system string) error {
	if system != "" && !slices.Contains(p.sourceSystems, system) {
		return fmt.Errorf("%w: %q", ErrUnknownSourceSystem, system)
	}
	if p.tab == types.TabCounterparty {
		p.counterparty.sourceSystem = system
	} else {
		p.tradeID.sourceSystem = system
	}
	return nil
}

// CycleSourceSystem steps the active tab's selector through "" and each option.
func (p *Page) CycleSourceSystem(step int) {
	options := append([]string{""}, p.sourceSystems...)
	i := slices.Index(options, p.SourceSystem())
	i = ((i+step)%len(options) + len(options)) % len(options)
	_ = p.SetSourceSystem(options[i])
}

func (p *Page) SourceSystem() string {
	if p.tab == types.TabCounterparty {
		return p.counterparty.sourceSystem
	}
	return p.tradeID.sourceSystem
}

func (p *Page) SetTradeID(v string)      { p.tradeID.tradeID = v }
func (p *Page) SetCounterparty(v string) { p.counterparty.counterparty = v }
func (p *Page) SetWCISID(v string)       { p.counterparty.wcisID = v }

func (p *Page) TradeID() string      { return p.tradeID.tradeID }
func (p *Page) Counterparty() string { return p.counterparty.counterparty }
func (p *Page) WCISID() string       { return p.counterparty.wcisID }

// Value returns a free-text field of either tab, or the active source system.
func (p *Page) Value(f Field) string {
	switch f {
	case FieldSourceSystem:
		return p.SourceSystem()
	case FieldTradeID:
		return p.TradeID()
	case FieldCounterparty:
		return p.Counterparty()
	case FieldWCISID:
		return p.WCISID()
	}
	return ""
}

// SetValue sets a free-text field. The source system goes through SetSourceSystem.
func (p *Page) SetValue(f Field, v string) error {
	switch f {
	case FieldSourceSystem:
		return p.SetSourceSystem(v)
	case FieldTradeID:
		p.SetTradeID(v)
	case FieldCounterparty:
		p.SetCounterparty(v)
	case FieldWCISID:
		p.SetWCISID(v)
	}
	return nil
}

// Reset clears the active tab's fields only.
func (p *Page) Reset() {
	if p.tab == types.TabCounterparty {
		p.counterparty = counterpartyForm{}
	} else {
		p.tradeID = tradeIDForm{}
	}
}

// Query is the trimmed search term of the active tab. The counterparty tab
// falls back to the WCIS id when no counterparty is entered.
func (p *Page) Query() string {
	if p.tab == types.TabCounterparty {
		if q := strings.TrimSpace(p.counterparty.counterparty); q != "" {
			return q
		}
		return strings.TrimSpace(p.counterparty.wcisID)
	}
	return strings.TrimSpace(p.tradeID.tradeID)
}

// Submitted reports whether a search has been submitted since the page was built.
func (p *Page) Submitted() bool { return p.submitted }

// Submit opens the results overlay for a non-empty query. The overlay's rows
// come from the searcher and do not depend on the query.
func (p *Page) Submit(ctx context.Context) (*Overlay, error) {
	query := p.Query()
	if query == "" {
		return nil, ErrEmptyQuery
	}

	req := types.SearchRequest{
		RequestID:    p.newRequestID(),
		Tab:          p.tab,
		SourceSystem: p.SourceSystem(),
		Query:        query,
	}
	logger.Search(ctx, req.RequestID, string(req.Tab), req.Query, "source_system", req.SourceSystem)

	results, err := p.searcher.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", req.RequestID, err)
	}

	p.submitted = true
	return newOverlay(req, results, p.wrapGrid, p.gridOpts...), nil
}
