package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"trade-search/internal/interfaces"
	"trade-search/internal/types"
)

var (
	assetClasses        = []string{"Equity", "Fixed Income", "Currency", "Commodity", "Credit", "Rates"}
	counterparties      = []string{"ACME Corp", "Global Bank", "Finance Co", "Trading LLC", "Hedge Fund X", "Investment Bank Y", "Credit Union Z", "Mutual Fund A", "Pension Fund B", "Insurance Co C"}
	pricingDescriptions = []string{"Standard", "Premium", "Enhanced", "Basic", "Complex", "Legacy", "Special"}
	statuses            = []string{"Pending", "Completed", "Processing", "Failed", "On Hold", "Reviewing", "Approved"}
)

// Generator produces synthetic trade rows. Values are random, shape is fixed.
type Generator struct {
	rng *rand.Rand
}

var _ interfaces.TradeGenerator = (*Generator)(nil)

// NewGenerator returns an unseeded generator.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededGenerator returns a generator with reproducible output, used by tests.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// GenerateTrades is a convenience wrapper around an unseeded Generator.
func GenerateTrades(n int) []types.TradeRow {
	return NewGenerator().GenerateTrades(n)
}

// GenerateTrades returns n fully populated rows. Non-positive n yields an empty slice.
func (g *Generator) GenerateTrades(n int) []types.TradeRow {
	if n <= 0 {
		return []types.TradeRow{}
	}
	rows := make([]types.TradeRow, n)
	for i := range rows {
		rows[i] = g.trade(i)
	}
	return rows
}

func (g *Generator) trade(i int) types.TradeRow {
	cva := float64(g.rng.Intn(50000) + 1000)
	dva := float64(g.rng.Intn(30000) + 500)
	fva := float64(g.rng.Intn(20000) + 300)
	fca := float64(g.rng.Intn(15000) + 200)
	fba := float64(g.rng.Intn(10000) + 100)

	return types.TradeRow{
		ID:                 fmt.Sprintf("row-%d", i),
		TradeID:            fmt.Sprintf("TR-%06d", i+1),
		Counterparty:       g.pick(counterparties),
		TradeDate:          g.date(),
		EffectiveDate:      g.date(),
		InstrumentType:     g.instrumentType(),
		InstrumentID:       fmt.Sprintf("INST-%d", g.rng.Intn(10000)),
		Notional:           float64(g.rng.Intn(10000000) + 100000),
		Currency:           g.currency(),
		Status:             g.pick(statuses),
		Trader:             fmt.Sprintf("Trader %c", 'A'+rune(g.rng.Intn(26))),
		Book:               fmt.Sprintf("Book-%d", g.rng.Intn(100)),
		AssetClass:         g.pick(assetClasses),
		CVA:                cva,
		DVA:                dva,
		FVA:                fva,
		FCA:                fca,
		FBA:                fba,
		EstimatedCharge:    cva + dva + fva + fca + fba,
		ROE:                g.rng.Float64() * 0.2,
		CQR:                g.rng.Float64() * 0.5,
		PricingDescription: g.pick(pricingDescriptions),
		SourceSystem:       g.sourceSystem(),
	}
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

func (g *Generator) date() string {
	month := time.Month(g.rng.Intn(12) + 1)
	day := g.rng.Intn(28) + 1
	return time.Date(2023, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func (g *Generator) instrumentType() string {
	if g.rng.Float64() > 0.5 {
		return "Swap"
	}
	return "Option"
}

func (g *Generator) currency() string {
	if g.rng.Float64() > 0.3 {
		return "USD"
	}
	if g.rng.Float64() > 0.5 {
		return "EUR"
	}
	return "GBP"
}

func (g *Generator) sourceSystem() string {
	if g.rng.Float64() > 0.5 {
		return "System A"
	}
	if g.rng.Float64() > 0.5 {
		return "System B"
	}
	return "System C"
}
