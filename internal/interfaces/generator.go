package interfaces

import "trade-search/internal/types"

type TradeGenerator interface {
	GenerateTrades(n int) []types.TradeRow
}
