package interfaces

import (
	"context"

	"trade-search/internal/types"
)

// Searcher resolves a submitted search into the rows shown by the results overlay.
type Searcher interface {
	Search(ctx context.Context, req types.SearchRequest) ([]types.SearchResult, error)
}
