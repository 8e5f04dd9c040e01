package searchobs

import (
	"context"
	"time"

	"trade-search/internal/interfaces"
	"trade-search/internal/logger"
	"trade-search/internal/trace"
	"trade-search/internal/types"
)

type observableSearcher struct {
	searcher interfaces.Searcher
}

var _ interfaces.Searcher = (*observableSearcher)(nil)

func Wrap(s interfaces.Searcher) interfaces.Searcher {
	return &observableSearcher{
		searcher: s,
	}
}

func (so *observableSearcher) Search(ctx context.Context, req types.SearchRequest) ([]types.SearchResult, error) {
	ctx, span := trace.StartSpan(ctx, "search.Search")
	defer span.End()

	start := time.Now()

	results, err := so.searcher.Search(ctx, req)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Search failed", err,
			"request_id", req.RequestID,
			"tab", string(req.Tab),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Search completed",
		"request_id", req.RequestID,
		"tab", string(req.Tab),
		"source_system", req.SourceSystem,
		"results", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return results, nil
}
