package searchobs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-search/internal/logger"
	"trade-search/internal/mockdata"
	"trade-search/internal/types"
)

type failingSearcher struct{}

func (failingSearcher) Search(context.Context, types.SearchRequest) ([]types.SearchResult, error) {
	return nil, errors.New("backend unavailable")
}

func TestWrapLogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(logger.LogConfig{Level: "INFO", Format: "text"}, &buf)
	defer logger.InitWithWriter(logger.LogConfig{Level: "INFO"}, &bytes.Buffer{})

	s := Wrap(mockdata.NewStaticSearcher())
	results, err := s.Search(context.Background(), types.SearchRequest{RequestID: "r1", Tab: types.TabTradeID, Query: "TR-1"})
	require.NoError(t, err)
	assert.Equal(t, mockdata.SearchResults(), results)
	assert.Contains(t, buf.String(), "Search completed")
	assert.Contains(t, buf.String(), "request_id=r1")
}

func TestWrapLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(logger.LogConfig{Level: "INFO", Format: "text"}, &buf)
	defer logger.InitWithWriter(logger.LogConfig{Level: "INFO"}, &bytes.Buffer{})

	_, err := Wrap(failingSearcher{}).Search(context.Background(), types.SearchRequest{RequestID: "r2"})
	assert.EqualError(t, err, "backend unavailable")
	assert.Contains(t, buf.String(), "Search failed")
}
