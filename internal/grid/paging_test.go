package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trade-search/internal/columns"
	"trade-search/internal/mockdata"
)

func TestPageInfo(t *testing.T) {
	g := New(columns.TradeRegistry(), mockdata.NewSeededGenerator(7).GenerateTrades(57), WithRowsPerPage(25))

	assert.Equal(t, PageInfo{Page: 0, RowsPerPage: 25, TotalRows: 57, TotalPages: 3, From: 1, To: 25}, g.Page())
	assert.Len(t, g.PageRows(), 25)

	g.SetPage(2)
	info := g.Page()
	assert.Equal(t, 51, info.From)
	assert.Equal(t, 57, info.To)
	assert.False(t, info.HasNext())
	assert.True(t, info.HasPrev())
	assert.Len(t, g.PageRows(), 7)

	g.SetPage(99)
	assert.Equal(t, 2, g.Page().Page)
	g.SetPage(-3)
	assert.Equal(t, 0, g.Page().Page)
}

func TestSetRowsPerPageResetsPage(t *testing.T) {
	g := New(columns.TradeRegistry(), mockdata.NewSeededGenerator(7).GenerateTrades(120))
	g.SetPage(3)
	assert.Equal(t, 3, g.Page().Page)

	g.SetRowsPerPage(50)
	assert.Equal(t, PageInfo{Page: 0, RowsPerPage: 50, TotalRows: 120, TotalPages: 3, From: 1, To: 50}, g.Page())

	g.SetRowsPerPage(33)
	assert.Equal(t, 50, g.Page().RowsPerPage)
}

func TestPageClampsWhenFilterShrinksRows(t *testing.T) {
	g := New(columns.TradeRegistry(), mockdata.NewSeededGenerator(7).GenerateTrades(100), WithRowsPerPage(10))
	g.SetPage(9)

	g.ApplyFilter("tradeId", "TR-00000")
	info := g.Page()
	assert.Equal(t, 0, info.Page)
	assert.Equal(t, 9, info.TotalRows)
	assert.Len(t, g.PageRows(), 9)
}

func TestEmptyPage(t *testing.T) {
	g := New(columns.TradeRegistry(), nil)
	assert.Equal(t, PageInfo{RowsPerPage: DefaultRowsPerPage}, g.Page())
	assert.Empty(t, g.PageRows())
}
