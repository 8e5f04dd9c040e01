package grid

// PageInfo describes the current page of the processed rows. From and To are
// 1-based and inclusive; both are 0 when there are no rows.
type PageInfo struct {
	Page        int
	RowsPerPage int
	TotalRows   int
	TotalPages  int
	From        int
	To          int
}

func (p PageInfo) HasPrev() bool { return p.Page > 0 }

func (p PageInfo) HasNext() bool { return p.Page < p.TotalPages-1 }

func paginate(total, page, perPage int) PageInfo {
	pages := (total + perPage - 1) / perPage
	if page >= pages {
		page = pages - 1
	}
	if page < 0 {
		page = 0
	}
	info := PageInfo{Page: page, RowsPerPage: perPage, TotalRows: total, TotalPages: pages}
	if total > 0 {
		info.From = page*perPage + 1
		info.To = min(total, (page+1)*perPage)
	}
	return info
}

// SetPage moves to page (0-based), clamped to the available pages.
func (c *Controller[T]) SetPage(page int) {
	c.page = paginate(len(c.ProcessedRows()), page, c.rowsPerPage).Page
}

// SetRowsPerPage changes the page size and returns to the first page.
// Sizes outside RowsPerPageOptions are ignored.
func (c *Controller[T]) SetRowsPerPage(n int) {
	if !validRowsPerPage(n) {
		return
	}
	c.rowsPerPage = n
	c.page = 0
}

func (c *Controller[T]) Page() PageInfo {
	return paginate(len(c.ProcessedRows()), c.page, c.rowsPerPage)
}

// PageRows returns the slice of ProcessedRows on the current page.
func (c *Controller[T]) PageRows() []T {
	rows := c.ProcessedRows()
	info := paginate(len(rows), c.page, c.rowsPerPage)
	if info.TotalRows == 0 {
		return rows
	}
	return rows[info.From-1 : info.To]
}
