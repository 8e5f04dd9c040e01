package grid

// Resizable is the part of a Grid a resize session drives.
type Resizable interface {
	HasColumn(id string) bool
	Width(id string) int
	Resize(id string, delta int)
}

// ResizeSession tracks one in-progress column drag. The zero value is idle.
// The shell owns it and passes it to its pointer handlers; at most one column
// is resized at a time.
type ResizeSession struct {
	active      bool
	columnID    string
	originX     int
	originWidth int
}

// Begin enters the resizing state for column id at pointer position x. It
// reports false, leaving the session unchanged, for unknown columns or when a
// drag is already in progress.
func (s *ResizeSession) Begin(g Resizable, id string, x int) bool {
	if s.active || !g.HasColumn(id) {
		return false
	}
	*s = ResizeSession{active: true, columnID: id, originX: x, originWidth: g.Width(id)}
	return true
}

// Move applies the drag at pointer position x and returns the resulting width.
// The width is originWidth plus the distance from the origin, floored by the
// grid's minimum. Moves while idle are ignored and return 0.
func (s *ResizeSession) Move(g Resizable, x int) int {
	if !s.active {
		return 0
	}
	target := s.originWidth + (x - s.originX)
	g.Resize(s.columnID, target-g.Width(s.columnID))
	return g.Width(s.columnID)
}

// End returns to idle and keeps whatever width the last Move produced. It
// returns the column that was being resized, if any.
func (s *ResizeSession) End() (string, bool) {
	if !s.active {
		return "", false
	}
	id := s.columnID
	*s = ResizeSession{}
	return id, true
}

func (s *ResizeSession) Active() bool { return s.active }

func (s *ResizeSession) ColumnID() string { return s.columnID }
