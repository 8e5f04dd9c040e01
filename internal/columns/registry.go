// Package columns holds the static column descriptors of each grid together with
// a typed accessor per column id, so rows are never indexed by an untyped key.
package columns

import (
	"errors"
	"fmt"
	"strconv"

	"trade-search/internal/types"
)

var (
	ErrMissingField   = errors.New("column has no field accessor")
	ErrDuplicateID    = errors.New("duplicate column id")
	ErrMissingKeyFunc = errors.New("row key function is required")
)

type Kind int

const (
	KindText Kind = iota
	KindNumber
)

// Field reads one column's value from a row of type T.
type Field[T any] struct {
	kind   Kind
	text   func(T) string
	number func(T) float64
}

func Text[T any](get func(T) string) Field[T] {
	return Field[T]{kind: KindText, text: get}
}

func Number[T any](get func(T) float64) Field[T] {
	return Field[T]{kind: KindNumber, number: get}
}

func (f Field[T]) Kind() Kind { return f.kind }

// String is the value as it is matched by filters: numbers use their shortest
// decimal form, e.g. 1250000 or 0.1375.
func (f Field[T]) String(row T) string {
	if f.kind == KindNumber {
		return strconv.FormatFloat(f.number(row), 'f', -1, 64)
	}
	return f.text(row)
}

func (f Field[T]) Number(row T) float64 {
	if f.kind == KindNumber {
		return f.number(row)
	}
	return 0
}

// Value returns the raw typed value, for formatting.
func (f Field[T]) Value(row T) any {
	if f.kind == KindNumber {
		return f.number(row)
	}
	return f.text(row)
}

func (f Field[T]) valid() bool {
	switch f.kind {
	case KindNumber:
		return f.number != nil
	default:
		return f.text != nil
	}
}

// Registry is the ordered, immutable column set of one grid.
type Registry[T any] struct {
	key     func(T) string
	columns []types.Column
	index   map[string]int
	fields  map[string]Field[T]
}

// NewRegistry validates that every data column has an accessor. Synthetic
// columns may omit one.
func NewRegistry[T any](key func(T) string, cols []types.Column, fields map[string]Field[T]) (*Registry[T], error) {
	if key == nil {
		return nil, ErrMissingKeyFunc
	}
	r := &Registry[T]{
		key:     key,
		columns: make([]types.Column, len(cols)),
		index:   make(map[string]int, len(cols)),
		fields:  make(map[string]Field[T], len(fields)),
	}
	copy(r.columns, cols)
	for i, c := range cols {
		if _, dup := r.index[c.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, c.ID)
		}
		r.index[c.ID] = i
		if c.Synthetic {
			continue
		}
		f, ok := fields[c.ID]
		if !ok || !f.valid() {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, c.ID)
		}
		r.fields[c.ID] = f
	}
	return r, nil
}

// MustRegistry panics on an invalid definition. Only used for the package's
// own static registries.
func MustRegistry[T any](key func(T) string, cols []types.Column, fields map[string]Field[T]) *Registry[T] {
	r, err := NewRegistry(key, cols, fields)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry[T]) Columns() []types.Column {
	out := make([]types.Column, len(r.columns))
	copy(out, r.columns)
	return out
}

func (r *Registry[T]) IDs() []string {
	ids := make([]string, len(r.columns))
	for i, c := range r.columns {
		ids[i] = c.ID
	}
	return ids
}

func (r *Registry[T]) Lookup(id string) (types.Column, bool) {
	i, ok := r.index[id]
	if !ok {
		return types.Column{}, false
	}
	return r.columns[i], true
}

func (r *Registry[T]) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Field returns the accessor for a data column. Synthetic and unknown ids report false.
func (r *Registry[T]) Field(id string) (Field[T], bool) {
	f, ok := r.fields[id]
	return f, ok
}

func (r *Registry[T]) Key(row T) string {
	return r.key(row)
}

func (r *Registry[T]) Len() int { return len(r.columns) }

// InitialWidth sizes a column from its label: 12 units per character plus 80
// for the sort and filter glyphs, never below 120.
func InitialWidth(label string) int {
	w := len([]rune(label))*12 + 80
	if w < 120 {
		return 120
	}
	return w
}
