package store

import "fmt"

// Cell is a decoded scalar value: exactly one of an int32, a float32, or a
// string, tagged by which field is meaningful. This models the source
// implementation's dynamically-typed Python values as a static Go tagged
// union (see spec's design note on dynamic typing).
type Cell struct {
	typ ColumnType
	i   int32
	f   float32
	s   string
}

// IntCell wraps a signed 32-bit integer as a Cell.
func IntCell(v int32) Cell { return Cell{typ: TypeInt, i: v} }

// FloatCell wraps a 32-bit float as a Cell.
func FloatCell(v float32) Cell { return Cell{typ: TypeFloat, f: v} }

// StringCell wraps a string as a Cell. The caller must ensure the UTF-8
// encoding fits in 255 bytes; Insert and Update return ErrType otherwise.
func StringCell(v string) Cell { return Cell{typ: TypeString, s: v} }

// Type reports which column type this cell's dynamic type is.
func (c Cell) Type() ColumnType { return c.typ }

// Int returns the cell's integer value and whether the cell holds one.
func (c Cell) Int() (int32, bool) { return c.i, c.typ == TypeInt }

// Float returns the cell's float value and whether the cell holds one.
func (c Cell) Float() (float32, bool) { return c.f, c.typ == TypeFloat }

// Str returns the cell's string value and whether the cell holds one.
func (c Cell) Str() (string, bool) { return c.s, c.typ == TypeString }

// Any returns the cell's value as the Go type it wraps: int32, float32, or
// string. Useful for predicates and callers that don't care about the static
// Cell type.
func (c Cell) Any() any {
	switch c.typ {
	case TypeInt:
		return c.i
	case TypeFloat:
		return c.f
	case TypeString:
		return c.s
	default:
		return nil
	}
}

// String implements fmt.Stringer for debug output.
func (c Cell) String() string {
	switch c.typ {
	case TypeInt:
		return fmt.Sprintf("%d", c.i)
	case TypeFloat:
		return fmt.Sprintf("%g", c.f)
	case TypeString:
		return c.s
	default:
		return "<invalid cell>"
	}
}

// Row is a decoded tuple: a map from column name to value. As a Go map it
// keeps no column order; declaration order lives only in the table's
// column list. Predicates, projections, and update assignments all operate
// on Row.
type Row map[string]Cell

// Predicate evaluates a decoded row and reports whether it should be kept.
// The storage core has no knowledge of how a Predicate is constructed — it
// is consumed purely as a callback, per the specification's scoping of the
// command-language evaluator as an external collaborator.
type Predicate func(Row) bool

// AlwaysTrue is a Predicate that accepts every row. Select with AlwaysTrue
// returns the whole table; Delete with AlwaysTrue empties it; Vacuum is
// defined in terms of this predicate.
func AlwaysTrue(Row) bool { return true }
