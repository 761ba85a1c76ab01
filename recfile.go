package recfile

import "recfile/internal/store"

// ============================================================================
// Core types - re-exported from internal/store for the public API
// ============================================================================

// DB is a handle to one on-disk database file. Create one with Open.
type DB = store.Store

// Cell is a decoded scalar value: exactly one of an int32, a float32, or a
// string. Build one with IntCell, FloatCell, or StringCell.
type Cell = store.Cell

// Row is a decoded tuple: a map from column name to value. As a Go map it
// keeps no column order.
// Predicates, projections, and Update's assignment maps all operate on Row.
type Row = store.Row

// Predicate evaluates a decoded Row and reports whether it should be kept.
// recfile has no opinion on how a Predicate is built — Select, Update, and
// Delete consume it purely as a callback.
type Predicate = store.Predicate

// ColumnDesc describes one column of a table: its name and scalar type.
type ColumnDesc = store.ColumnDesc

// ColumnType identifies the scalar type of a column: TypeInt, TypeFloat, or
// TypeString.
type ColumnType = store.ColumnType

// Column type constants.
const (
	TypeInt    ColumnType = store.TypeInt
	TypeFloat  ColumnType = store.TypeFloat
	TypeString ColumnType = store.TypeString
)

// TableInfo summarizes one catalog entry, for read-only inspection tools.
type TableInfo = store.TableInfo

// PageInfo describes one page of a chain walked by InspectFreeList.
type PageInfo = store.PageInfo

// TableStats is a lightweight summary of one table's storage footprint.
type TableStats = store.TableStats

// Cell constructors.
var (
	IntCell    = store.IntCell
	FloatCell  = store.FloatCell
	StringCell = store.StringCell
)

// AlwaysTrue is a Predicate that accepts every row. Select with AlwaysTrue
// returns the whole table; Delete with AlwaysTrue empties it.
var AlwaysTrue = store.AlwaysTrue

// Open opens path as a database file, creating and initializing it if it
// does not already exist. The returned *DB holds no file descriptor open
// between calls.
func Open(path string) (*DB, error) {
	return store.Open(path)
}
