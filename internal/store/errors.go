package store

import "errors"

// Sentinel errors surfaced by the storage core, per the specification's
// error-kind table. Callers should compare with errors.Is; call sites that
// detect the condition add context with fmt.Errorf's %w verb.
var (
	// ErrNameTooLong is returned when a table or column name exceeds NameMax
	// bytes once encoded as UTF-8.
	ErrNameTooLong = errors.New("name exceeds 16 bytes")

	// ErrCatalogFull is returned when creating a table would exceed
	// MaxTables.
	ErrCatalogFull = errors.New("catalog is full")

	// ErrTooManyColumns is returned when a table definition exceeds
	// MaxColumns.
	ErrTooManyColumns = errors.New("too many columns")

	// ErrUnknownType is returned when a column's type tag is not one of
	// TypeInt, TypeFloat, or TypeString.
	ErrUnknownType = errors.New("unknown column type")

	// ErrTableNotFound is returned when a table name lookup fails.
	ErrTableNotFound = errors.New("table not found")

	// ErrArity is returned when an insert's value count does not match the
	// table's column count.
	ErrArity = errors.New("value count does not match column count")

	// ErrType is returned when a value's dynamic type is incompatible with
	// its column's declared type.
	ErrType = errors.New("value type incompatible with column type")

	// ErrUnknownColumn is returned when an update assignment or a select
	// projection names a column the table does not have.
	ErrUnknownColumn = errors.New("unknown column")

	// errInvariant marks an internal invariant violation — never expected
	// in a conforming file, surfaced rather than silently tolerated.
	errInvariant = errors.New("storage invariant violation")
)
