package store

import "fmt"

// ───────────────────────────────────────────────────────────────────────────
// Record codec
// ───────────────────────────────────────────────────────────────────────────
//
// A record is the concatenation of each column's encoded form in
// declaration order. packRecord/unpackRecord are derived from a table's
// column-type vector at call time — there is no cached per-table codec,
// matching the source's approach of rebuilding the struct format string on
// every operation.

// checkValueType reports whether a Cell's dynamic type matches a column's
// declared type. Numeric types are never cross-converted: an int value
// against a float column (or vice versa) is a type error.
func checkValueType(v Cell, col ColumnType) error {
	if v.Type() != col {
		return fmt.Errorf("%w: got %s, expected %s", ErrType, v.Type(), col)
	}
	if col == TypeString {
		s, _ := v.Str()
		if len(s) > stringFieldSize {
			return fmt.Errorf("%w: string value %d bytes exceeds %d", ErrType, len(s), stringFieldSize)
		}
	}
	return nil
}

// packRecord encodes an ordered slice of values (already type-checked via
// checkValueType) into record_size bytes per cols.
func packRecord(cols []ColumnDesc, values []Cell) ([]byte, error) {
	size, err := recordSizeFor(cols)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	off := 0
	for i, c := range cols {
		sz, _ := c.Type.encodedSize()
		field := buf[off : off+sz]
		switch c.Type {
		case TypeInt:
			n, _ := values[i].Int()
			putI32(field, n)
		case TypeFloat:
			f, _ := values[i].Float()
			putF32(field, f)
		case TypeString:
			str, _ := values[i].Str()
			putFixedString(field, str)
		default:
			return nil, ErrUnknownType
		}
		off += sz
	}
	return buf, nil
}

// unpackRecord decodes record_size bytes into a Row keyed by column name, in
// declaration order.
func unpackRecord(cols []ColumnDesc, rec []byte) (Row, error) {
	row := make(Row, len(cols))
	off := 0
	for _, c := range cols {
		sz, err := c.Type.encodedSize()
		if err != nil {
			return nil, err
		}
		field := rec[off : off+sz]
		switch c.Type {
		case TypeInt:
			row[c.Name] = IntCell(getI32(field))
		case TypeFloat:
			row[c.Name] = FloatCell(getF32(field))
		case TypeString:
			row[c.Name] = StringCell(getFixedString(field))
		}
		off += sz
	}
	return row, nil
}

// rowToOrderedValues extracts values from a Row in the table's declared
// column order, for re-packing (used by delete's compacting rebuild).
func rowToOrderedValues(cols []ColumnDesc, row Row) []Cell {
	out := make([]Cell, len(cols))
	for i, c := range cols {
		out[i] = row[c.Name]
	}
	return out
}
