package store

import "fmt"

// ───────────────────────────────────────────────────────────────────────────
// Table catalog
// ───────────────────────────────────────────────────────────────────────────
//
// The catalog is a fixed-size slotted array at the front of the file.
// Occupied slots are always the contiguous prefix [0, tableCount); dropping
// a table compacts the array by shifting every following slot down.

// ColumnDesc describes one column: its name and scalar type. Encoded as a
// NameMax-byte name followed by a 1-byte type tag (17 bytes total).
type ColumnDesc struct {
	Name string
	Type ColumnType
}

func (c ColumnDesc) encode(buf []byte) {
	putFixedName(buf[:NameMax], c.Name)
	putU8(buf[NameMax:NameMax+1], uint8(c.Type))
}

func decodeColumnDesc(buf []byte) ColumnDesc {
	return ColumnDesc{
		Name: getFixedName(buf[:NameMax]),
		Type: ColumnType(getU8(buf[NameMax : NameMax+1])),
	}
}

// tableDesc is the full in-memory decoding of one catalog slot.
type tableDesc struct {
	Name       string
	FirstPage  uint32 // stored on disk as u16, widened for convenience
	LastPage   uint32
	RecordSize uint16
	Columns    []ColumnDesc
}

// columnTypes returns just the type vector, in declaration order.
func (t tableDesc) columnTypes() []ColumnType {
	out := make([]ColumnType, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Type
	}
	return out
}

// columnIndex returns the declaration-order index of name, or -1.
func (t tableDesc) columnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// encodeTableDesc serializes a table descriptor into a TableMetaSize buffer,
// zero-padded per the file format.
func encodeTableDesc(t tableDesc) []byte {
	buf := make([]byte, TableMetaSize)
	putFixedName(buf[0:NameMax], t.Name)
	putU16(buf[NameMax:NameMax+2], uint16(t.FirstPage))
	putU16(buf[NameMax+2:NameMax+4], uint16(t.LastPage))
	putU16(buf[NameMax+4:NameMax+6], t.RecordSize)
	putU8(buf[NameMax+6:NameMax+7], uint8(len(t.Columns)))
	off := tableDescFixedSize
	for _, c := range t.Columns {
		c.encode(buf[off : off+columnDescSize])
		off += columnDescSize
	}
	// Remainder of buf is already zero (make initializes to zero).
	return buf
}

// decodeTableDesc parses a full TableMetaSize catalog slot.
func decodeTableDesc(buf []byte) tableDesc {
	name := getFixedName(buf[0:NameMax])
	first := getU16(buf[NameMax : NameMax+2])
	last := getU16(buf[NameMax+2 : NameMax+4])
	recSize := getU16(buf[NameMax+4 : NameMax+6])
	colCount := int(getU8(buf[NameMax+6 : NameMax+7]))
	cols := make([]ColumnDesc, colCount)
	off := tableDescFixedSize
	for i := 0; i < colCount; i++ {
		cols[i] = decodeColumnDesc(buf[off : off+columnDescSize])
		off += columnDescSize
	}
	return tableDesc{
		Name:       name,
		FirstPage:  uint32(first),
		LastPage:   uint32(last),
		RecordSize: recSize,
		Columns:    cols,
	}
}

// decodeNamePrefix decodes only the name field at the front of a catalog
// slot, for cheap name-comparison scans. Used by lookupTable.
func decodeNamePrefix(buf []byte) string {
	return getFixedName(buf[0:NameMax])
}

// readTableCount reads table_count from the global header buffer.
func readTableCount(hdr []byte) int { return int(getU8(hdr[0:1])) }

// lookupResult is what a successful catalog lookup yields.
type lookupResult struct {
	slot   int
	offset int64
	desc   tableDesc
}

// lookupTable scans catalog slots [0, tableCount) linearly and returns the
// first slot whose decoded name matches. No uniqueness is enforced on
// create_table, so the lowest-indexed match always wins — matching the
// source's scan order exactly.
func (s *Store) lookupTable(name string) (lookupResult, error) {
	tableCount := readTableCount(s.header)
	slotBuf := make([]byte, tableDescFixedSize)
	for i := 0; i < tableCount; i++ {
		off := catalogSlotOffset(i)
		if _, err := s.file.ReadAt(slotBuf, off); err != nil {
			return lookupResult{}, fmt.Errorf("read catalog slot %d: %w", i, err)
		}
		if decodeNamePrefix(slotBuf) != name {
			continue
		}
		full := make([]byte, TableMetaSize)
		if _, err := s.file.ReadAt(full, off); err != nil {
			return lookupResult{}, fmt.Errorf("read catalog slot %d: %w", i, err)
		}
		return lookupResult{slot: i, offset: off, desc: decodeTableDesc(full)}, nil
	}
	return lookupResult{}, fmt.Errorf("%w: %q", ErrTableNotFound, name)
}

// checkName validates a table or column name against NameMax.
func checkName(name string) error {
	if len(name) > NameMax {
		return fmt.Errorf("%w: %q is %d bytes", ErrNameTooLong, name, len(name))
	}
	return nil
}

// recordSizeFor computes the packed record width for a column-type vector.
func recordSizeFor(cols []ColumnDesc) (uint16, error) {
	var total int
	for _, c := range cols {
		sz, err := c.Type.encodedSize()
		if err != nil {
			return 0, err
		}
		total += sz
	}
	if total > 0xFFFF {
		return 0, fmt.Errorf("record size %d overflows u16", total)
	}
	return uint16(total), nil
}
