// Package store implements the on-disk file format described by the
// specification: a fixed-capacity table catalog followed by a linked list of
// fixed-size pages per table, plus a singly-linked free-page chain threaded
// through the unused pages of the same file.
//
// The file layout, byte-for-byte, is:
//
//	offset 0            global header                (3 bytes)
//	offset 3            catalog: MAX_TABLES slots     (MAX_TABLES * TableMetaSize bytes)
//	offset dataOffset    data/free pages, indexed from 0
//
// Every exported constant below is bit-exact and must not be changed without
// breaking the on-disk format for every existing database file.
package store

const (
	// PageSize is the size in bytes of every data page and every free page.
	PageSize = 4096

	// MaxTables is the catalog's slot capacity.
	MaxTables = 255

	// MaxColumns is the maximum number of columns a single table may declare.
	MaxColumns = 255

	// TableMetaSize is the fixed size in bytes of one catalog slot.
	TableMetaSize = 4358

	// NameMax is the maximum encoded length, in bytes, of a table or column
	// name (UTF-8, right-padded with 0x00).
	NameMax = 16

	// columnDescSize is the encoded size of one column descriptor: a
	// NameMax-byte name followed by a 1-byte type tag.
	columnDescSize = NameMax + 1

	// tableDescFixedSize is the encoded size of the table descriptor's fixed
	// prefix, before the variable-length column list: name, first_page,
	// last_page, record_size, column_count.
	tableDescFixedSize = NameMax + 2 + 2 + 2 + 1

	// DeadEnd is the sentinel "no next page" value, used both for the 32-bit
	// on-page next-page links and (truncated to 16 bits) for the free-list
	// head stored in the global header.
	DeadEnd uint32 = 0xFFFFFFFF

	// pageHeaderSize is the size of a data page's header: next_page (u32)
	// followed by record_count (u16).
	pageHeaderSize = 4 + 2

	// globalHeaderSize is the size of the global header: table_count (u8)
	// followed by free_head (u16).
	globalHeaderSize = 1 + 2

	// catalogOffset is the absolute file offset of catalog slot 0.
	catalogOffset = globalHeaderSize

	// dataOffset is the absolute file offset of page 0.
	dataOffset = catalogOffset + MaxTables*TableMetaSize
)

// ColumnType identifies the scalar type of a column.
type ColumnType uint8

const (
	// TypeInt is a 4-byte little-endian signed integer column.
	TypeInt ColumnType = 0
	// TypeFloat is a 4-byte little-endian IEEE-754 float column.
	TypeFloat ColumnType = 1
	// TypeString is a 255-byte, null-padded, UTF-8 string column.
	TypeString ColumnType = 2
)

// String returns a human-readable label for the column type, used by the
// inspection tool and in error messages.
func (t ColumnType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// encodedSize returns the on-disk byte width of a value of this column type.
func (t ColumnType) encodedSize() (int, error) {
	switch t {
	case TypeInt:
		return 4, nil
	case TypeFloat:
		return 4, nil
	case TypeString:
		return 255, nil
	default:
		return 0, ErrUnknownType
	}
}

// catalogSlotOffset returns the absolute file offset of catalog slot i.
func catalogSlotOffset(i int) int64 {
	return int64(catalogOffset) + int64(i)*TableMetaSize
}

// pageOffset returns the absolute file offset of page p.
func pageOffset(p uint32) int64 {
	return int64(dataOffset) + int64(p)*PageSize
}
