package store

import "fmt"

// CreateTable creates a new table with the given columns, in declaration
// order. No check for duplicate table names is performed — per spec §4.5,
// collisions are permitted, and lookupTable's lowest-indexed-match
// semantics determine which one subsequent operations see.
func (s *Store) CreateTable(name string, columns []ColumnDesc) error {
	if err := checkName(name); err != nil {
		return err
	}
	if len(columns) > MaxColumns {
		return fmt.Errorf("%w: %d columns", ErrTooManyColumns, len(columns))
	}
	for _, c := range columns {
		if err := checkName(c.Name); err != nil {
			return err
		}
		if c.Type != TypeInt && c.Type != TypeFloat && c.Type != TypeString {
			return fmt.Errorf("%w: %d", ErrUnknownType, c.Type)
		}
	}
	recSize, err := recordSizeFor(columns)
	if err != nil {
		return err
	}

	return s.withFile(true, func() error {
		count := s.tableCount()
		if count >= MaxTables {
			return fmt.Errorf("%w: %d tables", ErrCatalogFull, count)
		}

		page, err := s.allocatePage()
		if err != nil {
			return err
		}

		desc := tableDesc{
			Name:       name,
			FirstPage:  page,
			LastPage:   page,
			RecordSize: recSize,
			Columns:    columns,
		}
		slot := encodeTableDesc(desc)
		if _, err := s.file.WriteAt(slot, catalogSlotOffset(count)); err != nil {
			return fmt.Errorf("write catalog slot %d: %w", count, err)
		}
		s.setTableCount(count + 1)
		return nil
	})
}
