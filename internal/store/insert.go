package store

import "fmt"

// Insert appends one tuple to table name's page chain, spilling onto a
// freshly allocated page when the tail page has no room, per spec §4.7.
func (s *Store) Insert(table string, values []Cell) error {
	return s.withFile(true, func() error {
		lr, err := s.lookupTable(table)
		if err != nil {
			return err
		}
		desc := lr.desc

		if len(values) != len(desc.Columns) {
			return fmt.Errorf("%w: got %d, want %d", ErrArity, len(values), len(desc.Columns))
		}
		for i, c := range desc.Columns {
			if err := checkValueType(values[i], c.Type); err != nil {
				return err
			}
		}

		rec, err := packRecord(desc.Columns, values)
		if err != nil {
			return err
		}

		hdr, err := s.readPageHeader(desc.LastPage)
		if err != nil {
			return err
		}

		if fitsInPage(int(hdr.Count), int(desc.RecordSize)) {
			if err := s.writeRecordAt(desc.LastPage, int(hdr.Count), rec); err != nil {
				return err
			}
			hdr.Count++
			return s.writePageHeader(desc.LastPage, hdr)
		}

		// Spill: allocate a fresh tail page, link the old tail to it, and
		// update the catalog's last_page before writing the first record
		// into the new page — the ordering spec §5 requires preserved.
		newPage, err := s.allocatePage()
		if err != nil {
			return err
		}
		if err := s.writePageNext(desc.LastPage, newPage); err != nil {
			return err
		}
		if err := s.setTableLastPage(lr.offset, newPage); err != nil {
			return err
		}
		if err := s.writeRecordAt(newPage, 0, rec); err != nil {
			return err
		}
		return s.writePageHeader(newPage, dataPageHeader{Next: DeadEnd, Count: 1})
	})
}

// setTableLastPage overwrites just the last_page field of the catalog slot
// at slotOffset.
func (s *Store) setTableLastPage(slotOffset int64, page uint32) error {
	buf := make([]byte, 2)
	putU16(buf, uint16(page))
	if _, err := s.file.WriteAt(buf, slotOffset+NameMax+2); err != nil {
		return fmt.Errorf("write last_page: %w", err)
	}
	return nil
}
