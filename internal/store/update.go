package store

import "fmt"

// Update scans table name's chain and, for every row predicate accepts,
// merges assignments into the row and rewrites the record in place. No page
// is moved and no record count changes, per spec §4.9.
func (s *Store) Update(table string, assignments map[string]Cell, predicate Predicate) error {
	return s.withFile(true, func() error {
		lr, err := s.lookupTable(table)
		if err != nil {
			return err
		}
		desc := lr.desc

		for name, v := range assignments {
			idx := desc.columnIndex(name)
			if idx < 0 {
				return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
			}
			if err := checkValueType(v, desc.Columns[idx].Type); err != nil {
				return err
			}
		}

		page := desc.FirstPage
		for page != DeadEnd {
			hdr, err := s.readPageHeader(page)
			if err != nil {
				return err
			}
			if hdr.Count == 0 {
				break
			}
			for i := 0; i < int(hdr.Count); i++ {
				rec, err := s.readRecordAt(page, i, int(desc.RecordSize))
				if err != nil {
					return err
				}
				row, err := unpackRecord(desc.Columns, rec)
				if err != nil {
					return err
				}
				if !predicate(row) {
					continue
				}
				for name, v := range assignments {
					row[name] = v
				}
				newRec, err := packRecord(desc.Columns, rowToOrderedValues(desc.Columns, row))
				if err != nil {
					return err
				}
				if err := s.writeRecordAt(page, i, newRec); err != nil {
					return err
				}
			}
			page = hdr.Next
		}
		return nil
	})
}
