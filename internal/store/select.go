package store

import "fmt"

// Select scans table name's whole page chain, applies predicate to each
// fully-decoded row, and projects the surviving rows onto columns (or every
// column, declaration order, if columns is ["*"]). It returns the projected
// columns' types and the matching rows in scan order.
func (s *Store) Select(table string, columns []string, predicate Predicate) (map[string]ColumnType, []Row, error) {
	var outTypes map[string]ColumnType
	var outRows []Row

	err := s.withFile(false, func() error {
		lr, err := s.lookupTable(table)
		if err != nil {
			return err
		}
		desc := lr.desc

		projected := columns
		if len(columns) == 1 && columns[0] == "*" {
			projected = make([]string, len(desc.Columns))
			for i, c := range desc.Columns {
				projected[i] = c.Name
			}
		}

		outTypes = make(map[string]ColumnType, len(projected))
		for _, name := range projected {
			idx := desc.columnIndex(name)
			if idx < 0 {
				return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
			}
			outTypes[name] = desc.Columns[idx].Type
		}

		rows, err := s.scanTable(desc, predicate)
		if err != nil {
			return err
		}

		outRows = make([]Row, 0, len(rows))
		for _, row := range rows {
			proj := make(Row, len(projected))
			for _, name := range projected {
				v, ok := row[name]
				if !ok {
					return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
				}
				proj[name] = v
			}
			outRows = append(outRows, proj)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return outTypes, outRows, nil
}

// scanTable walks desc's page chain from first_page to DeadEnd, decoding
// every record and keeping those for which predicate returns true. A page
// with record_count == 0 ends the scan early (spec §4.8/§4.10's edge case
// for an emptied table).
func (s *Store) scanTable(desc tableDesc, predicate Predicate) ([]Row, error) {
	var out []Row
	page := desc.FirstPage
	for page != DeadEnd {
		hdr, err := s.readPageHeader(page)
		if err != nil {
			return nil, err
		}
		if hdr.Count == 0 {
			break
		}
		for i := 0; i < int(hdr.Count); i++ {
			rec, err := s.readRecordAt(page, i, int(desc.RecordSize))
			if err != nil {
				return nil, err
			}
			row, err := unpackRecord(desc.Columns, rec)
			if err != nil {
				return nil, err
			}
			if predicate(row) {
				out = append(out, row)
			}
		}
		page = hdr.Next
	}
	return out, nil
}
