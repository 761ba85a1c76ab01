package store

import "fmt"

// TableInfo summarizes one catalog slot for read-only inspection tools —
// the catalog analogue of the page inspector the storage core builds its
// diagnostics on.
type TableInfo struct {
	Slot       int
	Name       string
	FirstPage  uint32
	LastPage   uint32
	RecordSize uint16
	Columns    []ColumnDesc
	PageCount  int
	RowCount   int
}

// PageInfo describes one page of a table's chain: its position, its header
// fields, and whether it is a data page or a reachable free page.
type PageInfo struct {
	Page     uint32
	Next     uint32
	Count    uint16
	IsFree   bool
	Position int // 0-based position within the chain being inspected
}

// InspectCatalog returns a TableInfo for every occupied catalog slot, in
// slot order, including a walked page count and row count per table. It
// never mutates the file.
func (s *Store) InspectCatalog() ([]TableInfo, error) {
	var out []TableInfo
	err := s.withFile(false, func() error {
		count := s.tableCount()
		for i := 0; i < count; i++ {
			buf := make([]byte, TableMetaSize)
			if _, err := s.file.ReadAt(buf, catalogSlotOffset(i)); err != nil {
				return fmt.Errorf("read catalog slot %d: %w", i, err)
			}
			desc := decodeTableDesc(buf)

			pages, err := s.inspectChain(desc.FirstPage)
			if err != nil {
				return err
			}
			rows := 0
			for _, p := range pages {
				rows += int(p.Count)
			}

			out = append(out, TableInfo{
				Slot:       i,
				Name:       desc.Name,
				FirstPage:  desc.FirstPage,
				LastPage:   desc.LastPage,
				RecordSize: desc.RecordSize,
				Columns:    desc.Columns,
				PageCount:  len(pages),
				RowCount:   rows,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InspectFreeList walks the free-page chain from the global header's
// free_head to DEAD_END and returns one PageInfo per page visited.
func (s *Store) InspectFreeList() ([]PageInfo, error) {
	var out []PageInfo
	err := s.withFile(false, func() error {
		var err error
		out, err = s.inspectChain(s.freeHead())
		for i := range out {
			out[i].IsFree = true
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// inspectChain walks a page chain (data or free) starting at first and
// returns one PageInfo per page in traversal order. A free-list page's
// next link sits at the same offset as a data page's, so the same 6-byte
// header read serves both; record_count is meaningless for free pages and
// callers should ignore it there.
func (s *Store) inspectChain(first uint32) ([]PageInfo, error) {
	var out []PageInfo
	page := first
	pos := 0
	for page != DeadEnd {
		hdr, err := s.readPageHeader(page)
		if err != nil {
			return nil, err
		}
		out = append(out, PageInfo{
			Page:     page,
			Next:     hdr.Next,
			Count:    hdr.Count,
			Position: pos,
		})
		page = hdr.Next
		pos++
	}
	return out, nil
}

// TableStats is a lightweight summary of one table's storage footprint,
// reported by the CLI's stats subcommand.
type TableStats struct {
	Name       string
	PageCount  int
	RowCount   int
	RecordSize uint16
}

// Stats reports TableStats for table name.
func (s *Store) Stats(table string) (TableStats, error) {
	var out TableStats
	err := s.withFile(false, func() error {
		lr, err := s.lookupTable(table)
		if err != nil {
			return err
		}
		pages, err := s.inspectChain(lr.desc.FirstPage)
		if err != nil {
			return err
		}
		rows := 0
		for _, p := range pages {
			rows += int(p.Count)
		}
		out = TableStats{
			Name:       lr.desc.Name,
			PageCount:  len(pages),
			RowCount:   rows,
			RecordSize: lr.desc.RecordSize,
		}
		return nil
	})
	if err != nil {
		return TableStats{}, err
	}
	return out, nil
}
