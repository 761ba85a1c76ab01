package store

import "fmt"

// Delete removes every row predicate accepts via a compacting rebuild of
// the table's whole page chain, per spec §4.10: surviving rows are
// materialized, the chain is rewritten in a single pass, and any pages left
// over are spliced onto the free list in one relink at the end.
func (s *Store) Delete(table string, predicate Predicate) error {
	return s.withFile(true, func() error {
		lr, err := s.lookupTable(table)
		if err != nil {
			return err
		}
		return s.compactingRebuild(lr, predicate)
	})
}

// Vacuum is a supplemental operation (not named in the original source, but
// implied by it): a compacting rebuild with a predicate that rejects
// nothing, i.e. Delete(table, AlwaysTrue-inverted) — the same rewrite path
// Delete always runs, exposed directly so callers don't need to fabricate a
// trivial predicate. It changes no data. Insert only spills onto a new page
// when the tail page is full and Delete always compacts, so on a chain
// written by this package Vacuum rewrites the pages in place and frees none.
func (s *Store) Vacuum(table string) error {
	return s.withFile(true, func() error {
		lr, err := s.lookupTable(table)
		if err != nil {
			return err
		}
		return s.compactingRebuild(lr, func(Row) bool { return false })
	})
}

// compactingRebuild implements spec §4.10 steps 1–6. predicate marks rows to
// delete; rows it rejects survive.
func (s *Store) compactingRebuild(lr lookupResult, predicate Predicate) error {
	desc := lr.desc

	survivors, err := s.scanTable(desc, func(r Row) bool { return !predicate(r) })
	if err != nil {
		return err
	}
	queue := make([][]byte, len(survivors))
	for i, row := range survivors {
		rec, err := packRecord(desc.Columns, rowToOrderedValues(desc.Columns, row))
		if err != nil {
			return err
		}
		queue[i] = rec
	}

	oldLastPage := desc.LastPage
	oldFreeHead := s.freeHead()

	page := desc.FirstPage
	newLastPage := desc.FirstPage
	stagedFreeHead := DeadEnd
	transferred := false
	idx := 0

	for page != DeadEnd {
		hdr, err := s.readPageHeader(page)
		if err != nil {
			return err
		}
		originalNext := hdr.Next

		if !transferred {
			newLastPage = page
			if originalNext != DeadEnd {
				stagedFreeHead = originalNext
			} else {
				stagedFreeHead = DeadEnd
			}
		}

		n := 0
		for idx+n < len(queue) && fitsInPage(n, int(desc.RecordSize)) {
			n++
		}
		if err := s.writePageBody(page, queue[idx:idx+n], int(desc.RecordSize)); err != nil {
			return err
		}
		idx += n
		transferred = idx >= len(queue)

		page = originalNext
	}

	if idx < len(queue) {
		return fmt.Errorf("%w: survivors did not fit in the original chain", errInvariant)
	}

	if oldLastPage != newLastPage {
		if err := s.writePageNext(oldLastPage, oldFreeHead); err != nil {
			return err
		}
	}
	if err := s.writePageNext(newLastPage, DeadEnd); err != nil {
		return err
	}
	if stagedFreeHead != DeadEnd {
		if err := s.setFreeHead(stagedFreeHead); err != nil {
			return err
		}
	}
	return s.setTableLastPage(lr.offset, newLastPage)
}

// DropTable removes every row from name, recycles its first_page onto the
// free list, and compacts the catalog by shifting every following slot down
// one position, per spec §4.11.
func (s *Store) DropTable(name string) error {
	return s.withFile(true, func() error {
		lr, err := s.lookupTable(name)
		if err != nil {
			return err
		}
		if err := s.compactingRebuild(lr, func(Row) bool { return true }); err != nil {
			return err
		}

		// compactingRebuild leaves a single empty page behind (first_page ==
		// last_page, record_count 0, next DEAD_END); recycle it directly
		// rather than re-reading the catalog slot it just rewrote.
		if err := s.releasePage(lr.desc.FirstPage); err != nil {
			return err
		}

		count := s.tableCount()
		tail := make([]byte, TableMetaSize)
		for i := lr.slot + 1; i < count; i++ {
			if _, err := s.file.ReadAt(tail, catalogSlotOffset(i)); err != nil {
				return fmt.Errorf("read catalog slot %d: %w", i, err)
			}
			if _, err := s.file.WriteAt(tail, catalogSlotOffset(i-1)); err != nil {
				return fmt.Errorf("shift catalog slot %d: %w", i, err)
			}
		}
		zero := make([]byte, TableMetaSize)
		if _, err := s.file.WriteAt(zero, catalogSlotOffset(count-1)); err != nil {
			return fmt.Errorf("clear vacated catalog slot %d: %w", count-1, err)
		}
		s.setTableCount(count - 1)
		return nil
	})
}

// writePageBody writes records (already packed, recordSize bytes each) into
// page's body starting right after the 6-byte header, zero-padding the
// remainder, and updates record_count. The page's next link is left
// untouched — callers relink explicitly once the whole walk completes.
func (s *Store) writePageBody(page uint32, records [][]byte, recordSize int) error {
	body := make([]byte, PageSize-pageHeaderSize)
	off := 0
	for _, rec := range records {
		copy(body[off:off+recordSize], rec)
		off += recordSize
	}
	if _, err := s.file.WriteAt(body, pageOffset(page)+pageHeaderSize); err != nil {
		return fmt.Errorf("write page %d body: %w", page, err)
	}
	countBuf := make([]byte, 2)
	putU16(countBuf, uint16(len(records)))
	if _, err := s.file.WriteAt(countBuf, pageOffset(page)+4); err != nil {
		return fmt.Errorf("write page %d record_count: %w", page, err)
	}
	return nil
}
