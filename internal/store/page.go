package store

import "fmt"

// ───────────────────────────────────────────────────────────────────────────
// Data pages
// ───────────────────────────────────────────────────────────────────────────
//
// A data page is PageSize bytes: a 6-byte header (next_page u32, record_count
// u16) followed by record_count fixed-width records packed contiguously.
// Trailing bytes beyond 6 + record_count*record_size are never read.

// dataPageHeader is the decoded 6-byte page header.
type dataPageHeader struct {
	Next  uint32
	Count uint16
}

// readPageHeader reads just the 6-byte header of page p.
func (s *Store) readPageHeader(p uint32) (dataPageHeader, error) {
	buf := make([]byte, pageHeaderSize)
	if _, err := s.file.ReadAt(buf, pageOffset(p)); err != nil {
		return dataPageHeader{}, fmt.Errorf("read page %d header: %w", p, err)
	}
	return dataPageHeader{Next: getU32(buf[0:4]), Count: getU16(buf[4:6])}, nil
}

// writePageHeader overwrites just the 6-byte header of page p, leaving the
// record body untouched.
func (s *Store) writePageHeader(p uint32, h dataPageHeader) error {
	buf := make([]byte, pageHeaderSize)
	putU32(buf[0:4], h.Next)
	putU16(buf[4:6], h.Count)
	if _, err := s.file.WriteAt(buf, pageOffset(p)); err != nil {
		return fmt.Errorf("write page %d header: %w", p, err)
	}
	return nil
}

// writePageNext overwrites only the 4-byte next_page link of page p.
func (s *Store) writePageNext(p uint32, next uint32) error {
	buf := make([]byte, 4)
	putU32(buf, next)
	if _, err := s.file.WriteAt(buf, pageOffset(p)); err != nil {
		return fmt.Errorf("write page %d next: %w", p, err)
	}
	return nil
}

// readRecordAt reads one record's bytes at record index i within page p.
func (s *Store) readRecordAt(p uint32, i int, recordSize int) ([]byte, error) {
	buf := make([]byte, recordSize)
	off := pageOffset(p) + int64(pageHeaderSize) + int64(i)*int64(recordSize)
	if _, err := s.file.ReadAt(buf, off); err != nil {
		return nil, fmt.Errorf("read record %d on page %d: %w", i, p, err)
	}
	return buf, nil
}

// writeRecordAt writes one record's bytes at record index i within page p.
func (s *Store) writeRecordAt(p uint32, i int, rec []byte) error {
	off := pageOffset(p) + int64(pageHeaderSize) + int64(i)*int64(len(rec))
	if _, err := s.file.WriteAt(rec, off); err != nil {
		return fmt.Errorf("write record %d on page %d: %w", i, p, err)
	}
	return nil
}

// fitsInPage reports whether a page currently holding count records of
// recordSize bytes each has room for one more.
func fitsInPage(count int, recordSize int) bool {
	return pageHeaderSize+(count+1)*recordSize <= PageSize
}

// recordsPerPage returns how many records of recordSize fit in one page
// body (after the 6-byte header).
func recordsPerPage(recordSize int) int {
	if recordSize <= 0 {
		return 0
	}
	return (PageSize - pageHeaderSize) / recordSize
}
