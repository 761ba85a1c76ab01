package store

import "fmt"

// ───────────────────────────────────────────────────────────────────────────
// Global header + free-page allocator
// ───────────────────────────────────────────────────────────────────────────
//
// The global header is 3 bytes at file offset 0: table_count (u8) followed
// by free_head (u16). A free page's first 4 bytes hold a u32 "next free
// page" link (or DeadEnd); the free-list is walked by 16-bit page index even
// though the on-page link is 32 bits, so usable pages are capped at 65535 —
// documented, not silently widened.

// readHeader loads the 3-byte global header into s.header.
func (s *Store) readHeader() error {
	buf := make([]byte, globalHeaderSize)
	if _, err := s.file.ReadAt(buf, 0); err != nil {
		return fmt.Errorf("read global header: %w", err)
	}
	s.header = buf
	return nil
}

// writeHeader flushes s.header to offset 0.
func (s *Store) writeHeader() error {
	if _, err := s.file.WriteAt(s.header, 0); err != nil {
		return fmt.Errorf("write global header: %w", err)
	}
	return nil
}

func (s *Store) tableCount() int     { return int(getU8(s.header[0:1])) }
func (s *Store) setTableCount(n int) { putU8(s.header[0:1], uint8(n)) }

// freeHead returns the free-list head as a widened page index, or DeadEnd
// (0xFFFFFFFF) when the on-disk 16-bit sentinel (0xFFFF) marks an empty
// list.
func (s *Store) freeHead() uint32 {
	raw := getU16(s.header[1:3])
	if raw == 0xFFFF {
		return DeadEnd
	}
	return uint32(raw)
}

// setFreeHead stores p as the free-list head. p must either be DeadEnd or
// fit in 16 bits — the free-list index width cap the spec calls out.
func (s *Store) setFreeHead(p uint32) error {
	if p == DeadEnd {
		putU16(s.header[1:3], 0xFFFF)
		return nil
	}
	if p > 0xFFFF {
		return fmt.Errorf("free-list index %d exceeds 16-bit capacity", p)
	}
	putU16(s.header[1:3], uint16(p))
	return nil
}

// readFreePageNext reads the 4-byte "next free page" link stored at the
// front of free page p.
func (s *Store) readFreePageNext(p uint32) (uint32, error) {
	buf := make([]byte, 4)
	if _, err := s.file.ReadAt(buf, pageOffset(p)); err != nil {
		return 0, fmt.Errorf("read free page %d: %w", p, err)
	}
	return getU32(buf), nil
}

// writeFreePageNext writes the 4-byte "next free page" link at the front of
// page p, turning it into (or keeping it as) a free page.
func (s *Store) writeFreePageNext(p uint32, next uint32) error {
	buf := make([]byte, 4)
	putU32(buf, next)
	if _, err := s.file.WriteAt(buf, pageOffset(p)); err != nil {
		return fmt.Errorf("write free page %d: %w", p, err)
	}
	return nil
}

// extendFile appends exactly one page to the file, initialized as a free
// page whose next link is DeadEnd. Returns the new page's index.
func (s *Store) extendFile() (uint32, error) {
	info, err := s.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat: %w", err)
	}
	if (info.Size()-int64(dataOffset))%PageSize != 0 {
		return 0, fmt.Errorf("%w: file size %d misaligned to page boundary", errInvariant, info.Size())
	}
	newIndex := uint32((info.Size() - int64(dataOffset)) / PageSize)
	buf := make([]byte, PageSize)
	putU32(buf[0:4], DeadEnd)
	if _, err := s.file.WriteAt(buf, pageOffset(newIndex)); err != nil {
		return 0, fmt.Errorf("extend file: %w", err)
	}
	return newIndex, nil
}

// allocatePage removes the page at the head of the free list and
// re-prepares it as an empty data page (next=DeadEnd, record_count=0),
// exactly per spec §4.3: free_head always names a real free page (the
// invariant established at database creation, §3), never the DeadEnd
// sentinel itself — DeadEnd only ever appears as a free page's own next
// link, marking the tail of the free chain.
func (s *Store) allocatePage() (uint32, error) {
	head := s.freeHead()
	if head == DeadEnd {
		return 0, fmt.Errorf("%w: free_head is DeadEnd", errInvariant)
	}
	next, err := s.readFreePageNext(head)
	if err != nil {
		return 0, err
	}
	if next == DeadEnd {
		newPage, err := s.extendFile()
		if err != nil {
			return 0, err
		}
		if err := s.setFreeHead(newPage); err != nil {
			return 0, err
		}
	} else {
		if err := s.setFreeHead(next); err != nil {
			return 0, err
		}
	}
	return s.initDataPage(head)
}

// initDataPage overwrites page p's header as an empty data page and returns
// its index.
func (s *Store) initDataPage(p uint32) (uint32, error) {
	buf := make([]byte, pageHeaderSize)
	putU32(buf[0:4], DeadEnd)
	putU16(buf[4:6], 0)
	if _, err := s.file.WriteAt(buf, pageOffset(p)); err != nil {
		return 0, fmt.Errorf("init page %d: %w", p, err)
	}
	return p, nil
}

// releasePage pushes page p onto the free-list head: p's own next link
// becomes the current free_head, then free_head becomes p.
func (s *Store) releasePage(p uint32) error {
	if err := s.writeFreePageNext(p, s.freeHead()); err != nil {
		return err
	}
	return s.setFreeHead(p)
}
